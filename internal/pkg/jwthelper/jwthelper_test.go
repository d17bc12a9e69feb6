package jwthelper

import (
	"testing"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	signed, err := GenerateToken(key, 42, domain.RoleAdmin, "some-user-agent")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ParseToken(key, signed)
	require.NoError(t, err)

	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "some-user-agent", claims.UserAgent)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseTokenWrongKey(t *testing.T) {
	signed, err := GenerateToken([]byte("right-key"), 1, domain.RoleUser, "")
	require.NoError(t, err)

	_, err = ParseToken([]byte("wrong-key"), signed)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken([]byte("key"), "not.a.token")
	assert.Error(t, err)
}
