package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

func newAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()

	return NewAuthService(repository.NewUserRepository(dao.NewUserDAO(db)))
}

func TestSignup(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user, err := svc.Signup(ctx, SignupInput{
			Username:    "newcomer",
			Email:       "newcomer@example.com",
			PhoneNumber: "+77001234567",
			Password:    "password123",
		})
		require.NoError(t, err)

		assert.NotZero(t, user.ID)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "password123", user.PasswordHash)
	})

	t.Run("username taken", func(t *testing.T) {
		_, err := svc.Signup(ctx, SignupInput{
			Username: "newcomer",
			Email:    "other@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email taken", func(t *testing.T) {
		_, err := svc.Signup(ctx, SignupInput{
			Username: "someoneelse",
			Email:    "newcomer@example.com",
			Password: "password123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{
		Username: "debater",
		Email:    "debater@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := svc.Login(ctx, "debater", "password123")
		require.NoError(t, err)
		assert.Equal(t, "debater", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "debater", "letmein12")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "password123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
