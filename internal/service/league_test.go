package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/111KartoFan111/kurultai-project/internal/repository"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

func TestCreateLeague(t *testing.T) {
	db := newTestDB(t)
	svc := NewLeagueService(repository.NewLeagueRepository(dao.NewLeagueDAO(db)))
	ctx := context.Background()

	league, err := svc.CreateLeague(ctx, "Junior League")
	require.NoError(t, err)
	assert.NotZero(t, league.ID)
	assert.Equal(t, "Junior League", league.Name)

	leagues, err := svc.ListLeagues(ctx)
	require.NoError(t, err)
	assert.Len(t, leagues, 1)
}

func TestCreateTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewTeamService(
		repository.NewTeamRepository(dao.NewTeamDAO(db)),
		repository.NewUserRepository(dao.NewUserDAO(db)),
	)
	ctx := context.Background()

	speaker := seedUser(t, db, "speaker1")

	t.Run("success with one speaker", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, CreateTeamInput{
			Name:       "Golden Eagles",
			Speaker1ID: &speaker.ID,
		})
		require.NoError(t, err)

		assert.NotZero(t, team.ID)
		require.NotNil(t, team.Speaker1ID)
		assert.Equal(t, speaker.ID, *team.Speaker1ID)
		assert.Nil(t, team.Speaker2ID)
	})

	t.Run("success without speakers", func(t *testing.T) {
		team, err := svc.CreateTeam(ctx, CreateTeamInput{Name: "Free Agents"})
		require.NoError(t, err)
		assert.NotZero(t, team.ID)
	})

	t.Run("unknown speaker", func(t *testing.T) {
		missing := uint(9999)
		_, err := svc.CreateTeam(ctx, CreateTeamInput{
			Name:       "Phantom Squad",
			Speaker2ID: &missing,
		})
		assert.ErrorIs(t, err, ErrSpeakerNotFound)
	})

	t.Run("list", func(t *testing.T) {
		teams, err := svc.ListTeams(ctx)
		require.NoError(t, err)
		assert.Len(t, teams, 2)
	})
}
