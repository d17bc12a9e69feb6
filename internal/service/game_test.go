package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

func TestCreateGame(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(t, db)
	ctx := context.Background()

	league := seedLeague(t, db, "Major League")
	judge := seedUser(t, db, "judge")
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	validInput := func() CreateGameInput {
		return CreateGameInput{
			Topic:           "Finals",
			MaxParticipants: "20",
			GameDate:        "2099-01-01",
			GameTime:        "10:00",
			Location:        "Hall A",
			LeagueID:        league.ID,
			JudgeID:         judge.ID,
		}
	}

	t.Run("success", func(t *testing.T) {
		game, err := svc.CreateGame(ctx, validInput(), now)
		require.NoError(t, err)

		assert.NotZero(t, game.ID)
		assert.Equal(t, "Finals", game.Topic)
		assert.Equal(t, 20, game.MaxParticipants)
		assert.Equal(t, "10:00", game.GameTime)
		assert.False(t, game.IsFinished)

		stored, err := svc.repo.FindByID(ctx, game.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsFinished)
		assert.Equal(t, league.ID, stored.LeagueID)
		assert.Equal(t, judge.ID, stored.JudgeID)
	})

	t.Run("missing field", func(t *testing.T) {
		input := validInput()
		input.Topic = ""

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameFieldMissing)
	})

	t.Run("missing field wins over bad capacity", func(t *testing.T) {
		input := validInput()
		input.Topic = ""
		input.MaxParticipants = "abc"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameFieldMissing)
	})

	t.Run("non-numeric capacity", func(t *testing.T) {
		input := validInput()
		input.MaxParticipants = "abc"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameCapacityInvalid)
	})

	t.Run("zero capacity", func(t *testing.T) {
		input := validInput()
		input.MaxParticipants = "0"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameCapacityInvalid)
	})

	t.Run("bad date format", func(t *testing.T) {
		input := validInput()
		input.GameDate = "01/01/2099"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameScheduleInvalid)
	})

	t.Run("bad time format", func(t *testing.T) {
		input := validInput()
		input.GameTime = "10am"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameScheduleInvalid)
	})

	t.Run("schedule equal to now is past", func(t *testing.T) {
		input := validInput()
		input.GameDate = "2024-01-01"
		input.GameTime = "12:00"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameSchedulePast)
	})

	t.Run("schedule before now is past", func(t *testing.T) {
		input := validInput()
		input.GameDate = "2023-12-31"
		input.GameTime = "23:59"

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrGameSchedulePast)
	})

	t.Run("unknown league", func(t *testing.T) {
		input := validInput()
		input.LeagueID = 9999

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrLeagueNotFound)
	})

	t.Run("unknown judge", func(t *testing.T) {
		input := validInput()
		input.JudgeID = 9999

		_, err := svc.CreateGame(ctx, input, now)
		assert.ErrorIs(t, err, ErrJudgeNotFound)
	})

	t.Run("failures persist nothing", func(t *testing.T) {
		// Only the one success above should have written a row.
		assert.EqualValues(t, 1, countRows(t, db, &dao.Game{}))
	})
}

func TestUpcomingGames(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(t, db)
	ctx := context.Background()

	league := seedLeague(t, db, "Minor League")
	judge := seedUser(t, db, "referee")
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	seedGame := func(date, timeOfDay, topic string) {
		t.Helper()

		leagueID := league.ID
		judgeID := judge.ID
		game := dao.Game{
			Topic:           topic,
			MaxParticipants: 10,
			GameDate:        mustParseDate(t, date),
			GameTime:        timeOfDay,
			Location:        "Hall B",
			LeagueID:        &leagueID,
			JudgeID:         &judgeID,
		}
		require.NoError(t, db.Create(&game).Error)
	}

	seedGame("2024-06-14", "18:00", "yesterday")
	seedGame("2024-06-15", "11:00", "earlier today")
	seedGame("2024-06-15", "12:00", "exactly now")
	seedGame("2024-06-15", "13:00", "later today")
	seedGame("2024-06-16", "09:00", "tomorrow")
	seedGame("2024-07-01", "10:00", "next month")
	seedGame("2025-01-01", "10:00", "next year")

	t.Run("strictly future only, ordered, limited", func(t *testing.T) {
		games, err := svc.UpcomingGames(ctx, now, 3)
		require.NoError(t, err)

		require.Len(t, games, 3)
		assert.Equal(t, "later today", games[0].Topic)
		assert.Equal(t, "tomorrow", games[1].Topic)
		assert.Equal(t, "next month", games[2].Topic)
	})

	t.Run("larger limit returns the whole future set", func(t *testing.T) {
		games, err := svc.UpcomingGames(ctx, now, 10)
		require.NoError(t, err)

		require.Len(t, games, 4)
		assert.Equal(t, "next year", games[3].Topic)
	})

	t.Run("zero limit falls back to the default", func(t *testing.T) {
		games, err := svc.UpcomingGames(ctx, now, 0)
		require.NoError(t, err)

		assert.Len(t, games, DefaultUpcomingGamesLimit)
	})
}

func TestUpdateGame(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(t, db)
	ctx := context.Background()

	league := seedLeague(t, db, "League X")
	judge := seedUser(t, db, "arbiter")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	game, err := svc.CreateGame(ctx, CreateGameInput{
		Topic:           "Semifinals",
		MaxParticipants: "16",
		GameDate:        "2099-05-05",
		GameTime:        "15:30",
		Location:        "Hall C",
		LeagueID:        league.ID,
		JudgeID:         judge.ID,
	}, now)
	require.NoError(t, err)

	t.Run("partial patch keeps omitted fields", func(t *testing.T) {
		newTopic := "Grand Finals"
		updated, err := svc.UpdateGame(ctx, game.ID, UpdateGameInput{Topic: &newTopic})
		require.NoError(t, err)

		assert.Equal(t, "Grand Finals", updated.Topic)
		assert.Equal(t, 16, updated.MaxParticipants)
		assert.Equal(t, "15:30", updated.GameTime)
		assert.Equal(t, "Hall C", updated.Location)
	})

	t.Run("patched time is validated", func(t *testing.T) {
		badTime := "half past"
		_, err := svc.UpdateGame(ctx, game.ID, UpdateGameInput{GameTime: &badTime})
		assert.ErrorIs(t, err, ErrGameScheduleInvalid)
	})

	t.Run("unknown game", func(t *testing.T) {
		newTopic := "whatever"
		_, err := svc.UpdateGame(ctx, 9999, UpdateGameInput{Topic: &newTopic})
		assert.ErrorIs(t, err, ErrGameNotFound)
	})
}

func TestDeleteGame(t *testing.T) {
	db := newTestDB(t)
	svc := newGameService(t, db)
	ctx := context.Background()

	league := seedLeague(t, db, "League Y")
	judge := seedUser(t, db, "umpire")

	game, err := svc.CreateGame(ctx, CreateGameInput{
		Topic:           "Quarterfinals",
		MaxParticipants: "8",
		GameDate:        "2099-03-03",
		GameTime:        "09:00",
		Location:        "Hall D",
		LeagueID:        league.ID,
		JudgeID:         judge.ID,
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGame(ctx, game.ID))
	assert.EqualValues(t, 0, countRows(t, db, &dao.Game{}))

	assert.ErrorIs(t, svc.DeleteGame(ctx, game.ID), ErrGameNotFound)
}
