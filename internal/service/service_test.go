package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	// SQLite only honors the declared ON DELETE rules with this pragma.
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, dao.InitTables(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) dao.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := dao.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	return user
}

func seedLeague(t *testing.T, db *gorm.DB, name string) dao.League {
	t.Helper()

	league := dao.League{Name: name}
	require.NoError(t, db.Create(&league).Error)

	return league
}

func newGameService(t *testing.T, db *gorm.DB) *GameService {
	t.Helper()

	return NewGameService(
		repository.NewGameRepository(dao.NewGameDAO(db)),
		repository.NewLeagueRepository(dao.NewLeagueDAO(db)),
		repository.NewUserRepository(dao.NewUserDAO(db)),
	)
}

func newEventService(t *testing.T, db *gorm.DB) *EventService {
	t.Helper()

	return NewEventService(
		repository.NewEventRepository(dao.NewEventDAO(db)),
		repository.NewUserRepository(dao.NewUserDAO(db)),
	)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)

	return count
}

func mustCreateEvent(t *testing.T, svc *EventService, creatorID uint, name, date string) domain.Event {
	t.Helper()

	event, err := svc.CreateEvent(context.Background(), CreateEventInput{
		Name:        name,
		Description: "some description",
		EventDate:   date,
		EventTime:   "18:00",
		Location:    "Main Hall",
		CreatedBy:   creatorID,
	})
	require.NoError(t, err)

	return event
}

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	require.NoError(t, err)

	return date
}
