package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

// DefaultUpcomingGamesLimit caps the "next games" widget on the scheduling
// page.
const DefaultUpcomingGamesLimit = 3

var (
	ErrGameNotFound        = repository.ErrGameNotFound
	ErrLeagueNotFound      = repository.ErrLeagueNotFound
	ErrGameFieldMissing    = errors.New("all game fields are required")
	ErrGameCapacityInvalid = errors.New("max participants must be a positive number")
	ErrGameScheduleInvalid = errors.New("invalid game date or time format")
	ErrGameSchedulePast    = errors.New("game date and time must be in the future")
	ErrJudgeNotFound       = errors.New("judge not found")
)

type GameRepository interface {
	Create(ctx context.Context, game domain.Game) (domain.Game, error)
	FindByID(ctx context.Context, id uint) (domain.Game, error)
	FindUpcoming(ctx context.Context, date time.Time, timeOfDay string, limit int) ([]domain.Game, error)
	Update(ctx context.Context, game domain.Game) (domain.Game, error)
	Delete(ctx context.Context, id uint) error
}

type GameLeagueRepository interface {
	FindByID(ctx context.Context, id uint) (domain.League, error)
}

type GameJudgeRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type GameService struct {
	repo       GameRepository
	leagueRepo GameLeagueRepository
	userRepo   GameJudgeRepository
}

func NewGameService(repo GameRepository, leagueRepo GameLeagueRepository, userRepo GameJudgeRepository) *GameService {
	return &GameService{
		repo:       repo,
		leagueRepo: leagueRepo,
		userRepo:   userRepo,
	}
}

// CreateGameInput carries the raw form values of the scheduling page.
// MaxParticipants stays a string so that a non-numeric value is its own
// failure, distinct from a missing one.
type CreateGameInput struct {
	Topic           string
	MaxParticipants string
	GameDate        string
	GameTime        string
	Location        string
	LeagueID        uint
	JudgeID         uint
}

// CreateGame validates the input against `now` and persists the game.
// Failures are reported in a fixed order: missing fields, then the capacity
// number, then the date/time formats, then the past-schedule rule, then the
// league and judge references. Nothing is persisted on any failure.
func (s *GameService) CreateGame(ctx context.Context, input CreateGameInput, now time.Time) (domain.Game, error) {
	if input.Topic == "" || input.MaxParticipants == "" || input.GameDate == "" ||
		input.GameTime == "" || input.Location == "" || input.LeagueID == 0 || input.JudgeID == 0 {
		return domain.Game{}, ErrGameFieldMissing
	}

	maxParticipants, err := strconv.Atoi(input.MaxParticipants)
	if err != nil || maxParticipants <= 0 {
		return domain.Game{}, ErrGameCapacityInvalid
	}

	date, timeOfDay, err := parseSchedule(input.GameDate, input.GameTime)
	if err != nil {
		return domain.Game{}, ErrGameScheduleInvalid
	}

	if !combineSchedule(date, timeOfDay).After(now.UTC()) {
		return domain.Game{}, ErrGameSchedulePast
	}

	if _, err = s.leagueRepo.FindByID(ctx, input.LeagueID); err != nil {
		if errors.Is(err, repository.ErrLeagueNotFound) {
			return domain.Game{}, ErrLeagueNotFound
		}

		return domain.Game{}, fmt.Errorf("s.leagueRepo.FindByID -> %w", err)
	}

	if _, err = s.userRepo.FindByID(ctx, input.JudgeID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Game{}, ErrJudgeNotFound
		}

		return domain.Game{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.Game{
		Topic:           input.Topic,
		MaxParticipants: maxParticipants,
		GameDate:        date,
		GameTime:        timeOfDay,
		Location:        input.Location,
		LeagueID:        input.LeagueID,
		JudgeID:         input.JudgeID,
		IsFinished:      false,
	})
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpcomingGames returns the games scheduled strictly after `now`, soonest
// first: strictly later dates qualify, and on today's date only strictly
// later start times do.
func (s *GameService) UpcomingGames(ctx context.Context, now time.Time, limit int) ([]domain.Game, error) {
	if limit <= 0 {
		limit = DefaultUpcomingGamesLimit
	}

	games, err := s.repo.FindUpcoming(ctx, dateOf(now), timeOf(now), limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindUpcoming -> %w", err)
	}

	return games, nil
}

// UpdateGameInput is a partial patch: nil fields keep their stored values.
type UpdateGameInput struct {
	Topic           *string
	MaxParticipants *int
	GameDate        *string
	GameTime        *string
	Location        *string
}

func (s *GameService) UpdateGame(ctx context.Context, gameID uint, input UpdateGameInput) (domain.Game, error) {
	game, err := s.repo.FindByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return domain.Game{}, ErrGameNotFound
		}

		return domain.Game{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if input.Topic != nil {
		game.Topic = *input.Topic
	}
	if input.MaxParticipants != nil {
		game.MaxParticipants = *input.MaxParticipants
	}
	if input.Location != nil {
		game.Location = *input.Location
	}

	dateStr := game.GameDate.Format(DateLayout)
	if input.GameDate != nil {
		dateStr = *input.GameDate
	}
	timeStr := game.GameTime
	if input.GameTime != nil {
		timeStr = *input.GameTime
	}
	date, timeOfDay, err := parseSchedule(dateStr, timeStr)
	if err != nil {
		return domain.Game{}, ErrGameScheduleInvalid
	}
	game.GameDate = date
	game.GameTime = timeOfDay

	updated, err := s.repo.Update(ctx, game)
	if err != nil {
		return domain.Game{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *GameService) DeleteGame(ctx context.Context, gameID uint) error {
	if err := s.repo.Delete(ctx, gameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return ErrGameNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
