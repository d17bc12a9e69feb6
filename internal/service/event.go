package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

var (
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrAlreadyRegistered    = repository.ErrAlreadyRegistered
	ErrEventFieldMissing    = errors.New("all event fields are required")
	ErrEventScheduleInvalid = errors.New("invalid event date or time format")
	ErrCreatorNotFound      = errors.New("event creator not found")
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindOpen(ctx context.Context) ([]domain.Event, error)
	FindFromDate(ctx context.Context, date time.Time) ([]domain.Event, error)
	Stop(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	CreateRegistration(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error)
	CountRegistrations(ctx context.Context, eventID uint) (int64, error)
}

type EventCreatorRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type EventService struct {
	repo     EventRepository
	userRepo EventCreatorRepository
}

func NewEventService(repo EventRepository, userRepo EventCreatorRepository) *EventService {
	return &EventService{
		repo:     repo,
		userRepo: userRepo,
	}
}

type CreateEventInput struct {
	Name        string
	Description string
	EventDate   string
	EventTime   string
	Location    string
	CreatedBy   uint
}

// CreateEvent validates and persists an event. Unlike games, events carry no
// future-schedule rule; past dates are accepted.
func (s *EventService) CreateEvent(ctx context.Context, input CreateEventInput) (domain.Event, error) {
	if input.Name == "" || input.Description == "" || input.EventDate == "" ||
		input.EventTime == "" || input.Location == "" || input.CreatedBy == 0 {
		return domain.Event{}, ErrEventFieldMissing
	}

	if _, err := s.userRepo.FindByID(ctx, input.CreatedBy); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Event{}, ErrCreatorNotFound
		}

		return domain.Event{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	date, timeOfDay, err := parseSchedule(input.EventDate, input.EventTime)
	if err != nil {
		return domain.Event{}, ErrEventScheduleInvalid
	}

	created, err := s.repo.Create(ctx, domain.Event{
		Name:        input.Name,
		Description: input.Description,
		EventDate:   date,
		EventTime:   timeOfDay,
		Location:    input.Location,
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// OpenEvents lists every event still accepting registrations, regardless of
// date.
func (s *EventService) OpenEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOpen -> %w", err)
	}

	return events, nil
}

// UpcomingEvents lists events dated today or later, earliest first.
func (s *EventService) UpcomingEvents(ctx context.Context, now time.Time) ([]domain.Event, error) {
	events, err := s.repo.FindFromDate(ctx, dateOf(now))
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindFromDate -> %w", err)
	}

	return events, nil
}

// StopRegistration closes an event for registration. Stopping an already
// stopped event succeeds silently.
func (s *EventService) StopRegistration(ctx context.Context, eventID uint) error {
	if err := s.repo.Stop(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.repo.Stop -> %w", err)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID uint) error {
	if err := s.repo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return ErrEventNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// Register signs a user up for an event. Team assignment happens elsewhere,
// so the registration starts teamless.
func (s *EventService) Register(ctx context.Context, eventID, userID uint) (domain.EventRegistration, error) {
	registration, err := s.repo.CreateRegistration(ctx, domain.EventRegistration{
		EventID:      eventID,
		UserID:       userID,
		TeamID:       nil,
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.EventRegistration{}, ErrEventNotFound
		}
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return domain.EventRegistration{}, ErrAlreadyRegistered
		}

		return domain.EventRegistration{}, fmt.Errorf("s.repo.CreateRegistration -> %w", err)
	}

	return registration, nil
}

func (s *EventService) RegistrationCount(ctx context.Context, eventID uint) (int64, error) {
	count, err := s.repo.CountRegistrations(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountRegistrations -> %w", err)
	}

	return count, nil
}
