package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

var (
	ErrEventNotFound     = dao.ErrEventNotFound
	ErrAlreadyRegistered = dao.ErrAlreadyRegistered
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindOpen(ctx context.Context) ([]dao.Event, error)
	FindFromDate(ctx context.Context, date time.Time) ([]dao.Event, error)
	Stop(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	InsertRegistration(ctx context.Context, registration dao.EventRegistration) (dao.EventRegistration, error)
	CountRegistrations(ctx context.Context, eventID uint) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindOpen(ctx context.Context) ([]domain.Event, error) {
	found, err := r.dao.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOpen -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) FindFromDate(ctx context.Context, date time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindFromDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindFromDate -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *EventRepository) Stop(ctx context.Context, id uint) error {
	if err := r.dao.Stop(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Stop -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateRegistration(ctx context.Context, registration domain.EventRegistration) (domain.EventRegistration, error) {
	created, err := r.dao.InsertRegistration(ctx, dao.EventRegistration{
		EventID:      registration.EventID,
		UserID:       registration.UserID,
		TeamID:       registration.TeamID,
		RegisteredAt: registration.RegisteredAt,
	})
	if err != nil {
		return domain.EventRegistration{}, fmt.Errorf("r.dao.InsertRegistration -> %w", err)
	}

	return domain.EventRegistration{
		ID:           created.ID,
		EventID:      created.EventID,
		UserID:       created.UserID,
		TeamID:       created.TeamID,
		RegisteredAt: created.RegisteredAt,
	}, nil
}

func (r *EventRepository) CountRegistrations(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountRegistrations(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountRegistrations -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	daoEvent := dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Location:    e.Location,
		IsStopped:   e.IsStopped,
		CreatedAt:   e.CreatedAt,
	}
	if e.CreatedBy != 0 {
		createdBy := e.CreatedBy
		daoEvent.CreatedBy = &createdBy
	}

	return daoEvent
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		EventDate:   e.EventDate,
		EventTime:   e.EventTime,
		Location:    e.Location,
		IsStopped:   e.IsStopped,
		CreatedAt:   e.CreatedAt,
	}
	if e.CreatedBy != nil {
		event.CreatedBy = *e.CreatedBy
	}

	return event
}

func (r *EventRepository) daosToDomain(events []dao.Event) []domain.Event {
	out := make([]domain.Event, len(events))
	for i, e := range events {
		out[i] = r.daoToDomain(e)
	}

	return out
}
