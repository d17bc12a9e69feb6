package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("user already registered for event")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string    `gorm:"not null"`
	Description string
	EventDate   time.Time `gorm:"type:date;not null;index"`
	// Same "HH:MM" convention as Game.GameTime.
	EventTime string `gorm:"not null"`
	Location  string

	CreatedBy *uint `gorm:"index"`
	Creator   User  `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL"`

	IsStopped bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Event) TableName() string {
	return "events"
}

// EventRegistration rows are unique per (event, user). The composite index
// closes the check-then-insert race between concurrent registrations: the
// loser of the race fails at commit with a unique violation, which maps to
// ErrAlreadyRegistered like the pre-check does.
type EventRegistration struct {
	ID uint `gorm:"primaryKey"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_event_registrations_event_user,priority:1"`
	Event   Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	UserID uint `gorm:"not null;uniqueIndex:idx_event_registrations_event_user,priority:2"`
	User   User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	TeamID *uint
	Team   Team `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`

	RegisteredAt time.Time `gorm:"not null"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindOpen(ctx context.Context) ([]Event, error) {
	var events []Event
	result := d.db.WithContext(ctx).Where("is_stopped = ?", false).Order("id").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindFromDate(ctx context.Context, date time.Time) ([]Event, error) {
	var events []Event
	result := d.db.WithContext(ctx).
		Where("event_date >= ?", date).
		Order("event_date").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Stop marks the event as closed for registration. Stopping an already
// stopped event is a no-op, not an error.
func (d *EventDAO) Stop(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		if event.IsStopped {
			return nil
		}

		return tx.Model(&event).Update("is_stopped", true).Error
	})
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// InsertRegistration checks the event exists and the user is not yet
// registered, then inserts, all inside one transaction. The unique index on
// (event_id, user_id) backstops the pre-check under concurrency.
func (d *EventDAO) InsertRegistration(ctx context.Context, registration EventRegistration) (EventRegistration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event Event
		if err := tx.First(&event, registration.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}

			return err
		}

		var count int64
		err := tx.Model(&EventRegistration{}).
			Where("event_id = ? AND user_id = ?", registration.EventID, registration.UserID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyRegistered
		}

		return tx.Create(&registration).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return EventRegistration{}, ErrAlreadyRegistered
		}

		return EventRegistration{}, err
	}

	return registration, nil
}

func (d *EventDAO) CountRegistrations(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
