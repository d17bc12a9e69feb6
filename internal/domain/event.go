package domain

import "time"

type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Location    string    `json:"location"`
	CreatedBy   uint      `json:"created_by"`
	IsStopped   bool      `json:"is_stopped"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventRegistration struct {
	ID           uint      `json:"id"`
	EventID      uint      `json:"event_id"`
	UserID       uint      `json:"user_id"`
	TeamID       *uint     `json:"team_id,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
