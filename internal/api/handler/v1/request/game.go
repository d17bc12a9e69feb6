package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateGameRequest mirrors the scheduling form: max_participants stays a
// string so the service can tell a non-numeric value from a missing one.
type CreateGameRequest struct {
	Topic           string `json:"topic"`
	MaxParticipants string `json:"max_participants"`
	GameDate        string `json:"game_date" format:"YYYY-MM-DD"`
	GameTime        string `json:"game_time" format:"HH:MM"`
	Location        string `json:"location"`
	LeagueID        uint   `json:"league_id"`
	JudgeID         uint   `json:"judge_id"`
}

func (req *CreateGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Topic, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.MaxParticipants, validation.Required),
		validation.Field(&req.GameDate, validation.Required),
		validation.Field(&req.GameTime, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.LeagueID, validation.Required),
		validation.Field(&req.JudgeID, validation.Required),
	)
}

type UpdateGameRequest struct {
	Topic           *string `json:"topic,omitempty"`
	MaxParticipants *int    `json:"max_participants,omitempty"`
	GameDate        *string `json:"game_date,omitempty" format:"YYYY-MM-DD"`
	GameTime        *string `json:"game_time,omitempty" format:"HH:MM"`
	Location        *string `json:"location,omitempty"`
}

func (req *UpdateGameRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Topic, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&req.MaxParticipants, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&req.Location, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}
