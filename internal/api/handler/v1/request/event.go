package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	EventDate   string `json:"event_date" format:"YYYY-MM-DD"`
	EventTime   string `json:"event_time" format:"HH:MM"`
	Location    string `json:"location"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.EventDate, validation.Required),
		validation.Field(&req.EventTime, validation.Required),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
	)
}
