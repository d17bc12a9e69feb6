package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateTeamRequest struct {
	Name       string `json:"team_name"`
	Speaker1ID *uint  `json:"speaker_1,omitempty"`
	Speaker2ID *uint  `json:"speaker_2,omitempty"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateLeagueRequest struct {
	Name string `json:"name"`
}

func (req *CreateLeagueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 50)),
	)
}
