package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type UpdateProfileRequest struct {
	FullName    string `json:"full_name"`
	Username    string `json:"username"`
	Gender      string `json:"gender"`
	PhoneNumber string `json:"phone_number"`
	GroupNum    string `json:"group_num"`
}

func (req *UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&req.FullName, validation.Length(0, 100)),
		validation.Field(&req.PhoneNumber, validation.Length(0, 15)),
	)
}

type ChangeRankRequest struct {
	NewRank string `json:"new_rank"`
}

func (req *ChangeRankRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NewRank, validation.Required, validation.Length(1, 50)),
	)
}
