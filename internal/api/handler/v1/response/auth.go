package response

import "github.com/111KartoFan111/kurultai-project/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
