package domain

import "time"

type Team struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Speaker1ID *uint     `json:"speaker_1_id,omitempty"`
	Speaker2ID *uint     `json:"speaker_2_id,omitempty"`
	TeamPoints int       `json:"team_points"`
	CreatedAt  time.Time `json:"created_at"`
}
