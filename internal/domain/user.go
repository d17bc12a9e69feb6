package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uint       `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Gender       string     `json:"gender"`
	PhoneNumber  string     `json:"phone_number"`
	GroupNum     string     `json:"group_num"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	LastActive   *time.Time `json:"last_active,omitempty"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UsersRank struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	RankName string `json:"rank_name"`
	Points   int    `json:"points"`
}
