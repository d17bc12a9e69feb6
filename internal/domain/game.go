package domain

import "time"

// Game is a scheduled debate. GameDate carries the calendar day and GameTime
// the "HH:MM" start time; the pair orders chronologically with date compared
// before time.
type Game struct {
	ID              uint      `json:"id"`
	Topic           string    `json:"topic"`
	MaxParticipants int       `json:"max_participants"`
	GameDate        time.Time `json:"game_date"`
	GameTime        string    `json:"game_time"`
	Location        string    `json:"location"`
	LeagueID        uint      `json:"league_id"`
	JudgeID         uint      `json:"judge_id"`
	WinnerTeamID    *uint     `json:"winner_team_id,omitempty"`
	IsFinished      bool      `json:"is_finished"`
	TournamentID    *uint     `json:"tournament_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type League struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Tournament struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	WinnerTeamID *uint     `json:"winner_team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type Result struct {
	ID     uint `json:"id"`
	GameID uint `json:"game_id"`
	TeamID uint `json:"team_id"`
	Score  int  `json:"score"`
}
