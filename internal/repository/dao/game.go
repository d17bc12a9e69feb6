package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGameNotFound = errors.New("game not found")

type Game struct {
	ID uint `gorm:"primaryKey"`

	Topic           string    `gorm:"not null"`
	MaxParticipants int       `gorm:"not null"`
	GameDate        time.Time `gorm:"type:date;not null;index:idx_games_schedule,priority:1"`
	// Stored as "HH:MM" so lexicographic order matches clock order.
	GameTime string `gorm:"not null;index:idx_games_schedule,priority:2"`
	Location string `gorm:"not null"`

	LeagueID *uint  `gorm:"index"`
	League   League `gorm:"foreignKey:LeagueID;constraint:OnDelete:SET NULL"`

	JudgeID *uint `gorm:"index"`
	Judge   User  `gorm:"foreignKey:JudgeID;constraint:OnDelete:SET NULL"`

	WinnerTeamID *uint
	WinnerTeam   Team `gorm:"foreignKey:WinnerTeamID;constraint:OnDelete:SET NULL"`

	TournamentID *uint
	Tournament   Tournament `gorm:"foreignKey:TournamentID;constraint:OnDelete:SET NULL"`

	IsFinished bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Game) TableName() string {
	return "games"
}

type Tournament struct {
	ID           uint      `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	Description  string
	StartDate    time.Time `gorm:"type:date;not null"`
	EndDate      time.Time `gorm:"type:date;not null"`
	WinnerTeamID *uint
	WinnerTeam   Team      `gorm:"foreignKey:WinnerTeamID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (Tournament) TableName() string {
	return "tournaments"
}

type Result struct {
	ID     uint `gorm:"primaryKey"`
	GameID uint `gorm:"not null"`
	Game   Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
	TeamID uint `gorm:"not null"`
	Team   Team `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Score  int  `gorm:"not null"`
}

func (Result) TableName() string {
	return "results"
}

type GameDAO struct {
	db *gorm.DB
}

func NewGameDAO(db *gorm.DB) *GameDAO {
	return &GameDAO{
		db: db,
	}
}

func (d *GameDAO) Insert(ctx context.Context, game Game) (Game, error) {
	result := d.db.WithContext(ctx).Create(&game)
	if result.Error != nil {
		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) FindByID(ctx context.Context, id uint) (Game, error) {
	var game Game
	result := d.db.WithContext(ctx).First(&game, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Game{}, ErrGameNotFound
		}

		return Game{}, result.Error
	}

	return game, nil
}

// FindUpcoming returns games scheduled strictly after the (date, time) pair,
// soonest first, capped at limit.
func (d *GameDAO) FindUpcoming(ctx context.Context, date time.Time, timeOfDay string, limit int) ([]Game, error) {
	var games []Game
	result := d.db.WithContext(ctx).
		Where("game_date > ? OR (game_date = ? AND game_time > ?)", date, date, timeOfDay).
		Order("game_date, game_time").
		Limit(limit).
		Find(&games)
	if result.Error != nil {
		return nil, result.Error
	}

	return games, nil
}

func (d *GameDAO) Update(ctx context.Context, game Game) (Game, error) {
	result := d.db.WithContext(ctx).Save(&game)
	if result.Error != nil {
		return Game{}, result.Error
	}

	return game, nil
}

func (d *GameDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}

	return nil
}
