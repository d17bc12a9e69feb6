package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTeamNotFound = errors.New("team not found")

type Team struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"not null"`

	Speaker1ID *uint
	Speaker1   *User `gorm:"foreignKey:Speaker1ID;constraint:OnDelete:SET NULL"`

	Speaker2ID *uint
	Speaker2   *User `gorm:"foreignKey:Speaker2ID;constraint:OnDelete:SET NULL"`

	TeamPoints int `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamDAO struct {
	db *gorm.DB
}

func NewTeamDAO(db *gorm.DB) *TeamDAO {
	return &TeamDAO{
		db: db,
	}
}

func (d *TeamDAO) Insert(ctx context.Context, team Team) (Team, error) {
	result := d.db.WithContext(ctx).Create(&team)
	if result.Error != nil {
		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindByID(ctx context.Context, id uint) (Team, error) {
	var team Team
	result := d.db.WithContext(ctx).First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *TeamDAO) FindAll(ctx context.Context) ([]Team, error) {
	var teams []Team
	result := d.db.WithContext(ctx).Order("id").Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}
