package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrLeagueNotFound = errors.New("league not found")
	ErrLeagueExists   = errors.New("league already exists")
)

type League struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

func (League) TableName() string {
	return "leagues"
}

type LeagueDAO struct {
	db *gorm.DB
}

func NewLeagueDAO(db *gorm.DB) *LeagueDAO {
	return &LeagueDAO{
		db: db,
	}
}

func (d *LeagueDAO) Insert(ctx context.Context, league League) (League, error) {
	result := d.db.WithContext(ctx).Create(&league)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `"uni_leagues_name"`) {
			return League{}, ErrLeagueExists
		}

		return League{}, result.Error
	}

	return league, nil
}

func (d *LeagueDAO) FindByID(ctx context.Context, id uint) (League, error) {
	var league League
	result := d.db.WithContext(ctx).First(&league, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return League{}, ErrLeagueNotFound
		}

		return League{}, result.Error
	}

	return league, nil
}

func (d *LeagueDAO) FindAll(ctx context.Context) ([]League, error) {
	var leagues []League
	result := d.db.WithContext(ctx).Order("id").Find(&leagues)
	if result.Error != nil {
		return nil, result.Error
	}

	return leagues, nil
}
