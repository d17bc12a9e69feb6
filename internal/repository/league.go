package repository

import (
	"context"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

var (
	ErrLeagueNotFound = dao.ErrLeagueNotFound
	ErrLeagueExists   = dao.ErrLeagueExists
)

type LeagueDAO interface {
	Insert(ctx context.Context, league dao.League) (dao.League, error)
	FindByID(ctx context.Context, id uint) (dao.League, error)
	FindAll(ctx context.Context) ([]dao.League, error)
}

type LeagueRepository struct {
	dao LeagueDAO
}

func NewLeagueRepository(dao LeagueDAO) *LeagueRepository {
	return &LeagueRepository{
		dao: dao,
	}
}

func (r *LeagueRepository) Create(ctx context.Context, league domain.League) (domain.League, error) {
	created, err := r.dao.Insert(ctx, dao.League{Name: league.Name})
	if err != nil {
		return domain.League{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.League{ID: created.ID, Name: created.Name}, nil
}

func (r *LeagueRepository) FindByID(ctx context.Context, id uint) (domain.League, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.League{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return domain.League{ID: found.ID, Name: found.Name}, nil
}

func (r *LeagueRepository) FindAll(ctx context.Context) ([]domain.League, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	leagues := make([]domain.League, len(found))
	for i, l := range found {
		leagues[i] = domain.League{ID: l.ID, Name: l.Name}
	}

	return leagues, nil
}
