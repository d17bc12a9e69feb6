package repository

import (
	"context"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

var ErrTeamNotFound = dao.ErrTeamNotFound

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	FindByID(ctx context.Context, id uint) (dao.Team, error)
	FindAll(ctx context.Context) ([]dao.Team, error)
}

type TeamRepository struct {
	dao TeamDAO
}

func NewTeamRepository(dao TeamDAO) *TeamRepository {
	return &TeamRepository{
		dao: dao,
	}
}

func (r *TeamRepository) Create(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.Insert(ctx, dao.Team{
		Name:       team.Name,
		Speaker1ID: team.Speaker1ID,
		Speaker2ID: team.Speaker2ID,
		TeamPoints: team.TeamPoints,
		CreatedAt:  team.CreatedAt,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]domain.Team, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	teams := make([]domain.Team, len(found))
	for i, t := range found {
		teams[i] = r.daoToDomain(t)
	}

	return teams, nil
}

func (r *TeamRepository) daoToDomain(t dao.Team) domain.Team {
	return domain.Team{
		ID:         t.ID,
		Name:       t.Name,
		Speaker1ID: t.Speaker1ID,
		Speaker2ID: t.Speaker2ID,
		TeamPoints: t.TeamPoints,
		CreatedAt:  t.CreatedAt,
	}
}
