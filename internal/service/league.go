package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

var ErrLeagueExists = repository.ErrLeagueExists

type LeagueRepository interface {
	Create(ctx context.Context, league domain.League) (domain.League, error)
	FindByID(ctx context.Context, id uint) (domain.League, error)
	FindAll(ctx context.Context) ([]domain.League, error)
}

type LeagueService struct {
	repo LeagueRepository
}

func NewLeagueService(repo LeagueRepository) *LeagueService {
	return &LeagueService{
		repo: repo,
	}
}

func (s *LeagueService) CreateLeague(ctx context.Context, name string) (domain.League, error) {
	created, err := s.repo.Create(ctx, domain.League{Name: name})
	if err != nil {
		if errors.Is(err, repository.ErrLeagueExists) {
			return domain.League{}, ErrLeagueExists
		}

		return domain.League{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]domain.League, error) {
	leagues, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return leagues, nil
}
