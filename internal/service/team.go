package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

var ErrSpeakerNotFound = errors.New("speaker not found")

type TeamRepository interface {
	Create(ctx context.Context, team domain.Team) (domain.Team, error)
	FindAll(ctx context.Context) ([]domain.Team, error)
}

type TeamSpeakerRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

type TeamService struct {
	repo     TeamRepository
	userRepo TeamSpeakerRepository
}

func NewTeamService(repo TeamRepository, userRepo TeamSpeakerRepository) *TeamService {
	return &TeamService{
		repo:     repo,
		userRepo: userRepo,
	}
}

type CreateTeamInput struct {
	Name       string
	Speaker1ID *uint
	Speaker2ID *uint
}

// CreateTeam registers a team. Speakers are optional, but the ones given
// must be existing users.
func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (domain.Team, error) {
	for _, speakerID := range []*uint{input.Speaker1ID, input.Speaker2ID} {
		if speakerID == nil {
			continue
		}
		if _, err := s.userRepo.FindByID(ctx, *speakerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domain.Team{}, ErrSpeakerNotFound
			}

			return domain.Team{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
		}
	}

	created, err := s.repo.Create(ctx, domain.Team{
		Name:       input.Name,
		Speaker1ID: input.Speaker1ID,
		Speaker2ID: input.Speaker2ID,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return teams, nil
}
