package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

var ErrGameNotFound = dao.ErrGameNotFound

type GameDAO interface {
	Insert(ctx context.Context, game dao.Game) (dao.Game, error)
	FindByID(ctx context.Context, id uint) (dao.Game, error)
	FindUpcoming(ctx context.Context, date time.Time, timeOfDay string, limit int) ([]dao.Game, error)
	Update(ctx context.Context, game dao.Game) (dao.Game, error)
	Delete(ctx context.Context, id uint) error
}

type GameRepository struct {
	dao GameDAO
}

func NewGameRepository(dao GameDAO) *GameRepository {
	return &GameRepository{
		dao: dao,
	}
}

func (r *GameRepository) Create(ctx context.Context, game domain.Game) (domain.Game, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(game))
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GameRepository) FindByID(ctx context.Context, id uint) (domain.Game, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GameRepository) FindUpcoming(ctx context.Context, date time.Time, timeOfDay string, limit int) ([]domain.Game, error) {
	found, err := r.dao.FindUpcoming(ctx, date, timeOfDay, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUpcoming -> %w", err)
	}

	games := make([]domain.Game, len(found))
	for i, g := range found {
		games[i] = r.daoToDomain(g)
	}

	return games, nil
}

func (r *GameRepository) Update(ctx context.Context, game domain.Game) (domain.Game, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(game))
	if err != nil {
		return domain.Game{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GameRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *GameRepository) domainToDao(g domain.Game) dao.Game {
	daoGame := dao.Game{
		ID:              g.ID,
		Topic:           g.Topic,
		MaxParticipants: g.MaxParticipants,
		GameDate:        g.GameDate,
		GameTime:        g.GameTime,
		Location:        g.Location,
		WinnerTeamID:    g.WinnerTeamID,
		TournamentID:    g.TournamentID,
		IsFinished:      g.IsFinished,
		CreatedAt:       g.CreatedAt,
	}
	if g.LeagueID != 0 {
		leagueID := g.LeagueID
		daoGame.LeagueID = &leagueID
	}
	if g.JudgeID != 0 {
		judgeID := g.JudgeID
		daoGame.JudgeID = &judgeID
	}

	return daoGame
}

func (r *GameRepository) daoToDomain(g dao.Game) domain.Game {
	game := domain.Game{
		ID:              g.ID,
		Topic:           g.Topic,
		MaxParticipants: g.MaxParticipants,
		GameDate:        g.GameDate,
		GameTime:        g.GameTime,
		Location:        g.Location,
		WinnerTeamID:    g.WinnerTeamID,
		TournamentID:    g.TournamentID,
		IsFinished:      g.IsFinished,
		CreatedAt:       g.CreatedAt,
	}
	if g.LeagueID != nil {
		game.LeagueID = *g.LeagueID
	}
	if g.JudgeID != nil {
		game.JudgeID = *g.JudgeID
	}

	return game
}
