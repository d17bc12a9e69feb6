package repository

import (
	"context"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository/dao"
)

var (
	ErrUsernameExists = dao.ErrUsernameExists
	ErrEmailExists    = dao.ErrEmailExists
	ErrUserNotFound   = dao.ErrUserNotFound
	ErrRankNotFound   = dao.ErrRankNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByUsername(ctx context.Context, username string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	Delete(ctx context.Context, id uint) error
	FindRankByUserID(ctx context.Context, userID uint) (dao.UsersRank, error)
	UpdateRankName(ctx context.Context, userID uint, rankName string) (dao.UsersRank, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, len(found))
	for i, u := range found {
		users[i] = r.daoToDomain(u)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) FindRankByUserID(ctx context.Context, userID uint) (domain.UsersRank, error) {
	found, err := r.dao.FindRankByUserID(ctx, userID)
	if err != nil {
		return domain.UsersRank{}, fmt.Errorf("r.dao.FindRankByUserID -> %w", err)
	}

	return r.rankDaoToDomain(found), nil
}

func (r *UserRepository) UpdateRankName(ctx context.Context, userID uint, rankName string) (domain.UsersRank, error) {
	updated, err := r.dao.UpdateRankName(ctx, userID, rankName)
	if err != nil {
		return domain.UsersRank{}, fmt.Errorf("r.dao.UpdateRankName -> %w", err)
	}

	return r.rankDaoToDomain(updated), nil
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Gender:       u.Gender,
		PhoneNumber:  u.PhoneNumber,
		GroupNum:     u.GroupNum,
		DateOfBirth:  u.DateOfBirth,
		LastActive:   u.LastActive,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Gender:       u.Gender,
		PhoneNumber:  u.PhoneNumber,
		GroupNum:     u.GroupNum,
		DateOfBirth:  u.DateOfBirth,
		LastActive:   u.LastActive,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

func (r *UserRepository) rankDaoToDomain(rank dao.UsersRank) domain.UsersRank {
	return domain.UsersRank{
		ID:       rank.ID,
		UserID:   rank.UserID,
		RankName: rank.RankName,
		Points:   rank.Points,
	}
}
