package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

var (
	ErrUserNotFound = repository.ErrUserNotFound
	ErrRankNotFound = repository.ErrRankNotFound
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
	FindRankByUserID(ctx context.Context, userID uint) (domain.UsersRank, error)
	UpdateRankName(ctx context.Context, userID uint, rankName string) (domain.UsersRank, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

type UpdateProfileInput struct {
	FullName    string
	Username    string
	Gender      string
	PhoneNumber string
	GroupNum    string
}

// UpdateProfile overwrites the profile fields of a user. A username change
// first checks the new name is free.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if input.Username != user.Username {
		_, err = s.repo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domain.User{}, ErrUsernameTaken
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
		}
	}

	user.FullName = input.FullName
	user.Username = input.Username
	user.Gender = input.Gender
	user.PhoneNumber = input.PhoneNumber
	user.GroupNum = input.GroupNum

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ChangeRank overwrites the rank label of a user's existing rank row. Users
// without a rank row are reported, never given one here.
func (s *UserService) ChangeRank(ctx context.Context, userID uint, newRank string) (domain.UsersRank, error) {
	rank, err := s.repo.UpdateRankName(ctx, userID, newRank)
	if err != nil {
		if errors.Is(err, repository.ErrRankNotFound) {
			return domain.UsersRank{}, ErrRankNotFound
		}

		return domain.UsersRank{}, fmt.Errorf("s.repo.UpdateRankName -> %w", err)
	}

	return rank, nil
}
