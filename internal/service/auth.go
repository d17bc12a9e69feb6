package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/111KartoFan111/kurultai-project/internal/domain"
	"github.com/111KartoFan111/kurultai-project/internal/repository"
)

var (
	ErrUsernameTaken = repository.ErrUsernameExists
	ErrEmailTaken    = repository.ErrEmailExists
	ErrWrongPassword = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

type SignupInput struct {
	Username    string
	Email       string
	PhoneNumber string
	Password    string
}

// Signup registers a new account with the default "user" role. Username and
// email collisions are checked up front; the unique columns backstop the
// checks at commit time.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (domain.User, error) {
	if err := s.checkUsernameFree(ctx, input.Username); err != nil {
		return domain.User{}, err
	}
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

func (s *AuthService) checkUsernameFree(ctx context.Context, username string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}

func (s *AuthService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	return nil
}
