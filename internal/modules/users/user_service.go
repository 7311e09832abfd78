package users

import (
	"context"
	"errors"
	"fmt"

	"contactbook/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface defines methods for user business logic.
type ServiceInterface interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req models.LoginUserRequest) (*models.UserResponse, error)
	Get(user *models.User) *models.UserResponse
	Update(ctx context.Context, user *models.User, req models.UpdateUserRequest) (*models.UserResponse, error)
	Logout(ctx context.Context, user *models.User) error
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) ServiceInterface {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service.Register: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("service.Register: %w", err)
	}

	resp := models.ToUserResponse(user)
	return &resp, nil
}

func (s *Service) Login(ctx context.Context, req models.LoginUserRequest) (*models.UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	// A fresh token on every login invalidates any previous session.
	token := uuid.NewString()
	if err := s.repo.UpdateToken(ctx, user.Username, &token); err != nil {
		return nil, fmt.Errorf("service.Login: %w", err)
	}

	resp := models.ToUserResponse(user)
	resp.Token = token
	return &resp, nil
}

// Get returns the profile of the already-authenticated caller. The auth
// middleware resolved the user, so no extra lookup is needed.
func (s *Service) Get(user *models.User) *models.UserResponse {
	resp := models.ToUserResponse(user)
	return &resp
}

func (s *Service) Update(ctx context.Context, user *models.User, req models.UpdateUserRequest) (*models.UserResponse, error) {
	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("service.Update: %w", err)
		}
		h := string(hashed)
		passwordHash = &h
	}

	updated, err := s.repo.Update(ctx, user.Username, req.Name, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("service.Update: %w", err)
	}

	resp := models.ToUserResponse(updated)
	return &resp, nil
}

func (s *Service) Logout(ctx context.Context, user *models.User) error {
	if err := s.repo.UpdateToken(ctx, user.Username, nil); err != nil {
		return fmt.Errorf("service.Logout: %w", err)
	}
	return nil
}
