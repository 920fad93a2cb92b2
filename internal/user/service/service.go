// Package service provides business logic layer for the user module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	userModel "github.com/shafraaxz/horse-league-sub002/internal/user/model"
	"github.com/shafraaxz/horse-league-sub002/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// CreateUser creates a new admin user.
	CreateUser(ctx context.Context, req *userModel.CreateUserRequest) (*userModel.UserResponse, error)

	// GetUser returns a user by id.
	GetUser(ctx context.Context, userID string) (*userModel.UserResponse, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]userModel.UserResponse, error)

	// UpdateUser updates user details.
	UpdateUser(ctx context.Context, userID string, req *userModel.UpdateUserRequest) (*userModel.UserResponse, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateUser creates a new admin user.
func (s *service) CreateUser(ctx context.Context, req *userModel.CreateUserRequest) (*userModel.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, userModel.ErrInvalidUsername
	}
	if !req.Role.IsValid() {
		return nil, userModel.ErrInvalidRole
	}

	user := &userModel.User{
		UserID:      uuid.NewString(),
		Username:    username,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user created", "user_id", user.UserID, "username", user.Username, "role", user.Role)
	return user.ToResponse(), nil
}

// GetUser returns a user by id.
func (s *service) GetUser(ctx context.Context, userID string) (*userModel.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// ListUsers returns all users.
func (s *service) ListUsers(ctx context.Context) ([]userModel.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]userModel.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *users[i].ToResponse())
	}
	return resp, nil
}

// UpdateUser updates user details.
func (s *service) UpdateUser(ctx context.Context, userID string, req *userModel.UpdateUserRequest) (*userModel.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, userModel.ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// DeleteUser removes a user.
func (s *service) DeleteUser(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}
