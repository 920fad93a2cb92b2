// Package repository provides data access layer for the user module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	userModel "github.com/shafraaxz/horse-league-sub002/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *userModel.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, userID string) (*userModel.User, error)

	// List returns all users ordered by username.
	List(ctx context.Context) ([]userModel.User, error)

	// Update replaces the user row.
	Update(ctx context.Context, user *userModel.User) error

	// Delete removes a user.
	Delete(ctx context.Context, userID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *userModel.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if isDuplicateError(err) {
			return userModel.ErrUserExists
		}
		return err
	}
	return nil
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, userID string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List returns all users ordered by username.
func (r *repository) List(ctx context.Context) ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []userModel.User{}
	}
	return users, nil
}

// Update replaces the user row.
func (r *repository) Update(ctx context.Context, user *userModel.User) error {
	err := r.db.WithContext(ctx).Save(user).Error
	if err != nil && isDuplicateError(err) {
		return userModel.ErrUserExists
	}
	return err
}

// Delete removes a user.
func (r *repository) Delete(ctx context.Context, userID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&userModel.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userModel.ErrUserNotFound
	}
	return nil
}
