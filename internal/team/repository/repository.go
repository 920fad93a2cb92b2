// Package repository provides data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/shafraaxz/horse-league-sub002/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, teamID string) (*teamModel.Team, error)

	// List returns all teams ordered by name.
	List(ctx context.Context) ([]teamModel.Team, error)

	// Update replaces the team row.
	Update(ctx context.Context, team *teamModel.Team) error

	// Delete removes a team.
	Delete(ctx context.Context, teamID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// isDuplicateError checks if error is a unique constraint violation.
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

// Create persists a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	return nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, teamID string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// List returns all teams ordered by name.
func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []teamModel.Team{}
	}
	return teams, nil
}

// Update replaces the team row.
func (r *repository) Update(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Save(team).Error
	if err != nil && isDuplicateError(err) {
		return teamModel.ErrTeamExists
	}
	return err
}

// Delete removes a team.
func (r *repository) Delete(ctx context.Context, teamID string) error {
	res := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Delete(&teamModel.Team{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}
