// Package repository provides data access layer for the season module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	seasonModel "github.com/shafraaxz/horse-league-sub002/internal/season/model"
)

// Repository defines the interface for season data access operations.
type Repository interface {
	// Create persists a new season.
	Create(ctx context.Context, season *seasonModel.Season) error

	// GetByID finds a season by id.
	GetByID(ctx context.Context, seasonID string) (*seasonModel.Season, error)

	// List returns all seasons, newest first.
	List(ctx context.Context) ([]seasonModel.Season, error)

	// Update replaces the season row.
	Update(ctx context.Context, season *seasonModel.Season) error

	// DeactivateAll clears the active flag on every season.
	DeactivateAll(ctx context.Context) error

	// Delete removes a season.
	Delete(ctx context.Context, seasonID string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new season repository instance.
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

// Create persists a new season.
func (r *repository) Create(ctx context.Context, season *seasonModel.Season) error {
	err := r.db.WithContext(ctx).Create(season).Error
	if err != nil {
		if isDuplicateError(err) {
			return seasonModel.ErrSeasonExists
		}
		return err
	}
	return nil
}

// GetByID finds a season by id.
func (r *repository) GetByID(ctx context.Context, seasonID string) (*seasonModel.Season, error) {
	var season seasonModel.Season
	err := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		First(&season).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, seasonModel.ErrSeasonNotFound
		}
		return nil, err
	}

	return &season, nil
}

// List returns all seasons, newest first.
func (r *repository) List(ctx context.Context) ([]seasonModel.Season, error) {
	var seasons []seasonModel.Season
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	if seasons == nil {
		seasons = []seasonModel.Season{}
	}
	return seasons, nil
}

// Update replaces the season row.
func (r *repository) Update(ctx context.Context, season *seasonModel.Season) error {
	err := r.db.WithContext(ctx).Save(season).Error
	if err != nil && isDuplicateError(err) {
		return seasonModel.ErrSeasonExists
	}
	return err
}

// DeactivateAll clears the active flag on every season.
func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&seasonModel.Season{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

// Delete removes a season.
func (r *repository) Delete(ctx context.Context, seasonID string) error {
	res := r.db.WithContext(ctx).
		Where("season_id = ?", seasonID).
		Delete(&seasonModel.Season{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return seasonModel.ErrSeasonNotFound
	}
	return nil
}
