// Package repository provides data access layer for the player module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	playerModel "github.com/shafraaxz/horse-league-sub002/internal/player/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create persists a new player.
	Create(ctx context.Context, player *playerModel.Player) error

	// GetByID finds a player by id.
	GetByID(ctx context.Context, playerID string) (*playerModel.Player, error)

	// List returns players, optionally filtered by team, ordered by number.
	List(ctx context.Context, teamID string) ([]playerModel.Player, error)

	// Update replaces the player row.
	Update(ctx context.Context, player *playerModel.Player) error

	// Delete removes a player.
	Delete(ctx context.Context, playerID string) error

	// TeamExists reports whether a team row exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player repository instance.
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

// Create persists a new player.
func (r *repository) Create(ctx context.Context, player *playerModel.Player) error {
	err := r.db.WithContext(ctx).Create(player).Error
	if err != nil {
		if isDuplicateError(err) {
			return playerModel.ErrNumberTaken
		}
		return err
	}
	return nil
}

// GetByID finds a player by id.
func (r *repository) GetByID(ctx context.Context, playerID string) (*playerModel.Player, error) {
	var player playerModel.Player
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		First(&player).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}

	return &player, nil
}

// List returns players, optionally filtered by team, ordered by number.
func (r *repository) List(ctx context.Context, teamID string) ([]playerModel.Player, error) {
	q := r.db.WithContext(ctx).Model(&playerModel.Player{})
	if teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}

	var players []playerModel.Player
	err := q.Order("number ASC").Find(&players).Error
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []playerModel.Player{}
	}
	return players, nil
}

// Update replaces the player row.
func (r *repository) Update(ctx context.Context, player *playerModel.Player) error {
	err := r.db.WithContext(ctx).Save(player).Error
	if err != nil && isDuplicateError(err) {
		return playerModel.ErrNumberTaken
	}
	return err
}

// Delete removes a player.
func (r *repository) Delete(ctx context.Context, playerID string) error {
	res := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Delete(&playerModel.Player{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}

// TeamExists reports whether a team row exists.
func (r *repository) TeamExists(ctx context.Context, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("team_id = ?", teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
