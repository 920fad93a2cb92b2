// Package repository provides read access to the data the standings are built from.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shafraaxz/horse-league-sub002/internal/standings/model"
)

// Repository reads completed match results and team names for one season.
type Repository interface {
	SeasonExists(ctx context.Context, seasonID string) (bool, error)
	CompletedMatches(ctx context.Context, seasonID string) ([]model.CompletedMatch, error)
	TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new standings repository.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) SeasonExists(ctx context.Context, seasonID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("seasons").
		Where("season_id = ?", seasonID).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check season existence", "season_id", seasonID, "error", err)
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CompletedMatches(ctx context.Context, seasonID string) ([]model.CompletedMatch, error) {
	var results []model.CompletedMatch
	err := r.db.WithContext(ctx).
		Table("matches").
		Select("home_team_id, away_team_id, home_score, away_score").
		Where("season_id = ? AND status = ?", seasonID, "completed").
		Find(&results).Error
	if err != nil {
		r.logger.Errorw("failed to load completed matches", "season_id", seasonID, "error", err)
		return nil, err
	}
	return results, nil
}

func (r *repository) TeamNames(ctx context.Context, teamIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return names, nil
	}

	var rows []struct {
		TeamID string
		Name   string
	}
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("team_id, name").
		Where("team_id IN ?", teamIDs).
		Find(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load team names", "error", err)
		return nil, err
	}

	for _, row := range rows {
		names[row.TeamID] = row.Name
	}
	return names, nil
}
