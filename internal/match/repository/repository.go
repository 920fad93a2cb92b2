// Package repository provides data access layer for the match module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
)

// Repository defines the interface for match data access operations.
// It deliberately preserves the document-store contract of the original
// system: find by identifier plus whole-snapshot replace, with an optimistic
// version token guarding the replace.
type Repository interface {
	// Create persists a new match.
	Create(ctx context.Context, match *matchModel.Match) error

	// GetByID finds a match by id with its event ledger in append order.
	GetByID(ctx context.Context, matchID string) (*matchModel.Match, error)

	// List returns matches matching the filter, most recent first.
	List(ctx context.Context, filter matchModel.ListMatchesFilter) ([]matchModel.Match, error)

	// SaveWithVersion replaces the match row if the stored version still
	// equals expectedVersion, bumping the version by one. Returns
	// ErrVersionConflict when another writer got there first.
	SaveWithVersion(ctx context.Context, match *matchModel.Match, expectedVersion int) error

	// Delete removes a match and its events.
	Delete(ctx context.Context, matchID string) error

	// AppendEvent inserts one ledger event.
	AppendEvent(ctx context.Context, event *matchModel.Event) error

	// DeleteEvent removes one ledger event by id.
	DeleteEvent(ctx context.Context, eventID string) error

	// ReplaceEvents swaps the whole ledger of a match.
	ReplaceEvents(ctx context.Context, matchID string, events []matchModel.Event) error

	// TeamExists reports whether a team row exists.
	TeamExists(ctx context.Context, teamID string) (bool, error)

	// SeasonExists reports whether a season row exists.
	SeasonExists(ctx context.Context, seasonID string) (bool, error)

	// TeamHasMatches reports whether any match references the team.
	TeamHasMatches(ctx context.Context, teamID string) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new match repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create persists a new match.
func (r *repository) Create(ctx context.Context, match *matchModel.Match) error {
	return r.db.WithContext(ctx).Omit("Events").Create(match).Error
}

// GetByID finds a match by id with its event ledger in append order.
func (r *repository) GetByID(ctx context.Context, matchID string) (*matchModel.Match, error) {
	var match matchModel.Match
	err := r.db.WithContext(ctx).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("match_id = ?", matchID).
		First(&match).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		return nil, err
	}

	return &match, nil
}

// List returns matches matching the filter, most recent first.
func (r *repository) List(ctx context.Context, filter matchModel.ListMatchesFilter) ([]matchModel.Match, error) {
	q := r.db.WithContext(ctx).Model(&matchModel.Match{}).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		})

	if filter.SeasonID != "" {
		q = q.Where("season_id = ?", filter.SeasonID)
	}
	if filter.TeamID != "" {
		q = q.Where("home_team_id = ? OR away_team_id = ?", filter.TeamID, filter.TeamID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var matches []matchModel.Match
	err := q.Order("scheduled_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	if matches == nil {
		matches = []matchModel.Match{}
	}
	return matches, nil
}

// SaveWithVersion replaces the match row guarded by the version token.
func (r *repository) SaveWithVersion(ctx context.Context, match *matchModel.Match, expectedVersion int) error {
	res := r.db.WithContext(ctx).Model(&matchModel.Match{}).
		Where("match_id = ? AND version = ?", match.MatchID, expectedVersion).
		Updates(map[string]interface{}{
			"home_team_id":    match.HomeTeamID,
			"away_team_id":    match.AwayTeamID,
			"season_id":       match.SeasonID,
			"scheduled_at":    match.ScheduledAt,
			"status":          match.Status,
			"home_score":      match.HomeScore,
			"away_score":      match.AwayScore,
			"live_started_at": match.LiveStartedAt,
			"paused_at":       match.PausedAt,
			"paused_seconds":  match.PausedSeconds,
			"venue":           match.Venue,
			"round":           match.Round,
			"referee":         match.Referee,
			"notes":           match.Notes,
			"version":         expectedVersion + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&matchModel.Match{}).
			Where("match_id = ?", match.MatchID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return matchModel.ErrMatchNotFound
		}
		return matchModel.ErrVersionConflict
	}

	match.Version = expectedVersion + 1
	return nil
}

// Delete removes a match and its events.
func (r *repository) Delete(ctx context.Context, matchID string) error {
	if err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&matchModel.Event{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&matchModel.Match{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

// AppendEvent inserts one ledger event.
func (r *repository) AppendEvent(ctx context.Context, event *matchModel.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// DeleteEvent removes one ledger event by id.
func (r *repository) DeleteEvent(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Delete(&matchModel.Event{}).Error
}

// ReplaceEvents swaps the whole ledger of a match.
func (r *repository) ReplaceEvents(ctx context.Context, matchID string, events []matchModel.Event) error {
	if err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Delete(&matchModel.Event{}).Error; err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
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

// SeasonExists reports whether a season row exists.
func (r *repository) SeasonExists(ctx context.Context, seasonID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("seasons").
		Where("season_id = ?", seasonID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TeamHasMatches reports whether any match references the team.
func (r *repository) TeamHasMatches(ctx context.Context, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&matchModel.Match{}).
		Where("home_team_id = ? OR away_team_id = ?", teamID, teamID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
