// Package service provides business logic for the match module: fixture
// CRUD, the lifecycle state machine and the live event ledger.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
	"github.com/shafraaxz/horse-league-sub002/internal/match/repository"
)

// Service defines the interface for match business logic operations.
type Service interface {
	// CreateMatch schedules a new match.
	CreateMatch(ctx context.Context, req *matchModel.CreateMatchRequest) (*matchModel.MatchResponse, error)

	// GetMatch returns a match with its event ledger.
	GetMatch(ctx context.Context, matchID string) (*matchModel.MatchResponse, error)

	// ListMatches returns matches matching the filter.
	ListMatches(ctx context.Context, filter matchModel.ListMatchesFilter) ([]matchModel.MatchResponse, error)

	// UpdateMatch updates fixture details.
	UpdateMatch(ctx context.Context, matchID string, req *matchModel.UpdateMatchRequest) (*matchModel.MatchResponse, error)

	// TransitionMatch performs an explicit status transition
	// (postpone, cancel, reschedule a postponed match).
	TransitionMatch(ctx context.Context, matchID string, req *matchModel.TransitionRequest) (*matchModel.MatchResponse, error)

	// DeleteMatch removes a match that is not in progress.
	DeleteMatch(ctx context.Context, matchID string) error

	// StartMatch transitions a scheduled match to live.
	StartMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error)

	// PauseMatch stops the match clock without changing status.
	PauseMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error)

	// ResumeMatch restarts a paused match clock.
	ResumeMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error)

	// RecordEvent appends an event to the ledger, adjusting the score for goals.
	RecordEvent(ctx context.Context, matchID string, req *matchModel.RecordEventRequest) (*matchModel.RecordEventResponse, error)

	// UndoLastEvent removes the last-appended event, reverting a goal's score.
	UndoLastEvent(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error)

	// EndMatch transitions a live match to completed with a final snapshot.
	EndMatch(ctx context.Context, matchID string, req *matchModel.EndMatchRequest) (*matchModel.EndMatchResponse, error)

	// SyncLiveState applies a whole-state snapshot guarded by the version token.
	SyncLiveState(ctx context.Context, matchID string, req *matchModel.SyncRequest) (*matchModel.LiveStateResponse, error)

	// GetLiveState returns the current live view with the derived minute.
	GetLiveState(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

// New creates a new match service instance using the wall clock.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return NewWithClock(repo, db, logger, time.Now)
}

// NewWithClock creates a match service with an injected clock for
// deterministic tests.
func NewWithClock(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger, now func() time.Time) Service {
	return &service{repo: repo, db: db, logger: logger, now: now}
}

const (
	maxVenueLen       = 255
	maxRoundLen       = 100
	maxRefereeLen     = 255
	maxNotesLen       = 2000
	maxPlayerNameLen  = 255
	maxDescriptionLen = 500
)

func checkLen(field, value string, max int) error {
	if len(value) > max {
		return matchModel.NewValidationError(field, "must be at most %d characters", max)
	}
	return nil
}

func (s *service) validateDetails(venue, round, referee, notes string) error {
	if err := checkLen("venue", venue, maxVenueLen); err != nil {
		return err
	}
	if err := checkLen("round", round, maxRoundLen); err != nil {
		return err
	}
	if err := checkLen("referee", referee, maxRefereeLen); err != nil {
		return err
	}
	return checkLen("notes", notes, maxNotesLen)
}

// CreateMatch schedules a new match in scheduled status with a future date.
func (s *service) CreateMatch(ctx context.Context, req *matchModel.CreateMatchRequest) (*matchModel.MatchResponse, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, matchModel.NewValidationError("away_team_id", "home and away team must differ")
	}
	if !req.ScheduledAt.After(s.now()) {
		return nil, matchModel.NewValidationError("scheduled_at", "scheduled date must be in the future")
	}
	if err := s.validateDetails(req.Venue, req.Round, req.Referee, req.Notes); err != nil {
		return nil, err
	}

	for _, teamID := range []string{req.HomeTeamID, req.AwayTeamID} {
		exists, err := s.repo.TeamExists(ctx, teamID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, matchModel.ErrTeamNotFound
		}
	}
	exists, err := s.repo.SeasonExists(ctx, req.SeasonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, matchModel.ErrSeasonNotFound
	}

	match := &matchModel.Match{
		MatchID:     uuid.NewString(),
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		SeasonID:    req.SeasonID,
		ScheduledAt: req.ScheduledAt,
		Status:      matchModel.StatusScheduled,
		Venue:       req.Venue,
		Round:       req.Round,
		Referee:     req.Referee,
		Notes:       req.Notes,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Infow("match scheduled",
		"match_id", match.MatchID,
		"home_team_id", match.HomeTeamID,
		"away_team_id", match.AwayTeamID,
		"scheduled_at", match.ScheduledAt)

	return match.ToResponse(), nil
}

// GetMatch returns a match with its event ledger.
func (s *service) GetMatch(ctx context.Context, matchID string) (*matchModel.MatchResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return match.ToResponse(), nil
}

// ListMatches returns matches matching the filter.
func (s *service) ListMatches(ctx context.Context, filter matchModel.ListMatchesFilter) ([]matchModel.MatchResponse, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, matchModel.NewValidationError("status", "unknown status %q", filter.Status)
	}

	matches, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]matchModel.MatchResponse, 0, len(matches))
	for i := range matches {
		resp = append(resp, *matches[i].ToResponse())
	}
	return resp, nil
}

// UpdateMatch updates fixture details. Rescheduling is only allowed while
// the match has not started.
func (s *service) UpdateMatch(ctx context.Context, matchID string, req *matchModel.UpdateMatchRequest) (*matchModel.MatchResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status.IsTerminal() {
		return nil, matchModel.ErrMatchFinalized
	}

	if req.ScheduledAt != nil {
		if match.Status != matchModel.StatusScheduled && match.Status != matchModel.StatusPostponed {
			return nil, matchModel.NewValidationError("scheduled_at", "cannot reschedule a %s match", match.Status)
		}
		match.ScheduledAt = *req.ScheduledAt
	}
	if req.Venue != nil {
		match.Venue = *req.Venue
	}
	if req.Round != nil {
		match.Round = *req.Round
	}
	if req.Referee != nil {
		match.Referee = *req.Referee
	}
	if req.Notes != nil {
		match.Notes = *req.Notes
	}
	if err := s.validateDetails(match.Venue, match.Round, match.Referee, match.Notes); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWithVersion(ctx, match, match.Version); err != nil {
		return nil, err
	}
	return match.ToResponse(), nil
}

// TransitionMatch performs an explicit status transition. Going live or
// completing runs through StartMatch/EndMatch; this entrypoint covers
// postpone, cancel and rescheduling a postponed match.
func (s *service) TransitionMatch(ctx context.Context, matchID string, req *matchModel.TransitionRequest) (*matchModel.MatchResponse, error) {
	switch req.Status {
	case matchModel.StatusPostponed, matchModel.StatusCancelled, matchModel.StatusScheduled:
	default:
		return nil, matchModel.NewValidationError("status",
			"only postponed, cancelled and scheduled can be set directly")
	}

	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	date := match.ScheduledAt
	if req.ScheduledAt != nil {
		date = *req.ScheduledAt
	}
	if err := matchModel.ValidateTransition(match.Status, req.Status, date, s.now()); err != nil {
		return nil, err
	}
	if req.Status == matchModel.StatusScheduled && !date.After(s.now()) {
		return nil, matchModel.NewValidationError("scheduled_at", "rescheduled date must be in the future")
	}

	hadEvents := len(match.Events) > 0
	match.Status = req.Status
	match.ScheduledAt = date
	// Postponed and cancelled matches carry no scores or events.
	match.ClearPlayData()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if hadEvents {
			if err := txRepo.ReplaceEvents(ctx, match.MatchID, nil); err != nil {
				return err
			}
		}
		return txRepo.SaveWithVersion(ctx, match, match.Version)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("match transitioned",
		"match_id", match.MatchID, "status", match.Status)
	return match.ToResponse(), nil
}

// DeleteMatch removes a match that is not in progress.
func (s *service) DeleteMatch(ctx context.Context, matchID string) error {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.Status == matchModel.StatusLive {
		return matchModel.ErrMatchInProgress
	}
	return s.repo.Delete(ctx, matchID)
}
