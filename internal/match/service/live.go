package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
	"github.com/shafraaxz/horse-league-sub002/internal/match/repository"
)

// StartMatch transitions a scheduled match to live. The scheduled date must
// be within the transition window of now; scores start at zero and the
// clock starts at minute zero.
func (s *service) StartMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := matchModel.ValidateTransition(match.Status, matchModel.StatusLive, match.ScheduledAt, now); err != nil {
		return nil, err
	}

	match.Status = matchModel.StatusLive
	match.HomeScore = 0
	match.AwayScore = 0
	match.StartClock(now)

	if err := s.repo.SaveWithVersion(ctx, match, match.Version); err != nil {
		return nil, err
	}

	s.logger.Infow("match started", "match_id", match.MatchID)
	return match.ToLiveState(now), nil
}

// PauseMatch stops the minute counter. The persisted status stays live.
func (s *service) PauseMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matchModel.StatusLive {
		return nil, matchModel.ErrMatchNotLive
	}

	now := s.now()
	match.PauseClock(now)
	if err := s.repo.SaveWithVersion(ctx, match, match.Version); err != nil {
		return nil, err
	}
	return match.ToLiveState(now), nil
}

// ResumeMatch restarts a paused clock.
func (s *service) ResumeMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matchModel.StatusLive {
		return nil, matchModel.ErrMatchNotLive
	}

	now := s.now()
	match.ResumeClock(now)
	if err := s.repo.SaveWithVersion(ctx, match, match.Version); err != nil {
		return nil, err
	}
	return match.ToLiveState(now), nil
}

// RecordEvent appends an event to the ledger. Goal events increment the
// matching side's score in the same transaction so the ledger and the score
// can never diverge.
func (s *service) RecordEvent(ctx context.Context, matchID string, req *matchModel.RecordEventRequest) (*matchModel.RecordEventResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status.IsTerminal() {
		return nil, matchModel.ErrMatchFinalized
	}
	if match.Status != matchModel.StatusLive {
		return nil, matchModel.ErrMatchNotLive
	}

	now := s.now()
	minute := match.CurrentMinute(now)
	if req.Minute != nil {
		minute = *req.Minute
	}
	if err := checkLen("player_name", req.PlayerName, maxPlayerNameLen); err != nil {
		return nil, err
	}
	if err := checkLen("description", req.Description, maxDescriptionLen); err != nil {
		return nil, err
	}

	event := matchModel.Event{
		EventID:     uuid.NewString(),
		MatchID:     match.MatchID,
		Seq:         match.NextEventSeq(),
		Type:        req.Type,
		Side:        req.Side,
		Minute:      minute,
		PlayerID:    req.PlayerID,
		PlayerName:  req.PlayerName,
		Description: req.Description,
		CreatedAt:   now,
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if event.Type == matchModel.EventGoal {
		if _, err := match.ApplyScoreMutation(event.Side, 1); err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := txRepo.AppendEvent(ctx, &event); err != nil {
			return err
		}
		return txRepo.SaveWithVersion(ctx, match, match.Version)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("event recorded",
		"match_id", match.MatchID,
		"event_id", event.EventID,
		"type", event.Type,
		"side", event.Side,
		"minute", event.Minute)

	return &matchModel.RecordEventResponse{
		Event:     event,
		HomeScore: match.HomeScore,
		AwayScore: match.AwayScore,
	}, nil
}

// UndoLastEvent removes the most recently appended event. "Most recent"
// means last appended, not highest minute: operators may back-date cards.
// Undoing a goal decrements the side's score, floored at zero.
func (s *service) UndoLastEvent(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != matchModel.StatusLive {
		return nil, matchModel.ErrMatchNotLive
	}

	last := match.LastEvent()
	if last == nil {
		return nil, matchModel.ErrEmptyLedger
	}
	undone := *last

	if undone.Type == matchModel.EventGoal {
		if _, err := match.ApplyScoreMutation(undone.Side, -1); err != nil {
			return nil, err
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := txRepo.DeleteEvent(ctx, undone.EventID); err != nil {
			return err
		}
		return txRepo.SaveWithVersion(ctx, match, match.Version)
	})
	if err != nil {
		return nil, err
	}

	kept := make([]matchModel.Event, 0, len(match.Events)-1)
	for _, e := range match.Events {
		if e.EventID != undone.EventID {
			kept = append(kept, e)
		}
	}
	match.Events = kept

	s.logger.Infow("event undone",
		"match_id", match.MatchID,
		"event_id", undone.EventID,
		"type", undone.Type)

	return match.ToLiveState(s.now()), nil
}

// EndMatch transitions a live match to completed. The caller-supplied final
// scores are authoritative; the ledger is recomputed as a consistency check
// and any mismatch is surfaced as a warning, never auto-corrected.
func (s *service) EndMatch(ctx context.Context, matchID string, req *matchModel.EndMatchRequest) (*matchModel.EndMatchResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := matchModel.ValidateTransition(match.Status, matchModel.StatusCompleted, match.ScheduledAt, now); err != nil {
		return nil, err
	}
	if req.HomeScore < 0 || req.HomeScore > matchModel.MaxScore ||
		req.AwayScore < 0 || req.AwayScore > matchModel.MaxScore {
		return nil, matchModel.NewValidationError("home_score", "final scores must be between 0 and %d", matchModel.MaxScore)
	}

	var warnings []string
	if len(match.Events) == 0 {
		warnings = append(warnings, "match completed with an empty event ledger; player statistics will not update")
	} else {
		ledgerHome, ledgerAway := matchModel.RecomputeScoreFromLedger(match.Events)
		if ledgerHome != req.HomeScore || ledgerAway != req.AwayScore {
			w := fmt.Sprintf("final score %d-%d does not match ledger-derived score %d-%d",
				req.HomeScore, req.AwayScore, ledgerHome, ledgerAway)
			warnings = append(warnings, w)
			s.logger.Warnw("ledger score mismatch on completion",
				"match_id", match.MatchID,
				"final_home", req.HomeScore, "final_away", req.AwayScore,
				"ledger_home", ledgerHome, "ledger_away", ledgerAway)
		}
	}

	match.Status = matchModel.StatusCompleted
	match.HomeScore = req.HomeScore
	match.AwayScore = req.AwayScore
	match.PauseClock(now)

	if err := s.repo.SaveWithVersion(ctx, match, match.Version); err != nil {
		return nil, err
	}

	s.logger.Infow("match completed",
		"match_id", match.MatchID,
		"home_score", match.HomeScore,
		"away_score", match.AwayScore)

	return &matchModel.EndMatchResponse{
		Match:    match.ToResponse(),
		Warnings: warnings,
	}, nil
}

// SyncLiveState applies a whole-state snapshot from the operator client.
// The request's version token must match the stored one; a stale token is
// rejected as a conflict so concurrent operators cannot silently overwrite
// each other.
func (s *service) SyncLiveState(ctx context.Context, matchID string, req *matchModel.SyncRequest) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status.IsTerminal() {
		return nil, matchModel.ErrMatchFinalized
	}
	if match.Status != matchModel.StatusLive {
		return nil, matchModel.ErrMatchNotLive
	}
	if req.HomeScore > matchModel.MaxScore || req.AwayScore > matchModel.MaxScore {
		return nil, matchModel.NewValidationError("home_score", "scores must be at most %d", matchModel.MaxScore)
	}

	now := s.now()
	events := make([]matchModel.Event, 0, len(req.Events))
	for i, snap := range req.Events {
		eventID := snap.EventID
		if eventID == "" {
			eventID = uuid.NewString()
		}
		event := matchModel.Event{
			EventID:     eventID,
			MatchID:     match.MatchID,
			Seq:         i + 1,
			Type:        snap.Type,
			Side:        snap.Side,
			Minute:      snap.Minute,
			PlayerID:    snap.PlayerID,
			PlayerName:  snap.PlayerName,
			Description: snap.Description,
			CreatedAt:   now,
		}
		if err := event.Validate(); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	match.HomeScore = req.HomeScore
	match.AwayScore = req.AwayScore
	match.Events = events

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		if err := txRepo.SaveWithVersion(ctx, match, req.Version); err != nil {
			return err
		}
		return txRepo.ReplaceEvents(ctx, match.MatchID, events)
	})
	if err != nil {
		return nil, err
	}

	return match.ToLiveState(now), nil
}

// GetLiveState returns the current live view; spectators poll this.
func (s *service) GetLiveState(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	match, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	state := match.ToLiveState(s.now())

	// Ledger drift is reported, never auto-corrected.
	if match.Status.IsPlaying() && len(match.Events) > 0 {
		ledgerHome, ledgerAway := matchModel.RecomputeScoreFromLedger(match.Events)
		if ledgerHome != match.HomeScore || ledgerAway != match.AwayScore {
			s.logger.Warnw("ledger score mismatch",
				"match_id", match.MatchID,
				"stored_home", match.HomeScore, "stored_away", match.AwayScore,
				"ledger_home", ledgerHome, "ledger_away", ledgerAway)
		}
	}

	return state, nil
}
