// Package model provides domain models and DTOs for the match module.
package model

import "time"

// CreateMatchRequest represents the request to schedule a match.
type CreateMatchRequest struct {
	HomeTeamID  string    `json:"home_team_id" binding:"required"`
	AwayTeamID  string    `json:"away_team_id" binding:"required"`
	SeasonID    string    `json:"season_id"    binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Venue       string    `json:"venue"`
	Round       string    `json:"round"`
	Referee     string    `json:"referee"`
	Notes       string    `json:"notes"`
}

// UpdateMatchRequest represents the request to update match details.
// Nil fields are left unchanged.
type UpdateMatchRequest struct {
	ScheduledAt *time.Time `json:"scheduled_at"`
	Venue       *string    `json:"venue"`
	Round       *string    `json:"round"`
	Referee     *string    `json:"referee"`
	Notes       *string    `json:"notes"`
}

// TransitionRequest represents an explicit status transition request
// (postpone, cancel, reschedule).
type TransitionRequest struct {
	Status      Status     `json:"status" binding:"required"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// RecordEventRequest represents the request to append an event to the ledger.
type RecordEventRequest struct {
	Type        EventType `json:"type" binding:"required"`
	Side        Side      `json:"side" binding:"required"`
	Minute      *int      `json:"minute"`
	PlayerID    *string   `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	Description string    `json:"description"`
}

// EndMatchRequest carries the operator's final snapshot when completing a
// live match. The accepted scores are authoritative; the ledger is used as
// a consistency check.
type EndMatchRequest struct {
	HomeScore int `json:"home_score" binding:"min=0"`
	AwayScore int `json:"away_score" binding:"min=0"`
}

// EventSnapshot is one ledger entry inside a sync request.
type EventSnapshot struct {
	EventID     string    `json:"event_id"`
	Type        EventType `json:"type" binding:"required"`
	Side        Side      `json:"side" binding:"required"`
	Minute      int       `json:"minute"`
	PlayerID    *string   `json:"player_id"`
	PlayerName  string    `json:"player_name"`
	Description string    `json:"description"`
}

// SyncRequest is the idempotent whole-state upsert pushed by the operator
// client. Version is the optimistic concurrency token: a stale version is
// rejected as a conflict instead of silently losing the other write.
type SyncRequest struct {
	HomeScore int             `json:"home_score" binding:"min=0"`
	AwayScore int             `json:"away_score" binding:"min=0"`
	Events    []EventSnapshot `json:"events"`
	Version   int             `json:"version"`
}

// MatchResponse represents a match in API responses.
type MatchResponse struct {
	MatchID     string    `json:"match_id"`
	HomeTeamID  string    `json:"home_team_id"`
	AwayTeamID  string    `json:"away_team_id"`
	SeasonID    string    `json:"season_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      Status    `json:"status"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	Version     int       `json:"version"`
	Venue       string    `json:"venue,omitempty"`
	Round       string    `json:"round,omitempty"`
	Referee     string    `json:"referee,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Events      []Event   `json:"events"`
}

// LiveStateResponse is the polled live view of a match, including the
// derived clock minute.
type LiveStateResponse struct {
	MatchID      string  `json:"match_id"`
	Status       Status  `json:"status"`
	HomeScore    int     `json:"home_score"`
	AwayScore    int     `json:"away_score"`
	Minute       int     `json:"minute"`
	ClockRunning bool    `json:"clock_running"`
	Version      int     `json:"version"`
	Events       []Event `json:"events"`
}

// RecordEventResponse is returned after appending an event.
type RecordEventResponse struct {
	Event     Event `json:"event"`
	HomeScore int   `json:"home_score"`
	AwayScore int   `json:"away_score"`
}

// EndMatchResponse is returned after completing a match. Warnings carry
// soft data-integrity notices (empty ledger, ledger/score mismatch).
type EndMatchResponse struct {
	Match    *MatchResponse `json:"match"`
	Warnings []string       `json:"warnings,omitempty"`
}

// ListMatchesFilter selects matches for listing.
type ListMatchesFilter struct {
	SeasonID string
	TeamID   string
	Status   Status
	Limit    int
	Offset   int
}

// ToResponse converts a match entity to its API representation.
func (m *Match) ToResponse() *MatchResponse {
	events := m.Events
	if events == nil {
		events = []Event{}
	}
	return &MatchResponse{
		MatchID:     m.MatchID,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		SeasonID:    m.SeasonID,
		ScheduledAt: m.ScheduledAt,
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Version:     m.Version,
		Venue:       m.Venue,
		Round:       m.Round,
		Referee:     m.Referee,
		Notes:       m.Notes,
		Events:      events,
	}
}

// ToLiveState converts a match to the polled live view at the given time.
func (m *Match) ToLiveState(now time.Time) *LiveStateResponse {
	events := m.Events
	if events == nil {
		events = []Event{}
	}
	return &LiveStateResponse{
		MatchID:      m.MatchID,
		Status:       m.Status,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		Minute:       m.CurrentMinute(now),
		ClockRunning: m.ClockRunning(),
		Version:      m.Version,
		Events:       events,
	}
}
