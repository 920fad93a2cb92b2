package model

import (
	"time"
)

// EventType classifies an in-match occurrence.
type EventType string

// Supported event types.
const (
	EventGoal         EventType = "goal"
	EventAssist       EventType = "assist"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
	EventOther        EventType = "other"
)

// IsValid reports whether t is a known event type.
func (t EventType) IsValid() bool {
	switch t {
	case EventGoal, EventAssist, EventYellowCard, EventRedCard, EventSubstitution, EventOther:
		return true
	}
	return false
}

// Side identifies which team an event belongs to.
type Side string

// Team sides.
const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// IsValid reports whether s is a known side.
func (s Side) IsValid() bool {
	return s == SideHome || s == SideAway
}

// MaxEventMinute is the highest minute an event may carry.
const MaxEventMinute = 120

// Event represents one in-match occurrence. Events are owned by their match
// and are immutable once appended; the only correction mechanism is removing
// the last-appended event.
// Matches the match_events table schema.
type Event struct {
	EventID     string    `gorm:"primaryKey;column:event_id;type:varchar(36)"                             json:"event_id"`
	MatchID     string    `gorm:"column:match_id;type:varchar(36);not null;index:idx_match_events_match"  json:"match_id"`
	Seq         int       `gorm:"column:seq;not null"                                                     json:"seq"`
	Type        EventType `gorm:"column:event_type;type:varchar(32);not null"                             json:"type"`
	Side        Side      `gorm:"column:side;type:varchar(8);not null"                                    json:"side"`
	Minute      int       `gorm:"column:minute;not null"                                                  json:"minute"`
	PlayerID    *string   `gorm:"column:player_id;type:varchar(36)"                                       json:"player_id,omitempty"`
	PlayerName  string    `gorm:"column:player_name;type:varchar(255)"                                    json:"player_name,omitempty"`
	Description string    `gorm:"column:description;type:varchar(500)"                                    json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"               json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "match_events"
}

// Validate checks the event's own invariants.
func (e Event) Validate() error {
	if !e.Type.IsValid() {
		return NewValidationError("type", "invalid event type %q", e.Type)
	}
	if !e.Side.IsValid() {
		return NewValidationError("side", "side must be home or away")
	}
	if e.Minute < 0 || e.Minute > MaxEventMinute {
		return NewValidationError("minute", "minute must be between 0 and %d", MaxEventMinute)
	}
	return nil
}

// RecomputeScoreFromLedger derives home and away scores by counting goal
// events per side. It is a consistency check against the incrementally
// maintained scores on the match; a mismatch is a data-integrity warning,
// not something to silently auto-correct.
func RecomputeScoreFromLedger(events []Event) (home, away int) {
	for _, e := range events {
		if e.Type != EventGoal {
			continue
		}
		if e.Side == SideHome {
			home++
		} else {
			away++
		}
	}
	return home, away
}
