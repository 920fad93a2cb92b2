package model

import (
	"time"

	"gorm.io/gorm"
)

// MaxScore is the upper bound for a team's score in a single match.
const MaxScore = 50

// Match represents one scheduled or played fixture between two teams.
// Matches the matches table schema. The match owns its event ledger; events
// have no existence outside their match.
type Match struct {
	MatchID     string    `gorm:"primaryKey;column:match_id;type:varchar(36)"                            json:"match_id"`
	HomeTeamID  string    `gorm:"column:home_team_id;type:varchar(36);not null;index:idx_matches_home"   json:"home_team_id"`
	AwayTeamID  string    `gorm:"column:away_team_id;type:varchar(36);not null;index:idx_matches_away"   json:"away_team_id"`
	SeasonID    string    `gorm:"column:season_id;type:varchar(36);not null;index:idx_matches_season"    json:"season_id"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;type:timestamptz;not null"                          json:"scheduled_at"`
	Status      Status    `gorm:"column:status;type:varchar(16);not null;index:idx_matches_status"       json:"status"`
	HomeScore   int       `gorm:"column:home_score;not null;default:0"                                   json:"home_score"`
	AwayScore   int       `gorm:"column:away_score;not null;default:0"                                   json:"away_score"`

	// Server-authoritative match clock. Elapsed time is derived from these
	// fields and "now"; no client timer is involved in correctness.
	LiveStartedAt *time.Time `gorm:"column:live_started_at;type:timestamptz" json:"live_started_at,omitempty"`
	PausedAt      *time.Time `gorm:"column:paused_at;type:timestamptz"       json:"paused_at,omitempty"`
	PausedSeconds int        `gorm:"column:paused_seconds;not null;default:0" json:"-"`

	// Version is the optimistic concurrency token checked on snapshot writes.
	Version int `gorm:"column:version;not null;default:0" json:"version"`

	Venue   string `gorm:"column:venue;type:varchar(255)"   json:"venue,omitempty"`
	Round   string `gorm:"column:round;type:varchar(100)"   json:"round,omitempty"`
	Referee string `gorm:"column:referee;type:varchar(255)" json:"referee,omitempty"`
	Notes   string `gorm:"column:notes;type:varchar(2000)"  json:"notes,omitempty"`

	Events []Event `gorm:"foreignKey:MatchID;references:MatchID" json:"events"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now()
	return nil
}

// Validate checks the match's standing invariants.
func (m *Match) Validate() error {
	if m.HomeTeamID == m.AwayTeamID {
		return NewValidationError("away_team_id", "home and away team must differ")
	}
	if m.HomeScore < 0 || m.HomeScore > MaxScore {
		return NewValidationError("home_score", "score must be between 0 and %d", MaxScore)
	}
	if m.AwayScore < 0 || m.AwayScore > MaxScore {
		return NewValidationError("away_score", "score must be between 0 and %d", MaxScore)
	}
	if !m.Status.IsPlaying() {
		if m.HomeScore != 0 || m.AwayScore != 0 {
			return NewValidationError("status", "a %s match must have zero scores", m.Status)
		}
		if len(m.Events) > 0 {
			return NewValidationError("status", "a %s match must have no events", m.Status)
		}
	}
	return nil
}

// ApplyScoreMutation adjusts one side's score by delta while the match is
// live. The result is clamped to [0, MaxScore]; going below zero is a
// silent floor rather than an error, which keeps undo idempotent. Returns
// the side's resulting score.
func (m *Match) ApplyScoreMutation(side Side, delta int) (int, error) {
	if m.Status != StatusLive {
		return 0, ErrMatchNotLive
	}
	score := m.HomeScore
	if side == SideAway {
		score = m.AwayScore
	}
	score += delta
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	if side == SideAway {
		m.AwayScore = score
	} else {
		m.HomeScore = score
	}
	return score, nil
}

// LastEvent returns the most recently appended event, by append order rather
// than by minute (operators may back-date events). Nil if the ledger is empty.
func (m *Match) LastEvent() *Event {
	if len(m.Events) == 0 {
		return nil
	}
	last := &m.Events[0]
	for i := range m.Events {
		if m.Events[i].Seq > last.Seq {
			last = &m.Events[i]
		}
	}
	return last
}

// NextEventSeq returns the append-order sequence number for a new event.
func (m *Match) NextEventSeq() int {
	if last := m.LastEvent(); last != nil {
		return last.Seq + 1
	}
	return 1
}

// StartClock starts the match clock at minute zero.
func (m *Match) StartClock(now time.Time) {
	started := now
	m.LiveStartedAt = &started
	m.PausedAt = nil
	m.PausedSeconds = 0
}

// PauseClock stops the minute counter without changing the match status.
// Pausing an already paused clock is a no-op.
func (m *Match) PauseClock(now time.Time) {
	if m.LiveStartedAt == nil || m.PausedAt != nil {
		return
	}
	paused := now
	m.PausedAt = &paused
}

// ResumeClock restarts a paused clock, accumulating the paused duration.
func (m *Match) ResumeClock(now time.Time) {
	if m.PausedAt == nil {
		return
	}
	m.PausedSeconds += int(now.Sub(*m.PausedAt).Seconds())
	m.PausedAt = nil
}

// ClockRunning reports whether the minute counter is advancing.
func (m *Match) ClockRunning() bool {
	return m.Status == StatusLive && m.LiveStartedAt != nil && m.PausedAt == nil
}

// CurrentMinute derives the elapsed match minute from the persisted clock
// fields and now, capped at MaxEventMinute. It is a pure function: no
// client's liveness affects the result.
func (m *Match) CurrentMinute(now time.Time) int {
	if m.LiveStartedAt == nil {
		return 0
	}
	end := now
	if m.PausedAt != nil {
		end = *m.PausedAt
	}
	elapsed := end.Sub(*m.LiveStartedAt) - time.Duration(m.PausedSeconds)*time.Second
	minute := int(elapsed.Minutes())
	if minute < 0 {
		minute = 0
	}
	if minute > MaxEventMinute {
		minute = MaxEventMinute
	}
	return minute
}

// ClearPlayData resets scores, events and clock state. Used when a match
// moves to postponed or cancelled, which must not carry scores or events.
func (m *Match) ClearPlayData() {
	m.HomeScore = 0
	m.AwayScore = 0
	m.Events = nil
	m.LiveStartedAt = nil
	m.PausedAt = nil
	m.PausedSeconds = 0
}
