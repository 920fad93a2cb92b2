package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveMatch() *Match {
	started := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)
	return &Match{
		MatchID:       "m-1",
		HomeTeamID:    "t-home",
		AwayTeamID:    "t-away",
		SeasonID:      "s-1",
		ScheduledAt:   started,
		Status:        StatusLive,
		LiveStartedAt: &started,
	}
}

func TestMatch_TableName(t *testing.T) {
	assert.Equal(t, "matches", Match{}.TableName())
	assert.Equal(t, "match_events", Event{}.TableName())
}

func TestMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Match)
		wantErr bool
	}{
		{
			name:    "valid live match",
			mutate:  func(m *Match) {},
			wantErr: false,
		},
		{
			name:    "home and away team identical",
			mutate:  func(m *Match) { m.AwayTeamID = m.HomeTeamID },
			wantErr: true,
		},
		{
			name:    "negative score",
			mutate:  func(m *Match) { m.HomeScore = -1 },
			wantErr: true,
		},
		{
			name:    "score above maximum",
			mutate:  func(m *Match) { m.AwayScore = MaxScore + 1 },
			wantErr: true,
		},
		{
			name:    "score at maximum is allowed",
			mutate:  func(m *Match) { m.HomeScore = MaxScore },
			wantErr: false,
		},
		{
			name: "scheduled match with nonzero score",
			mutate: func(m *Match) {
				m.Status = StatusScheduled
				m.HomeScore = 1
			},
			wantErr: true,
		},
		{
			name: "postponed match with events",
			mutate: func(m *Match) {
				m.Status = StatusPostponed
				m.Events = []Event{{EventID: "e-1", Seq: 1, Type: EventGoal, Side: SideHome}}
			},
			wantErr: true,
		},
		{
			name: "completed match keeps scores and events",
			mutate: func(m *Match) {
				m.Status = StatusCompleted
				m.HomeScore = 2
				m.AwayScore = 1
				m.Events = []Event{{EventID: "e-1", Seq: 1, Type: EventGoal, Side: SideHome, Minute: 10}}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := liveMatch()
			tt.mutate(m)
			err := m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatch_ApplyScoreMutation(t *testing.T) {
	t.Run("increments home score", func(t *testing.T) {
		m := liveMatch()
		score, err := m.ApplyScoreMutation(SideHome, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, score)
		assert.Equal(t, 1, m.HomeScore)
		assert.Equal(t, 0, m.AwayScore)
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		m := liveMatch()
		score, err := m.ApplyScoreMutation(SideAway, -1)
		require.NoError(t, err)
		assert.Equal(t, 0, score)
		assert.Equal(t, 0, m.AwayScore)
	})

	t.Run("increment clamps at maximum", func(t *testing.T) {
		m := liveMatch()
		m.HomeScore = MaxScore
		score, err := m.ApplyScoreMutation(SideHome, 1)
		require.NoError(t, err)
		assert.Equal(t, MaxScore, score)
	})

	t.Run("increment then decrement restores the score", func(t *testing.T) {
		m := liveMatch()
		m.HomeScore = 2

		_, err := m.ApplyScoreMutation(SideHome, 1)
		require.NoError(t, err)
		_, err = m.ApplyScoreMutation(SideHome, -1)
		require.NoError(t, err)

		assert.Equal(t, 2, m.HomeScore)
	})

	t.Run("rejected when match is not live", func(t *testing.T) {
		m := liveMatch()
		m.Status = StatusCompleted
		_, err := m.ApplyScoreMutation(SideHome, 1)
		assert.ErrorIs(t, err, ErrMatchNotLive)
	})
}

func TestMatch_LastEvent(t *testing.T) {
	t.Run("empty ledger returns nil", func(t *testing.T) {
		m := liveMatch()
		assert.Nil(t, m.LastEvent())
		assert.Equal(t, 1, m.NextEventSeq())
	})

	t.Run("last by append order not by minute", func(t *testing.T) {
		m := liveMatch()
		m.Events = []Event{
			{EventID: "e-1", Seq: 1, Type: EventGoal, Side: SideHome, Minute: 40},
			{EventID: "e-2", Seq: 2, Type: EventYellowCard, Side: SideAway, Minute: 12},
		}

		last := m.LastEvent()
		require.NotNil(t, last)
		// e-2 was appended last even though its minute is earlier.
		assert.Equal(t, "e-2", last.EventID)
		assert.Equal(t, 3, m.NextEventSeq())
	})
}

func TestMatch_Clock(t *testing.T) {
	start := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

	t.Run("starts at minute zero", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		assert.Equal(t, 0, m.CurrentMinute(start))
		assert.True(t, m.ClockRunning())
	})

	t.Run("minute derives from elapsed time", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		assert.Equal(t, 7, m.CurrentMinute(start.Add(7*time.Minute+30*time.Second)))
	})

	t.Run("pause freezes the minute", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		m.PauseClock(start.Add(10 * time.Minute))

		assert.False(t, m.ClockRunning())
		assert.Equal(t, 10, m.CurrentMinute(start.Add(30*time.Minute)))
	})

	t.Run("resume subtracts the paused duration", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		m.PauseClock(start.Add(10 * time.Minute))
		m.ResumeClock(start.Add(25 * time.Minute))

		assert.True(t, m.ClockRunning())
		assert.Equal(t, 15, m.CurrentMinute(start.Add(30*time.Minute)))
	})

	t.Run("double pause is a no-op", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		m.PauseClock(start.Add(10 * time.Minute))
		m.PauseClock(start.Add(20 * time.Minute))

		assert.Equal(t, 10, m.CurrentMinute(start.Add(30*time.Minute)))
	})

	t.Run("resume without pause is a no-op", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		m.ResumeClock(start.Add(10 * time.Minute))
		assert.Equal(t, 20, m.CurrentMinute(start.Add(20*time.Minute)))
	})

	t.Run("minute caps at the maximum event minute", func(t *testing.T) {
		m := liveMatch()
		m.StartClock(start)
		assert.Equal(t, MaxEventMinute, m.CurrentMinute(start.Add(5*time.Hour)))
	})

	t.Run("unstarted clock reads zero", func(t *testing.T) {
		m := liveMatch()
		m.LiveStartedAt = nil
		assert.Equal(t, 0, m.CurrentMinute(start))
		assert.False(t, m.ClockRunning())
	})
}

func TestMatch_ClearPlayData(t *testing.T) {
	m := liveMatch()
	m.HomeScore = 3
	m.AwayScore = 1
	m.Events = []Event{{EventID: "e-1", Seq: 1, Type: EventGoal, Side: SideHome}}
	m.StartClock(time.Now())

	m.ClearPlayData()

	assert.Equal(t, 0, m.HomeScore)
	assert.Equal(t, 0, m.AwayScore)
	assert.Empty(t, m.Events)
	assert.Nil(t, m.LiveStartedAt)
	assert.Nil(t, m.PausedAt)
	assert.Equal(t, 0, m.PausedSeconds)
}
