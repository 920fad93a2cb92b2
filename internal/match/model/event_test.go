package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_Validate(t *testing.T) {
	valid := Event{
		EventID: "e-1",
		MatchID: "m-1",
		Seq:     1,
		Type:    EventGoal,
		Side:    SideHome,
		Minute:  45,
	}

	t.Run("valid event", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("unknown event type", func(t *testing.T) {
		e := valid
		e.Type = "own_goal"
		assert.Error(t, e.Validate())
	})

	t.Run("unknown side", func(t *testing.T) {
		e := valid
		e.Side = "neutral"
		assert.Error(t, e.Validate())
	})

	t.Run("negative minute", func(t *testing.T) {
		e := valid
		e.Minute = -1
		assert.Error(t, e.Validate())
	})

	t.Run("minute above maximum", func(t *testing.T) {
		e := valid
		e.Minute = MaxEventMinute + 1
		assert.Error(t, e.Validate())
	})

	t.Run("boundary minutes are allowed", func(t *testing.T) {
		e := valid
		e.Minute = 0
		assert.NoError(t, e.Validate())
		e.Minute = MaxEventMinute
		assert.NoError(t, e.Validate())
	})
}

func TestEventType_IsValid(t *testing.T) {
	known := []EventType{EventGoal, EventAssist, EventYellowCard, EventRedCard, EventSubstitution, EventOther}
	for _, et := range known {
		assert.True(t, et.IsValid(), "event type %s should be valid", et)
	}
	assert.False(t, EventType("").IsValid())
}

func TestRecomputeScoreFromLedger(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		home, away := RecomputeScoreFromLedger(nil)
		assert.Equal(t, 0, home)
		assert.Equal(t, 0, away)
	})

	t.Run("counts only goal events per side", func(t *testing.T) {
		events := []Event{
			{Seq: 1, Type: EventGoal, Side: SideHome, Minute: 5},
			{Seq: 2, Type: EventYellowCard, Side: SideAway, Minute: 12},
			{Seq: 3, Type: EventGoal, Side: SideAway, Minute: 30},
			{Seq: 4, Type: EventGoal, Side: SideHome, Minute: 77},
			{Seq: 5, Type: EventSubstitution, Side: SideHome, Minute: 80},
		}

		home, away := RecomputeScoreFromLedger(events)
		assert.Equal(t, 2, home)
		assert.Equal(t, 1, away)
	})
}
