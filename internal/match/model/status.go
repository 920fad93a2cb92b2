package model

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of a match.
type Status string

// Match lifecycle states.
const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
)

// TransitionWindow bounds how far a match date may be from "now" when
// going live, and how far in the future it may be when completing.
const TransitionWindow = 24 * time.Hour

// IsValid reports whether s is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed out of s.
// Postponed matches can be rescheduled, so postponed is not terminal.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsPlaying reports whether the match may carry scores and events in state s.
func (s Status) IsPlaying() bool {
	return s == StatusLive || s == StatusCompleted
}

// transitionGuard validates a single edge of the lifecycle graph.
// date is the match's scheduled date, now the injected wall clock.
type transitionGuard func(date, now time.Time) *ValidationError

// transitionTable is the explicit state machine: every allowed edge is
// listed here with its guard. Anything absent from the table is rejected.
var transitionTable = map[Status]map[Status]transitionGuard{
	StatusScheduled: {
		StatusLive: func(date, now time.Time) *ValidationError {
			diff := date.Sub(now)
			if diff < 0 {
				diff = -diff
			}
			if diff > TransitionWindow {
				return &ValidationError{
					Field:   "scheduled_at",
					Message: "match can only go live within 24 hours of its scheduled date",
				}
			}
			return nil
		},
		StatusPostponed: allowAlways,
		StatusCancelled: allowAlways,
	},
	StatusLive: {
		StatusCompleted: func(date, now time.Time) *ValidationError {
			if date.After(now.Add(TransitionWindow)) {
				return &ValidationError{
					Field:   "scheduled_at",
					Message: "match date must not be more than 24 hours in the future to complete",
				}
			}
			return nil
		},
		StatusPostponed: allowAlways,
		StatusCancelled: allowAlways,
	},
	StatusPostponed: {
		StatusScheduled: allowAlways,
		StatusCancelled: allowAlways,
	},
}

func allowAlways(_, _ time.Time) *ValidationError { return nil }

// ValidateTransition checks whether the transition current -> target is
// allowed for a match with the given scheduled date. It never mutates
// anything; a nil return means the transition is accepted.
//
// Transitions out of a terminal state are reported as ErrMatchFinalized so
// callers can answer with a conflict rather than a validation failure.
func ValidateTransition(current, target Status, date, now time.Time) error {
	if !current.IsValid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", current)}
	}
	if !target.IsValid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("unknown target status %q", target)}
	}
	if current.IsTerminal() {
		return ErrMatchFinalized
	}
	if current == target {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("match is already %s", current)}
	}

	guards, ok := transitionTable[current]
	if !ok {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("no transitions allowed from %s", current)}
	}
	guard, ok := guards[target]
	if !ok {
		return &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("transition %s -> %s is not allowed", current, target),
		}
	}
	if verr := guard(date, now); verr != nil {
		return verr
	}
	return nil
}
