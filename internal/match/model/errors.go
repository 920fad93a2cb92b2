package model

import (
	"errors"
	"fmt"
)

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrMatchFinalized indicates a mutation was attempted on a completed or cancelled match.
	ErrMatchFinalized = errors.New("match is finalized")
	// ErrMatchNotLive indicates a live-only operation was attempted outside live status.
	ErrMatchNotLive = errors.New("match is not live")
	// ErrEmptyLedger indicates undo was requested with no events recorded.
	ErrEmptyLedger = errors.New("no events to undo")
	// ErrVersionConflict indicates a stale snapshot write (optimistic concurrency failure).
	ErrVersionConflict = errors.New("match was modified by another operator")
	// ErrMatchInProgress indicates the match cannot be deleted while live.
	ErrMatchInProgress = errors.New("match is in progress")
	// ErrTeamNotFound indicates a referenced team does not exist.
	ErrTeamNotFound = errors.New("referenced team not found")
	// ErrSeasonNotFound indicates the referenced season does not exist.
	ErrSeasonNotFound = errors.New("referenced season not found")
)

// ValidationError is a recoverable guard or invariant violation. The message
// is suitable for direct display to the operator.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
