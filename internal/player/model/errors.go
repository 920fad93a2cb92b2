package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrNumberTaken indicates the squad number is already used within the team.
	ErrNumberTaken = errors.New("squad number already taken in this team")
	// ErrInvalidPlayerName indicates that the provided player name is invalid (e.g., empty).
	ErrInvalidPlayerName = errors.New("invalid player name")
	// ErrInvalidNumber indicates the squad number is out of range.
	ErrInvalidNumber = errors.New("squad number must be between 1 and 99")
	// ErrTeamNotFound indicates the referenced team does not exist.
	ErrTeamNotFound = errors.New("referenced team not found")
)
