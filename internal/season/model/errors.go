package model

import "errors"

var (
	// ErrSeasonExists indicates that a season with the given name already exists.
	ErrSeasonExists = errors.New("season already exists")
	// ErrSeasonNotFound indicates that the requested season does not exist.
	ErrSeasonNotFound = errors.New("season not found")
	// ErrInvalidSeasonName indicates that the provided season name is invalid (e.g., empty).
	ErrInvalidSeasonName = errors.New("invalid season name")
	// ErrInvalidDates indicates the season end date is not after its start date.
	ErrInvalidDates = errors.New("season end date must be after start date")
)
