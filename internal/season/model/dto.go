// Package model provides domain models and DTOs for the season module.
package model

import "time"

// CreateSeasonRequest represents the request to create a season.
type CreateSeasonRequest struct {
	Name      string    `json:"name"       binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date"   binding:"required"`
}

// UpdateSeasonRequest represents the request to update a season.
// Nil fields are left unchanged.
type UpdateSeasonRequest struct {
	Name      *string    `json:"name"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SeasonResponse represents a season in API responses.
type SeasonResponse struct {
	SeasonID  string    `json:"season_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

// ToResponse converts a season entity to its API representation.
func (s *Season) ToResponse() *SeasonResponse {
	return &SeasonResponse{
		SeasonID:  s.SeasonID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		IsActive:  s.IsActive,
	}
}
