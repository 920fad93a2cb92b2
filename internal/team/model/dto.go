// Package model provides domain models and DTOs for the team module.
package model

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	ShortCode   string `json:"short_code"`
	Coach       string `json:"coach"`
	FoundedYear int    `json:"founded_year"`
	Notes       string `json:"notes"`
}

// UpdateTeamRequest represents the request to update a team.
// Nil fields are left unchanged.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	ShortCode   *string `json:"short_code"`
	Coach       *string `json:"coach"`
	FoundedYear *int    `json:"founded_year"`
	Notes       *string `json:"notes"`
}

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	ShortCode   string `json:"short_code,omitempty"`
	Coach       string `json:"coach,omitempty"`
	FoundedYear int    `json:"founded_year,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ToResponse converts a team entity to its API representation.
func (t *Team) ToResponse() *TeamResponse {
	return &TeamResponse{
		TeamID:      t.TeamID,
		Name:        t.Name,
		ShortCode:   t.ShortCode,
		Coach:       t.Coach,
		FoundedYear: t.FoundedYear,
		Notes:       t.Notes,
	}
}
