// Package model provides domain models and DTOs for the player module.
package model

// CreatePlayerRequest represents the request to register a player.
type CreatePlayerRequest struct {
	TeamID   string `json:"team_id" binding:"required"`
	Name     string `json:"name"    binding:"required"`
	Number   int    `json:"number"  binding:"required"`
	Position string `json:"position"`
}

// UpdatePlayerRequest represents the request to update a player.
// Nil fields are left unchanged.
type UpdatePlayerRequest struct {
	TeamID   *string `json:"team_id"`
	Name     *string `json:"name"`
	Number   *int    `json:"number"`
	Position *string `json:"position"`
}

// PlayerResponse represents a player in API responses.
type PlayerResponse struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position,omitempty"`
}

// ToResponse converts a player entity to its API representation.
func (p *Player) ToResponse() *PlayerResponse {
	return &PlayerResponse{
		PlayerID: p.PlayerID,
		TeamID:   p.TeamID,
		Name:     p.Name,
		Number:   p.Number,
		Position: p.Position,
	}
}
