// Package service provides business logic layer for the player module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	playerModel "github.com/shafraaxz/horse-league-sub002/internal/player/model"
	"github.com/shafraaxz/horse-league-sub002/internal/player/repository"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// CreatePlayer registers a new player.
	CreatePlayer(ctx context.Context, req *playerModel.CreatePlayerRequest) (*playerModel.PlayerResponse, error)

	// GetPlayer returns a player by id.
	GetPlayer(ctx context.Context, playerID string) (*playerModel.PlayerResponse, error)

	// ListPlayers returns players, optionally filtered by team.
	ListPlayers(ctx context.Context, teamID string) ([]playerModel.PlayerResponse, error)

	// UpdatePlayer updates player details.
	UpdatePlayer(ctx context.Context, playerID string, req *playerModel.UpdatePlayerRequest) (*playerModel.PlayerResponse, error)

	// DeletePlayer removes a player.
	DeletePlayer(ctx context.Context, playerID string) error
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

func validNumber(n int) bool {
	return n >= 1 && n <= 99
}

// CreatePlayer registers a new player.
func (s *service) CreatePlayer(ctx context.Context, req *playerModel.CreatePlayerRequest) (*playerModel.PlayerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, playerModel.ErrInvalidPlayerName
	}
	if !validNumber(req.Number) {
		return nil, playerModel.ErrInvalidNumber
	}

	exists, err := s.repo.TeamExists(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, playerModel.ErrTeamNotFound
	}

	player := &playerModel.Player{
		PlayerID: uuid.NewString(),
		TeamID:   req.TeamID,
		Name:     name,
		Number:   req.Number,
		Position: req.Position,
	}

	if err := s.repo.Create(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Infow("player registered",
		"player_id", player.PlayerID, "team_id", player.TeamID, "number", player.Number)
	return player.ToResponse(), nil
}

// GetPlayer returns a player by id.
func (s *service) GetPlayer(ctx context.Context, playerID string) (*playerModel.PlayerResponse, error) {
	player, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return player.ToResponse(), nil
}

// ListPlayers returns players, optionally filtered by team.
func (s *service) ListPlayers(ctx context.Context, teamID string) ([]playerModel.PlayerResponse, error) {
	players, err := s.repo.List(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := make([]playerModel.PlayerResponse, 0, len(players))
	for i := range players {
		resp = append(resp, *players[i].ToResponse())
	}
	return resp, nil
}

// UpdatePlayer updates player details.
func (s *service) UpdatePlayer(ctx context.Context, playerID string, req *playerModel.UpdatePlayerRequest) (*playerModel.PlayerResponse, error) {
	player, err := s.repo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		exists, err := s.repo.TeamExists(ctx, *req.TeamID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, playerModel.ErrTeamNotFound
		}
		player.TeamID = *req.TeamID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, playerModel.ErrInvalidPlayerName
		}
		player.Name = name
	}
	if req.Number != nil {
		if !validNumber(*req.Number) {
			return nil, playerModel.ErrInvalidNumber
		}
		player.Number = *req.Number
	}
	if req.Position != nil {
		player.Position = *req.Position
	}

	if err := s.repo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player.ToResponse(), nil
}

// DeletePlayer removes a player.
func (s *service) DeletePlayer(ctx context.Context, playerID string) error {
	return s.repo.Delete(ctx, playerID)
}
