// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	matchRepository "github.com/shafraaxz/horse-league-sub002/internal/match/repository"
	teamModel "github.com/shafraaxz/horse-league-sub002/internal/team/model"
	"github.com/shafraaxz/horse-league-sub002/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a new team.
	CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns a team by id.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error)

	// ListTeams returns all teams.
	ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error)

	// UpdateTeam updates team details.
	UpdateTeam(ctx context.Context, teamID string, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error)

	// DeleteTeam removes a team that is not referenced by any match.
	DeleteTeam(ctx context.Context, teamID string) error
}

type service struct {
	repo      repository.Repository
	matchRepo matchRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, matchRepo matchRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, matchRepo: matchRepo, logger: logger}
}

// CreateTeam creates a new team.
func (s *service) CreateTeam(ctx context.Context, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	team := &teamModel.Team{
		TeamID:      uuid.NewString(),
		Name:        name,
		ShortCode:   req.ShortCode,
		Coach:       req.Coach,
		FoundedYear: req.FoundedYear,
		Notes:       req.Notes,
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.TeamID, "name", team.Name)
	return team.ToResponse(), nil
}

// GetTeam returns a team by id.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return team.ToResponse(), nil
}

// ListTeams returns all teams.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, *teams[i].ToResponse())
	}
	return resp, nil
}

// UpdateTeam updates team details.
func (s *service) UpdateTeam(ctx context.Context, teamID string, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, teamModel.ErrInvalidTeamName
		}
		team.Name = name
	}
	if req.ShortCode != nil {
		team.ShortCode = *req.ShortCode
	}
	if req.Coach != nil {
		team.Coach = *req.Coach
	}
	if req.FoundedYear != nil {
		team.FoundedYear = *req.FoundedYear
	}
	if req.Notes != nil {
		team.Notes = *req.Notes
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team.ToResponse(), nil
}

// DeleteTeam removes a team that is not referenced by any match.
func (s *service) DeleteTeam(ctx context.Context, teamID string) error {
	if _, err := s.repo.GetByID(ctx, teamID); err != nil {
		return err
	}

	hasMatches, err := s.matchRepo.TeamHasMatches(ctx, teamID)
	if err != nil {
		return err
	}
	if hasMatches {
		return teamModel.ErrTeamHasMatches
	}

	if err := s.repo.Delete(ctx, teamID); err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", teamID)
	return nil
}
