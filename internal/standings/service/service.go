// Package service computes league tables from completed match results.
package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/shafraaxz/horse-league-sub002/internal/standings/model"
	"github.com/shafraaxz/horse-league-sub002/internal/standings/repository"
)

// Service provides the league table for a season.
type Service interface {
	GetTable(ctx context.Context, seasonID string) (*model.TableResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new standings service.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetTable builds the season table from completed matches. Teams are ranked
// by points, then goal difference, then goals for, then name.
func (s *service) GetTable(ctx context.Context, seasonID string) (*model.TableResponse, error) {
	exists, err := s.repo.SeasonExists(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrSeasonNotFound
	}

	matches, err := s.repo.CompletedMatches(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	rowsByTeam := make(map[string]*model.Row)
	rowFor := func(teamID string) *model.Row {
		row, ok := rowsByTeam[teamID]
		if !ok {
			row = &model.Row{TeamID: teamID}
			rowsByTeam[teamID] = row
		}
		return row
	}

	for _, m := range matches {
		home := rowFor(m.HomeTeamID)
		away := rowFor(m.AwayTeamID)

		home.Played++
		away.Played++
		home.GoalsFor += m.HomeScore
		home.GoalsAgainst += m.AwayScore
		away.GoalsFor += m.AwayScore
		away.GoalsAgainst += m.HomeScore

		switch {
		case m.HomeScore > m.AwayScore:
			home.Won++
			away.Lost++
		case m.HomeScore < m.AwayScore:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
	}

	teamIDs := make([]string, 0, len(rowsByTeam))
	for teamID := range rowsByTeam {
		teamIDs = append(teamIDs, teamID)
	}
	names, err := s.repo.TeamNames(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Row, 0, len(rowsByTeam))
	for _, row := range rowsByTeam {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		row.Points = row.Won*3 + row.Drawn
		row.TeamName = names[row.TeamID]
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		return rows[i].TeamName < rows[j].TeamName
	})

	return &model.TableResponse{SeasonID: seasonID, Rows: rows}, nil
}
