// Package model provides DTOs for the standings module.
package model

import "errors"

// ErrSeasonNotFound indicates the requested season does not exist.
var ErrSeasonNotFound = errors.New("season not found")

// Row is one team's line in the league table. Points are 3 per win and
// 1 per draw, computed from completed matches only.
type Row struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// TableResponse is the league table for one season.
type TableResponse struct {
	SeasonID string `json:"season_id"`
	Rows     []Row  `json:"rows"`
}

// CompletedMatch is the projection of a completed match used to build the table.
type CompletedMatch struct {
	HomeTeamID string
	AwayTeamID string
	HomeScore  int
	AwayScore  int
}
