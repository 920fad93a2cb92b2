//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
	playerModel "github.com/shafraaxz/horse-league-sub002/internal/player/model"
	seasonModel "github.com/shafraaxz/horse-league-sub002/internal/season/model"
	standingsModel "github.com/shafraaxz/horse-league-sub002/internal/standings/model"
)

func (s *E2ETestSuite) TestHealthEndpoint() {
	resp, respBody := s.doRequest("GET", "/health", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	assert.Contains(s.T(), string(respBody), "ok")
}

func (s *E2ETestSuite) TestMatchDay() {
	home := s.createTeam("Amsterdam FC")
	away := s.createTeam("Breda United")
	season := s.createSeason("2026 Spring")

	// Roster for the home side.
	resp, respBody := s.doRequest("POST", "/api/v1/players", &playerModel.CreatePlayerRequest{
		TeamID: home.TeamID,
		Name:   "R. Vos",
		Number: 9,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(respBody))

	match := s.scheduleMatch(home.TeamID, away.TeamID, season.SeasonID, time.Now().Add(time.Hour))
	require.Equal(s.T(), matchModel.StatusScheduled, match.Status)

	live := s.startMatch(match.MatchID)
	assert.Equal(s.T(), matchModel.StatusLive, live.Status)
	assert.True(s.T(), live.ClockRunning)

	goal := s.recordGoal(match.MatchID, matchModel.SideHome, 9, "R. Vos")
	assert.Equal(s.T(), 1, goal.HomeScore)
	assert.Equal(s.T(), 1, goal.Event.Seq)

	s.recordGoal(match.MatchID, matchModel.SideAway, 41, "")
	s.recordGoal(match.MatchID, matchModel.SideHome, 77, "R. Vos")

	ended := s.endMatch(match.MatchID, 2, 1)
	assert.Equal(s.T(), matchModel.StatusCompleted, ended.Match.Status)
	assert.Empty(s.T(), ended.Warnings)
	assert.Len(s.T(), ended.Match.Events, 3)

	// Final result on the season table.
	resp, respBody = s.doRequest("GET", "/api/v1/seasons/"+season.SeasonID+"/standings", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	var table standingsModel.TableResponse
	require.NoError(s.T(), json.Unmarshal(respBody, &table))
	require.Len(s.T(), table.Rows, 2)
	assert.Equal(s.T(), "Amsterdam FC", table.Rows[0].TeamName)
	assert.Equal(s.T(), 3, table.Rows[0].Points)
	assert.Equal(s.T(), "Breda United", table.Rows[1].TeamName)
	assert.Equal(s.T(), 0, table.Rows[1].Points)
}

func (s *E2ETestSuite) TestConcurrentOperatorConflict() {
	home := s.createTeam("Amsterdam FC")
	away := s.createTeam("Breda United")
	season := s.createSeason("2026 Spring")

	match := s.scheduleMatch(home.TeamID, away.TeamID, season.SeasonID, time.Now().Add(time.Hour))
	live := s.startMatch(match.MatchID)

	sync := &matchModel.SyncRequest{
		HomeScore: 1,
		Events: []matchModel.EventSnapshot{
			{Type: matchModel.EventGoal, Side: matchModel.SideHome, Minute: 3},
		},
		Version: live.Version,
	}
	resp, respBody := s.doRequest("PUT", fmt.Sprintf("/api/v1/matches/%s/live/sync", match.MatchID), sync)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	// Second operator pushes with the token it got at kickoff.
	resp, respBody = s.doRequest("PUT", fmt.Sprintf("/api/v1/matches/%s/live/sync", match.MatchID), sync)
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode, string(respBody))

	code, message := s.parseErrorResponse(respBody)
	assert.Equal(s.T(), "CONFLICT", code)
	assert.Contains(s.T(), message, "refresh and retry")
}

func (s *E2ETestSuite) TestTeamWithHistoryCannotBeDeleted() {
	home := s.createTeam("Amsterdam FC")
	away := s.createTeam("Breda United")
	season := s.createSeason("2026 Spring")
	s.scheduleMatch(home.TeamID, away.TeamID, season.SeasonID, time.Now().Add(48*time.Hour))

	resp, respBody := s.doRequest("DELETE", "/api/v1/teams/"+home.TeamID, nil)
	require.Equal(s.T(), http.StatusConflict, resp.StatusCode, string(respBody))

	code, message := s.parseErrorResponse(respBody)
	assert.Equal(s.T(), "CONFLICT", code)
	assert.Contains(s.T(), message, "referenced by matches")

	// Still listed.
	resp, respBody = s.doRequest("GET", "/api/v1/teams/"+home.TeamID, nil)
	assert.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))
}

func (s *E2ETestSuite) TestSeasonActivationIsExclusive() {
	first := s.createSeason("2026 Spring")
	second := s.createSeason("2026 Autumn")

	resp, respBody := s.doRequest("POST", "/api/v1/seasons/"+first.SeasonID+"/activate", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	resp, respBody = s.doRequest("POST", "/api/v1/seasons/"+second.SeasonID+"/activate", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	resp, respBody = s.doRequest("GET", "/api/v1/seasons", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	var result struct {
		Seasons []seasonModel.SeasonResponse `json:"seasons"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result))

	activeCount := 0
	for _, season := range result.Seasons {
		if season.IsActive {
			activeCount++
			assert.Equal(s.T(), second.SeasonID, season.SeasonID)
		}
	}
	assert.Equal(s.T(), 1, activeCount)
}

func (s *E2ETestSuite) TestPostponedMatchKeepsNoLiveData() {
	home := s.createTeam("Amsterdam FC")
	away := s.createTeam("Breda United")
	season := s.createSeason("2026 Spring")

	match := s.scheduleMatch(home.TeamID, away.TeamID, season.SeasonID, time.Now().Add(time.Hour))
	s.startMatch(match.MatchID)
	s.recordGoal(match.MatchID, matchModel.SideHome, 5, "")

	// Abandoned mid-game.
	resp, respBody := s.doRequest("POST", "/api/v1/matches/"+match.MatchID+"/status", &matchModel.TransitionRequest{
		Status: matchModel.StatusPostponed,
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(respBody))

	var result struct {
		Match matchModel.MatchResponse `json:"match"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result))
	assert.Equal(s.T(), matchModel.StatusPostponed, result.Match.Status)
	assert.Equal(s.T(), 0, result.Match.HomeScore)
	assert.Empty(s.T(), result.Match.Events)
}
