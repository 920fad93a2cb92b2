package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
	"github.com/shafraaxz/horse-league-sub002/internal/match/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateMatch(ctx context.Context, req *matchModel.CreateMatchRequest) (*matchModel.MatchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.MatchResponse), args.Error(1)
}

func (m *mockService) GetMatch(ctx context.Context, matchID string) (*matchModel.MatchResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.MatchResponse), args.Error(1)
}

func (m *mockService) ListMatches(ctx context.Context, filter matchModel.ListMatchesFilter) ([]matchModel.MatchResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]matchModel.MatchResponse), args.Error(1)
}

func (m *mockService) UpdateMatch(ctx context.Context, matchID string, req *matchModel.UpdateMatchRequest) (*matchModel.MatchResponse, error) {
	args := m.Called(ctx, matchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.MatchResponse), args.Error(1)
}

func (m *mockService) TransitionMatch(ctx context.Context, matchID string, req *matchModel.TransitionRequest) (*matchModel.MatchResponse, error) {
	args := m.Called(ctx, matchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.MatchResponse), args.Error(1)
}

func (m *mockService) DeleteMatch(ctx context.Context, matchID string) error {
	args := m.Called(ctx, matchID)
	return args.Error(0)
}

func (m *mockService) StartMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

func (m *mockService) PauseMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

func (m *mockService) ResumeMatch(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

func (m *mockService) RecordEvent(ctx context.Context, matchID string, req *matchModel.RecordEventRequest) (*matchModel.RecordEventResponse, error) {
	args := m.Called(ctx, matchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.RecordEventResponse), args.Error(1)
}

func (m *mockService) UndoLastEvent(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

func (m *mockService) EndMatch(ctx context.Context, matchID string, req *matchModel.EndMatchRequest) (*matchModel.EndMatchResponse, error) {
	args := m.Called(ctx, matchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.EndMatchResponse), args.Error(1)
}

func (m *mockService) SyncLiveState(ctx context.Context, matchID string, req *matchModel.SyncRequest) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

func (m *mockService) GetLiveState(ctx context.Context, matchID string) (*matchModel.LiveStateResponse, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchModel.LiveStateResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	matches := r.Group("/api/v1/matches")
	matches.POST("", h.CreateMatch)
	matches.GET("", h.ListMatches)
	matches.GET("/:id", h.GetMatch)
	matches.DELETE("/:id", h.DeleteMatch)
	matches.GET("/:id/live", h.GetLiveState)
	matches.POST("/:id/live/start", h.StartMatch)
	matches.POST("/:id/live/events", h.RecordEvent)
	matches.DELETE("/:id/live/events/last", h.UndoLastEvent)
	matches.POST("/:id/live/end", h.EndMatch)
	matches.PUT("/:id/live/sync", h.SyncLiveState)
	return r
}

func newHandler() (*Handler, *mockService) {
	mockSvc := new(mockService)
	return New(mockSvc, zap.NewNop().Sugar()), mockSvc
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateMatch(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.CreateMatchRequest{
			HomeTeamID:  "t-1",
			AwayTeamID:  "t-2",
			SeasonID:    "s-1",
			ScheduledAt: time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
		}
		resp := &matchModel.MatchResponse{MatchID: "m-1", Status: matchModel.StatusScheduled, Events: []matchModel.Event{}}
		mockSvc.On("CreateMatch", mock.Anything, req).Return(resp, nil)

		w := postJSON(router, "/api/v1/matches", req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]matchModel.MatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "m-1", response["match"].MatchID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newHandler()
		router := setupRouter(h)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/matches", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.CreateMatchRequest{
			HomeTeamID:  "t-1",
			AwayTeamID:  "t-1",
			SeasonID:    "s-1",
			ScheduledAt: time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
		}
		mockSvc.On("CreateMatch", mock.Anything, req).
			Return(nil, matchModel.NewValidationError("away_team_id", "home and away team must differ"))

		w := postJSON(router, "/api/v1/matches", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, w.Body.String(), "home and away team must differ")
	})

	t.Run("unknown team maps to 404", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.CreateMatchRequest{
			HomeTeamID:  "t-missing",
			AwayTeamID:  "t-2",
			SeasonID:    "s-1",
			ScheduledAt: time.Date(2025, 4, 1, 18, 0, 0, 0, time.UTC),
		}
		mockSvc.On("CreateMatch", mock.Anything, req).Return(nil, matchModel.ErrTeamNotFound)

		w := postJSON(router, "/api/v1/matches", req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", matchModel.ErrMatchNotFound, http.StatusNotFound},
		{"finalized", matchModel.ErrMatchFinalized, http.StatusConflict},
		{"not live", matchModel.ErrMatchNotLive, http.StatusConflict},
		{"version conflict", matchModel.ErrVersionConflict, http.StatusConflict},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newHandler()
			router := setupRouter(h)
			mockSvc.On("StartMatch", mock.Anything, "m-1").Return(nil, tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/v1/matches/m-1/live/start", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandler_ListMatches(t *testing.T) {
	t.Run("parses query filters", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		expected := matchModel.ListMatchesFilter{
			SeasonID: "s-1",
			Status:   matchModel.StatusLive,
			Limit:    10,
			Offset:   20,
		}
		mockSvc.On("ListMatches", mock.Anything, expected).Return([]matchModel.MatchResponse{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/matches?season_id=s-1&status=live&limit=10&offset=20", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("garbage pagination falls back to defaults", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		mockSvc.On("ListMatches", mock.Anything, matchModel.ListMatchesFilter{}).
			Return([]matchModel.MatchResponse{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/matches?limit=abc&offset=-5", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_LiveEndpoints(t *testing.T) {
	t.Run("record event returns the updated score", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.RecordEventRequest{Type: matchModel.EventGoal, Side: matchModel.SideHome}
		resp := &matchModel.RecordEventResponse{
			Event:     matchModel.Event{EventID: "e-1", Seq: 1, Type: matchModel.EventGoal, Side: matchModel.SideHome, Minute: 5},
			HomeScore: 1,
		}
		mockSvc.On("RecordEvent", mock.Anything, "m-1", req).Return(resp, nil)

		w := postJSON(router, "/api/v1/matches/m-1/live/events", req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got matchModel.RecordEventResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, 1, got.HomeScore)
		assert.Equal(t, "e-1", got.Event.EventID)
	})

	t.Run("undo on an empty ledger is a conflict", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)
		mockSvc.On("UndoLastEvent", mock.Anything, "m-1").Return(nil, matchModel.ErrEmptyLedger)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/matches/m-1/live/events/last", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "no events to undo")
	})

	t.Run("end match surfaces warnings", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.EndMatchRequest{HomeScore: 2, AwayScore: 1}
		resp := &matchModel.EndMatchResponse{
			Match:    &matchModel.MatchResponse{MatchID: "m-1", Status: matchModel.StatusCompleted, Events: []matchModel.Event{}},
			Warnings: []string{"final score 2-1 does not match ledger-derived score 1-1"},
		}
		mockSvc.On("EndMatch", mock.Anything, "m-1", req).Return(resp, nil)

		w := postJSON(router, "/api/v1/matches/m-1/live/end", req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got matchModel.EndMatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got.Warnings, 1)
	})

	t.Run("stale sync is a conflict", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)

		req := &matchModel.SyncRequest{HomeScore: 1, Version: 3}
		mockSvc.On("SyncLiveState", mock.Anything, "m-1", req).Return(nil, matchModel.ErrVersionConflict)

		raw, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("PUT", "/api/v1/matches/m-1/live/sync", bytes.NewBuffer(raw))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "refresh and retry")
	})
}

func TestHandler_DeleteMatch(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)
		mockSvc.On("DeleteMatch", mock.Anything, "m-1").Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/matches/m-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("live match is a conflict", func(t *testing.T) {
		h, mockSvc := newHandler()
		router := setupRouter(h)
		mockSvc.On("DeleteMatch", mock.Anything, "m-1").Return(matchModel.ErrMatchInProgress)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/v1/matches/m-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
