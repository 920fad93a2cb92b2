// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
	"github.com/shafraaxz/horse-league-sub002/internal/match/service"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// handleError maps service errors to the error envelope. Validation failures
// are 400 with the operator-displayable reason; missing references are 404;
// lifecycle and concurrency violations are 409.
func (h *Handler) handleError(c *gin.Context, op string, err error) {
	var verr *matchModel.ValidationError
	switch {
	case errors.As(err, &verr):
		errorResponse(c, "VALIDATION_ERROR", verr.Message, http.StatusBadRequest)
	case errors.Is(err, matchModel.ErrMatchNotFound):
		notFoundResponse(c, "match not found")
	case errors.Is(err, matchModel.ErrTeamNotFound):
		notFoundResponse(c, "referenced team not found")
	case errors.Is(err, matchModel.ErrSeasonNotFound):
		notFoundResponse(c, "referenced season not found")
	case errors.Is(err, matchModel.ErrMatchFinalized):
		conflictResponse(c, "match is finalized and cannot be modified")
	case errors.Is(err, matchModel.ErrMatchNotLive):
		conflictResponse(c, "match is not live")
	case errors.Is(err, matchModel.ErrEmptyLedger):
		conflictResponse(c, "no events to undo")
	case errors.Is(err, matchModel.ErrVersionConflict):
		conflictResponse(c, "match was modified by another operator, refresh and retry")
	case errors.Is(err, matchModel.ErrMatchInProgress):
		conflictResponse(c, "match is in progress")
	default:
		h.logger.Errorw("match handler error", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// CreateMatch handles POST /api/v1/matches.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req matchModel.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "create match", err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{"match": resp})
}

// GetMatch handles GET /api/v1/matches/:id.
func (h *Handler) GetMatch(c *gin.Context) {
	resp, err := h.service.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get match", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMatches handles GET /api/v1/matches.
func (h *Handler) ListMatches(c *gin.Context) {
	filter := matchModel.ListMatchesFilter{
		SeasonID: c.Query("season_id"),
		TeamID:   c.Query("team_id"),
		Status:   matchModel.Status(c.Query("status")),
	}
	filter.Limit = queryInt(c, "limit", 0)
	filter.Offset = queryInt(c, "offset", 0)

	resp, err := h.service.ListMatches(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, "list matches", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"matches": resp})
}

// UpdateMatch handles PATCH /api/v1/matches/:id.
func (h *Handler) UpdateMatch(c *gin.Context) {
	var req matchModel.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateMatch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "update match", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"match": resp})
}

// TransitionMatch handles POST /api/v1/matches/:id/status.
func (h *Handler) TransitionMatch(c *gin.Context) {
	var req matchModel.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.TransitionMatch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "transition match", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"match": resp})
}

// DeleteMatch handles DELETE /api/v1/matches/:id.
func (h *Handler) DeleteMatch(c *gin.Context) {
	if err := h.service.DeleteMatch(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, "delete match", err)
		return
	}

	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	value := c.Query(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
