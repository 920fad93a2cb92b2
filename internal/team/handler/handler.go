// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/shafraaxz/horse-league-sub002/internal/team/model"
	"github.com/shafraaxz/horse-league-sub002/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, teamModel.ErrTeamExists):
		errorResponse(c, "TEAM_EXISTS", "team name already exists", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrInvalidTeamName):
		errorResponse(c, "INVALID_REQUEST", "team name is required", http.StatusBadRequest)
	case errors.Is(err, teamModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, teamModel.ErrTeamHasMatches):
		errorResponse(c, "CONFLICT", "team is referenced by matches and cannot be deleted", http.StatusConflict)
	default:
		h.logger.Errorw("team handler error", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// CreateTeam handles POST /api/v1/teams.
func (h *Handler) CreateTeam(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "create team", err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{"team": resp})
}

// GetTeam handles GET /api/v1/teams/:id.
func (h *Handler) GetTeam(c *gin.Context) {
	resp, err := h.service.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get team", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /api/v1/teams.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.handleError(c, "list teams", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"teams": resp})
}

// UpdateTeam handles PATCH /api/v1/teams/:id.
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateTeam(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "update team", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"team": resp})
}

// DeleteTeam handles DELETE /api/v1/teams/:id.
func (h *Handler) DeleteTeam(c *gin.Context) {
	if err := h.service.DeleteTeam(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, "delete team", err)
		return
	}

	c.Status(http.StatusNoContent)
}
