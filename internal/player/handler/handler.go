// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/shafraaxz/horse-league-sub002/internal/player/model"
	"github.com/shafraaxz/horse-league-sub002/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, playerModel.ErrInvalidPlayerName):
		errorResponse(c, "INVALID_REQUEST", "player name is required", http.StatusBadRequest)
	case errors.Is(err, playerModel.ErrInvalidNumber):
		errorResponse(c, "INVALID_REQUEST", "squad number must be between 1 and 99", http.StatusBadRequest)
	case errors.Is(err, playerModel.ErrNumberTaken):
		errorResponse(c, "NUMBER_TAKEN", "squad number already taken in this team", http.StatusBadRequest)
	case errors.Is(err, playerModel.ErrPlayerNotFound):
		notFoundResponse(c, "player not found")
	case errors.Is(err, playerModel.ErrTeamNotFound):
		notFoundResponse(c, "referenced team not found")
	default:
		h.logger.Errorw("player handler error", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// CreatePlayer handles POST /api/v1/players.
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req playerModel.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreatePlayer(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "create player", err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{"player": resp})
}

// GetPlayer handles GET /api/v1/players/:id.
func (h *Handler) GetPlayer(c *gin.Context) {
	resp, err := h.service.GetPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get player", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPlayers handles GET /api/v1/players.
func (h *Handler) ListPlayers(c *gin.Context) {
	resp, err := h.service.ListPlayers(c.Request.Context(), c.Query("team_id"))
	if err != nil {
		h.handleError(c, "list players", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"players": resp})
}

// UpdatePlayer handles PATCH /api/v1/players/:id.
func (h *Handler) UpdatePlayer(c *gin.Context) {
	var req playerModel.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdatePlayer(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "update player", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"player": resp})
}

// DeletePlayer handles DELETE /api/v1/players/:id.
func (h *Handler) DeletePlayer(c *gin.Context) {
	if err := h.service.DeletePlayer(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, "delete player", err)
		return
	}

	c.Status(http.StatusNoContent)
}
