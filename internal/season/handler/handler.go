// Package handler provides HTTP handlers for season endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	seasonModel "github.com/shafraaxz/horse-league-sub002/internal/season/model"
	"github.com/shafraaxz/horse-league-sub002/internal/season/service"
)

// Handler handles HTTP requests for season endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new season handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, seasonModel.ErrSeasonExists):
		errorResponse(c, "SEASON_EXISTS", "season name already exists", http.StatusBadRequest)
	case errors.Is(err, seasonModel.ErrInvalidSeasonName):
		errorResponse(c, "INVALID_REQUEST", "season name is required", http.StatusBadRequest)
	case errors.Is(err, seasonModel.ErrInvalidDates):
		errorResponse(c, "INVALID_REQUEST", "end date must be after start date", http.StatusBadRequest)
	case errors.Is(err, seasonModel.ErrSeasonNotFound):
		notFoundResponse(c, "season not found")
	default:
		h.logger.Errorw("season handler error", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// CreateSeason handles POST /api/v1/seasons.
func (h *Handler) CreateSeason(c *gin.Context) {
	var req seasonModel.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateSeason(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "create season", err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{"season": resp})
}

// GetSeason handles GET /api/v1/seasons/:id.
func (h *Handler) GetSeason(c *gin.Context) {
	resp, err := h.service.GetSeason(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get season", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListSeasons handles GET /api/v1/seasons.
func (h *Handler) ListSeasons(c *gin.Context) {
	resp, err := h.service.ListSeasons(c.Request.Context())
	if err != nil {
		h.handleError(c, "list seasons", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"seasons": resp})
}

// UpdateSeason handles PATCH /api/v1/seasons/:id.
func (h *Handler) UpdateSeason(c *gin.Context) {
	var req seasonModel.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateSeason(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "update season", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"season": resp})
}

// ActivateSeason handles POST /api/v1/seasons/:id/activate.
func (h *Handler) ActivateSeason(c *gin.Context) {
	resp, err := h.service.ActivateSeason(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "activate season", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"season": resp})
}

// DeleteSeason handles DELETE /api/v1/seasons/:id.
func (h *Handler) DeleteSeason(c *gin.Context) {
	if err := h.service.DeleteSeason(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, "delete season", err)
		return
	}

	c.Status(http.StatusNoContent)
}
