// Package handler provides the HTTP handler for league standings.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shafraaxz/horse-league-sub002/internal/standings/model"
	"github.com/shafraaxz/horse-league-sub002/internal/standings/service"
)

// Handler serves the standings endpoint.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new standings handler.
func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// GetTable handles GET /api/v1/seasons/:id/standings.
func (h *Handler) GetTable(c *gin.Context) {
	seasonID := c.Param("id")

	table, err := h.service.GetTable(c.Request.Context(), seasonID)
	if err != nil {
		if errors.Is(err, model.ErrSeasonNotFound) {
			notFoundResponse(c, "season not found")
			return
		}
		h.logger.Errorw("failed to build standings", "season_id", seasonID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, table)
}
