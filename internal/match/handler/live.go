package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	matchModel "github.com/shafraaxz/horse-league-sub002/internal/match/model"
)

// StartMatch handles POST /api/v1/matches/:id/live/start.
func (h *Handler) StartMatch(c *gin.Context) {
	resp, err := h.service.StartMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "start match", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PauseMatch handles POST /api/v1/matches/:id/live/pause.
func (h *Handler) PauseMatch(c *gin.Context) {
	resp, err := h.service.PauseMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "pause match", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResumeMatch handles POST /api/v1/matches/:id/live/resume.
func (h *Handler) ResumeMatch(c *gin.Context) {
	resp, err := h.service.ResumeMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "resume match", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordEvent handles POST /api/v1/matches/:id/live/events.
func (h *Handler) RecordEvent(c *gin.Context) {
	var req matchModel.RecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordEvent(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "record event", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UndoLastEvent handles DELETE /api/v1/matches/:id/live/events/last.
func (h *Handler) UndoLastEvent(c *gin.Context) {
	resp, err := h.service.UndoLastEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "undo last event", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EndMatch handles POST /api/v1/matches/:id/live/end.
func (h *Handler) EndMatch(c *gin.Context) {
	var req matchModel.EndMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.EndMatch(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "end match", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SyncLiveState handles PUT /api/v1/matches/:id/live/sync.
func (h *Handler) SyncLiveState(c *gin.Context) {
	var req matchModel.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SyncLiveState(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "sync live state", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLiveState handles GET /api/v1/matches/:id/live.
func (h *Handler) GetLiveState(c *gin.Context) {
	resp, err := h.service.GetLiveState(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get live state", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
