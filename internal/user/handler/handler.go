// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	userModel "github.com/shafraaxz/horse-league-sub002/internal/user/model"
	"github.com/shafraaxz/horse-league-sub002/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) handleError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, userModel.ErrUserExists):
		errorResponse(c, "USER_EXISTS", "username already exists", http.StatusBadRequest)
	case errors.Is(err, userModel.ErrInvalidUsername):
		errorResponse(c, "INVALID_REQUEST", "username is required", http.StatusBadRequest)
	case errors.Is(err, userModel.ErrInvalidRole):
		errorResponse(c, "INVALID_REQUEST", "role must be admin, operator or viewer", http.StatusBadRequest)
	case errors.Is(err, userModel.ErrUserNotFound):
		notFoundResponse(c, "user not found")
	default:
		h.logger.Errorw("user handler error", "op", op, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}

// CreateUser handles POST /api/v1/users.
func (h *Handler) CreateUser(c *gin.Context) {
	var req userModel.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{"user": resp})
}

// GetUser handles GET /api/v1/users/:id.
func (h *Handler) GetUser(c *gin.Context) {
	resp, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /api/v1/users.
func (h *Handler) ListUsers(c *gin.Context) {
	resp, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"users": resp})
}

// UpdateUser handles PATCH /api/v1/users/:id.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req userModel.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, "update user", err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{"user": resp})
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, "delete user", err)
		return
	}

	c.Status(http.StatusNoContent)
}
