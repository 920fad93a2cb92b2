// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shafraaxz/horse-league-sub002/internal/match/handler"
	"github.com/shafraaxz/horse-league-sub002/internal/match/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/match/service"
)

// RegisterRoutes registers match module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	matches := r.Group("/api/v1/matches")
	matches.POST("", h.CreateMatch)
	matches.GET("", h.ListMatches)
	matches.GET("/:id", h.GetMatch)
	matches.PATCH("/:id", h.UpdateMatch)
	matches.POST("/:id/status", h.TransitionMatch)
	matches.DELETE("/:id", h.DeleteMatch)

	matches.GET("/:id/live", h.GetLiveState)
	matches.POST("/:id/live/start", h.StartMatch)
	matches.POST("/:id/live/pause", h.PauseMatch)
	matches.POST("/:id/live/resume", h.ResumeMatch)
	matches.POST("/:id/live/events", h.RecordEvent)
	matches.DELETE("/:id/live/events/last", h.UndoLastEvent)
	matches.POST("/:id/live/end", h.EndMatch)
	matches.PUT("/:id/live/sync", h.SyncLiveState)
}
