// Package router provides season module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shafraaxz/horse-league-sub002/internal/season/handler"
	"github.com/shafraaxz/horse-league-sub002/internal/season/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/season/service"
)

// RegisterRoutes registers season module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	seasons := r.Group("/api/v1/seasons")
	seasons.POST("", h.CreateSeason)
	seasons.GET("", h.ListSeasons)
	seasons.GET("/:id", h.GetSeason)
	seasons.PATCH("/:id", h.UpdateSeason)
	seasons.POST("/:id/activate", h.ActivateSeason)
	seasons.DELETE("/:id", h.DeleteSeason)
}
