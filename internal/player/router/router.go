// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shafraaxz/horse-league-sub002/internal/player/handler"
	"github.com/shafraaxz/horse-league-sub002/internal/player/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	players := r.Group("/api/v1/players")
	players.POST("", h.CreatePlayer)
	players.GET("", h.ListPlayers)
	players.GET("/:id", h.GetPlayer)
	players.PATCH("/:id", h.UpdatePlayer)
	players.DELETE("/:id", h.DeletePlayer)
}
