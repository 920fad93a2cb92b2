// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	matchRepository "github.com/shafraaxz/horse-league-sub002/internal/match/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/team/handler"
	"github.com/shafraaxz/horse-league-sub002/internal/team/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	matchRepo := matchRepository.New(db, logger)
	svc := service.New(repo, matchRepo, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/api/v1/teams")
	teams.POST("", h.CreateTeam)
	teams.GET("", h.ListTeams)
	teams.GET("/:id", h.GetTeam)
	teams.PATCH("/:id", h.UpdateTeam)
	teams.DELETE("/:id", h.DeleteTeam)
}
