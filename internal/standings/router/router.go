// Package router wires the standings endpoint into the gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shafraaxz/horse-league-sub002/internal/standings/handler"
	"github.com/shafraaxz/horse-league-sub002/internal/standings/repository"
	"github.com/shafraaxz/horse-league-sub002/internal/standings/service"
)

// RegisterRoutes mounts the standings route under /api/v1.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/api/v1/seasons/:id/standings", h.GetTable)
}
