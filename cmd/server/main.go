// Package main provides the entry point for the league HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/shafraaxz/horse-league-sub002/internal/config"
	"github.com/shafraaxz/horse-league-sub002/internal/database"
	"github.com/shafraaxz/horse-league-sub002/internal/database/migrate"
	"github.com/shafraaxz/horse-league-sub002/internal/health"
	matchRouter "github.com/shafraaxz/horse-league-sub002/internal/match/router"
	"github.com/shafraaxz/horse-league-sub002/internal/middleware"
	playerRouter "github.com/shafraaxz/horse-league-sub002/internal/player/router"
	seasonRouter "github.com/shafraaxz/horse-league-sub002/internal/season/router"
	standingsRouter "github.com/shafraaxz/horse-league-sub002/internal/standings/router"
	teamRouter "github.com/shafraaxz/horse-league-sub002/internal/team/router"
	userRouter "github.com/shafraaxz/horse-league-sub002/internal/user/router"
	"github.com/shafraaxz/horse-league-sub002/pkg/logger"
)

func main() {
	// Missing .env is fine, configuration falls back to real env vars.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync() //nolint:errcheck

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}

	if err := migrate.Up(db); err != nil {
		appLogger.Fatalw("failed to run migrations", "error", err)
	}
	appLogger.Infow("migrations applied")

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(appLogger))
	r.Use(middleware.Logger(appLogger))

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	teamRouter.RegisterRoutes(r, db, appLogger)
	playerRouter.RegisterRoutes(r, db, appLogger)
	seasonRouter.RegisterRoutes(r, db, appLogger)
	matchRouter.RegisterRoutes(r, db, appLogger)
	standingsRouter.RegisterRoutes(r, db, appLogger)
	userRouter.RegisterRoutes(r, db, appLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Infow("starting server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infow("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Errorw("forced shutdown", "error", err)
	}
	appLogger.Infow("server stopped")
}
