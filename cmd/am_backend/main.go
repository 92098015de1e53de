package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/arogyamitram/am_backend/internal/adapters/store/memory"
	"github.com/arogyamitram/am_backend/internal/core/services"
	"github.com/arogyamitram/am_backend/internal/handlers"
	"github.com/arogyamitram/am_backend/internal/middleware"
	"github.com/arogyamitram/am_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title ArogyaMitram Backend API
// @version 1.0
// @description Backend for the college medicine redistribution dashboard.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All state is process-lifetime in-memory stores: the listing table, the
	// static identity store, and the impact accumulator. Nothing survives a
	// restart, which is an accepted property of this deployment.
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	medicineRepo := memory.NewMedicineRepository()
	impactRepo := memory.NewImpactRepository(memory.SeedImpactStats())

	if cfg.SeedDemoData {
		if err := memory.SeedMedicines(context.Background(), medicineRepo); err != nil {
			logger.Error("Failed to seed demo listings", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Demo listings seeded")
	}

	svcContainer := services.NewServiceContainer(userRepo, medicineRepo, impactRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
