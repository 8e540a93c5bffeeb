package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/adapters/storage/jsonfile"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/services"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/handlers"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/middleware"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/platform/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title SGC Backend API
// @version 1.0
// @description Management backend for small businesses: payables, receivables, inventory, clients, orders and reports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Initialize the JSON file store that backs every repository
	store, err := jsonfile.NewStore(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to initialize data store", slog.String("error", err.Error()), slog.String("data_dir", cfg.DataDir))
		os.Exit(1)
	}
	logger.Info("Data store ready", slog.String("data_dir", store.Dir()))

	repos := jsonfile.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	// Seed the default admin user and the category registries so a fresh
	// data directory is usable immediately.
	seedCtx := context.Background()
	if err := serviceContainer.User.EnsureAdminUser(seedCtx); err != nil {
		logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := serviceContainer.Category.EnsureDefaultCategories(seedCtx); err != nil {
		logger.Error("Failed to seed default categories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
