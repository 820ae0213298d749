// ABOUTME: Main entry point for the MagicMuse API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magicmuse-api/api"
	"magicmuse-api/api/handlers"
	"magicmuse-api/core/generation"
	"magicmuse-api/core/interfaces"
	"magicmuse-api/core/services"
	"magicmuse-api/core/templates"
	"magicmuse-api/core/visual"
	"magicmuse-api/core/workflow"
	"magicmuse-api/infrastructure/auth/supabase"
	"magicmuse-api/infrastructure/llm/openrouter"
	logruslogger "magicmuse-api/infrastructure/logger/logrus"
	stdlogger "magicmuse-api/infrastructure/logger/standard"
	"magicmuse-api/infrastructure/storage/memory"
	"magicmuse-api/infrastructure/storage/redis"
	"magicmuse-api/infrastructure/storage/sqlite"
	"magicmuse-api/pkg/config"
	"magicmuse-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var logger interfaces.Logger
	switch cfg.Log.Format {
	case "json":
		logger = logruslogger.NewLogger(cfg.Log.Level)
	default:
		logger = stdlogger.NewStandardLogger()
	}

	logger.Info("Starting MagicMuse API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"storage_type": cfg.Storage.Type,
		"llm_model":    cfg.LLM.Model,
	})

	ctx := context.Background()
	flags := featureflags.NewEnvManager("FEATURE_")

	// Create storage
	var storage interfaces.KVStorage
	switch cfg.Storage.Type {
	case "redis":
		redisStorage, err := redis.NewRedisStorage(cfg.Storage.Redis)
		if err != nil {
			logger.Error("Failed to create Redis storage, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			storage = memory.NewMemoryStorage()
		} else {
			storage = redisStorage
			logger.Info("Using Redis storage", map[string]interface{}{
				"address": cfg.Storage.Redis.Address,
			})
		}
	case "sqlite":
		sqliteStorage, err := sqlite.NewSQLiteStorage(cfg.Storage.SQLite.Path)
		if err != nil {
			log.Fatalf("Failed to open SQLite storage: %v", err)
		}
		storage = sqliteStorage
		logger.Info("Using SQLite storage", map[string]interface{}{
			"path": cfg.Storage.SQLite.Path,
		})
	default:
		storage = memory.NewMemoryStorage()
		logger.Info("Using memory storage", nil)
	}

	// Create LLM client
	var llm interfaces.LLMClient
	if cfg.LLM.APIKey != "" {
		client, err := openrouter.NewClient(cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to create LLM client: %v", err)
		}
		llm = client
	} else {
		logger.Warn("No LLM API key configured, generation endpoints will fail", nil)
	}

	// Create dependencies container
	deps := interfaces.Dependencies{
		Storage: storage,
		LLM:     llm,
		Logger:  logger,
	}

	// Create core services
	manager, err := workflow.NewManager(deps)
	if err != nil {
		log.Fatalf("Failed to create workflow manager: %v", err)
	}

	parser := visual.NewParser(
		visual.WithMarketHeuristic(flags.IsEnabled(ctx, featureflags.DemoVisualData)),
	)
	generationService := generation.NewService(deps, parser,
		generation.WithFactChecking(flags.IsEnabled(ctx, featureflags.FactCheckEnabled)),
	)

	catalog, err := templates.DefaultCatalog()
	if err != nil {
		log.Fatalf("Failed to load template catalog: %v", err)
	}

	var brandColors *services.BrandColorService
	if flags.IsEnabled(ctx, featureflags.BrandColorsEnabled) {
		brandColors = services.NewBrandColorService(deps)
	}

	var sessions interfaces.SessionProvider
	if cfg.Auth.URL != "" {
		client, err := supabase.NewClient(cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to create auth client: %v", err)
		}
		sessions = client
	}

	// Create API with middleware
	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	workflowHandler := handlers.NewWorkflowHandler(manager, catalog, brandColors)
	workflowHandler.RegisterRoutes(humaAPI)

	generationHandler := handlers.NewGenerationHandler(manager, generationService)
	generationHandler.RegisterRoutes(humaAPI)

	visualHandler := handlers.NewVisualHandler(parser)
	visualHandler.RegisterRoutes(humaAPI)

	sessionHandler := handlers.NewSessionHandler(sessions)
	sessionHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
