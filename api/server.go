// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"magicmuse-api/api/middleware"
	"magicmuse-api/core/interfaces"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is the allowed requests per second per client. Zero
	// disables rate limiting.
	RateLimit int
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	config := huma.DefaultConfig("MagicMuse API", "1.0.0")
	config.Info.Description = "API for AI-assisted presentation and blog content generation"

	// The OpenAPI spec is served at /openapi.json, the docs UI at /docs
	api := humachi.New(router, config)
	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be the first middleware
	router.Use(corsHandler())

	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(float64(cfg.RateLimit), cfg.RateLimit*2)
		router.Use(limiter.Middleware)
	}

	config := huma.DefaultConfig("MagicMuse API", "1.0.0")
	config.Info.Description = "API for AI-assisted presentation and blog content generation"

	api := humachi.New(router, config)
	return api, router
}

func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // Allow all origins in development
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
