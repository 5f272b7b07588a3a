// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware, metrics and the root banner

package api

import (
	"net/http"
	"time"

	"jumpscared-api/api/handlers"
	"jumpscared-api/api/middleware"
	"jumpscared-api/core/domain"
	"jumpscared-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Banner is served as plain text at the root path
const Banner = "JumpScared backend is running"

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window, 0 disables limiting
	RateWindow time.Duration // rate limit window

	// Metrics, when set, is mounted at /metrics
	Metrics http.Handler
}

// NewAPI creates a Huma API without logging, rate limiting or metrics
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS goes first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(Banner))
	})
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics)
	}

	// Every error body is {"error": "..."}, including framework validation errors
	huma.NewError = handlers.NewErrorBody

	config := huma.DefaultConfig("JumpScared API", "1.0.0")
	config.Info.Description = "Finds jump scare pages on the target site and extracts their timecodes"
	config.CreateHooks = nil

	api := humachi.New(router, config)

	// The OpenAPI spec is automatically available at /openapi.json
	// The docs UI is automatically available at /docs

	return api, router
}

// RegisterRoutes wires every endpoint onto api
func RegisterRoutes(api huma.API, search interfaces.SearchService, content interfaces.ContentService, validator domain.URLValidator) {
	handlers.NewHealthHandler().RegisterRoutes(api)
	handlers.NewSearchHandler(search).RegisterRoutes(api)
	handlers.NewTimestampsHandler(content, validator).RegisterRoutes(api)
}
