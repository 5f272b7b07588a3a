// ABOUTME: Main entry point for the JumpScared API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jumpscared-api/api"
	"jumpscared-api/core/content"
	"jumpscared-api/core/domain"
	"jumpscared-api/core/interfaces"
	"jumpscared-api/core/search"
	stdhttp "jumpscared-api/infrastructure/http/standard"
	"jumpscared-api/infrastructure/logger/logrus"
	"jumpscared-api/infrastructure/metrics/prometheus"
	"jumpscared-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrus.NewLogger(logrus.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting JumpScared API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"site":          cfg.Site.BaseURL,
		"fetch_timeout": cfg.Site.FetchTimeout.String(),
		"rate_limit":    cfg.RateLimit.Requests,
	})

	metrics := prometheus.New()

	// Create fetcher, redirects may not leave the site
	fetcher := stdhttp.NewStandardHTTPClient(stdhttp.Config{
		Timeout:        cfg.Site.FetchTimeout,
		UserAgent:      cfg.Site.UserAgent,
		AcceptLanguage: cfg.Site.AcceptLanguage,
		AllowedHost:    cfg.Site.Host(),
		Logger:         logger,
		Metrics:        metrics,
	})

	// Create dependencies container
	deps := interfaces.Dependencies{
		Fetcher: fetcher,
		Logger:  logger,
		Metrics: metrics,
	}

	// Create services
	searchService, err := search.NewSearchService(deps, search.Config{
		BaseURL:    cfg.Site.BaseURL,
		MaxResults: cfg.Site.MaxResults,
	})
	if err != nil {
		log.Fatalf("Failed to create search service: %v", err)
	}
	contentService, err := content.NewContentService(deps, content.Config{
		BaseURL: cfg.Site.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create content service: %v", err)
	}
	validator := domain.NewURLValidator(cfg.Site.Host())

	// Create API with middleware
	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
		Metrics:    metrics.Handler(),
	})
	api.RegisterRoutes(humaAPI, searchService, contentService, validator)

	// Each request can pay for two sequential fetches
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.Site.FetchTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
			"tiers":   contentService.TierNames(),
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

func init() {
	// Print banner
	fmt.Println(`
       __                      _____                          __
      / /_  ______ ___  ____  / ___/_________ _________  ____/ /
 __  / / / / / __ '__ \/ __ \ \__ \/ ___/ __ '/ ___/ _ \/ __  /
/ /_/ / /_/ / / / / / / /_/ /___/ / /__/ /_/ / /  /  __/ /_/ /
\____/\__,_/_/ /_/ /_/ .___//____/\___/\__,_/_/   \___/\__,_/
                    /_/
	`)
}
