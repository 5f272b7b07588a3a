// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication, logging, and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library fetcher with a fixed timeout and browser-like headers
// - logger/logrus: Structured logger backed by logrus
// - metrics/prometheus: Prometheus collectors for fetches and resolution tiers
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Fetcher
//
// The fetcher never returns an error. Every outcome is a RawDocument:
//
//	fetcher := standard.NewStandardHTTPClient(standard.Config{
//	    Timeout:        12 * time.Second,
//	    UserAgent:      config.DefaultUserAgent,
//	    AcceptLanguage: config.DefaultAcceptLanguage,
//	})
//	doc := fetcher.Fetch(ctx, "https://wheresthejump.com/?s=it", "")
//	if doc.TimedOut {
//	    // Handle timeout
//	}
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger(logrus.Options{Level: "debug", Format: "json"})
//	logger.Info("Resolving page", map[string]interface{}{
//	    "url":  "https://wheresthejump.com/jump-scares-in-it-2017/",
//	    "tier": "wp-api",
//	})
package infrastructure
