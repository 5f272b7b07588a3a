// Package api provides the HTTP API layer for the JumpScared backend.
// It uses the Huma framework on a chi router to provide automatic OpenAPI
// documentation, request binding, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration, root banner and metrics mount
// - handlers/: HTTP request handlers and domain error mapping
// - dto/: Response DTOs and mappers
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET /api/health               {"status":"ok"}
//	GET /api/search?q=it          [{"title": "...", "url": "..."}]
//	GET /api/timestamps?url=...   {"url": "...", "title": "...", "timestamps": ["00:01:05"]}
//	GET /metrics                  Prometheus exposition (when configured)
//	GET /                         plain text banner
//
// The OpenAPI spec is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	    Metrics:    metrics.Handler(),
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//	api.RegisterRoutes(humaAPI, searchService, contentService, validator)
//
//	http.ListenAndServe(":3000", router)
//
// # Error Handling
//
// Every failure is a JSON body with a single error message:
//
//	{"error": "validation error on field 'q': query must be at least 2 characters"}
//
// Invalid input maps to 400, upstream and resolution failures to 502, and
// everything else to 500. An interstitial-blocked page has its own 502 message.
package api
