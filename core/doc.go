// Package core contains the business logic for the JumpScared backend.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: value types, query normalization and the site URL validator
// - timecode: timecode normalization and extraction from page text
// - search: resolves a free-text query through the site's search page
// - content: resolves a page through ordered tiers with interstitial detection
// - errors: custom error types for better error handling
// - interfaces: contracts for external dependencies (fetcher, logger, metrics)
//
// # Design Principles
//
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Nothing is persisted or cached between requests
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Fetcher: myFetcher, // implements interfaces.Fetcher
//	    Logger:  myLogger,  // implements interfaces.Logger
//	}
//
//	contentService, err := content.NewContentService(deps, content.Config{
//	    BaseURL: "https://wheresthejump.com",
//	})
//
//	page, err := domain.NewURLValidator("wheresthejump.com").Validate(rawURL)
//	timestamps, err := contentService.Resolve(ctx, page)
package core
