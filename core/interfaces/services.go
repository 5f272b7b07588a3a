// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the search and content resolvers used by handlers

package interfaces

import (
	"context"

	"jumpscared-api/core/domain"
)

// SearchService resolves free-text queries into content pages
type SearchService interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// ContentService resolves a validated page into its timecodes
type ContentService interface {
	Resolve(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error)
}
