package handlers

import (
	"context"
	"testing"

	"jumpscared-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
)

// mockSearchService is a mock implementation of the search service
type mockSearchService struct {
	searchFunc func(ctx context.Context, query string) ([]domain.SearchResult, error)
	queries    []string
}

func (m *mockSearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

// mockContentService is a mock implementation of the content service
type mockContentService struct {
	resolveFunc func(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error)
	pages       []string
}

func (m *mockContentService) Resolve(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error) {
	m.pages = append(m.pages, page.String())
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, page)
	}
	return &domain.PageTimestamps{URL: page.String(), Timestamps: []string{}}, nil
}

// newTestAPI mirrors the production config so bodies carry no $schema link
func newTestAPI(t *testing.T) humatest.TestAPI {
	config := huma.DefaultConfig("Test API", "1.0.0")
	config.CreateHooks = nil
	_, api := humatest.New(t, config)
	return api
}
