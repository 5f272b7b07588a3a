package search

import (
	"context"
	"sync"
	"time"

	"jumpscared-api/core/domain"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     []string
	fetchFunc func(ctx context.Context, url, accept string) domain.RawDocument
}

func (m *mockFetcher) Fetch(ctx context.Context, url, accept string) domain.RawDocument {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url, accept)
	}
	return domain.RawDocument{}
}

// htmlPage returns a fetcher that always serves body with a 200
func htmlPage(body string) *mockFetcher {
	return &mockFetcher{
		fetchFunc: func(ctx context.Context, url, accept string) domain.RawDocument {
			return domain.RawDocument{Succeeded: true, StatusCode: 200, Body: body}
		},
	}
}

// mockMetrics records search observations
type mockMetrics struct {
	searches []string
}

func (m *mockMetrics) ObserveFetch(string, time.Duration) {}

func (m *mockMetrics) ObserveTier(string, string) {}

func (m *mockMetrics) ObserveSearch(outcome string, results int) {
	m.searches = append(m.searches, outcome)
}
