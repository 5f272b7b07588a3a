package content

import (
	"context"
	"strings"
	"sync"
	"time"

	"jumpscared-api/core/domain"
)

// routeFetcher serves canned documents keyed by URL prefix
type routeFetcher struct {
	mu     sync.Mutex
	routes map[string]domain.RawDocument
	calls  []string
}

func (f *routeFetcher) Fetch(ctx context.Context, url, accept string) domain.RawDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)

	for prefix, doc := range f.routes {
		if strings.HasPrefix(url, prefix) {
			return doc
		}
	}
	return domain.RawDocument{StatusCode: 404}
}

func ok(body string) domain.RawDocument {
	return domain.RawDocument{Succeeded: true, StatusCode: 200, Body: body}
}

// mockMetrics records tier observations in order
type mockMetrics struct {
	tiers []string
}

func (m *mockMetrics) ObserveFetch(string, time.Duration) {}

func (m *mockMetrics) ObserveTier(tier, outcome string) {
	m.tiers = append(m.tiers, tier+":"+outcome)
}

func (m *mockMetrics) ObserveSearch(string, int) {}
