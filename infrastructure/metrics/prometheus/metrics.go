// ABOUTME: Prometheus implementation of the core Metrics interface
// ABOUTME: Tracks outbound fetch latency, tier outcomes and search result counts

package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements interfaces.Metrics on the Prometheus client
type Metrics struct {
	registry *prometheus.Registry

	FetchDuration  *prometheus.HistogramVec
	TierOutcomes   *prometheus.CounterVec
	SearchRequests *prometheus.CounterVec
	SearchResults  prometheus.Histogram
}

// New registers the collectors on a private registry so tests can build
// several instances side by side.
func New() *Metrics {
	m := &Metrics{
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "jumpscared_fetch_duration_seconds",
				Help:    "Outbound fetch duration in seconds by outcome",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
			},
			[]string{"outcome"},
		),
		TierOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumpscared_tier_resolutions_total",
				Help: "Content resolution tier attempts by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		SearchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jumpscared_search_requests_total",
				Help: "Search resolutions by outcome",
			},
			[]string{"outcome"},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "jumpscared_search_results",
				Help:    "Number of results returned per successful search",
				Buckets: []float64{0, 1, 2, 5, 10},
			},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(m.FetchDuration, m.TierOutcomes, m.SearchRequests, m.SearchResults)
	return m
}

// ObserveFetch records one outbound fetch under its outcome label
func (m *Metrics) ObserveFetch(outcome string, duration time.Duration) {
	m.FetchDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// ObserveTier counts one content tier attempt
func (m *Metrics) ObserveTier(tier, outcome string) {
	m.TierOutcomes.WithLabelValues(tier, outcome).Inc()
}

// ObserveSearch counts a search and, when it succeeded, its result count
func (m *Metrics) ObserveSearch(outcome string, results int) {
	m.SearchRequests.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		m.SearchResults.Observe(float64(results))
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
