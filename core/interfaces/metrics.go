// ABOUTME: Metrics interface for recording fetch and resolution outcomes
// ABOUTME: Lets core services report counters without depending on a metrics backend

package interfaces

import "time"

// Metrics records operational counters for the resolution pipeline
type Metrics interface {
	// ObserveFetch records one outbound fetch and how it ended
	// ("ok", "status", "timeout" or "error").
	ObserveFetch(outcome string, duration time.Duration)

	// ObserveTier records one resolution tier attempt
	// ("accepted", "rejected" or "failed").
	ObserveTier(tier, outcome string)

	// ObserveSearch records one search resolution ("ok" or "error")
	ObserveSearch(outcome string, results int)
}
