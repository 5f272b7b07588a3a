// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Fetcher provides bounded remote document retrieval
	Fetcher Fetcher

	// Logger provides structured logging
	Logger Logger

	// Metrics records resolution outcomes, may be nil
	Metrics Metrics
}
