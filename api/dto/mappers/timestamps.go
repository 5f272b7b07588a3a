// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"slices"

	"jumpscared-api/api/dto/responses"
	"jumpscared-api/core/domain"
)

// ToSearchResponse converts domain results, always returning a non-nil slice
func ToSearchResponse(results []domain.SearchResult) []responses.SearchResultResponse {
	out := make([]responses.SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, responses.SearchResultResponse{Title: r.Title, URL: r.URL})
	}
	return out
}

// ToTimestampsResponse converts resolved page timestamps. Timecodes are
// zero-padded, so a lexical sort is chronological.
func ToTimestampsResponse(page *domain.PageTimestamps) *responses.TimestampsResponse {
	if page == nil {
		return nil
	}

	timestamps := slices.Clone(page.Timestamps)
	if timestamps == nil {
		timestamps = []string{}
	}
	slices.Sort(timestamps)

	return &responses.TimestampsResponse{
		URL:        page.URL,
		Title:      page.Title,
		Timestamps: timestamps,
	}
}
