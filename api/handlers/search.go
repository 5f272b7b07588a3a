// ABOUTME: Search handler for the Huma API
// ABOUTME: Resolves a free-text query into content pages on the target site

package handlers

import (
	"context"
	"net/http"

	"jumpscared-api/api/dto/mappers"
	"jumpscared-api/api/dto/responses"
	"jumpscared-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// SearchHandler handles search requests
type SearchHandler struct {
	searchService interfaces.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService interfaces.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/api/search",
		Summary:     "Search content pages",
		Description: "Runs the query through the site's own search and returns up to ten distinct content pages",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for a search. The length rule is applied
// after whitespace normalization, so it is not expressed as a schema constraint.
type SearchInput struct {
	Query string `query:"q" doc:"Free-text title query, at least 2 characters" example:"it"`
}

// SearchOutput defines the output for a search
type SearchOutput struct {
	Body []responses.SearchResultResponse
}

// Search handles GET /api/search
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	results, err := h.searchService.Search(ctx, input.Query)
	if err != nil {
		return nil, toHumaError("search", err)
	}

	return &SearchOutput{Body: mappers.ToSearchResponse(results)}, nil
}
