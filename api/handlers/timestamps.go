// ABOUTME: Timestamps handler for the Huma API
// ABOUTME: Validates a page URL against the site host and returns its timecodes

package handlers

import (
	"context"
	"errors"
	"net/http"

	"jumpscared-api/api/dto/mappers"
	"jumpscared-api/api/dto/responses"
	"jumpscared-api/core/domain"
	"jumpscared-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// TimestampsHandler handles timecode extraction requests
type TimestampsHandler struct {
	contentService interfaces.ContentService
	validator      domain.URLValidator
}

// NewTimestampsHandler creates a new timestamps handler. Only URLs accepted by
// validator reach the content service.
func NewTimestampsHandler(contentService interfaces.ContentService, validator domain.URLValidator) *TimestampsHandler {
	return &TimestampsHandler{
		contentService: contentService,
		validator:      validator,
	}
}

// RegisterRoutes registers timestamps routes
func (h *TimestampsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "timestamps",
		Method:      http.MethodGet,
		Path:        "/api/timestamps",
		Summary:     "Extract page timecodes",
		Description: "Resolves a content page and returns its distinct HH:MM:SS timecodes",
		Tags:        []string{"Timestamps"},
	}, h.Timestamps)
}

// TimestampsInput defines the input for timecode extraction
type TimestampsInput struct {
	URL string `query:"url" doc:"Absolute https URL of a content page on the site" example:"https://wheresthejump.com/jump-scares-in-it-2017/"`
}

// TimestampsOutput defines the output for timecode extraction
type TimestampsOutput struct {
	Body responses.TimestampsResponse
}

// Timestamps handles GET /api/timestamps
func (h *TimestampsHandler) Timestamps(ctx context.Context, input *TimestampsInput) (*TimestampsOutput, error) {
	page, err := h.validator.Validate(input.URL)
	if err != nil {
		return nil, toHumaError("timestamps", err)
	}

	result, err := h.contentService.Resolve(ctx, page)
	if err != nil {
		return nil, toHumaError("timestamps", err)
	}

	response := mappers.ToTimestampsResponse(result)
	if response == nil {
		return nil, toHumaError("timestamps", errors.New("content service returned no result"))
	}

	return &TimestampsOutput{Body: *response}, nil
}
