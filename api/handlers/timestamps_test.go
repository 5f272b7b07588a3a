package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"jumpscared-api/core/domain"
	coreerrors "jumpscared-api/core/errors"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itURL = "https://wheresthejump.com/jump-scares-in-it-2017/"

func timestampsPath(raw string) string {
	return "/api/timestamps?url=" + url.QueryEscape(raw)
}

func newTimestampsAPI(t *testing.T, service *mockContentService) humatest.TestAPI {
	api := newTestAPI(t)
	NewTimestampsHandler(service, domain.NewURLValidator("wheresthejump.com")).RegisterRoutes(api)
	return api
}

func TestTimestampsHandler_Success(t *testing.T) {
	service := &mockContentService{
		resolveFunc: func(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error) {
			return &domain.PageTimestamps{
				URL:        page.String(),
				Title:      "It (2017)",
				Timestamps: []string{"01:05:09", "00:00:12"},
				Source:     "wp-api",
			}, nil
		},
	}
	api := newTimestampsAPI(t, service)

	resp := api.Get(timestampsPath(itURL))

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, itURL, body["url"])
	assert.Equal(t, "It (2017)", body["title"])
	assert.Equal(t, []interface{}{"00:00:12", "01:05:09"}, body["timestamps"])
	assert.NotContains(t, body, "source")
	assert.Equal(t, []string{itURL}, service.pages)
}

func TestTimestampsHandler_InvalidURLNeverReachesService(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", "/api/timestamps"},
		{"host mismatch", timestampsPath("https://evil.example.com/jump-scares-in-x")},
		{"look-alike subdomain", timestampsPath("https://wheresthejump.com.evil.test/jump-scares-in-x")},
		{"plain http", timestampsPath("http://wheresthejump.com/jump-scares-in-x")},
		{"relative", timestampsPath("/jump-scares-in-x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockContentService{}
			api := newTimestampsAPI(t, service)

			resp := api.Get(tt.path)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, decodeError(t, resp.Body.Bytes()), "url")
			assert.Empty(t, service.pages)
		})
	}
}

func TestTimestampsHandler_BlockedIsDistinct502(t *testing.T) {
	service := &mockContentService{
		resolveFunc: func(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error) {
			return nil, &coreerrors.ResolutionError{Attempts: []coreerrors.Attempt{
				{Tier: "wp-api", Err: coreerrors.WrapError(&coreerrors.ParseError{Source: "posts", Err: assert.AnError}, "decode")},
				{Tier: "html", Err: &coreerrors.BlockedError{URL: page.String()}},
			}}
		},
	}
	api := newTimestampsAPI(t, service)

	resp := api.Get(timestampsPath(itURL))

	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Contains(t, decodeError(t, resp.Body.Bytes()), "anti-bot interstitial")
}

func TestTimestampsHandler_ResolutionFailures(t *testing.T) {
	tests := []struct {
		name  string
		final error
	}{
		{"upstream", &coreerrors.UpstreamError{StatusCode: 500, URL: itURL, Message: "non-success status"}},
		{"timeout", &coreerrors.TimeoutError{URL: itURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockContentService{
				resolveFunc: func(ctx context.Context, page domain.CanonicalURL) (*domain.PageTimestamps, error) {
					return nil, &coreerrors.ResolutionError{Attempts: []coreerrors.Attempt{
						{Tier: "wp-api", Err: &coreerrors.UpstreamError{StatusCode: 404, URL: "api", Message: "non-success status"}},
						{Tier: "html", Err: tt.final},
					}}
				},
			}
			api := newTimestampsAPI(t, service)

			resp := api.Get(timestampsPath(itURL))

			assert.Equal(t, http.StatusBadGateway, resp.Code)
			msg := decodeError(t, resp.Body.Bytes())
			assert.Contains(t, msg, "could not resolve page")
			assert.NotContains(t, msg, "anti-bot")
		})
	}
}

func TestTimestampsHandler_EmptyTimestampsIsSuccess(t *testing.T) {
	api := newTimestampsAPI(t, &mockContentService{})

	resp := api.Get(timestampsPath(itURL))

	require.Equal(t, http.StatusOK, resp.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["timestamps"])
}
