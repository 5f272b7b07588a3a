// ABOUTME: Main client for the JumpScared library providing search and timecode extraction
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package jumpscared

import (
	"context"
	"time"

	"jumpscared-api/core/content"
	"jumpscared-api/core/domain"
	"jumpscared-api/core/interfaces"
	"jumpscared-api/core/search"
	"jumpscared-api/core/timecode"
	stdhttp "jumpscared-api/infrastructure/http/standard"
	"jumpscared-api/infrastructure/metrics/prometheus"
)

// Client is the main entry point for the JumpScared library
type Client struct {
	searchService  *search.SearchService
	contentService *content.ContentService
	validator      domain.URLValidator
	config         Config
}

// Config holds the configuration for the client
type Config struct {
	// BaseURL is the site root, defaults to https://wheresthejump.com
	BaseURL string

	// Timeout, UserAgent and AcceptLanguage configure the default fetcher
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string

	// MaxResults caps search results
	MaxResults int

	// Fetcher replaces the default fetcher when set
	Fetcher interfaces.Fetcher

	Logger  interfaces.Logger
	Metrics interfaces.Metrics

	host string
}

// NewClient creates a new JumpScared client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	if config.Fetcher == nil {
		config.Fetcher = stdhttp.NewStandardHTTPClient(stdhttp.Config{
			Timeout:        config.Timeout,
			UserAgent:      config.UserAgent,
			AcceptLanguage: config.AcceptLanguage,
			AllowedHost:    config.host,
			Logger:         config.Logger,
			Metrics:        config.Metrics,
		})
	}

	deps := interfaces.Dependencies{
		Fetcher: config.Fetcher,
		Logger:  config.Logger,
		Metrics: config.Metrics,
	}

	searchService, err := search.NewSearchService(deps, search.Config{
		BaseURL:    config.BaseURL,
		MaxResults: config.MaxResults,
	})
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to create search service").WithCause(err)
	}
	contentService, err := content.NewContentService(deps, content.Config{BaseURL: config.BaseURL})
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "failed to create content service").WithCause(err)
	}

	return &Client{
		searchService:  searchService,
		contentService: contentService,
		validator:      domain.NewURLValidator(config.host),
		config:         config,
	}, nil
}

// NewMetrics returns a Prometheus-backed metrics sink for WithMetrics
func NewMetrics() *prometheus.Metrics {
	return prometheus.New()
}

// Search resolves a free-text query into content pages
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	domainResults, err := c.searchService.Search(ctx, query)
	if err != nil {
		return nil, wrapCoreError("search failed", err)
	}

	results := make([]SearchResult, len(domainResults))
	for i, r := range domainResults {
		results[i] = SearchResult{Title: r.Title, URL: r.URL}
	}
	return results, nil
}

// Timestamps validates rawURL against the site and extracts its timecodes
func (c *Client) Timestamps(ctx context.Context, rawURL string) (*PageTimestamps, error) {
	page, err := c.validator.Validate(rawURL)
	if err != nil {
		return nil, wrapCoreError("invalid page url", err)
	}

	result, err := c.contentService.Resolve(ctx, page)
	if err != nil {
		return nil, wrapCoreError("timestamp extraction failed", err)
	}

	codes := make([]timecode.Timecode, len(result.Timestamps))
	for i, ts := range result.Timestamps {
		codes[i] = timecode.Timecode(ts)
	}

	return &PageTimestamps{
		URL:        result.URL,
		Title:      result.Title,
		Timestamps: timecode.Strings(timecode.Sorted(codes)),
		Source:     result.Source,
	}, nil
}
