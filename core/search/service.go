// ABOUTME: Search service resolves free-text queries through the target site's own search page
// ABOUTME: Filters anchors down to distinct content pages and derives readable titles

package search

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"jumpscared-api/core/domain"
	coreerrors "jumpscared-api/core/errors"
	"jumpscared-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const (
	// contentMarker identifies content page paths
	contentMarker = "/jump-scares"

	// titlePrefix is stripped from slugs when deriving a title
	titlePrefix = "jump-scares-in-"

	defaultMaxResults = 10
)

// excludedMarkers reject listing pages that also carry the content marker
var excludedMarkers = []string{
	"/tag/",
	"/category/",
	"/search/",
	"?s=",
	"&s=",
	"tv-series",
	"/tv-shows",
}

// Config holds search settings
type Config struct {
	// BaseURL is the site root used for the search page and relative links
	BaseURL string

	// MaxResults caps the returned list
	MaxResults int
}

// SearchService resolves queries into content pages
type SearchService struct {
	deps  interfaces.Dependencies
	base  *url.URL
	limit int
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, cfg Config) (*SearchService, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("invalid search base url %q", cfg.BaseURL)
	}
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}

	limit := cfg.MaxResults
	if limit <= 0 {
		limit = defaultMaxResults
	}

	return &SearchService{
		deps:  deps,
		base:  base,
		limit: limit,
	}, nil
}

// Search normalizes the query, scrapes the site's search page and returns at most
// MaxResults distinct content pages. No partial results are returned on failure.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	normalized, err := domain.NormalizeQuery(query)
	if err != nil {
		return nil, err
	}

	if s.deps.Fetcher == nil {
		return nil, errors.New("fetcher not configured")
	}

	results, err := s.search(ctx, normalized)
	if s.deps.Metrics != nil {
		if err != nil {
			s.deps.Metrics.ObserveSearch("error", 0)
		} else {
			s.deps.Metrics.ObserveSearch("ok", len(results))
		}
	}
	return results, err
}

func (s *SearchService) search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	searchURL := s.searchURL(query)

	doc := s.deps.Fetcher.Fetch(ctx, searchURL, "text/html")
	if !doc.Succeeded {
		err := domain.FetchError(searchURL, doc)
		s.deps.Logger.Error("Search page fetch failed", map[string]interface{}{
			"url":    searchURL,
			"status": doc.StatusCode,
			"error":  err.Error(),
		})
		return nil, err
	}

	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, &coreerrors.ParseError{Source: "search page", Err: err}
	}

	results := s.collect(page)

	s.deps.Logger.Debug("Search resolved", map[string]interface{}{
		"query":   query,
		"results": len(results),
	})
	return results, nil
}

// searchURL builds <base>/?s=<query>
func (s *SearchService) searchURL(query string) string {
	u := *s.base
	u.Path = "/"
	u.RawQuery = "s=" + url.QueryEscape(query)
	return u.String()
}

// collect walks every anchor in document order, keeping distinct content links
func (s *SearchService) collect(page *goquery.Document) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, s.limit)
	seen := make(map[string]struct{})

	page.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		link, ok := s.contentLink(href)
		if !ok {
			return true
		}
		if _, dup := seen[link.String()]; dup {
			return true
		}
		seen[link.String()] = struct{}{}

		title := domain.CollapseWhitespace(a.Text())
		if title == "" {
			title = TitleFromURL(link)
		}
		results = append(results, domain.SearchResult{Title: title, URL: link.String()})
		return len(results) < s.limit
	})

	return results
}

// contentLink resolves href against the base and reports whether it is a content page
func (s *SearchService) contentLink(href string) (*url.URL, bool) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return nil, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return nil, false
	}
	link := s.base.ResolveReference(ref)
	link.Fragment = ""

	if !strings.EqualFold(link.Host, s.base.Host) || (link.Scheme != "http" && link.Scheme != "https") {
		return nil, false
	}
	link.Scheme = s.base.Scheme
	link.Host = s.base.Host

	if !strings.Contains(link.Path, contentMarker) {
		return nil, false
	}

	full := strings.ToLower(link.String())
	for _, marker := range excludedMarkers {
		if strings.Contains(full, marker) {
			return nil, false
		}
	}
	return link, true
}

// TitleFromURL derives a readable title from the last path segment,
// e.g. /jump-scares-in-the-conjuring-2013/ becomes "The Conjuring 2013".
func TitleFromURL(u *url.URL) string {
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	slug := segments[len(segments)-1]
	slug = strings.TrimPrefix(slug, titlePrefix)

	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

