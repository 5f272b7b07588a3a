// ABOUTME: Resolution tiers for content pages, tried in order until one is accepted
// ABOUTME: Implements the structured posts API lookup and the HTML page fallback

package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"jumpscared-api/core/domain"
	coreerrors "jumpscared-api/core/errors"
	"jumpscared-api/core/timecode"
	pagetext "jumpscared-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
)

// Tier names
const (
	TierStructured = "wp-api"
	TierHTML       = "html"
)

// Selectors for the site's page markup, most specific first
var (
	titleSelectors   = []string{"h1.entry-title", "h1"}
	contentSelectors = []string{".entry-content", "article"}
)

// ErrNoEntries is returned by the structured tier when no post matches the slug
var ErrNoEntries = errors.New("no posts matched slug")

// ErrInsufficient records a tier whose result was not accepted
var ErrInsufficient = errors.New("tier result not accepted")

// Tier is one named resolution strategy with its own success predicate
type Tier struct {
	// Name identifies the tier in logs, metrics and errors
	Name string

	// Resolve fetches and reduces the page to title and body text
	Resolve func(ctx context.Context, page domain.CanonicalURL, slug string) (domain.PageContent, error)

	// Accept decides whether extracted timecodes end the chain; nil accepts anything
	Accept func(codes []timecode.Timecode) bool
}

// NonEmpty accepts results with at least one timecode
func NonEmpty(codes []timecode.Timecode) bool {
	return len(codes) > 0
}

// AcceptAll accepts any result, including an empty one
func AcceptAll([]timecode.Timecode) bool {
	return true
}

type wpPost struct {
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Content struct {
		Rendered string `json:"rendered"`
	} `json:"content"`
}

// StructuredTier looks the slug up in the site's posts API. It sidesteps
// interstitials entirely, so it only ends the chain when timecodes were found.
func (s *ContentService) StructuredTier() Tier {
	return Tier{
		Name:    TierStructured,
		Resolve: s.resolveStructured,
		Accept:  NonEmpty,
	}
}

// HTMLTier scrapes the page itself and is the final word
func (s *ContentService) HTMLTier() Tier {
	return Tier{
		Name:    TierHTML,
		Resolve: s.resolveHTML,
		Accept:  AcceptAll,
	}
}

func (s *ContentService) postsURL(slug string) string {
	u := *s.base
	u.Path = "/wp-json/wp/v2/posts"
	u.RawQuery = url.Values{
		"slug":    []string{slug},
		"_fields": []string{"title,content"},
	}.Encode()
	return u.String()
}

func (s *ContentService) resolveStructured(ctx context.Context, _ domain.CanonicalURL, slug string) (domain.PageContent, error) {
	apiURL := s.postsURL(slug)

	doc := s.deps.Fetcher.Fetch(ctx, apiURL, "application/json")
	if !doc.Succeeded {
		return domain.PageContent{}, domain.FetchError(apiURL, doc)
	}

	var posts []wpPost
	if err := json.Unmarshal([]byte(doc.Body), &posts); err != nil {
		return domain.PageContent{}, &coreerrors.ParseError{Source: "posts api response", Err: err}
	}
	if len(posts) == 0 {
		return domain.PageContent{}, ErrNoEntries
	}

	post := posts[0]
	title, err := pagetext.FragmentText(post.Title.Rendered)
	if err != nil {
		return domain.PageContent{}, &coreerrors.ParseError{Source: "post title", Err: err}
	}
	body, err := pagetext.FragmentText(post.Content.Rendered)
	if err != nil {
		return domain.PageContent{}, &coreerrors.ParseError{Source: "post content", Err: err}
	}

	return domain.PageContent{Title: title, BodyText: body}, nil
}

func (s *ContentService) resolveHTML(ctx context.Context, page domain.CanonicalURL, slug string) (domain.PageContent, error) {
	pageURL := page.String()

	doc := s.deps.Fetcher.Fetch(ctx, pageURL, "text/html")
	if !doc.Succeeded {
		return domain.PageContent{}, domain.FetchError(pageURL, doc)
	}

	if s.detector.IsBlocked(doc.Body) {
		return domain.PageContent{}, &coreerrors.BlockedError{URL: pageURL}
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return domain.PageContent{}, &coreerrors.ParseError{Source: "page markup", Err: err}
	}

	title := firstText(parsed, titleSelectors)
	if title == "" {
		title = domain.CollapseWhitespace(parsed.Find("title").First().Text())
	}
	if title == "" {
		title = slug
	}

	body := firstText(parsed, contentSelectors)
	if body == "" {
		body = pagetext.Text(parsed.Selection)
	}

	return domain.PageContent{Title: title, BodyText: body}, nil
}

// firstText returns the text of the first selector that matches non-empty text
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := pagetext.Text(doc.Find(sel).First()); text != "" {
			return text
		}
	}
	return ""
}

