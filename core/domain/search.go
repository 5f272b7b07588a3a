// ABOUTME: Search domain models for content page discovery results
// ABOUTME: Defines the search result value and query normalization rules

package domain

import (
	"strings"
	"unicode/utf8"

	"jumpscared-api/core/errors"
)

// MinQueryLength is the shortest normalized query accepted by search
const MinQueryLength = 2

// SearchResult represents a content page found through the site's search
type SearchResult struct {
	// Title is the page title, from the link text or derived from the slug
	Title string `json:"title"`

	// URL is the absolute content page URL
	URL string `json:"url"`
}

// NormalizeQuery trims a query and collapses internal whitespace runs.
// Queries shorter than MinQueryLength characters are rejected.
func NormalizeQuery(query string) (string, error) {
	normalized := CollapseWhitespace(query)
	if normalized == "" {
		return "", &errors.ValidationError{Field: "q", Message: "search query cannot be empty"}
	}
	if utf8.RuneCountInString(normalized) < MinQueryLength {
		return "", &errors.ValidationError{Field: "q", Message: "search query must be at least 2 characters"}
	}
	return normalized, nil
}

// CollapseWhitespace replaces every whitespace run with a single space and trims the ends
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
