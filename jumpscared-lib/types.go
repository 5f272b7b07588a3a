// ABOUTME: Public types for the JumpScared library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package jumpscared

// SearchResult is one content page matched by a query
type SearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PageTimestamps holds the timecodes found on a content page
type PageTimestamps struct {
	URL   string `json:"url"`
	Title string `json:"title"`

	// Timestamps are distinct HH:MM:SS values in chronological order
	Timestamps []string `json:"timestamps"`

	// Source names the resolution tier that produced the result
	Source string `json:"source"`
}
