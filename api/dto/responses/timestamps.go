// ABOUTME: Response DTOs for the search, timestamps and health endpoints
// ABOUTME: Field names match the public JSON contract

package responses

// SearchResultResponse is one content page matched by a query
type SearchResultResponse struct {
	Title string `json:"title" doc:"Page title"`
	URL   string `json:"url" doc:"Canonical page URL"`
}

// TimestampsResponse lists the timecodes found on a page
type TimestampsResponse struct {
	URL        string   `json:"url" doc:"Page URL that was resolved"`
	Title      string   `json:"title" doc:"Page title"`
	Timestamps []string `json:"timestamps" doc:"Distinct HH:MM:SS timecodes in chronological order"`
}

// HealthResponse reports process liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Always ok while the process is serving"`
}
