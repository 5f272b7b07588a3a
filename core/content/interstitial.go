// ABOUTME: Interstitial detection for anti-bot challenge pages
// ABOUTME: Flags bodies containing known block-page phrases so they are not parsed as content

package content

import "strings"

// DefaultPhrases are lower-case markers of common browser-check pages.
// They stay specific; a bare vendor name would also match genuine pages that load its CDN.
var DefaultPhrases = []string{
	"checking your browser",
	"attention required! | cloudflare",
	"cf-browser-verification",
	"cf-challenge",
	"just a moment...",
	"ddos protection by",
	"verify you are human",
	"please enable cookies and javascript",
}

// Detector classifies fetched markup as an interstitial or genuine content
type Detector struct {
	phrases []string
}

// NewDetector creates a detector for the given phrases, or DefaultPhrases when none are given
func NewDetector(phrases ...string) *Detector {
	if len(phrases) == 0 {
		phrases = DefaultPhrases
	}
	lowered := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			lowered = append(lowered, p)
		}
	}
	return &Detector{phrases: lowered}
}

// IsBlocked reports whether body looks like a block page. False negatives are tolerated.
func (d *Detector) IsBlocked(body string) bool {
	lower := strings.ToLower(body)
	for _, p := range d.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
