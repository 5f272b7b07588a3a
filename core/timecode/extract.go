// ABOUTME: Timestamp extraction from free text and stripped page markup
// ABOUTME: Finds timecode-shaped tokens, normalizes them and keeps first occurrences

package timecode

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var candidatePattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)

// Extract returns the distinct timecodes in text, in the order they first appear.
// The result is empty, never nil, when nothing matches.
func Extract(text string) []Timecode {
	text = strings.Join(strings.Fields(text), " ")

	found := make([]Timecode, 0)
	seen := make(map[Timecode]struct{})
	for _, loc := range candidatePattern.FindAllStringIndex(text, -1) {
		if !standsAlone(text, loc[0], loc[1]) {
			continue
		}
		code, ok := Normalize(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		found = append(found, code)
	}
	return found
}

// standsAlone reports whether text[start:end] is a whole timecode rather than
// part of a longer number, version string or identifier. Units glued on the
// right, as in "1:23pm" or "0:45s", are allowed.
func standsAlone(text string, start, end int) bool {
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(before) || unicode.IsDigit(before) || before == '_' || before == '.' || before == ':' {
			return false
		}
	}
	if end == len(text) {
		return true
	}
	after, size := utf8.DecodeRuneInString(text[end:])
	if unicode.IsDigit(after) || after == ':' {
		return false
	}
	if after == '.' || after == ',' {
		next, _ := utf8.DecodeRuneInString(text[end+size:])
		return !unicode.IsDigit(next)
	}
	return true
}
