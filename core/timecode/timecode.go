// ABOUTME: Timecode normalization for colon-separated video time markers
// ABOUTME: Validates MM:SS and HH:MM:SS tokens and renders them as fixed-width HH:MM:SS

package timecode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	maxHours   = 99
	maxMinutes = 59
	maxSeconds = 59
)

// Timecode is a zero-padded HH:MM:SS string produced by Normalize
type Timecode string

// Normalize parses a raw MM:SS or HH:MM:SS token.
// The hour cap keeps version-like numbers from being read as times.
func Normalize(token string) (Timecode, bool) {
	groups := strings.Split(token, ":")
	if len(groups) != 2 && len(groups) != 3 {
		return "", false
	}

	values := make([]int, len(groups))
	for i, g := range groups {
		n, ok := parseGroup(g)
		if !ok {
			return "", false
		}
		values[i] = n
	}

	var hours, minutes, seconds int
	if len(values) == 3 {
		hours, minutes, seconds = values[0], values[1], values[2]
	} else {
		minutes, seconds = values[0], values[1]
	}

	if hours > maxHours || minutes > maxMinutes || seconds > maxSeconds {
		return "", false
	}

	return Timecode(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)), true
}

// parseGroup accepts only ASCII digit runs, so signs and spaces are rejected
func parseGroup(g string) (int, bool) {
	if g == "" {
		return 0, false
	}
	for _, r := range g {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(g)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Sorted returns a chronologically ordered copy
func Sorted(codes []Timecode) []Timecode {
	out := make([]Timecode, len(codes))
	copy(out, codes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings converts timecodes to plain strings for serialization
func Strings(codes []Timecode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = string(c)
	}
	return out
}
