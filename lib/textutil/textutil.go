package textutil

import (
	"strings"
)

// Clean replaces non-breaking spaces, collapses every run of whitespace
// into a single space and trims the result.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeName cleans and lowercases text so it can be compared against
// lowercase matchers.
func NormalizeName(name string) string {
	return strings.ToLower(Clean(name))
}

// CountMatches returns how many of the matchers are contained in text.
// A matcher is counted once no matter how often it appears.
func CountMatches(text string, matchers []string) int {
	count := 0
	for _, m := range matchers {
		if strings.Contains(text, m) {
			count++
		}
	}
	return count
}
