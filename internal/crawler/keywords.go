package crawler

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// keywords is the fixed, process-lifetime list of Polish/English substrings
// that mark a link, anchor text, or script-embedded URL as worth
// following. Patterns are already lowercase; ContainsKeyword lowercases
// the input, never the patterns.
var keywords = []string{
	"plan",
	"harmonogram",
	"tutaj",
	"kliknij",
	"naciśnij",
	"nacisnij",
	"podzial",
	"podział",
	"rozkład",
	"rozklad",
	"timetable",
	"lekcj",
	"schedule",
}

// keywordMatcher is built once at process start and shared read-only
// across every goroutine; Aho-Corasick gives a single O(n) pass over the
// input regardless of how many of the 13 keywords it's checked against.
var keywordMatcher = ahocorasick.NewStringMatcher(keywords)

// ContainsKeyword reports whether any keyword occurs as a substring of s,
// case-insensitively.
func ContainsKeyword(s string) bool {
	if s == "" {
		return false
	}
	return len(keywordMatcher.Match([]byte(strings.ToLower(s)))) > 0
}
