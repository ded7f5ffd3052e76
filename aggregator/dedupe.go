package aggregator

import (
	"strings"
	"unicode"

	"webhunt/types"
)

// Dedupe drops items that reach the same underlying document through
// different adapters. Two items are duplicates when their trimmed URLs match
// exactly or their normalized titles match. First seen wins, in fan-in order;
// later duplicates are dropped silently.
func Dedupe(items []types.Evidence) []types.Evidence {
	seenURLs := make(map[string]struct{}, len(items))
	seenTitles := make(map[string]struct{}, len(items))
	unique := make([]types.Evidence, 0, len(items))

	for _, item := range items {
		u := strings.TrimSpace(item.URL)
		if _, dup := seenURLs[u]; dup {
			continue
		}
		title := normalizeTitle(item.Title)
		if _, dup := seenTitles[title]; dup {
			continue
		}
		seenURLs[u] = struct{}{}
		seenTitles[title] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

// normalizeTitle strips everything but letters and digits and lower-cases the
// remainder, so "AI Breakthrough!" and "ai breakthrough" collide.
func normalizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
