package factcheck

import "strings"

// Lexical cue tables. Verdicts are derived from plain substring matching
// against these lists, nothing smarter; keep that in mind when reading
// confidence numbers.
var (
	confirmCues = []string{"confirmed", "true", "yes", "indeed", "announced", "official"}

	denyCues = []string{"false", "fake", "rumor", "not true", "denied", "debunked"}

	// Clickbait markers. These count against a claim's credibility, never for it.
	suspiciousCues = []string{"viral", "shocking", "you won't believe", "doctors hate", "secret"}
)

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
