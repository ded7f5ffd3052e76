package aggregator

import (
	"strconv"
	"strings"
	"time"

	"webhunt/config"
	"webhunt/types"
)

// timestampLayouts are tried in order when a source timestamp is not RFC3339
// and not unix seconds. Feeds in the wild are inconsistent about this.
var timestampLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts raw adapter records into the canonical Evidence shape.
// Missing titles become empty strings, snippets are truncated before any
// further processing, and unparseable timestamps yield an absent PublishedAt
// rather than an error.
func Normalize(raw []types.RawItem) []types.Evidence {
	evidence := make([]types.Evidence, 0, len(raw))
	for _, item := range raw {
		ev := types.Evidence{
			Title:      item.Title,
			URL:        item.URL,
			Snippet:    truncate(item.Snippet, config.SnippetMaxLen),
			Source:     item.Source,
			Popularity: item.Popularity,
		}
		if ev.Popularity < 0 {
			ev.Popularity = 0
		}
		if ts, ok := parseTimestamp(item.Published); ok {
			ev.PublishedAt = &ts
		}
		evidence = append(evidence, ev)
	}
	return evidence
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// parseTimestamp accepts RFC3339, unix seconds, and a few common feed layouts.
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	// Unix seconds, as reddit reports them. Zero means "absent" there.
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		if secs <= 0 {
			return time.Time{}, false
		}
		return time.Unix(int64(secs), 0).UTC(), true
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
