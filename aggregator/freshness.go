package aggregator

import (
	"time"

	"webhunt/types"
)

// FilterByFreshness keeps evidence no older than the horizon. Items without a
// publication timestamp are excluded: recency that cannot be proven is
// treated as stale, since bounding staleness is the whole point of the filter.
func FilterByFreshness(items []types.Evidence, horizon time.Duration, now time.Time) []types.Evidence {
	fresh := make([]types.Evidence, 0, len(items))
	for _, item := range items {
		if item.PublishedAt == nil {
			continue
		}
		if now.Sub(*item.PublishedAt) <= horizon {
			fresh = append(fresh, item)
		}
	}
	return fresh
}
