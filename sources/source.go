package sources

import (
	"context"
	"strings"

	"webhunt/types"
)

// Adapter queries one specific content source.
// Implementations issue their own network requests and return raw candidate
// items; they must honor ctx cancellation so a slow source can be abandoned
// without blocking its siblings.
type Adapter interface {
	// Name returns the adapter identifier, e.g. "reddit" or "hackernews"
	Name() string

	// Search retrieves raw candidate items for a query
	Search(ctx context.Context, query string) ([]types.RawItem, error)
}

// matchesQuery reports whether text contains at least one query token,
// case-insensitive. Feed-style sources have no server-side search, so they
// filter client-side with this.
func matchesQuery(text, query string) bool {
	textLower := strings.ToLower(text)
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(textLower, token) {
			return true
		}
	}
	return false
}
