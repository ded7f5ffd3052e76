package sources

import (
	"context"
	"fmt"
	"net/url"

	"webhunt/types"

	"github.com/mmcdole/gofeed"
)

// FeedPresets maps friendly names to RSS feed URLs
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// DefaultFeedPreset is used when the caller names no feed.
const DefaultFeedPreset = "hn"

// ResolveFeedURL resolves a feed identifier to a URL.
// Preset names map to their URLs; anything else is assumed to be a direct URL.
func ResolveFeedURL(feedInput string) string {
	if u, exists := FeedPresets[feedInput]; exists {
		return u
	}
	return feedInput
}

// RSS adapts a single RSS/Atom feed into a searchable source. Feeds have no
// server-side search, so items are filtered by query-token overlap after
// fetching.
type RSS struct {
	feedInput string
	feedURL   string
	parser    *gofeed.Parser
}

// NewRSS creates an RSS adapter for a preset name or a direct feed URL.
func NewRSS(feedInput string) *RSS {
	if feedInput == "" {
		feedInput = DefaultFeedPreset
	}
	return &RSS{
		feedInput: feedInput,
		feedURL:   ResolveFeedURL(feedInput),
		parser:    gofeed.NewParser(),
	}
}

func (r *RSS) Name() string { return "rss/" + r.feedInput }

func (r *RSS) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	feed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed %s: %w", r.feedURL, err)
	}

	sourceID := "rss/" + r.feedInput
	if _, isPreset := FeedPresets[r.feedInput]; !isPreset {
		if parsed, err := url.Parse(r.feedURL); err == nil && parsed.Host != "" {
			sourceID = "rss/" + parsed.Host
		}
	}

	var items []types.RawItem
	for _, item := range feed.Items {
		if !matchesQuery(item.Title+" "+item.Description, query) {
			continue
		}
		items = append(items, types.RawItem{
			Title:     item.Title,
			URL:       item.Link,
			Snippet:   item.Description,
			Source:    sourceID,
			Published: item.Published,
		})
	}
	return items, nil
}
