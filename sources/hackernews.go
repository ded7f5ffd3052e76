package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"webhunt/config"
	"webhunt/types"
)

const hnSearchURL = "https://hn.algolia.com/api/v1/search"

// HackerNews searches stories through the HN Algolia API.
type HackerNews struct {
	client *http.Client
}

// NewHackerNews creates a Hacker News adapter.
func NewHackerNews() *HackerNews {
	return &HackerNews{client: &http.Client{Timeout: config.AdapterTimeout}}
}

func (h *HackerNews) Name() string { return "hackernews" }

func (h *HackerNews) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("tags", "story")
	params.Set("numericFilters", "points>10")
	params.Set("hitsPerPage", fmt.Sprintf("%d", config.AdapterMaxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, hnSearchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hackernews search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hackernews search: unexpected status %d", resp.StatusCode)
	}

	var payload hnSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode hackernews response: %w", err)
	}

	items := make([]types.RawItem, 0, len(payload.Hits))
	for _, hit := range payload.Hits {
		// Ask HN style stories carry no external URL
		link := hit.URL
		if link == "" {
			link = "https://news.ycombinator.com/item?id=" + hit.ObjectID
		}

		items = append(items, types.RawItem{
			Title:      hit.Title,
			URL:        link,
			Snippet:    hit.StoryText,
			Source:     "hackernews",
			Published:  hit.CreatedAt,
			Popularity: hit.Points,
		})
	}
	return items, nil
}

type hnSearchResponse struct {
	Hits []hnHit `json:"hits"`
}

type hnHit struct {
	Title     string  `json:"title"`
	URL       string  `json:"url"`
	StoryText string  `json:"story_text"`
	ObjectID  string  `json:"objectID"`
	Points    float64 `json:"points"`
	CreatedAt string  `json:"created_at"`
}
