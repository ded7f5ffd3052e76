package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"webhunt/config"
	"webhunt/types"
)

const (
	redditSearchURL = "https://www.reddit.com/r/%s/search.json"
	redditUserAgent = "webhunt/1.0"
)

// DefaultSubreddits are searched when the caller does not scope the adapter.
var DefaultSubreddits = []string{"artificial", "MachineLearning", "singularity", "LocalLLaMA"}

// Reddit searches public subreddits through the Reddit JSON API.
type Reddit struct {
	subreddits []string
	client     *http.Client
}

// NewReddit creates a Reddit adapter over the given subreddits.
// With no arguments the default subreddit set is used.
func NewReddit(subreddits ...string) *Reddit {
	if len(subreddits) == 0 {
		subreddits = DefaultSubreddits
	}
	return &Reddit{
		subreddits: subreddits,
		client:     &http.Client{Timeout: config.AdapterTimeout},
	}
}

func (r *Reddit) Name() string { return "reddit" }

// Search queries each configured subreddit. A failing subreddit is logged and
// skipped; an error is returned only when nothing could be fetched at all.
func (r *Reddit) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	var items []types.RawItem
	var lastErr error

	for _, subreddit := range r.subreddits {
		subItems, err := r.searchSubreddit(ctx, subreddit, query)
		if err != nil {
			log.Printf("Warning: reddit search failed for r/%s: %v", subreddit, err)
			lastErr = err
			continue
		}
		items = append(items, subItems...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, fmt.Errorf("reddit search failed: %w", lastErr)
	}
	return items, nil
}

func (r *Reddit) searchSubreddit(ctx context.Context, subreddit, query string) ([]types.RawItem, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "new")
	params.Set("restrict_sr", "on")
	params.Set("limit", fmt.Sprintf("%d", config.AdapterMaxResults))

	endpoint := fmt.Sprintf(redditSearchURL, subreddit) + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", redditUserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode listing: %w", err)
	}

	items := make([]types.RawItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		post := child.Data
		items = append(items, types.RawItem{
			Title:      post.Title,
			URL:        "https://reddit.com" + post.Permalink,
			Snippet:    post.Selftext,
			Source:     "reddit/r/" + subreddit,
			Published:  fmt.Sprintf("%d", int64(post.CreatedUTC)),
			Popularity: post.Score,
		})
	}
	return items, nil
}

// redditListing mirrors the subset of the Reddit search payload we consume
type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Permalink  string  `json:"permalink"`
	Score      float64 `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
}
