package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"webhunt/config"
	"webhunt/types"

	"github.com/mmcdole/gofeed"
)

const arxivQueryURL = "http://export.arxiv.org/api/query"

// Arxiv searches preprints through the arXiv Atom export API.
type Arxiv struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewArxiv creates an arXiv adapter.
func NewArxiv() *Arxiv {
	return &Arxiv{
		client: &http.Client{Timeout: config.AdapterTimeout},
		parser: gofeed.NewParser(),
	}
}

func (a *Arxiv) Name() string { return "arxiv" }

func (a *Arxiv) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", config.AdapterMaxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivQueryURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arxiv search: unexpected status %d", resp.StatusCode)
	}

	// The export API speaks Atom; gofeed handles it
	feed, err := a.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse arxiv feed: %w", err)
	}

	items := make([]types.RawItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, types.RawItem{
			Title:     entry.Title,
			URL:       entry.Link,
			Snippet:   entry.Description,
			Source:    "arxiv",
			Published: entry.Published,
		})
	}
	return items, nil
}
