package sources

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"webhunt/config"
	"webhunt/types"

	readability "github.com/go-shiori/go-readability"
)

// Webpage extracts readable content from a fixed set of pages and surfaces
// the ones that mention the query. Useful for watching specific announcement
// or documentation pages that no search API covers.
type Webpage struct {
	pages  []string
	client *http.Client
}

// NewWebpage creates a webpage adapter over the given page URLs.
func NewWebpage(pages []string) *Webpage {
	return &Webpage{
		pages:  pages,
		client: &http.Client{Timeout: config.AdapterTimeout},
	}
}

func (w *Webpage) Name() string { return "webpage" }

// Search fetches every configured page and keeps those whose extracted text
// overlaps the query. A failing page is logged and skipped.
func (w *Webpage) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	if len(w.pages) == 0 {
		return nil, fmt.Errorf("webpage adapter has no pages configured")
	}

	var items []types.RawItem
	var lastErr error

	for _, page := range w.pages {
		item, err := w.extractPage(ctx, page)
		if err != nil {
			log.Printf("Warning: webpage extraction failed for %s: %v", page, err)
			lastErr = err
			continue
		}
		if !matchesQuery(item.Title+" "+item.Snippet, query) {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, fmt.Errorf("webpage extraction failed: %w", lastErr)
	}
	return items, nil
}

func (w *Webpage) extractPage(ctx context.Context, page string) (types.RawItem, error) {
	pageURL, err := url.Parse(page)
	if err != nil {
		return types.RawItem{}, fmt.Errorf("invalid page URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, page, nil)
	if err != nil {
		return types.RawItem{}, err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return types.RawItem{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.RawItem{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return types.RawItem{}, fmt.Errorf("readability extraction failed: %w", err)
	}

	snippet := article.Excerpt
	if snippet == "" {
		snippet = article.TextContent
	}

	return types.RawItem{
		Title:   article.Title,
		URL:     page,
		Snippet: snippet,
		Source:  "webpage",
	}, nil
}
