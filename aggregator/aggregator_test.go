package aggregator

import (
	"context"
	"fmt"
	"testing"
	"time"

	"webhunt/config"
	"webhunt/sources"
	"webhunt/types"
)

type fakeAdapter struct {
	name  string
	items []types.RawItem
	err   error
	delay time.Duration
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func rawItem(title, url string) types.RawItem {
	return types.RawItem{
		Title:     title,
		URL:       url,
		Snippet:   "about " + title,
		Source:    "fake",
		Published: time.Now().UTC().Format(time.RFC3339),
	}
}

func defaultParams() Params {
	return Params{Freshness: config.FreshnessWeek, Limit: config.DefaultResultLimit}
}

func newAgg(t *testing.T, adapters []sources.Adapter, opts ...Option) *Aggregator {
	t.Helper()
	agg, err := New(adapters, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return agg
}

func TestNewRequiresAdapters(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty adapter list")
	}
}

func TestSearchValidation(t *testing.T) {
	agg := newAgg(t, []sources.Adapter{&fakeAdapter{name: "fake"}})

	tests := []struct {
		name   string
		query  string
		params Params
	}{
		{"empty query", "", defaultParams()},
		{"zero limit", "q", Params{Freshness: config.FreshnessWeek, Limit: 0}},
		{"negative limit", "q", Params{Freshness: config.FreshnessWeek, Limit: -1}},
		{"unknown freshness", "q", Params{Freshness: "fortnight", Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := agg.Search(context.Background(), tt.query, tt.params); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSearchFailedAdapterIsIsolated(t *testing.T) {
	agg := newAgg(t, []sources.Adapter{
		&fakeAdapter{name: "good", items: []types.RawItem{rawItem("alpha", "https://a.example")}},
		&fakeAdapter{name: "broken", err: fmt.Errorf("upstream 503")},
	})

	out, err := agg.Search(context.Background(), "alpha", defaultParams())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 1 || out[0].URL != "https://a.example" {
		t.Errorf("got %+v, want the single good-adapter item", out)
	}
}

func TestSearchSlowAdapterTimesOut(t *testing.T) {
	agg := newAgg(t, []sources.Adapter{
		&fakeAdapter{name: "fast", items: []types.RawItem{rawItem("alpha", "https://a.example")}},
		&fakeAdapter{name: "slow", delay: 2 * time.Second,
			items: []types.RawItem{rawItem("beta", "https://b.example")}},
	}, WithAdapterTimeout(50*time.Millisecond))

	start := time.Now()
	out, err := agg.Search(context.Background(), "alpha beta", defaultParams())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("search took %v, timeout not enforced", elapsed)
	}
	if len(out) != 1 || out[0].URL != "https://a.example" {
		t.Errorf("got %+v, want only the fast adapter's item", out)
	}
}

func TestSearchDedupesAcrossAdapters(t *testing.T) {
	agg := newAgg(t, []sources.Adapter{
		&fakeAdapter{name: "one", items: []types.RawItem{rawItem("Launch Confirmed", "https://same.example")}},
		&fakeAdapter{name: "two", items: []types.RawItem{rawItem("launch confirmed!", "https://other.example")}},
	})

	out, err := agg.Search(context.Background(), "launch", defaultParams())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("got %d items, want 1 after cross-adapter dedup", len(out))
	}
}

func TestSearchAppliesLimit(t *testing.T) {
	var items []types.RawItem
	for i := 0; i < 8; i++ {
		items = append(items, rawItem(fmt.Sprintf("story %d", i), fmt.Sprintf("https://example.com/%d", i)))
	}
	agg := newAgg(t, []sources.Adapter{&fakeAdapter{name: "fake", items: items}})

	out, err := agg.Search(context.Background(), "story", Params{Freshness: config.FreshnessWeek, Limit: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 3 {
		t.Errorf("got %d items, want 3", len(out))
	}
}

func TestSearchAllAdaptersFailYieldsEmpty(t *testing.T) {
	agg := newAgg(t, []sources.Adapter{
		&fakeAdapter{name: "a", err: fmt.Errorf("down")},
		&fakeAdapter{name: "b", err: fmt.Errorf("also down")},
	})

	out, err := agg.Search(context.Background(), "anything", defaultParams())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("got %d items, want none", len(out))
	}
}
