package factcheck

import (
	"context"
	"testing"
	"time"

	"webhunt/aggregator"
	"webhunt/config"
	"webhunt/sources"
	"webhunt/types"
)

type staticAdapter struct {
	items []types.RawItem
}

func (s *staticAdapter) Name() string { return "static" }

func (s *staticAdapter) Search(ctx context.Context, query string) ([]types.RawItem, error) {
	return s.items, nil
}

func newTestChecker(t *testing.T, items []types.RawItem) *Checker {
	t.Helper()
	agg, err := aggregator.New([]sources.Adapter{&staticAdapter{items: items}})
	if err != nil {
		t.Fatalf("aggregator.New: %v", err)
	}
	return NewChecker(agg)
}

func checkParams(minConfidence float64) CheckParams {
	return CheckParams{
		Freshness:     config.FreshnessWeek,
		Limit:         config.DefaultResultLimit,
		MinConfidence: minConfidence,
	}
}

func TestCheckRejectsBadMinConfidence(t *testing.T) {
	checker := newTestChecker(t, nil)

	for _, bad := range []float64{-0.1, 1.5} {
		if _, err := checker.Check(context.Background(), "some claim", checkParams(bad)); err == nil {
			t.Errorf("min confidence %v accepted, want error", bad)
		}
	}
}

func TestCheckPropagatesSearchErrors(t *testing.T) {
	checker := newTestChecker(t, nil)

	if _, err := checker.Check(context.Background(), "", checkParams(0.7)); err == nil {
		t.Error("empty claim accepted, want error")
	}
}

func TestCheckEndToEnd(t *testing.T) {
	published := time.Now().UTC().Format(time.RFC3339)
	checker := newTestChecker(t, []types.RawItem{
		{
			Title:     "Fusion milestone confirmed",
			URL:       "https://a.example",
			Snippet:   "the fusion milestone was confirmed and announced today",
			Source:    "static",
			Published: published,
		},
		{
			Title:     "Official fusion statement",
			URL:       "https://b.example",
			Snippet:   "official confirmation of the fusion result, yes indeed",
			Source:    "static",
			Published: published,
		},
	})

	result, err := checker.Check(context.Background(), "fusion milestone", checkParams(0.7))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Verdict != types.VerdictTrue {
		t.Errorf("verdict = %s, want true", result.Verdict)
	}
	if result.Claim != "fusion milestone" {
		t.Errorf("claim = %q, want the original claim echoed", result.Claim)
	}
	if len(result.Evidence) != 2 {
		t.Errorf("got %d evidence items, want 2", len(result.Evidence))
	}
}
