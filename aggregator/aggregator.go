package aggregator

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"webhunt/config"
	"webhunt/sources"
	"webhunt/types"
)

// Params are the caller-supplied knobs for one search run.
type Params struct {
	Freshness config.Freshness
	Limit     int
}

// Aggregator fans a query out to every enabled source adapter, then runs the
// collected evidence through normalize, freshness filter, dedupe and rank.
// It holds no state between calls.
type Aggregator struct {
	adapters       []sources.Adapter
	adapterTimeout time.Duration
	semantic       *SemanticDeduper
}

// Option configures the aggregator.
type Option func(*Aggregator)

// WithAdapterTimeout bounds each adapter's invocation.
func WithAdapterTimeout(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.adapterTimeout = d
		}
	}
}

// WithSemanticDeduper enables embeddings-based near-duplicate dropping after
// the lexical dedup pass.
func WithSemanticDeduper(s *SemanticDeduper) Option {
	return func(a *Aggregator) {
		a.semantic = s
	}
}

// New creates an aggregator over the given adapters.
func New(adapters []sources.Adapter, opts ...Option) (*Aggregator, error) {
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no source adapters enabled")
	}
	a := &Aggregator{
		adapters:       adapters,
		adapterTimeout: config.AdapterTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Search runs the full pipeline for a query and returns ranked evidence.
// Caller input is validated before any network activity; adapter failures
// after that point contribute zero evidence but never fail the search.
func (a *Aggregator) Search(ctx context.Context, query string, params Params) ([]types.Evidence, error) {
	if err := a.validate(query, params); err != nil {
		return nil, err
	}
	horizon := config.Horizons[params.Freshness]
	now := time.Now()

	raw := a.fanOut(ctx, query)

	evidence := Normalize(raw)
	evidence = FilterByFreshness(evidence, horizon, now)
	evidence = Dedupe(evidence)
	if a.semantic != nil {
		evidence = a.semantic.Filter(evidence)
	}
	evidence = Rank(evidence, now)

	if len(evidence) > params.Limit {
		evidence = evidence[:params.Limit]
	}
	return evidence, nil
}

func (a *Aggregator) validate(query string, params Params) error {
	if query == "" {
		return fmt.Errorf("query cannot be empty")
	}
	if params.Limit <= 0 {
		return fmt.Errorf("result limit must be positive, got %d", params.Limit)
	}
	if _, ok := config.Horizons[params.Freshness]; !ok {
		return fmt.Errorf("unknown freshness %q", params.Freshness)
	}
	return nil
}

// fanOut starts every adapter concurrently and waits for all of them to
// finish or time out. Each goroutine writes only its own pre-allocated slot,
// so merging after the barrier needs no locking. A failing or timed-out
// adapter is logged and contributes nothing.
func (a *Aggregator) fanOut(ctx context.Context, query string) []types.RawItem {
	slots := make([][]types.RawItem, len(a.adapters))

	var wg sync.WaitGroup
	for i, adapter := range a.adapters {
		wg.Add(1)
		go func(slot int, adapter sources.Adapter) {
			defer wg.Done()

			actx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
			defer cancel()

			items, err := adapter.Search(actx, query)
			if err != nil {
				log.Printf("Warning: %s search failed: %v", adapter.Name(), err)
				return
			}
			slots[slot] = items
		}(i, adapter)
	}
	wg.Wait()

	var merged []types.RawItem
	for _, items := range slots {
		merged = append(merged, items...)
	}
	return merged
}
