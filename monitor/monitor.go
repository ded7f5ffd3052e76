// Package monitor re-verifies a set of claims on an interval and fans results
// out to history, Kafka and S3. This is the polling wrapper around the
// otherwise stateless pipeline.
package monitor

import (
	"context"
	"fmt"
	"log"
	"time"

	"webhunt/factcheck"
	"webhunt/types"
)

// Checker verifies one claim. Satisfied by *factcheck.Checker.
type Checker interface {
	Check(ctx context.Context, claim string, params factcheck.CheckParams) (*types.VerdictResult, error)
}

// HistoryStore persists results and remembers previous verdicts.
// Satisfied by *history.Store.
type HistoryStore interface {
	SaveCheck(result *types.VerdictResult) error
	LastVerdict(claim string) (verdict string, found bool, err error)
}

// Publisher pushes results to a message bus. Satisfied by *publish.Producer.
type Publisher interface {
	PublishResult(result *types.VerdictResult) error
}

// Archiver writes results to object storage. Satisfied by *archive.Archiver.
type Archiver interface {
	ArchiveResult(ctx context.Context, result *types.VerdictResult) error
}

// Monitor re-checks claims periodically. Store, publisher and archiver are
// each optional; a nil integration is skipped.
type Monitor struct {
	checker   Checker
	store     HistoryStore
	publisher Publisher
	archiver  Archiver

	claims   []string
	params   factcheck.CheckParams
	interval time.Duration
}

// New creates a monitor over the given claims.
func New(checker Checker, claims []string, params factcheck.CheckParams, interval time.Duration) (*Monitor, error) {
	if checker == nil {
		return nil, fmt.Errorf("checker is required")
	}
	if len(claims) == 0 {
		return nil, fmt.Errorf("no claims to monitor")
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Monitor{
		checker:  checker,
		claims:   claims,
		params:   params,
		interval: interval,
	}, nil
}

// WithStore attaches a history store.
func (m *Monitor) WithStore(store HistoryStore) *Monitor {
	m.store = store
	return m
}

// WithPublisher attaches a Kafka publisher.
func (m *Monitor) WithPublisher(p Publisher) *Monitor {
	m.publisher = p
	return m
}

// WithArchiver attaches an S3 archiver.
func (m *Monitor) WithArchiver(a Archiver) *Monitor {
	m.archiver = a
	return m
}

// Run checks all claims immediately, then on every interval tick until ctx is
// canceled.
func (m *Monitor) Run(ctx context.Context) error {
	log.Printf("Monitoring %d claim(s) every %s", len(m.claims), m.interval)

	if err := m.RunOnce(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := m.RunOnce(ctx); err != nil {
				return err
			}
		}
	}
}

// RunOnce executes a single cycle over all claims. Per-claim failures are
// logged and do not stop the cycle; only context cancellation ends it early.
func (m *Monitor) RunOnce(ctx context.Context) error {
	for _, claim := range m.claims {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		result, err := m.checker.Check(ctx, claim, m.params)
		if err != nil {
			log.Printf("Warning: check failed for %q: %v", claim, err)
			continue
		}

		m.reportFlip(claim, result)
		m.record(ctx, result)
	}
	return nil
}

// reportFlip logs when a claim's verdict differs from the last recorded one.
func (m *Monitor) reportFlip(claim string, result *types.VerdictResult) {
	if m.store == nil {
		return
	}
	previous, found, err := m.store.LastVerdict(claim)
	if err != nil {
		log.Printf("Warning: could not read last verdict for %q: %v", claim, err)
		return
	}
	if found && previous != string(result.Verdict) {
		log.Printf("⚠️  Verdict changed for %q: %s -> %s", claim, previous, result.Verdict)
	}
}

func (m *Monitor) record(ctx context.Context, result *types.VerdictResult) {
	if m.store != nil {
		if err := m.store.SaveCheck(result); err != nil {
			log.Printf("Warning: failed to save check: %v", err)
		}
	}
	if m.publisher != nil {
		if err := m.publisher.PublishResult(result); err != nil {
			log.Printf("Warning: failed to publish result: %v", err)
		}
	}
	if m.archiver != nil {
		if err := m.archiver.ArchiveResult(ctx, result); err != nil {
			log.Printf("Warning: failed to archive result: %v", err)
		}
	}
}
