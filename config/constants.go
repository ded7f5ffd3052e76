package config

import (
	"fmt"
	"time"
)

// Freshness names a fixed evidence-age horizon.
type Freshness string

const (
	FreshnessHour  Freshness = "hour"
	FreshnessDay   Freshness = "day"
	FreshnessWeek  Freshness = "week"
	FreshnessMonth Freshness = "month"
)

// Horizons maps each freshness name to its maximum evidence age.
var Horizons = map[Freshness]time.Duration{
	FreshnessHour:  time.Hour,
	FreshnessDay:   24 * time.Hour,
	FreshnessWeek:  7 * 24 * time.Hour,
	FreshnessMonth: 30 * 24 * time.Hour,
}

// ParseFreshness validates a caller-supplied freshness name.
func ParseFreshness(s string) (Freshness, error) {
	f := Freshness(s)
	if _, ok := Horizons[f]; !ok {
		return "", fmt.Errorf("unknown freshness %q (want hour, day, week or month)", s)
	}
	return f, nil
}

// Pipeline Constants
const (
	// SnippetMaxLen caps evidence snippets before any downstream processing
	SnippetMaxLen = 300

	// DefaultResultLimit is the evidence cap when the caller supplies none
	DefaultResultLimit = 10

	// DefaultFreshness is the horizon used when the caller supplies none
	DefaultFreshness = FreshnessWeek

	// DefaultMinConfidence is the verdict downgrade threshold default
	DefaultMinConfidence = 0.7

	// MaxVerdictEvidence caps the supporting evidence carried on a verdict
	MaxVerdictEvidence = 5
)

// Ranking Constants
const (
	// FreshnessBonusWindow is the age in seconds beyond which the freshness
	// bonus reaches zero (roughly 11.5 days)
	FreshnessBonusWindow = 1000000.0

	// FreshnessBonusDivisor scales the remaining window into a bonus;
	// an item with zero age earns FreshnessBonusWindow/FreshnessBonusDivisor
	FreshnessBonusDivisor = 10000.0

	// QualityBonus is added when a snippet is long enough to carry context
	QualityBonus = 10.0

	// QualityMinSnippetLen is the snippet length that earns QualityBonus
	QualityMinSnippetLen = 100
)

// Adapter Constants
const (
	// AdapterTimeout bounds a single adapter invocation
	AdapterTimeout = 15 * time.Second

	// AdapterMaxResults caps what one adapter may contribute per query
	AdapterMaxResults = 10
)
