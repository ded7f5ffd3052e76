package factcheck

import (
	"strings"

	"webhunt/types"
)

// Signal classifies one evidence item's stance toward a claim.
type Signal int

const (
	SignalNeutral Signal = iota
	SignalConfirming
	SignalDenying
)

// Classify scans an item's title and snippet for confirming and denying cues.
// Suspicious cues count on the denying side. An item matching both kinds of
// cue, or neither, is neutral.
func Classify(item types.Evidence) Signal {
	text := strings.ToLower(item.Title + " " + item.Snippet)

	confirms := containsAny(text, confirmCues)
	denies := containsAny(text, denyCues) || containsAny(text, suspiciousCues)

	switch {
	case confirms && !denies:
		return SignalConfirming
	case denies && !confirms:
		return SignalDenying
	default:
		return SignalNeutral
	}
}

// DetectContradictions partitions evidence into confirming and denying groups
// and reports a contradiction when both are non-empty. The record carries the
// group sizes plus the highest-scored representative of each group.
func DetectContradictions(evidence []types.Evidence) []types.Contradiction {
	var confirming, denying []types.Evidence
	for _, item := range evidence {
		switch Classify(item) {
		case SignalConfirming:
			confirming = append(confirming, item)
		case SignalDenying:
			denying = append(denying, item)
		}
	}

	if len(confirming) == 0 || len(denying) == 0 {
		return nil
	}

	return []types.Contradiction{{
		Type:          "conflicting_reports",
		ConfirmCount:  len(confirming),
		DenyCount:     len(denying),
		SampleConfirm: highestScored(confirming),
		SampleDeny:    highestScored(denying),
	}}
}

func highestScored(items []types.Evidence) *types.Evidence {
	best := items[0]
	for _, item := range items[1:] {
		if item.Score > best.Score {
			best = item
		}
	}
	return &best
}
