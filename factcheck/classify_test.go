package factcheck

import (
	"testing"

	"webhunt/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		item types.Evidence
		want Signal
	}{
		{
			name: "confirm cue",
			item: types.Evidence{Title: "Deal confirmed", Snippet: "both parties agree"},
			want: SignalConfirming,
		},
		{
			name: "deny cue",
			item: types.Evidence{Title: "Story debunked", Snippet: "it never happened"},
			want: SignalDenying,
		},
		{
			name: "suspicious cue counts as denying",
			item: types.Evidence{Title: "Shocking development", Snippet: "you won't believe this"},
			want: SignalDenying,
		},
		{
			name: "no cues",
			item: types.Evidence{Title: "Quarterly report", Snippet: "numbers are in"},
			want: SignalNeutral,
		},
		{
			name: "both sides cancel out",
			item: types.Evidence{Title: "Confirmed or debunked?", Snippet: "reports differ"},
			want: SignalNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.item); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectContradictionsPicksHighestScoredSamples(t *testing.T) {
	evidence := []types.Evidence{
		{Title: "Launch confirmed", URL: "https://c1.example", Score: 10},
		{Title: "Launch officially on", Snippet: "official word", URL: "https://c2.example", Score: 50},
		{Title: "Launch denied", URL: "https://d1.example", Score: 30},
		{Title: "Launch is fake", URL: "https://d2.example", Score: 5},
	}

	records := DetectContradictions(evidence)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	c := records[0]
	if c.SampleConfirm.URL != "https://c2.example" {
		t.Errorf("confirm sample = %q, want the highest-scored confirming item", c.SampleConfirm.URL)
	}
	if c.SampleDeny.URL != "https://d1.example" {
		t.Errorf("deny sample = %q, want the highest-scored denying item", c.SampleDeny.URL)
	}
}

func TestDetectContradictionsOneSidedEvidence(t *testing.T) {
	evidence := []types.Evidence{
		{Title: "Launch confirmed"},
		{Title: "Launch announced"},
	}

	if records := DetectContradictions(evidence); records != nil {
		t.Errorf("one-sided evidence produced a contradiction: %+v", records)
	}
}
