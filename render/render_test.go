package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"webhunt/types"
)

func sampleEvidence() []types.Evidence {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return []types.Evidence{
		{
			Title:       "Chip deal announced",
			URL:         "https://example.com/chip",
			Snippet:     "the acquisition was announced this morning",
			Source:      "hackernews",
			PublishedAt: &ts,
			Popularity:  120,
			Score:       200,
		},
		{
			Title:   "Undated follow-up",
			URL:     "https://example.com/followup",
			Snippet: "more details expected",
			Source:  "rss/hn",
		},
	}
}

func sampleVerdict() *types.VerdictResult {
	return &types.VerdictResult{
		Claim:       "chip deal happened",
		Verdict:     types.VerdictTrue,
		Confidence:  0.9,
		Evidence:    sampleEvidence(),
		Explanation: "The claim is corroborated by multiple sources.",
		CheckedAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatEvidenceJSONRoundtrips(t *testing.T) {
	out, err := FormatEvidence(sampleEvidence(), FormatJSON)
	if err != nil {
		t.Fatalf("FormatEvidence: %v", err)
	}

	var decoded []types.Evidence
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].URL != "https://example.com/chip" {
		t.Errorf("decoded %+v", decoded)
	}
}

func TestFormatEvidenceText(t *testing.T) {
	out, err := FormatEvidence(sampleEvidence(), FormatText)
	if err != nil {
		t.Fatalf("FormatEvidence: %v", err)
	}
	for _, want := range []string{"Chip deal announced", "https://example.com/chip", "2026-08-29", "N/A"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestFormatEvidenceMarkdown(t *testing.T) {
	out, err := FormatEvidence(sampleEvidence(), FormatMarkdown)
	if err != nil {
		t.Fatalf("FormatEvidence: %v", err)
	}
	if !strings.HasPrefix(out, "# Search Results") {
		t.Errorf("markdown output missing header: %q", out[:40])
	}
	if !strings.Contains(out, "## 1. Chip deal announced") {
		t.Error("markdown output missing numbered section")
	}
}

func TestFormatVerdictFormats(t *testing.T) {
	result := sampleVerdict()

	for _, format := range []string{FormatText, FormatJSON, FormatMarkdown} {
		t.Run(format, func(t *testing.T) {
			out, err := FormatVerdict(result, format)
			if err != nil {
				t.Fatalf("FormatVerdict: %v", err)
			}
			if !strings.Contains(out, "90%") && format != FormatJSON {
				t.Errorf("%s output missing confidence: %q", format, out)
			}
		})
	}
}

func TestFormatVerdictMarkdownContradictions(t *testing.T) {
	result := sampleVerdict()
	result.Contradictions = []types.Contradiction{{
		Type:         "conflicting_reports",
		ConfirmCount: 3,
		DenyCount:    2,
	}}

	out, err := FormatVerdict(result, FormatMarkdown)
	if err != nil {
		t.Fatalf("FormatVerdict: %v", err)
	}
	if !strings.Contains(out, "## Contradictions") || !strings.Contains(out, "3 confirming vs 2 denying") {
		t.Errorf("markdown output missing contradictions section: %q", out)
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	if _, err := FormatEvidence(nil, "yaml"); err == nil {
		t.Error("FormatEvidence accepted unknown format")
	}
	if _, err := FormatVerdict(sampleVerdict(), "yaml"); err == nil {
		t.Error("FormatVerdict accepted unknown format")
	}
}
