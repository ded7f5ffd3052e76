// Package render formats pipeline output for the terminal, for machines and
// for documents. The pipeline itself never serializes anything; everything
// presentation-related lives here.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"webhunt/types"
)

// Supported output formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

var verdictEmoji = map[types.Verdict]string{
	types.VerdictTrue:          "✅",
	types.VerdictFalse:         "❌",
	types.VerdictPartiallyTrue: "⚠️",
	types.VerdictUnverified:    "❓",
}

func verdictStyle(v types.Verdict) func(...string) string {
	switch v {
	case types.VerdictTrue:
		return TrueStyle.Render
	case types.VerdictFalse:
		return FalseStyle.Render
	case types.VerdictPartiallyTrue:
		return PartialStyle.Render
	default:
		return InfoStyle.Render
	}
}

// FormatEvidence renders a ranked evidence list.
func FormatEvidence(results []types.Evidence, format string) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil

	case FormatMarkdown:
		var lines []string
		lines = append(lines, "# Search Results", "")
		for i, r := range results {
			lines = append(lines,
				fmt.Sprintf("## %d. %s", i+1, r.Title),
				fmt.Sprintf("🔗 [%s](%s)", r.URL, r.URL),
				fmt.Sprintf("📰 **Source:** %s", r.Source),
				fmt.Sprintf("📅 **Date:** %s", dateString(r)),
				"> "+clip(r.Snippet, 200),
				"")
		}
		return strings.Join(lines, "\n"), nil

	case FormatText:
		var lines []string
		lines = append(lines, TitleStyle.Render("🔍 Search results:"), "")
		for i, r := range results {
			lines = append(lines,
				fmt.Sprintf("%d. %s", i+1, r.Title),
				InfoStyle.Render("   URL: "+r.URL),
				InfoStyle.Render(fmt.Sprintf("   Source: %s | Date: %s", r.Source, dateString(r))),
				"   "+clip(r.Snippet, 150),
				"")
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// FormatVerdict renders a claim verification result.
func FormatVerdict(result *types.VerdictResult, format string) (string, error) {
	emoji := verdictEmoji[result.Verdict]

	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil

	case FormatMarkdown:
		lines := []string{
			"# Fact Check",
			"",
			fmt.Sprintf("**Claim:** %s", result.Claim),
			fmt.Sprintf("**Verdict:** %s %s", emoji, strings.ToUpper(string(result.Verdict))),
			fmt.Sprintf("**Confidence:** %.0f%%", result.Confidence*100),
			fmt.Sprintf("**Checked:** %s", result.CheckedAt.Format("2006-01-02 15:04")),
			"",
			"## Explanation",
			result.Explanation,
			"",
			fmt.Sprintf("## Sources (%d)", len(result.Evidence)),
		}
		for i, ev := range result.Evidence {
			lines = append(lines, fmt.Sprintf("%d. [%s](%s)", i+1, clip(ev.Title, 60), ev.URL))
		}
		if len(result.Contradictions) > 0 {
			lines = append(lines, "", "## Contradictions")
			for _, c := range result.Contradictions {
				lines = append(lines, fmt.Sprintf("- %s: %d confirming vs %d denying", c.Type, c.ConfirmCount, c.DenyCount))
			}
		}
		return strings.Join(lines, "\n"), nil

	case FormatText:
		style := verdictStyle(result.Verdict)
		lines := []string{
			style(fmt.Sprintf("%s VERDICT: %s", emoji, strings.ToUpper(string(result.Verdict)))),
			fmt.Sprintf("📊 Confidence: %.0f%%", result.Confidence*100),
			"📝 " + result.Explanation,
			"",
			fmt.Sprintf("🔗 Sources (%d):", len(result.Evidence)),
		}
		for _, ev := range result.Evidence {
			lines = append(lines, "  • "+clip(ev.Title, 70), InfoStyle.Render("    "+ev.URL))
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func dateString(r types.Evidence) string {
	if r.PublishedAt == nil {
		return "N/A"
	}
	return r.PublishedAt.Format("2006-01-02")
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
