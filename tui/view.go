package tui

import (
	"fmt"
	"strings"

	"webhunt/types"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("🔎 webhunt fact checker"))
	b.WriteString("\n\n")

	switch m.State {
	case StateInput:
		b.WriteString(m.Input.View())
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("enter: check claim • esc: quit"))

	case StateChecking:
		b.WriteString(fmt.Sprintf("%s Checking %q...\n", m.Spinner.View(), m.Input.Value()))
		b.WriteString(MutedStyle.Render("\nesc: quit"))

	case StateDone:
		b.WriteString(m.renderResult())
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("n: new claim • q: quit"))

	case StateError:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("❌ Check failed: %v", m.Err)))
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("n: new claim • q: quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderResult() string {
	r := m.Result
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Claim: %s\n", r.Claim))
	b.WriteString(fmt.Sprintf("Verdict: %s  (confidence %.0f%%)\n\n", verdictBadge(r.Verdict), r.Confidence*100))
	b.WriteString(r.Explanation)
	b.WriteString("\n")

	if len(r.Contradictions) > 0 {
		c := r.Contradictions[0]
		b.WriteString(PartialStyle.Render(fmt.Sprintf("\n⚠️  Conflicting reports: %d confirming vs %d denying\n",
			c.ConfirmCount, c.DenyCount)))
	}

	if len(r.Evidence) > 0 {
		b.WriteString("\nTop evidence:\n")
		for i, ev := range r.Evidence {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, ev.Title))
			b.WriteString(MutedStyle.Render(fmt.Sprintf("     %s · %s\n", ev.Source, ev.URL)))
		}
	}
	return b.String()
}

func verdictBadge(v types.Verdict) string {
	switch v {
	case types.VerdictTrue:
		return TrueStyle.Render("✅ TRUE")
	case types.VerdictFalse:
		return FalseStyle.Render("❌ FALSE")
	case types.VerdictPartiallyTrue:
		return PartialStyle.Render("⚠️ PARTIALLY TRUE")
	default:
		return MutedStyle.Render("❓ UNVERIFIED")
	}
}
