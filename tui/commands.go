package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"webhunt/factcheck"
)

// textBlink restarts the cursor blink when returning to the input screen
func textBlink() tea.Cmd {
	return textinput.Blink
}

// runCheck runs the full check pipeline for a claim
func runCheck(checker *factcheck.Checker, claim string, params factcheck.CheckParams) tea.Cmd {
	return func() tea.Msg {
		result, err := checker.Check(context.Background(), claim, params)
		return CheckDoneMsg{Result: result, Err: err}
	}
}
