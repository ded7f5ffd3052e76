package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case CheckDoneMsg:
		return m.handleCheckDone(msg)

	case spinner.TickMsg:
		if m.State != StateChecking {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	if m.State == StateInput {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		if m.State != StateInput {
			return m, nil
		}
		claim := strings.TrimSpace(m.Input.Value())
		if claim == "" {
			return m, nil
		}
		m.State = StateChecking
		m.Result = nil
		m.Err = nil
		return m, tea.Batch(
			m.Spinner.Tick,
			runCheck(m.checker, claim, m.params),
		)

	case "q":
		// q quits from result screens, but types into the claim field
		if m.State != StateInput {
			return m, tea.Quit
		}

	case "n":
		if m.State == StateDone || m.State == StateError {
			m.State = StateInput
			m.Input.SetValue("")
			m.Input.Focus()
			return m, textBlink()
		}
	}

	if m.State == StateInput {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleCheckDone processes a finished check
func (m Model) handleCheckDone(msg CheckDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.State = StateDone
	m.Result = msg.Result
	return m, nil
}
