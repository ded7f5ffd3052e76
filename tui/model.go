// Package tui is an interactive claim checker: type a claim, watch the
// pipeline run, read the verdict.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"webhunt/factcheck"
	"webhunt/types"
)

// State represents the application state machine
type State string

const (
	StateInput    State = "input"
	StateChecking State = "checking"
	StateDone     State = "done"
	StateError    State = "error"
)

// Model represents the checker UI state
type Model struct {
	checker *factcheck.Checker
	params  factcheck.CheckParams

	State   State
	Input   textinput.Model
	Spinner spinner.Model
	Result  *types.VerdictResult
	Err     error
}

// NewModel creates a new checker UI over the given checker.
func NewModel(checker *factcheck.Checker, params factcheck.CheckParams) Model {
	ti := textinput.New()
	ti.Placeholder = "NVIDIA bought Groq for $20B"
	ti.Prompt = "Claim: "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return Model{
		checker: checker,
		params:  params,
		State:   StateInput,
		Input:   ti,
		Spinner: sp,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
