package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorGood    = lipgloss.Color("#04B575")
	colorBad     = lipgloss.Color("#FF5F87")
	colorWarn    = lipgloss.Color("#FFB454")
	colorMuted   = lipgloss.Color("#626262")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(colorPrimary).
			Padding(0, 1)

	SpinnerStyle = lipgloss.NewStyle().Foreground(colorPrimary)

	TrueStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	FalseStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	PartialStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWarn)
	MutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorBad)
)
