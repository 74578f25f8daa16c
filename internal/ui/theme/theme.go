package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, calm blues with a warm accent.
var (
	Primary = lipgloss.Color("#4976F7") // Blue
	Accent  = lipgloss.Color("#F78434") // Orange
	Success = lipgloss.Color("#2EB872") // Green
	Warning = lipgloss.Color("#E8B931") // Amber
	Error   = lipgloss.Color("#E8505B") // Red
	Text    = lipgloss.Color("#ECF2FF") // Near white
	TextDim = lipgloss.Color("#8A97B0") // Gray blue
	BgCard  = lipgloss.Color("#1A2238") // Dark navy
	Border  = lipgloss.Color("#30405F") // Slate blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Cards and states
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Partial = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
