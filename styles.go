package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW     = 9 // width of each column in the circuit diagram
	labelW    = 7 // visual width of qubit label area
	gateNameW = 3 // width of gate name inside box
)

// Brand palette of the neutral-atom vendor the pipeline targets.
const (
	colorPurple = lipgloss.Color("#6B4E9B")
	colorBlue   = lipgloss.Color("#3B82F6")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#F59E0B")
	colorGreen  = lipgloss.Color("#10B981")
	colorGray   = lipgloss.Color("#6B7280")
	colorOrange = lipgloss.Color("#F97316")
)

// Lipgloss styles used across the TUI.
var (
	circuitStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(1)

	codeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1)

	explainStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPurple)

	stageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOrange)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	qubitLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	highlightGateStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	atomStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	rydbergStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	readoutStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	waveOmegaStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	waveDeltaStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)
