package tui

import "github.com/charmbracelet/lipgloss"

// Slate/sky theme colors for TUI contexts.
var (
	colorPass   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	colorFail   = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}
	colorText   = lipgloss.AdaptiveColor{Light: "#334155", Dark: "#e2e8f0"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#0284c7", Dark: "#38bdf8"}
	colorSel    = lipgloss.AdaptiveColor{Light: "#e2e8f0", Dark: "#1e293b"}
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true)

	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleError = lipgloss.NewStyle().Foreground(colorFail)

	styleSuccess = lipgloss.NewStyle().Foreground(colorPass)

	styleConfirm = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleLabel = lipgloss.NewStyle().Foreground(colorText)

	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleBar = lipgloss.NewStyle().
			Background(colorSel).
			Foreground(colorDim).
			Padding(0, 1)
)
