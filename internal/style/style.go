// Package style provides consistent terminal styling using Lipgloss.
// The palette mirrors the Tailwind slate/sky look of the generated markup.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass = lipgloss.AdaptiveColor{
		Light: "#16a34a",
		Dark:  "#4ade80",
	}
	colorWarn = lipgloss.AdaptiveColor{
		Light: "#d97706",
		Dark:  "#fbbf24",
	}
	colorFail = lipgloss.AdaptiveColor{
		Light: "#dc2626",
		Dark:  "#f87171",
	}
	colorMuted = lipgloss.AdaptiveColor{
		Light: "#64748b",
		Dark:  "#94a3b8",
	}
	colorAccent = lipgloss.AdaptiveColor{
		Light: "#0284c7",
		Dark:  "#38bdf8",
	}
)

// Semantic icons
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✖"
)

var (
	// Success style for positive outcomes (green)
	Success = lipgloss.NewStyle().
		Foreground(colorPass).
		Bold(true)

	// Warning style for cautionary messages (amber)
	Warning = lipgloss.NewStyle().
		Foreground(colorWarn).
		Bold(true)

	// Error style for failures (red)
	Error = lipgloss.NewStyle().
		Foreground(colorFail).
		Bold(true)

	// Info style for informational messages (sky blue)
	Info = lipgloss.NewStyle().
		Foreground(colorAccent)

	// Dim style for secondary information (slate)
	Dim = lipgloss.NewStyle().
		Foreground(colorMuted)

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().
		Bold(true)
)

// SetColorMode overrides style rendering based on --color flag or NO_COLOR env.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		Success = lipgloss.NewStyle()
		Warning = lipgloss.NewStyle()
		Error = lipgloss.NewStyle()
		Info = lipgloss.NewStyle()
		Dim = lipgloss.NewStyle()
		Bold = lipgloss.NewStyle()
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		Success = lipgloss.NewStyle().Foreground(colorPass).Bold(true)
		Warning = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
		Error = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
		Info = lipgloss.NewStyle().Foreground(colorAccent)
		Dim = lipgloss.NewStyle().Foreground(colorMuted)
		Bold = lipgloss.NewStyle().Bold(true)
	}
}
