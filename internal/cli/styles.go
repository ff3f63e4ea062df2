// Package cli provides styled output for the non-interactive commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// AccentColor matches the dashboard's default primary color.
	AccentColor = lipgloss.Color("#7c3aed")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#ef4444")
	// SubtleColor indicates less prominent text.
	SubtleColor = lipgloss.Color("#737373")

	// HeaderStyle is used for table column headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats notes such as the empty-result line.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// FormatError renders a one-line error for stderr.
func FormatError(msg string) string {
	return ErrorStyle.Render("✗ " + msg)
}
