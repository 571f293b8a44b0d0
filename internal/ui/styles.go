package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for line-oriented output
var (
	PrimaryColor = lipgloss.Color("#E5C07B") // Amber - indices, prompt
	SuccessColor = lipgloss.Color("#43BF6D") // Green - applied updates
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	MutedColor   = lipgloss.Color("#626262") // Gray - hints, aliases
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 120
)

var (
	// IndexStyle is for the "[00]" list prefix
	IndexStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// PathStyle is for the device path
	PathStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// ValueStyle is for "brightness / max"
	ValueStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// AliasStyle is for the optional "(alias)" suffix
	AliasStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// UpdateStyle is for "update controller ..." confirmations
	UpdateStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// HintStyle is for usage hints
	HintStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// PromptStyle is for the "> " input prompt
	PromptStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
