package prompt

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by all prompting primitives
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles, focused chrome
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirmations
	ErrorColor   = lipgloss.Color("#FF5555") // Red - validation failures
	AccentColor  = lipgloss.Color("#FF5F87") // Pink - default-value hints
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth    = 40  // Minimum supported terminal width
	MaxContentWidth     = 100 // Maximum content width before capping
	DefaultEditorHeight = 10  // Editor body rows when the caller gives none
)

// Shared styles
var (
	// MessageStyle is for the prompt question itself
	MessageStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// DefaultHintStyle is for the "(default)" hint after the question
	DefaultHintStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	// DirtyStyle is for validation guidance shown under invalid input
	DirtyStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// TitleBarStyle is for the editor/dialog title line
	TitleBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	// StatusBarStyle is for the editor key-hint footer
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	// ButtonStyle is for unfocused dialog buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(MutedColor).
			Padding(0, 3).
			Margin(0, 1)

	// ActiveButtonStyle is for the focused dialog button
	ActiveButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 3).
				Margin(0, 1)
)

// DialogBoxStyle returns the border style for modal dialogs
func DialogBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width).
		Padding(1, 2)
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

// IsInteractive reports whether stdin is attached to a terminal. The
// prompting primitives use this to decide between the Bubble Tea UI and
// the plain line-reading fallback.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
