// Package styles provides colour themes and styling for the picker.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the picker.
type Theme struct {
	// Primary is the accent used for the prompt and cursor row.
	Primary lipgloss.Color

	// Highlight colours the matched characters of a candidate.
	Highlight lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for counters and hints.
	Muted lipgloss.Color

	// Marked colours the mark indicator of multi-selected rows.
	Marked lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Highlight:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Marked:     lipgloss.Color("#A6E3A1"), // Green
		Error:      lipgloss.Color("#F38BA8"), // Red
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Prompt renders the prompt in front of the query.
	Prompt lipgloss.Style

	// Normal renders unmatched characters of a row.
	Normal lipgloss.Style

	// Match renders matched characters of a row.
	Match lipgloss.Style

	// Cursor renders the row under the cursor.
	Cursor lipgloss.Style

	// CursorMatch renders matched characters on the cursor row.
	CursorMatch lipgloss.Style

	// Marked renders the multi-select indicator.
	Marked lipgloss.Style

	// Muted renders counters and hints.
	Muted lipgloss.Style

	// Error renders error messages.
	Error lipgloss.Style

	// StatusBar renders the bar below the input.
	StatusBar lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Match: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		CursorMatch: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(theme.Highlight).
			Background(theme.Primary),

		Marked: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Marked),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
