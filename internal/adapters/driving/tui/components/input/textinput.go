// Package input provides the query input of the picker.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivergara/skym/internal/adapters/driving/tui/styles"
)

// DefaultPrompt is shown when no prompt is configured.
const DefaultPrompt = "> "

// QueryInput wraps a bubbles textinput with picker styling.
type QueryInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewQueryInput creates a focused query input showing prompt.
func NewQueryInput(s *styles.Styles, prompt string) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = s.Prompt
	ti.TextStyle = s.Normal
	ti.Placeholder = "type to filter"
	ti.PlaceholderStyle = s.Muted
	ti.Focus()

	return &QueryInput{
		textinput: ti,
		styles:    s,
		width:     80,
	}
}

// Init initialises the query input.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	var cmd tea.Cmd
	q.textinput, cmd = q.textinput.Update(msg)
	return q, cmd
}

// View renders the query input.
func (q *QueryInput) View() string {
	return q.textinput.View()
}

// Value returns the current query.
func (q *QueryInput) Value() string {
	return q.textinput.Value()
}

// SetValue sets the query and moves the cursor to its end.
func (q *QueryInput) SetValue(value string) {
	q.textinput.SetValue(value)
	q.textinput.CursorEnd()
}

// Prompt returns the prompt shown before the query.
func (q *QueryInput) Prompt() string {
	return q.textinput.Prompt
}

// Focused returns whether the input is focused.
func (q *QueryInput) Focused() bool {
	return q.textinput.Focused()
}

// SetWidth sets the width of the input.
func (q *QueryInput) SetWidth(width int) {
	q.width = width
	inputWidth := width - len([]rune(q.textinput.Prompt)) - 1
	if inputWidth < 10 {
		inputWidth = 10
	}
	q.textinput.Width = inputWidth
}

// Width returns the current width.
func (q *QueryInput) Width() int {
	return q.width
}

// Reset clears the query.
func (q *QueryInput) Reset() {
	q.textinput.Reset()
}
