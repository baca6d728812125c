package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Highlight))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Marked))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Bar))
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Highlight, theme.Marked, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		s := string(c)
		assert.False(t, seen[s], "duplicate accent: %s", s)
		seen[s] = true
	}
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	s := NewStyles(theme)

	require.NotNil(t, s)
	assert.Equal(t, theme, s.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	require.NotNil(t, s.Theme())
	assert.Equal(t, DefaultTheme().Primary, s.Theme().Primary)
}

func TestStyles_MatchIsEmphasised(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Match.GetBold())
	assert.True(t, s.CursorMatch.GetUnderline())
	assert.Equal(t, lipgloss.TerminalColor(s.Theme().Highlight), s.Match.GetForeground())
}

func TestStyles_RenderKeepsText(t *testing.T) {
	s := DefaultStyles()

	for _, style := range []lipgloss.Style{s.Prompt, s.Normal, s.Match, s.Cursor, s.Marked, s.Muted, s.Error} {
		assert.Contains(t, style.Render("apple"), "apple")
	}
}
