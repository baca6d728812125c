package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivergara/skym/internal/adapters/driving/tui/keymap"
	"github.com/ivergara/skym/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_SetCounts(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetCounts(3, 10, 1)

	matched, total, marked := bar.Counts()
	assert.Equal(t, 3, matched)
	assert.Equal(t, 10, total)
	assert.Equal(t, 1, marked)
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCounts(1, 2, 1)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	matched, total, marked := bar.Counts()
	assert.Zero(t, matched+total+marked)
}

func TestStatusBar_View_Counts(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCounts(2, 5, 0)

	view := bar.View()

	assert.Contains(t, view, "2/5")
	assert.NotContains(t, view, "marked")
	assert.Contains(t, view, "enter: select")
	assert.Contains(t, view, "tab: mark")
}

func TestStatusBar_View_Marked(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetCounts(2, 5, 3)

	assert.Contains(t, bar.View(), "2/5 (3 marked)")
}

func TestStatusBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	assert.Contains(t, bar.View(), "Error")

	bar.SetMessage("session closed")
	assert.Contains(t, bar.View(), "Error: session closed")
}
