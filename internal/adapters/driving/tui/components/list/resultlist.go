// Package list renders ranked candidates for the picker.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivergara/skym/internal/adapters/driving/tui/styles"
	"github.com/ivergara/skym/internal/core/domain"
)

const (
	cursorIndicator = "> "
	markIndicator   = "* "
	blankIndicator  = "  "
	ellipsis        = "…"
)

// ResultList displays a ranked list with match highlighting.
// The cursor and marks are owned by the session; the list only mirrors them.
type ResultList struct {
	results  domain.RankedList
	selected int
	isMarked func(index int) bool
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		isMarked: func(int) bool { return false },
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// View renders the visible window of results.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No matches")
	}

	visible := r.height
	if visible < 1 {
		visible = 1
	}

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := start + visible
	if end > len(r.results) {
		end = len(r.results)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i, r.results[i]))
	}
	return strings.Join(lines, "\n")
}

// renderRow formats one candidate with its indicators and highlights.
func (r *ResultList) renderRow(index int, ranked domain.Ranked) string {
	current := index == r.selected

	var b strings.Builder
	if current {
		b.WriteString(r.styles.Cursor.Render(cursorIndicator))
	} else {
		b.WriteString(blankIndicator)
	}
	if r.isMarked(ranked.Candidate.Index) {
		b.WriteString(r.styles.Marked.Render(markIndicator))
	} else {
		b.WriteString(blankIndicator)
	}

	plain, match := r.styles.Normal, r.styles.Match
	if current {
		plain, match = r.styles.Cursor, r.styles.CursorMatch
	}
	maxWidth := r.width - lipgloss.Width(cursorIndicator+markIndicator)
	b.WriteString(Highlight(ranked.Candidate.Text, ranked.Result.Offsets, maxWidth, plain, match))
	return b.String()
}

// Highlight renders text with the characters at the given byte offsets in
// match style and the rest in plain style. Text wider than maxWidth columns
// is truncated with an ellipsis; a non-positive maxWidth disables truncation.
func Highlight(text string, offsets []int, maxWidth int, plain, match lipgloss.Style) string {
	matched := make(map[int]bool, len(offsets))
	for _, off := range offsets {
		matched[off] = true
	}

	var out, run strings.Builder
	runMatched := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatched {
			out.WriteString(match.Render(run.String()))
		} else {
			out.WriteString(plain.Render(run.String()))
		}
		run.Reset()
	}

	width := 0
	truncate := maxWidth > 0 && lipgloss.Width(text) > maxWidth
	for off, ch := range text {
		w := lipgloss.Width(string(ch))
		if truncate && width+w > maxWidth-1 {
			flush()
			out.WriteString(plain.Render(ellipsis))
			return out.String()
		}
		width += w

		if matched[off] != runMatched {
			flush()
			runMatched = matched[off]
		}
		run.WriteRune(ch)
	}
	flush()
	return out.String()
}

// SetResults replaces the displayed results.
func (r *ResultList) SetResults(results domain.RankedList) {
	r.results = results
	if r.selected >= len(results) {
		r.selected = 0
	}
}

// Results returns the current results.
func (r *ResultList) Results() domain.RankedList {
	return r.results
}

// SetMarked sets the predicate reporting whether an input index is marked.
func (r *ResultList) SetMarked(isMarked func(index int) bool) {
	if isMarked == nil {
		isMarked = func(int) bool { return false }
	}
	r.isMarked = isMarked
}

// Selected returns the index of the row under the cursor.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the row under the cursor.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// PageSize returns how many rows fit in the list.
func (r *ResultList) PageSize() int {
	if r.height < 1 {
		return 1
	}
	return r.height
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
