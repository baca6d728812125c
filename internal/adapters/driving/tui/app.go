// Package tui provides the interactive picker for skym.
// It drives a match session from keyboard input and renders the ranking.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivergara/skym/internal/adapters/driving/tui/components/input"
	"github.com/ivergara/skym/internal/adapters/driving/tui/components/list"
	"github.com/ivergara/skym/internal/adapters/driving/tui/components/status"
	"github.com/ivergara/skym/internal/adapters/driving/tui/keymap"
	"github.com/ivergara/skym/internal/adapters/driving/tui/messages"
	"github.com/ivergara/skym/internal/adapters/driving/tui/styles"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
)

// chromeHeight is the number of rows used by the input and the status bar.
const chromeHeight = 2

// App is the picker model following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// session owns the query, ranking, cursor and marks.
	session driven.PickerSession

	styles *styles.Styles
	keymap *keymap.KeyMap

	input  *input.QueryInput
	list   *list.ResultList
	status *status.Bar

	width  int
	height int

	// selection is set once the user commits or cancels.
	selection []domain.Candidate
	done      bool
	err       error
}

// NewApp creates a picker model over session. The input starts with the
// session's query so a prefilled query is visible and editable.
func NewApp(session driven.PickerSession, prompt string, s *styles.Styles) (*App, error) {
	if session == nil {
		return nil, ErrMissingSession
	}
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	a := &App{
		session: session,
		styles:  s,
		keymap:  km,
		input:   input.NewQueryInput(s, prompt),
		list:    list.NewResultList(s),
		status:  status.NewBar(s, km),
	}
	a.input.SetValue(session.Query())
	a.list.SetMarked(session.IsMarked)
	a.SetDimensions(80, 20)
	a.sync()
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.input.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.QueryChanged:
		a.input.SetValue(msg.Query)
		return a, a.applyQuery()

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.status.SetState(status.StateError)
		a.status.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Committed:
		a.selection = msg.Selection
		a.done = true
		return a, tea.Quit

	case messages.Cancelled:
		a.selection = []domain.Candidate{}
		a.done = true
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKey routes picker bindings to the session and everything else
// to the query input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.done {
		return a, nil
	}

	k := msg.String()
	switch {
	case keymap.Matches(k, a.keymap.Cancel):
		a.session.Cancel()
		return a, func() tea.Msg { return messages.Cancelled{} }

	case keymap.Matches(k, a.keymap.Select):
		selection := a.session.CommitAll()
		return a, func() tea.Msg { return messages.Committed{Selection: selection} }

	case keymap.Matches(k, a.keymap.ToggleMark):
		a.session.ToggleMark()
		a.session.Move(1)

	case keymap.Matches(k, a.keymap.Up):
		a.session.Move(-1)

	case keymap.Matches(k, a.keymap.Down):
		a.session.Move(1)

	case keymap.Matches(k, a.keymap.PageUp):
		a.session.Move(-a.list.PageSize())

	case keymap.Matches(k, a.keymap.PageDown):
		a.session.Move(a.list.PageSize())

	case keymap.Matches(k, a.keymap.Clear):
		a.input.Reset()
		return a, a.applyQuery()

	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, tea.Batch(cmd, a.applyQuery())
	}

	a.sync()
	return a, nil
}

// applyQuery forwards the input's value to the session as a single edit.
func (a *App) applyQuery() tea.Cmd {
	query := a.input.Value()
	if query == a.session.Query() {
		return nil
	}
	if _, err := a.session.Update(editFor(a.session.Query(), query)); err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	a.sync()
	return nil
}

// sync mirrors session state into the components.
func (a *App) sync() {
	results := a.session.Results()
	a.list.SetResults(results)
	a.list.SetSelected(a.session.Cursor())
	a.status.SetCounts(len(results), a.session.Total(), a.session.Marked())
}

// editFor returns the smallest edit that turns from into to.
func editFor(from, to string) domain.QueryEdit {
	switch {
	case to == "":
		return domain.Clear()
	case strings.HasPrefix(to, from):
		return domain.Append(to[len(from):])
	case domain.Backspace().Apply(from) == to:
		return domain.Backspace()
	default:
		return domain.Replace(to)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if a.done {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.input.View(),
		a.list.View(),
		a.status.View(),
	)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.input.SetWidth(width)
	a.status.SetWidth(width)
	a.list.SetDimensions(width, max(1, height-chromeHeight))
}

// Query returns the current query.
func (a *App) Query() string {
	return a.input.Value()
}

// Selection returns what the user chose. It is nil until the picker ends.
func (a *App) Selection() []domain.Candidate {
	return a.selection
}

// Done reports whether the user committed or cancelled.
func (a *App) Done() bool {
	return a.done
}

// Err returns the last error reported by the session.
func (a *App) Err() error {
	return a.err
}
