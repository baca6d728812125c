package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivergara/skym/internal/adapters/driving/tui/styles"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/logger"
)

// Verify interface compliance.
var _ driven.Picker = (*Picker)(nil)

// Picker runs the interactive picker on the terminal.
type Picker struct {
	settings domain.UISettings
	styles   *styles.Styles
	input    io.Reader
	output   io.Writer
}

// Option configures a Picker.
type Option func(*Picker)

// WithInput reads keys from r instead of the controlling terminal.
func WithInput(r io.Reader) Option {
	return func(p *Picker) { p.input = r }
}

// WithOutput renders to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(p *Picker) { p.output = w }
}

// WithStyles overrides the default styles.
func WithStyles(s *styles.Styles) Option {
	return func(p *Picker) { p.styles = s }
}

// NewPicker creates a picker. It renders to stderr and reads keys from the
// controlling terminal, so stdin and stdout stay free for piped data.
func NewPicker(settings domain.UISettings, opts ...Option) *Picker {
	p := &Picker{
		settings: settings,
		styles:   styles.DefaultStyles(),
		output:   os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick implements driven.Picker.
func (p *Picker) Pick(ctx context.Context, session driven.PickerSession) ([]domain.Candidate, error) {
	app, err := NewApp(session, p.settings.Prompt, p.styles)
	if err != nil {
		return nil, err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(p.output)}
	if p.input != nil {
		opts = append(opts, tea.WithInput(p.input))
	} else {
		opts = append(opts, tea.WithInputTTY())
	}
	if p.settings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Debug("picker session %s started with %d candidates", session.ID(), session.Total())
	final, err := tea.NewProgram(app, opts...).Run()
	if err != nil || ctx.Err() != nil {
		if !session.Closed() {
			session.Cancel()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("run picker: %w", err)
	}

	done, ok := final.(*App)
	if !ok {
		return nil, ErrUnexpectedModel
	}
	if !done.Done() {
		session.Cancel()
		return []domain.Candidate{}, nil
	}
	logger.Debug("picker session %s closed with %d selected", session.ID(), len(done.Selection()))
	return done.Selection(), nil
}
