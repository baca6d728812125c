// Package skym ranks strings against a fuzzy query.
//
// Exact matches (ignoring case) rank first, then contiguous substrings, then
// subsequence matches. Items that do not contain the query are dropped and
// an empty query keeps every item in input order.
//
//	got, err := skym.FuzzyMatch("aple", []string{"apple", "maple", "pear"}, false)
//
// With interactive set, a terminal picker opens with the query pre-filled and
// the user's selection is returned instead.
package skym

import (
	"context"
	"io"

	"github.com/ivergara/skym/internal/adapters/driven/engine"
	"github.com/ivergara/skym/internal/adapters/driving/tui"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/core/services"
)

type (
	// MatchOptions controls a FuzzyMatch call.
	MatchOptions = domain.MatchOptions

	// MatchResult is the verdict for one query and candidate.
	MatchResult = domain.MatchResult

	// ScoreClass orders match kinds: None < Baseline < Fuzzy < Substring < Exact.
	ScoreClass = domain.ScoreClass

	// Candidate is an input string with its original position.
	Candidate = domain.Candidate

	// RankedList is a ranking, best first.
	RankedList = domain.RankedList

	// Engine names a fuzzy aligner.
	Engine = domain.Engine

	// QueryEdit is one change to a session query.
	QueryEdit = domain.QueryEdit

	// Session is an incremental matching session.
	Session = driving.Session

	// NormalizeError reports invalid input.
	NormalizeError = domain.NormalizeError

	// ErrorKind classifies a NormalizeError.
	ErrorKind = domain.ErrorKind
)

// Score classes.
const (
	ClassNone      = domain.ClassNone
	ClassBaseline  = domain.ClassBaseline
	ClassFuzzy     = domain.ClassFuzzy
	ClassSubstring = domain.ClassSubstring
	ClassExact     = domain.ClassExact
)

// Engines.
const (
	EngineBuiltin = domain.EngineBuiltin
	EngineSahilm  = domain.EngineSahilm
	EngineFzf     = domain.EngineFzf
)

// Error kinds.
const (
	KindNotIterable   = domain.KindNotIterable
	KindNullItem      = domain.KindNullItem
	KindNonStringItem = domain.KindNonStringItem
)

// Sentinel errors, matched with errors.Is.
var (
	ErrNotIterable       = domain.ErrNotIterable
	ErrNullItem          = domain.ErrNullItem
	ErrNonStringItem     = domain.ErrNonStringItem
	ErrSessionClosed     = domain.ErrSessionClosed
	ErrPickerUnavailable = domain.ErrPickerUnavailable
	ErrUnsupportedEngine = domain.ErrUnsupportedEngine
)

// Query edits.
var (
	Append    = domain.Append
	Backspace = domain.Backspace
	Clear     = domain.Clear
	Replace   = domain.Replace
)

// Matcher ranks items with a fixed engine and picker.
type Matcher struct {
	svc        *services.MatchService
	normalizer *services.Normalizer
}

type config struct {
	engine     Engine
	workers    int
	ui         domain.UISettings
	pickerOpts []tui.Option
}

// Option configures a Matcher.
type Option func(*config)

// WithEngine selects the fuzzy aligner.
func WithEngine(e Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithWorkers ranks large inputs on n goroutines.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithPrompt sets the picker prompt.
func WithPrompt(prompt string) Option {
	return func(c *config) { c.ui.Prompt = prompt }
}

// WithAltScreen runs the picker in the alternate screen.
func WithAltScreen(on bool) Option {
	return func(c *config) { c.ui.AltScreen = on }
}

// WithTerminal reads picker keys from in and draws to out instead of the
// controlling terminal and stderr.
func WithTerminal(in io.Reader, out io.Writer) Option {
	return func(c *config) {
		c.pickerOpts = append(c.pickerOpts, tui.WithInput(in), tui.WithOutput(out))
	}
}

// New creates a Matcher.
func New(opts ...Option) (*Matcher, error) {
	defaults := domain.DefaultAppSettings()
	cfg := &config{
		engine:  defaults.Match.Engine,
		workers: defaults.Match.Workers,
		ui:      defaults.UI,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	eng, err := engine.New(cfg.engine)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		svc:        services.NewMatchService(eng, tui.NewPicker(cfg.ui, cfg.pickerOpts...), cfg.workers),
		normalizer: services.NewNormalizer(),
	}, nil
}

// FuzzyMatch validates items and returns them ranked against query, or the
// picker selection when opts.Interactive is set.
func (m *Matcher) FuzzyMatch(ctx context.Context, query string, items any, opts MatchOptions) ([]string, error) {
	return m.svc.FuzzyMatch(ctx, query, items, opts)
}

// Rank validates items and returns the full ranking with scores and offsets.
func (m *Matcher) Rank(ctx context.Context, query string, items any) (RankedList, error) {
	candidates, err := m.normalizer.Normalize(items)
	if err != nil {
		return nil, err
	}
	return m.svc.Rank(ctx, query, candidates)
}

// Score scores a single candidate.
func (m *Matcher) Score(query, candidate string) MatchResult {
	return m.svc.Score(query, candidate)
}

// NewSession opens an incremental session over items.
func (m *Matcher) NewSession(query string, items []string) Session {
	return m.svc.NewSession(query, domain.NewCandidates(items))
}

var defaultMatcher = mustNew()

func mustNew() *Matcher {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}

// FuzzyMatch ranks items against query with the builtin engine. With
// interactive set it opens the picker on the controlling terminal.
func FuzzyMatch(query string, items any, interactive bool) ([]string, error) {
	return defaultMatcher.FuzzyMatch(context.Background(), query, items, MatchOptions{Interactive: interactive})
}

// Rank returns the full ranking of items with the builtin engine.
func Rank(query string, items any) (RankedList, error) {
	return defaultMatcher.Rank(context.Background(), query, items)
}

// Score scores a single candidate with the builtin engine.
func Score(query, candidate string) MatchResult {
	return defaultMatcher.Score(query, candidate)
}

// NewSession opens an incremental session with the builtin engine.
func NewSession(query string, items []string) Session {
	return defaultMatcher.NewSession(query, items)
}
