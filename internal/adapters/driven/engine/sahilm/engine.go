// Package sahilm aligns fuzzy matches with github.com/sahilm/fuzzy,
// the Sublime Text style matcher.
package sahilm

import (
	"github.com/sahilm/fuzzy"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
)

// Ensure Engine implements the interface.
var _ driven.FuzzyEngine = (*Engine)(nil)

// Engine adapts sahilm/fuzzy to driven.FuzzyEngine.
// It is stateless and safe for concurrent use.
type Engine struct{}

// New creates a sahilm engine.
func New() *Engine {
	return &Engine{}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return domain.EngineSahilm.String()
}

// single is a one-string fuzzy.Source.
type single string

func (s single) String(int) string { return string(s) }
func (s single) Len() int          { return 1 }

// Match implements driven.FuzzyEngine.
// sahilm reports byte indexes, which are converted back to rune indexes.
func (e *Engine) Match(pattern, text []rune) ([]int, bool) {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil, false
	}

	str := string(text)
	matches := fuzzy.FindFrom(string(pattern), single(str))
	if len(matches) == 0 {
		return nil, false
	}

	runeAt := make(map[int]int, len(text))
	i := 0
	for b := range str {
		runeAt[b] = i
		i++
	}

	positions := make([]int, 0, len(matches[0].MatchedIndexes))
	for _, b := range matches[0].MatchedIndexes {
		r, ok := runeAt[b]
		if !ok {
			return nil, false
		}
		positions = append(positions, r)
	}
	return positions, true
}
