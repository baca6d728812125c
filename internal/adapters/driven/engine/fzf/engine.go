// Package fzf aligns fuzzy matches with fzf's FuzzyMatchV2, the
// Smith-Waterman style optimal aligner used by the fzf finder.
package fzf

import (
	"slices"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
)

// Slab sizes used by fzf itself.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// Ensure Engine implements the interface.
var _ driven.FuzzyEngine = (*Engine)(nil)

// Engine adapts fzf's v2 algorithm to driven.FuzzyEngine.
// Each call borrows a slab from a pool, so one Engine may be shared
// across ranking workers.
type Engine struct {
	slabs sync.Pool
}

// New creates an fzf engine.
func New() *Engine {
	return &Engine{
		slabs: sync.Pool{
			New: func() any { return util.MakeSlab(slab16Size, slab32Size) },
		},
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return domain.EngineFzf.String()
}

// Match implements driven.FuzzyEngine.
//
// Both sides arrive case-folded, so matching runs case-sensitive and
// without fzf's latin normalisation; that keeps the alignment consistent
// with the verdict already reached by the scorer.
func (e *Engine) Match(pattern, text []rune) ([]int, bool) {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil, false
	}

	slab, _ := e.slabs.Get().(*util.Slab)
	defer e.slabs.Put(slab)

	chars := util.RunesToChars(text)
	res, pos := algo.FuzzyMatchV2(
		true,  // caseSensitive
		false, // normalize
		true,  // forward
		&chars,
		pattern,
		true, // withPos
		slab,
	)
	if res.Start < 0 || pos == nil || len(*pos) == 0 {
		return nil, false
	}

	// fzf fills positions back to front and they live in the slab.
	positions := slices.Clone(*pos)
	slices.Sort(positions)
	return positions, true
}
