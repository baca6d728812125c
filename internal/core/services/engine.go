package services

import (
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
)

// Ensure BuiltinEngine implements the interface.
var _ driven.FuzzyEngine = (*BuiltinEngine)(nil)

// BuiltinEngine aligns a pattern with the shortest span that ends at the
// first complete occurrence of the pattern as a subsequence.
//
// It scans forward until every pattern rune has been seen, scans backward
// from that point to find the latest possible start, then collects the
// earliest positions forward from that start.
type BuiltinEngine struct{}

// NewBuiltinEngine creates the native fuzzy engine.
func NewBuiltinEngine() *BuiltinEngine {
	return &BuiltinEngine{}
}

// Name returns the engine name.
func (e *BuiltinEngine) Name() string {
	return domain.EngineBuiltin.String()
}

// Match implements driven.FuzzyEngine.
func (e *BuiltinEngine) Match(pattern, text []rune) ([]int, bool) {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil, false
	}

	// Forward: find where the first complete occurrence ends.
	pidx, end := 0, -1
	for i, r := range text {
		if r == pattern[pidx] {
			pidx++
			if pidx == len(pattern) {
				end = i
				break
			}
		}
	}
	if end < 0 {
		return nil, false
	}

	// Backward: latest start that still contains the pattern before end.
	start := end
	pidx = len(pattern) - 1
	for i := end; i >= 0; i-- {
		if text[i] == pattern[pidx] {
			pidx--
			if pidx < 0 {
				start = i
				break
			}
		}
	}

	// Forward collect inside [start, end].
	positions := make([]int, 0, len(pattern))
	pidx = 0
	for i := start; i <= end && pidx < len(pattern); i++ {
		if text[i] == pattern[pidx] {
			positions = append(positions, i)
			pidx++
		}
	}
	return positions, true
}

// isSubsequence reports whether pattern occurs in text in order.
func isSubsequence(pattern, text []rune) bool {
	pidx := 0
	for _, r := range text {
		if pidx == len(pattern) {
			break
		}
		if r == pattern[pidx] {
			pidx++
		}
	}
	return pidx == len(pattern)
}
