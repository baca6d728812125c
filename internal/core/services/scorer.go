package services

import (
	"unicode"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/logger"
)

// Score layout. The class occupies the top byte so that no within-class
// term can ever lift a result into a higher class.
const (
	classShift = 56

	lengthBits = 29
	maxLength  = 1<<lengthBits - 1

	// substring: start (24 bits) | boundary (1 bit) | length (29 bits)
	startBits     = 24
	maxStart      = 1<<startBits - 1
	startShift    = lengthBits + 1
	boundaryShift = lengthBits

	// fuzzy: compactness (26 bits) | length (29 bits)
	compactBits   = 26
	compactOffset = 1 << (compactBits - 1)
	maxCompact    = 1<<compactBits - 1
)

// baselineScore is shared by every candidate when the query is empty.
const baselineScore = int64(domain.ClassBaseline) << classShift

// Weights tunes the compactness score of fuzzy matches.
type Weights struct {
	// Base is the starting score for any fuzzy match.
	Base int

	// Consecutive is added for each pair of adjacent matched characters.
	Consecutive int

	// WordBoundary is added for each matched character that starts a word.
	WordBoundary int

	// Prefix is added when the first matched character is the first character.
	Prefix int

	// Gap is subtracted for each unmatched character inside the match span.
	Gap int

	// Leading is subtracted for each character before the first match.
	Leading int
}

// DefaultWeights returns the default fuzzy weights.
func DefaultWeights() Weights {
	return Weights{
		Base:         100,
		Consecutive:  20,
		WordBoundary: 15,
		Prefix:       25,
		Gap:          2,
		Leading:      1,
	}
}

// Scorer decides whether a query matches a candidate and how well.
// It is stateless and safe for concurrent use as long as its engine is.
type Scorer struct {
	engine  driven.FuzzyEngine
	weights Weights
	builtin *BuiltinEngine
}

// NewScorer creates a scorer with default weights.
// A nil engine selects the builtin engine.
func NewScorer(engine driven.FuzzyEngine) *Scorer {
	return NewWeightedScorer(engine, DefaultWeights())
}

// NewWeightedScorer creates a scorer with custom fuzzy weights.
func NewWeightedScorer(engine driven.FuzzyEngine, weights Weights) *Scorer {
	builtin := NewBuiltinEngine()
	if engine == nil {
		engine = builtin
	}
	return &Scorer{
		engine:  engine,
		weights: weights,
		builtin: builtin,
	}
}

// EngineName returns the name of the fuzzy engine in use.
func (s *Scorer) EngineName() string {
	return s.engine.Name()
}

// folded is a case-folded candidate. offsets[i] is the byte offset of
// runes[i] in the original string.
type folded struct {
	original []rune
	runes    []rune
	offsets  []int
}

func fold(s string) folded {
	f := folded{
		original: make([]rune, 0, len(s)),
		runes:    make([]rune, 0, len(s)),
		offsets:  make([]int, 0, len(s)),
	}
	for i, r := range s {
		f.original = append(f.original, r)
		f.runes = append(f.runes, unicode.ToLower(r))
		f.offsets = append(f.offsets, i)
	}
	return f
}

func foldQuery(q string) []rune {
	runes := make([]rune, 0, len(q))
	for _, r := range q {
		runes = append(runes, unicode.ToLower(r))
	}
	return runes
}

// Score evaluates candidate against query.
//
// Classes rank exact above substring above fuzzy. An empty query matches
// everything with the same baseline score.
func (s *Scorer) Score(query, candidate string) domain.MatchResult {
	if query == "" {
		return domain.MatchResult{
			Matched: true,
			Class:   domain.ClassBaseline,
			Score:   baselineScore,
		}
	}

	q := foldQuery(query)
	c := fold(candidate)
	if len(q) > len(c.runes) {
		return domain.NoMatch
	}

	if equalRunes(q, c.runes) {
		var within int64
		if query == candidate {
			within = 1
		}
		return domain.MatchResult{
			Matched: true,
			Class:   domain.ClassExact,
			Score:   int64(domain.ClassExact)<<classShift | within,
			Offsets: c.byteOffsets(0, len(q)),
		}
	}

	if start := indexRunes(c.runes, q); start >= 0 {
		return domain.MatchResult{
			Matched: true,
			Class:   domain.ClassSubstring,
			Score:   s.substringScore(c, start),
			Offsets: c.byteOffsets(start, len(q)),
		}
	}

	if !isSubsequence(q, c.runes) {
		return domain.NoMatch
	}

	positions := s.align(q, c.runes)
	offsets := make([]int, len(positions))
	for i, p := range positions {
		offsets[i] = c.offsets[p]
	}
	return domain.MatchResult{
		Matched: true,
		Class:   domain.ClassFuzzy,
		Score:   s.fuzzyScore(c, positions),
		Offsets: offsets,
	}
}

// align asks the configured engine for positions and falls back to the
// builtin engine when its answer is unusable.
func (s *Scorer) align(q, text []rune) []int {
	if positions, ok := s.engine.Match(q, text); ok && validPositions(q, text, positions) {
		return positions
	}
	if s.engine != driven.FuzzyEngine(s.builtin) {
		logger.Debug("engine %s could not align %q, using builtin", s.engine.Name(), string(q))
	}
	positions, _ := s.builtin.Match(q, text)
	return positions
}

func (s *Scorer) substringScore(c folded, start int) int64 {
	startTerm := int64(maxStart - min(start, maxStart))
	var boundary int64
	if isWordBoundary(c.original, start) {
		boundary = 1
	}
	within := startTerm<<startShift | boundary<<boundaryShift | lengthTerm(c)
	return int64(domain.ClassSubstring)<<classShift | within
}

func (s *Scorer) fuzzyScore(c folded, positions []int) int64 {
	compact := int64(s.compactness(c.original, positions)) + compactOffset
	compact = max(0, min(compact, maxCompact))
	within := compact<<lengthBits | lengthTerm(c)
	return int64(domain.ClassFuzzy)<<classShift | within
}

// compactness rewards tight, word-aligned matches.
func (s *Scorer) compactness(original []rune, positions []int) int {
	w := s.weights
	score := w.Base

	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			score += w.Consecutive
		}
	}

	for _, p := range positions {
		if isWordBoundary(original, p) {
			score += w.WordBoundary
		}
	}

	first, last := positions[0], positions[len(positions)-1]
	if first == 0 {
		score += w.Prefix
	}

	if gap := last - first - len(positions) + 1; gap > 0 {
		score -= gap * w.Gap
	}
	score -= first * w.Leading

	return score
}

func lengthTerm(c folded) int64 {
	return int64(maxLength - min(len(c.runes), maxLength))
}

func (f folded) byteOffsets(start, n int) []int {
	out := make([]int, n)
	copy(out, f.offsets[start:start+n])
	return out
}

// isWordBoundary reports whether the rune at idx starts a word: the first
// rune, a rune after a space or punctuation, or a camelCase hump.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}

	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) || unicode.IsSymbol(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// indexRunes returns the first rune index of sub in s, or -1.
func indexRunes(s, sub []rune) int {
	n := len(sub)
outer:
	for i := 0; i+n <= len(s); i++ {
		for j := 0; j < n; j++ {
			if s[i+j] != sub[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}

// validPositions checks an engine answer: one ascending in-range
// position per pattern rune, each pointing at that rune.
func validPositions(pattern, text []rune, positions []int) bool {
	if len(positions) != len(pattern) {
		return false
	}
	prev := -1
	for i, p := range positions {
		if p <= prev || p >= len(text) || text[p] != pattern[i] {
			return false
		}
		prev = p
	}
	return true
}
