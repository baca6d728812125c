package driven

// FuzzyEngine aligns a pattern with a text as an ordered subsequence.
// Both arguments are already case-folded rune slices. Engines only decide
// which characters form the match; scoring is done by the core Scorer.
type FuzzyEngine interface {
	// Name identifies the engine.
	Name() string

	// Match returns ascending rune indices into text, one per pattern rune,
	// and false when pattern is not a subsequence of text.
	Match(pattern, text []rune) ([]int, bool)
}
