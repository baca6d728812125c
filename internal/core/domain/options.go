package domain

// Engine names the algorithm that aligns a query with a candidate
// when the query is not a contiguous substring.
type Engine string

// Available fuzzy engines.
const (
	// EngineBuiltin is the native subsequence aligner.
	EngineBuiltin Engine = "builtin"

	// EngineSahilm aligns with github.com/sahilm/fuzzy.
	EngineSahilm Engine = "sahilm"

	// EngineFzf aligns with fzf's FuzzyMatchV2.
	EngineFzf Engine = "fzf"
)

// IsValid returns true if the engine is recognised.
func (e Engine) IsValid() bool {
	switch e {
	case EngineBuiltin, EngineSahilm, EngineFzf:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e Engine) String() string {
	return string(e)
}

// Description returns a human-readable description of the engine.
func (e Engine) Description() string {
	switch e {
	case EngineBuiltin:
		return "Builtin (shortest-span subsequence)"
	case EngineSahilm:
		return "sahilm/fuzzy (Sublime Text style)"
	case EngineFzf:
		return "fzf v2 (optimal alignment)"
	default:
		return unknownDescription
	}
}

// AllEngines returns every supported engine.
func AllEngines() []Engine {
	return []Engine{EngineBuiltin, EngineSahilm, EngineFzf}
}

// MatchOptions configures a single fuzzy match call.
type MatchOptions struct {
	// Interactive launches the picker and returns the user's selection.
	Interactive bool

	// Limit caps the number of returned matches. Zero or less means no limit.
	Limit int
}
