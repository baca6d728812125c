package domain

// Candidate is one validated input string together with its position
// in the original input. Candidates are immutable once created.
type Candidate struct {
	// Text is the candidate string exactly as supplied.
	Text string

	// Index is the zero-based position in the original input.
	Index int
}

// NewCandidates wraps already-validated strings as candidates in input order.
func NewCandidates(texts []string) []Candidate {
	candidates := make([]Candidate, len(texts))
	for i, text := range texts {
		candidates[i] = Candidate{Text: text, Index: i}
	}
	return candidates
}

// Source is an indexed collection of strings.
// It mirrors the shape used by common fuzzy finding libraries so existing
// collections can be matched without copying them into a slice first.
type Source interface {
	// Len returns the number of strings.
	Len() int

	// String returns the i-th string.
	String(i int) string
}
