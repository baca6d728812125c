package domain

// ScoreClass groups match results into strictly ordered relevance tiers.
// Any result of a higher class outranks every result of a lower class.
type ScoreClass int

// Score classes in ascending order of relevance.
const (
	// ClassNone marks a candidate that did not match.
	ClassNone ScoreClass = iota
	// ClassBaseline is used for every candidate when the query is empty.
	ClassBaseline
	// ClassFuzzy: the query is an ordered, non-contiguous subsequence.
	ClassFuzzy
	// ClassSubstring: the query occurs contiguously.
	ClassSubstring
	// ClassExact: the candidate equals the query, ignoring case.
	ClassExact
)

// String returns the class name.
func (c ScoreClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassBaseline:
		return "baseline"
	case ClassFuzzy:
		return "fuzzy"
	case ClassSubstring:
		return "substring"
	case ClassExact:
		return "exact"
	default:
		return unknownDescription
	}
}

// MatchResult is the outcome of scoring one candidate against one query.
// When Matched is false, Class is ClassNone, Score is zero and Offsets is nil.
type MatchResult struct {
	// Matched reports whether the query was found in the candidate.
	Matched bool

	// Class is the relevance tier of the match.
	Class ScoreClass

	// Score orders matches; higher is more relevant.
	Score int64

	// Offsets are ascending byte offsets of the matched characters
	// in the original candidate, for highlighting.
	Offsets []int
}

// NoMatch is the result for a candidate that does not contain the query.
var NoMatch = MatchResult{}

// Ranked pairs a candidate with its match result.
type Ranked struct {
	Candidate Candidate
	Result    MatchResult
}

// RankedList is the ordered, matches-only output of a ranking pass.
// It is sorted by score descending, ties broken by original input order.
type RankedList []Ranked

// Strings returns the candidate texts in ranked order.
func (l RankedList) Strings() []string {
	out := make([]string, len(l))
	for i, r := range l {
		out[i] = r.Candidate.Text
	}
	return out
}

// Indices returns the original input positions in ranked order.
func (l RankedList) Indices() []int {
	out := make([]int, len(l))
	for i, r := range l {
		out[i] = r.Candidate.Index
	}
	return out
}

// Candidates returns the ranked candidates.
func (l RankedList) Candidates() []Candidate {
	out := make([]Candidate, len(l))
	for i, r := range l {
		out[i] = r.Candidate
	}
	return out
}
