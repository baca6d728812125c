package driving

import "github.com/ivergara/skym/internal/core/domain"

// Session is a live query over a fixed candidate list.
// It is designed for a single owner, typically one UI event loop,
// and is not safe for concurrent use.
type Session interface {
	// ID identifies the session in logs.
	ID() string

	// Update applies a query edit, re-ranks and returns the new results.
	// It returns domain.ErrSessionClosed after Commit or Cancel.
	Update(edit domain.QueryEdit) (domain.RankedList, error)

	// Query returns the current query.
	Query() string

	// Results returns the current ranked list.
	Results() domain.RankedList

	// Total returns the number of candidates in the session.
	Total() int

	// Cursor returns the index of the selected row in Results.
	Cursor() int

	// Move shifts the selection by delta rows, clamped to the results.
	Move(delta int)

	// Select moves the selection to row i, clamped to the results.
	Select(i int)

	// CurrentSelection returns the selected candidate, if any.
	CurrentSelection() (domain.Candidate, bool)

	// ToggleMark marks or unmarks the selected candidate for multi-selection.
	ToggleMark()

	// IsMarked reports whether the candidate at the original index is marked.
	IsMarked(index int) bool

	// Marked returns the number of marked candidates.
	Marked() int

	// Cancel closes the session without a selection.
	Cancel()

	// Commit closes the session and returns the selected candidate, if any.
	Commit() (domain.Candidate, bool)

	// CommitAll closes the session and returns the marked candidates in input
	// order, or the selected candidate when nothing is marked.
	CommitAll() []domain.Candidate

	// Closed reports whether Commit or Cancel has been called.
	Closed() bool

	// Cancelled reports whether the session ended through Cancel.
	Cancelled() bool
}
