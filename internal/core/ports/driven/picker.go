package driven

import (
	"context"

	"github.com/ivergara/skym/internal/core/domain"
)

// Picker presents a session to a user and returns what they chose.
// Implementations own the terminal; the core only drives the session.
type Picker interface {
	// Pick blocks until the user commits or cancels. A cancelled pick
	// returns an empty slice and no error.
	Pick(ctx context.Context, session PickerSession) ([]domain.Candidate, error)
}

// PickerSession is the part of a match session a picker drives.
type PickerSession interface {
	ID() string
	Update(edit domain.QueryEdit) (domain.RankedList, error)
	Query() string
	Results() domain.RankedList
	Total() int
	Cursor() int
	Move(delta int)
	Select(i int)
	CurrentSelection() (domain.Candidate, bool)
	ToggleMark()
	IsMarked(index int) bool
	Marked() int
	Cancel()
	Commit() (domain.Candidate, bool)
	CommitAll() []domain.Candidate
	Closed() bool
	Cancelled() bool
}
