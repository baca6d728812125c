package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/logger"
)

// Ensure Session implements both the driving and picker interfaces.
var (
	_ driving.Session      = (*Session)(nil)
	_ driven.PickerSession = (*Session)(nil)
)

// Session holds a live query over a fixed candidate list.
// It is owned by a single event loop and is not safe for concurrent use.
type Session struct {
	id         string
	ranker     *Ranker
	candidates []domain.Candidate
	query      string
	results    domain.RankedList
	cursor     int
	marks      map[int]bool
	closed     bool
	cancelled  bool
}

// NewSession opens a session and ranks candidates against the initial query.
func NewSession(ranker *Ranker, query string, candidates []domain.Candidate) *Session {
	if ranker == nil {
		ranker = NewRanker(nil)
	}
	s := &Session{
		id:         uuid.New().String(),
		ranker:     ranker,
		candidates: candidates,
		marks:      make(map[int]bool),
	}
	s.rerank(query, candidates)
	logger.Debug("session %s: opened with %d candidates, query %q", s.id, len(candidates), query)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Update applies edit to the query and re-ranks.
//
// When the new query extends the previous one only the previous matches
// are re-scored: anything matching the longer query matches the shorter.
func (s *Session) Update(edit domain.QueryEdit) (domain.RankedList, error) {
	if s.closed {
		return nil, domain.ErrSessionClosed
	}

	next := edit.Apply(s.query)
	if next == s.query {
		return s.results, nil
	}

	pool := s.candidates
	if strings.HasPrefix(next, s.query) {
		pool = s.results.Candidates()
	}

	done := logger.Timed("session %s: rank %q over %d candidates", s.id, next, len(pool))
	s.rerank(next, pool)
	done()

	return s.results, nil
}

func (s *Session) rerank(query string, pool []domain.Candidate) {
	s.query = query
	s.results = s.ranker.Rank(query, pool)
	s.cursor = 0
}

// Query returns the current query.
func (s *Session) Query() string {
	return s.query
}

// Results returns the current ranked list.
func (s *Session) Results() domain.RankedList {
	return s.results
}

// Total returns the number of candidates in the session.
func (s *Session) Total() int {
	return len(s.candidates)
}

// Cursor returns the selected row.
func (s *Session) Cursor() int {
	return s.cursor
}

// Move shifts the selection by delta rows.
func (s *Session) Move(delta int) {
	s.Select(s.cursor + delta)
}

// Select moves the selection to row i, clamped to the current results.
func (s *Session) Select(i int) {
	if len(s.results) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = max(0, min(i, len(s.results)-1))
}

// CurrentSelection returns the candidate under the cursor.
func (s *Session) CurrentSelection() (domain.Candidate, bool) {
	if s.cursor < 0 || s.cursor >= len(s.results) {
		return domain.Candidate{}, false
	}
	return s.results[s.cursor].Candidate, true
}

// ToggleMark marks or unmarks the candidate under the cursor.
func (s *Session) ToggleMark() {
	if s.closed {
		return
	}
	c, ok := s.CurrentSelection()
	if !ok {
		return
	}
	if s.marks[c.Index] {
		delete(s.marks, c.Index)
		return
	}
	s.marks[c.Index] = true
}

// IsMarked reports whether the candidate at the original index is marked.
func (s *Session) IsMarked(index int) bool {
	return s.marks[index]
}

// Marked returns the number of marked candidates.
func (s *Session) Marked() int {
	return len(s.marks)
}

// Cancel closes the session without a selection.
func (s *Session) Cancel() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancelled = true
	logger.Debug("session %s: cancelled", s.id)
}

// Commit closes the session and returns the selection.
// It returns false after Cancel or when nothing matches.
func (s *Session) Commit() (domain.Candidate, bool) {
	if s.cancelled {
		return domain.Candidate{}, false
	}
	s.closed = true
	c, ok := s.CurrentSelection()
	logger.Debug("session %s: committed %v", s.id, ok)
	return c, ok
}

// CommitAll closes the session and returns the marked candidates in input
// order. Without marks it returns the current selection, if any.
func (s *Session) CommitAll() []domain.Candidate {
	if s.cancelled {
		return []domain.Candidate{}
	}
	s.closed = true

	if len(s.marks) == 0 {
		if c, ok := s.CurrentSelection(); ok {
			return []domain.Candidate{c}
		}
		return []domain.Candidate{}
	}

	selected := make([]domain.Candidate, 0, len(s.marks))
	for _, c := range s.candidates {
		if s.marks[c.Index] {
			selected = append(selected, c)
		}
	}
	logger.Debug("session %s: committed %d marked", s.id, len(selected))
	return selected
}

// Closed reports whether the session has been committed or cancelled.
func (s *Session) Closed() bool {
	return s.closed
}

// Cancelled reports whether the session ended through Cancel.
func (s *Session) Cancelled() bool {
	return s.cancelled
}
