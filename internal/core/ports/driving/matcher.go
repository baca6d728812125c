package driving

import (
	"context"

	"github.com/ivergara/skym/internal/core/domain"
)

// MatchService provides fuzzy matching to external actors.
type MatchService interface {
	// FuzzyMatch validates items, ranks them against query and returns the
	// matching strings. With opts.Interactive it opens a picker instead and
	// returns the user's selection, or an empty list when cancelled.
	FuzzyMatch(ctx context.Context, query string, items any, opts domain.MatchOptions) ([]string, error)

	// Rank orders already-validated candidates against query.
	Rank(ctx context.Context, query string, candidates []domain.Candidate) (domain.RankedList, error)

	// Score evaluates one candidate against query.
	Score(query, candidate string) domain.MatchResult

	// NewSession opens an interactive session over a fixed candidate list
	// with query pre-filled.
	NewSession(query string, candidates []domain.Candidate) Session
}
