package services

import (
	"context"
	"fmt"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
	"github.com/ivergara/skym/internal/core/ports/driving"
	"github.com/ivergara/skym/internal/logger"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// MatchService validates input, ranks it and optionally hands it to a picker.
type MatchService struct {
	normalizer *Normalizer
	ranker     *Ranker
	parallel   *ParallelRanker
	picker     driven.Picker
}

// NewMatchService creates a new match service.
// The engine and picker parameters are optional (can be nil): a nil engine
// selects the builtin engine, and without a picker interactive calls fail
// with domain.ErrPickerUnavailable. Workers above one enable parallel
// ranking for large inputs.
func NewMatchService(engine driven.FuzzyEngine, picker driven.Picker, workers int) *MatchService {
	ranker := NewRanker(NewScorer(engine))
	return &MatchService{
		normalizer: NewNormalizer(),
		ranker:     ranker,
		parallel:   NewParallelRanker(ranker, workers),
		picker:     picker,
	}
}

// SetPicker sets the interactive picker.
func (s *MatchService) SetPicker(picker driven.Picker) {
	s.picker = picker
}

// FuzzyMatch implements driving.MatchService.
func (s *MatchService) FuzzyMatch(
	ctx context.Context,
	query string,
	items any,
	opts domain.MatchOptions,
) ([]string, error) {
	candidates, err := s.normalizer.Normalize(items)
	if err != nil {
		return nil, err
	}
	logger.Debug("normalized %d candidates", len(candidates))

	if len(candidates) == 0 {
		return []string{}, nil
	}

	if opts.Interactive {
		return s.pick(ctx, query, candidates, opts.Limit)
	}

	ranked, err := s.Rank(ctx, query, candidates)
	if err != nil {
		return nil, err
	}
	return limit(ranked, opts.Limit).Strings(), nil
}

func (s *MatchService) pick(
	ctx context.Context,
	query string,
	candidates []domain.Candidate,
	n int,
) ([]string, error) {
	if s.picker == nil {
		return nil, domain.ErrPickerUnavailable
	}

	session := NewSession(s.ranker, query, candidates)
	selected, err := s.picker.Pick(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("interactive pick: %w", err)
	}

	out := make([]string, 0, len(selected))
	for _, c := range selected {
		out = append(out, c.Text)
	}
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// Rank implements driving.MatchService.
func (s *MatchService) Rank(
	ctx context.Context,
	query string,
	candidates []domain.Candidate,
) (domain.RankedList, error) {
	logger.Section("Ranking")
	logger.Debug("engine=%s query=%q candidates=%d", s.ranker.Scorer().EngineName(), query, len(candidates))
	defer logger.Timed("rank %d candidates", len(candidates))()

	ranked, err := s.parallel.Rank(ctx, query, candidates)
	if err != nil {
		return nil, err
	}
	logger.Debug("%d matches", len(ranked))
	return ranked, nil
}

// Score implements driving.MatchService.
func (s *MatchService) Score(query, candidate string) domain.MatchResult {
	return s.ranker.Scorer().Score(query, candidate)
}

// NewSession implements driving.MatchService.
func (s *MatchService) NewSession(query string, candidates []domain.Candidate) driving.Session {
	return NewSession(s.ranker, query, candidates)
}
