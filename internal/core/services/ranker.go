package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/logger"
)

// Ranker scores every candidate, drops non-matches and orders the rest
// by score descending, then original index ascending.
// It holds no mutable state and is safe for concurrent use.
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a ranker. A nil scorer uses the builtin engine.
func NewRanker(scorer *Scorer) *Ranker {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &Ranker{scorer: scorer}
}

// Scorer returns the scorer used by the ranker.
func (r *Ranker) Scorer() *Scorer {
	return r.scorer
}

// Rank returns the matching candidates in ranked order.
func (r *Ranker) Rank(query string, candidates []domain.Candidate) domain.RankedList {
	ranked := r.score(query, candidates)
	sortRanked(ranked)
	return ranked
}

// RankLimit is Rank truncated to the best n matches. n <= 0 means all.
func (r *Ranker) RankLimit(query string, candidates []domain.Candidate, n int) domain.RankedList {
	return limit(r.Rank(query, candidates), n)
}

func (r *Ranker) score(query string, candidates []domain.Candidate) domain.RankedList {
	ranked := make(domain.RankedList, 0, len(candidates))
	for _, c := range candidates {
		res := r.scorer.Score(query, c.Text)
		if !res.Matched {
			continue
		}
		ranked = append(ranked, domain.Ranked{Candidate: c, Result: res})
	}
	return ranked
}

func sortRanked(list domain.RankedList) {
	slices.SortStableFunc(list, func(a, b domain.Ranked) int {
		if c := cmp.Compare(b.Result.Score, a.Result.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Candidate.Index, b.Candidate.Index)
	})
}

func limit(list domain.RankedList, n int) domain.RankedList {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}

// DefaultChunkSize is the number of candidates scored per parallel task.
const DefaultChunkSize = 4096

// ParallelRanker spreads scoring across goroutines. Its output is identical
// to Ranker.Rank for the same input.
type ParallelRanker struct {
	ranker    *Ranker
	workers   int
	chunkSize int
}

// NewParallelRanker creates a parallel ranker with the given worker count.
// Workers below one are treated as one.
func NewParallelRanker(ranker *Ranker, workers int) *ParallelRanker {
	return NewParallelRankerWithChunkSize(ranker, workers, DefaultChunkSize)
}

// NewParallelRankerWithChunkSize creates a parallel ranker with a custom chunk size.
func NewParallelRankerWithChunkSize(ranker *Ranker, workers, chunkSize int) *ParallelRanker {
	if ranker == nil {
		ranker = NewRanker(nil)
	}
	if workers < 1 {
		workers = 1
	}
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &ParallelRanker{
		ranker:    ranker,
		workers:   workers,
		chunkSize: chunkSize,
	}
}

// Rank scores candidates in chunks and merges the results.
// It stops early and returns ctx.Err() when ctx is cancelled.
func (p *ParallelRanker) Rank(
	ctx context.Context,
	query string,
	candidates []domain.Candidate,
) (domain.RankedList, error) {
	chunks := (len(candidates) + p.chunkSize - 1) / p.chunkSize
	if p.workers == 1 || chunks <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return p.ranker.Rank(query, candidates), nil
	}

	logger.Debug("parallel rank: %d candidates, %d chunks, %d workers", len(candidates), chunks, p.workers)

	parts := make([]domain.RankedList, chunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i := 0; i < chunks; i++ {
		lo := i * p.chunkSize
		hi := min(lo+p.chunkSize, len(candidates))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = p.ranker.score(query, candidates[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel rank: %w", err)
	}

	total := 0
	for _, part := range parts {
		total += len(part)
	}
	merged := make(domain.RankedList, 0, total)
	for _, part := range parts {
		merged = append(merged, part...)
	}
	sortRanked(merged)
	return merged, nil
}
