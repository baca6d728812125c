package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivergara/skym/internal/core/domain"
)

func rank(query string, items ...string) []string {
	return NewRanker(nil).Rank(query, domain.NewCandidates(items)).Strings()
}

func TestRanker_EmptyCandidates(t *testing.T) {
	r := NewRanker(nil)

	for _, q := range []string{"", "apple"} {
		got := r.Rank(q, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestRanker_EmptyQueryKeepsOrder(t *testing.T) {
	items := []string{"cherry", "apple", "banana", "apple"}

	assert.Equal(t, items, rank("", items...))
}

func TestRanker_Scenarios(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.Equal(t, []string{"apple"}, rank("apple", "apple", "banana", "cherry"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"Apple"}, rank("apple", "Apple", "Banana", "Cherry"))
	})

	t.Run("substring", func(t *testing.T) {
		assert.Contains(t, rank("apple", "apple pie", "banana split"), "apple pie")
	})

	t.Run("fuzzy in first half", func(t *testing.T) {
		got := rank("aple", "apple", "application", "apology", "appetite")
		require.Contains(t, got, "apple")

		pos := 0
		for i, s := range got {
			if s == "apple" {
				pos = i
			}
		}
		assert.Less(t, pos, (len(got)+1)/2)
	})
}

func TestRanker_ExactAboveSubstringAndFuzzy(t *testing.T) {
	got := rank("app", "a_p_p", "application", "happy", "APP", "app")

	require.Len(t, got, 5)
	assert.Equal(t, []string{"app", "APP"}, got[:2])
	assert.Equal(t, "a_p_p", got[4])
}

func TestRanker_EarlierSubstringStartRanksHigher(t *testing.T) {
	got := rank("log", "catalog", "logbook", "blog", "x-log")

	assert.Equal(t, []string{"logbook", "blog", "x-log", "catalog"}, got)
}

func TestRanker_TiesKeepInputOrder(t *testing.T) {
	r := NewRanker(nil)
	candidates := domain.NewCandidates([]string{"b-one", "a-one", "c-one"})

	got := r.Rank("one", candidates)

	assert.Equal(t, []int{0, 1, 2}, got.Indices())
}

func TestRanker_Deterministic(t *testing.T) {
	r := NewRanker(nil)
	candidates := domain.NewCandidates(corpus(500))

	first := r.Rank("ie3", candidates)
	second := r.Rank("ie3", candidates)

	assert.Equal(t, first, second)
}

func TestRanker_RoundTrip(t *testing.T) {
	items := corpus(300)
	r := NewRanker(nil)

	got := r.Rank("e1", domain.NewCandidates(items))

	seen := make(map[int]bool)
	for _, ranked := range got {
		assert.False(t, seen[ranked.Candidate.Index], "duplicate %d", ranked.Candidate.Index)
		seen[ranked.Candidate.Index] = true
		assert.Equal(t, items[ranked.Candidate.Index], ranked.Candidate.Text)
	}
	for i, item := range items {
		if r.Scorer().Score("e1", item).Matched {
			assert.True(t, seen[i], "omitted match %q", item)
		}
	}
}

func TestRanker_RankLimit(t *testing.T) {
	r := NewRanker(nil)
	candidates := domain.NewCandidates([]string{"a1", "a2", "a3"})

	assert.Len(t, r.RankLimit("a", candidates, 2), 2)
	assert.Len(t, r.RankLimit("a", candidates, 0), 3)
	assert.Len(t, r.RankLimit("a", candidates, -1), 3)
	assert.Len(t, r.RankLimit("a", candidates, 10), 3)
}

func TestParallelRanker_MatchesSerial(t *testing.T) {
	candidates := domain.NewCandidates(corpus(1000))
	serial := NewRanker(nil)
	parallel := NewParallelRankerWithChunkSize(serial, 4, 37)

	for _, q := range []string{"", "e", "ie3", "item-42", "zzz"} {
		t.Run(fmt.Sprintf("query %q", q), func(t *testing.T) {
			got, err := parallel.Rank(context.Background(), q, candidates)

			require.NoError(t, err)
			assert.Equal(t, serial.Rank(q, candidates), got)
		})
	}
}

func TestParallelRanker_SingleWorker(t *testing.T) {
	candidates := domain.NewCandidates(corpus(50))
	p := NewParallelRanker(nil, 0)

	got, err := p.Rank(context.Background(), "1", candidates)

	require.NoError(t, err)
	assert.Equal(t, NewRanker(nil).Rank("1", candidates), got)
}

func TestParallelRanker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	t.Run("chunked", func(t *testing.T) {
		p := NewParallelRankerWithChunkSize(nil, 4, 10)
		_, err := p.Rank(ctx, "a", domain.NewCandidates(corpus(100)))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("single chunk", func(t *testing.T) {
		p := NewParallelRanker(nil, 4)
		_, err := p.Rank(ctx, "a", domain.NewCandidates(corpus(5)))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// corpus builds n distinct candidates with a mix of match classes.
func corpus(n int) []string {
	words := []string{"item", "piece", "entry", "line", "record"}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", words[i%len(words)], i)
	}
	return out
}
