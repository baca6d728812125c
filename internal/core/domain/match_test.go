package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreClass_String(t *testing.T) {
	tests := []struct {
		class ScoreClass
		want  string
	}{
		{ClassNone, "none"},
		{ClassBaseline, "baseline"},
		{ClassFuzzy, "fuzzy"},
		{ClassSubstring, "substring"},
		{ClassExact, "exact"},
		{ScoreClass(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.String())
		})
	}
}

func TestScoreClass_Ordering(t *testing.T) {
	assert.Less(t, ClassNone, ClassBaseline)
	assert.Less(t, ClassBaseline, ClassFuzzy)
	assert.Less(t, ClassFuzzy, ClassSubstring)
	assert.Less(t, ClassSubstring, ClassExact)
}

func TestNoMatch_IsEmpty(t *testing.T) {
	assert.False(t, NoMatch.Matched)
	assert.Equal(t, ClassNone, NoMatch.Class)
	assert.Zero(t, NoMatch.Score)
	assert.Nil(t, NoMatch.Offsets)
}

func TestRankedList_Accessors(t *testing.T) {
	list := RankedList{
		{Candidate: Candidate{Text: "apple", Index: 2}},
		{Candidate: Candidate{Text: "apply", Index: 0}},
	}

	assert.Equal(t, []string{"apple", "apply"}, list.Strings())
	assert.Equal(t, []int{2, 0}, list.Indices())
	assert.Equal(t, []Candidate{{Text: "apple", Index: 2}, {Text: "apply", Index: 0}}, list.Candidates())
}

func TestRankedList_Empty(t *testing.T) {
	var list RankedList

	assert.Empty(t, list.Strings())
	assert.NotNil(t, list.Strings())
	assert.Empty(t, list.Indices())
}

func TestNewCandidates(t *testing.T) {
	candidates := NewCandidates([]string{"a", "b", "c"})

	assert.Len(t, candidates, 3)
	for i, c := range candidates {
		assert.Equal(t, i, c.Index)
	}
	assert.Equal(t, "b", candidates[1].Text)
}
