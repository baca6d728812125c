// Package messages defines Bubbletea message types for the picker.
package messages

import (
	"github.com/ivergara/skym/internal/core/domain"
)

// QueryChanged replaces the picker's query.
type QueryChanged struct {
	Query string
}

// RankingUpdated carries the session's results after a query edit.
type RankingUpdated struct {
	Query   string
	Results domain.RankedList
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Committed signals the user accepted a selection.
type Committed struct {
	Selection []domain.Candidate
}

// Cancelled signals the user closed the picker without a selection.
type Cancelled struct{}
