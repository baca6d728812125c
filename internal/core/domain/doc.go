// Package domain defines the core entities of the skym fuzzy matcher.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Candidate: A validated input string and its original position
//   - MatchResult: The verdict, score class, score and offsets for one candidate
//   - RankedList: The ordered, matches-only output of a ranking pass
//   - QueryEdit: A discrete change to an interactive query buffer
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
