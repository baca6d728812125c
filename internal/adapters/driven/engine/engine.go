// Package engine selects the fuzzy aligner named in the settings.
package engine

import (
	"fmt"

	"github.com/ivergara/skym/internal/adapters/driven/engine/fzf"
	"github.com/ivergara/skym/internal/adapters/driven/engine/sahilm"
	"github.com/ivergara/skym/internal/core/domain"
	"github.com/ivergara/skym/internal/core/ports/driven"
)

// New returns the engine for name. The builtin engine is reported as nil,
// which the scorer treats as its native aligner.
func New(name domain.Engine) (driven.FuzzyEngine, error) {
	switch name {
	case domain.EngineBuiltin, "":
		return nil, nil
	case domain.EngineSahilm:
		return sahilm.New(), nil
	case domain.EngineFzf:
		return fzf.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedEngine, name)
	}
}
