// Package domain contains the corpus generation workflow and its core logic.
package domain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/hellfloat/internal/domain/generators"
	"github.com/mouse-blink/hellfloat/internal/domain/rng"
	m "github.com/mouse-blink/hellfloat/internal/model"
)

// ErrCountMismatch signals that the assembled corpus does not have exactly
// the planned number of values. It is an internal defect, never user error.
var ErrCountMismatch = errors.New("corpus size does not match target")

// ProgressFunc is notified after each generator finishes. produced is the
// running total of values assembled so far.
type ProgressFunc func(spec m.GeneratorSpec, produced, target int)

// Assembler builds a shuffled corpus from a plan.
type Assembler interface {
	Assemble(plan m.Plan, stream *rng.Stream, progress ProgressFunc) (m.Corpus, error)
}

type generatorFunc func(n int, stream *rng.Stream) ([]float64, error)

type assembler struct {
	log        *zap.Logger
	generators map[m.GeneratorKind]generatorFunc
}

// NewAssembler creates an Assembler wired to the standard generators.
func NewAssembler(log *zap.Logger) Assembler {
	return &assembler{
		log:        log,
		generators: defaultGenerators(),
	}
}

func defaultGenerators() map[m.GeneratorKind]generatorFunc {
	return map[m.GeneratorKind]generatorFunc{
		m.GeneratorSpecial: func(n int, _ *rng.Stream) ([]float64, error) {
			core := generators.SpecialCore()
			if n < len(core) {
				core = core[:max(n, 0)]
			}

			return core, nil
		},
		m.GeneratorPow2: func(n int, _ *rng.Stream) ([]float64, error) {
			return generators.PowersOfTwo(n), nil
		},
		m.GeneratorPow10: func(n int, _ *rng.Stream) ([]float64, error) {
			return generators.PowersOfTen(n), nil
		},
		m.GeneratorLogSpace: func(n int, stream *rng.Stream) ([]float64, error) {
			return generators.LogSpaceExtremes(n, stream)
		},
		m.GeneratorSubnormal: func(n int, _ *rng.Stream) ([]float64, error) {
			return generators.Subnormals(n), nil
		},
		m.GeneratorNearPow10: func(n int, _ *rng.Stream) ([]float64, error) {
			return generators.NearPowersOfTen(n)
		},
	}
}

// Assemble runs every planned generator in order, checks the exact-count
// invariant and shuffles the result with stream. The shuffle always comes
// after the last generator draw.
func (a *assembler) Assemble(plan m.Plan, stream *rng.Stream, progress ProgressFunc) (m.Corpus, error) {
	values := make([]float64, 0, max(plan.Target, 0))

	for _, spec := range plan.Specs {
		gen, ok := a.generators[spec.Kind]
		if !ok {
			return m.Corpus{}, fmt.Errorf("unknown generator %q", spec.Kind)
		}

		out, err := gen(spec.Count, stream)
		if err != nil {
			return m.Corpus{}, fmt.Errorf("generator %s: %w", spec.Kind, err)
		}

		if len(out) != spec.Count {
			return m.Corpus{}, fmt.Errorf("generator %s returned %d values, want %d: %w",
				spec.Kind, len(out), spec.Count, ErrCountMismatch)
		}

		values = append(values, out...)

		a.log.Debug("generator finished",
			zap.String("generator", string(spec.Kind)),
			zap.Int("count", len(out)),
			zap.Uint64("draws", stream.Draws()),
		)

		if progress != nil {
			progress(spec, len(values), plan.Target)
		}
	}

	if len(values) != plan.Target {
		return m.Corpus{}, fmt.Errorf("assembled %d values, want %d: %w", len(values), plan.Target, ErrCountMismatch)
	}

	stream.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	a.log.Debug("corpus shuffled", zap.Int("count", len(values)), zap.Uint64("draws", stream.Draws()))

	return m.Corpus{
		Plan:        plan,
		Values:      values,
		RandomDraws: stream.Draws(),
	}, nil
}
