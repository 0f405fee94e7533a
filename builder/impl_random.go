// File: impl_random.go
// Role: stochastic constructors (Layered, RandomSparse).
//
// Determinism:
//   - Trial order is fixed (i asc, then j asc), so a fixed seed yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/depsched/depgraph"
)

const (
	methodLayered      = "Layered"
	methodRandomSparse = "RandomSparse"
	minLayers          = 2
	minLayerWidth      = 1
	minRandomTasks     = 2
	probMin            = 0.0
	probMax            = 1.0
)

// Layered builds a random acyclic graph over layers×width task slots. Slot
// k*width+i sits in layer k; layer-0 slots nobody drew stay absent. Every task in layer k>0 depends on each task of
// layer k-1 with probability p, and on at least one of them, so MinimumRounds
// is exactly layers.
// Complexity: O(layers·width²).
func Layered(layers, width int, p float64) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if layers < minLayers {
			return fmt.Errorf("%s: layers=%d < min=%d: %w", methodLayered, layers, minLayers, ErrTooFewVertices)
		}
		if width < minLayerWidth {
			return fmt.Errorf("%s: width=%d < min=%d: %w", methodLayered, width, minLayerWidth, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodLayered, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodLayered, ErrNeedRandSource)
		}

		rng := cfg.rng
		for k := 1; k < layers; k++ {
			for i := 0; i < width; i++ {
				task := cfg.idFn(k*width + i)
				linked := false
				for j := 0; j < width; j++ {
					if rng.Float64() < p {
						g.AddDependency(task, cfg.idFn((k-1)*width+j))
						linked = true
					}
				}
				if !linked {
					g.AddDependency(task, cfg.idFn((k-1)*width+rng.Intn(width)))
				}
			}
		}

		return nil
	}
}

// RandomSparse adds each ordered dependency i→j (i ≠ j) over n tasks
// independently with probability p. The result may be cyclic, and tasks that
// drew no dependency do not appear in the graph.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if n < minRandomTasks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomTasks, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && cfg.rng.Float64() < p {
					g.AddDependency(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}
