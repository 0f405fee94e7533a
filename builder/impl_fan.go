// File: impl_fan.go
// Role: star topologies: one sink over many sources (FanIn), many tasks over
// one shared prerequisite (FanOut).

package builder

import (
	"fmt"

	"github.com/katalvlaran/depsched/depgraph"
)

const (
	methodFanIn  = "FanIn"
	methodFanOut = "FanOut"
	minFanTasks  = 2
)

// FanIn builds t0→t1, t0→t2, …, t0→t(n-1): one sink waiting on n-1
// independent sources. Two rounds.
// Complexity: O(n).
func FanIn(n int) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if n < minFanTasks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanIn, n, minFanTasks, ErrTooFewVertices)
		}
		sink := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddDependency(sink, cfg.idFn(i))
		}

		return nil
	}
}

// FanOut builds t1→t0, t2→t0, …, t(n-1)→t0: n-1 tasks sharing one
// prerequisite. Two rounds, the second n-1 wide.
// Complexity: O(n).
func FanOut(n int) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if n < minFanTasks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodFanOut, n, minFanTasks, ErrTooFewVertices)
		}
		root := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddDependency(cfg.idFn(i), root)
		}

		return nil
	}
}
