// File: impl_chain.go
// Role: linear topologies (Chain) and their closed variant (Ring).

package builder

import (
	"fmt"

	"github.com/katalvlaran/depsched/depgraph"
)

const (
	methodChain   = "Chain"
	methodRing    = "Ring"
	minChainTasks = 2
	minRingTasks  = 1
)

// Chain builds t1→t0, t2→t1, …, t(n-1)→t(n-2): every task depends on the
// previous index. The graph needs n rounds.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if n < minChainTasks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainTasks, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddDependency(cfg.idFn(i), cfg.idFn(i-1))
		}

		return nil
	}
}

// Ring builds a Chain of n tasks closed by t0→t(n-1). With n == 1 it is a
// single self-loop.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(g *depgraph.Graph[string], cfg builderConfig) error {
		if n < minRingTasks {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingTasks, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			g.AddDependency(cfg.idFn(i), cfg.idFn(i-1))
		}
		g.AddDependency(cfg.idFn(0), cfg.idFn(n-1))

		return nil
	}
}
