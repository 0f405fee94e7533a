// File: api.go
// Role: public entry-points for the builder package.
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/depsched/depgraph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *depgraph.Graph[string], cfg builderConfig) error

// BuildGraph creates a new graph, resolves the builder configuration from
// bopts, and applies all constructors in order. The first constructor error
// is wrapped with "BuildGraph: %w" and returned.
//
// Constructors sharing an ID scheme share task IDs, so composing them joins
// their topologies.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*depgraph.Graph[string], error) {
	g := depgraph.New[string]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
