// File: types.go
// Role: Graph storage, visitation colors, Edge and the cycle error types.
// Concurrency:
//   - Every Graph field is guarded by Graph.mu; the zero Graph is ready to use.

package depgraph

import (
	"errors"
	"fmt"
	"sync"
)

// Visitation states used by cycle detection.
const (
	White = iota // White: the task has not been visited yet.
	Gray         // Gray: the task is on the current DFS path.
	Black        // Black: the task and all its dependencies are fully explored.
)

// ErrCycleDetected indicates that the dependency graph contains a cycle and
// therefore has no valid execution order.
var ErrCycleDetected = errors.New("depgraph: cycle detected")

// CycleError reports a concrete dependency cycle.
// It matches ErrCycleDetected via errors.Is.
type CycleError[T comparable] struct {
	// Cycle lists the tasks on the cycle; Cycle[i] depends on Cycle[i+1]
	// and the last task depends on Cycle[0].
	Cycle []T
}

// Error implements error.
func (e *CycleError[T]) Error() string {
	return fmt.Sprintf("%s: %v", ErrCycleDetected.Error(), e.Cycle)
}

// Is reports whether target is ErrCycleDetected.
func (e *CycleError[T]) Is(target error) bool {
	return target == ErrCycleDetected
}

// Edge is a single dependency: From depends on To.
type Edge[T comparable] struct {
	From T // dependent task
	To   T // prerequisite task
}

// Graph is an in-memory dependency graph.
//
// The zero value is an empty graph ready for use; New is provided for
// symmetry with the rest of the module. A Graph must not be copied after
// first use.
type Graph[T comparable] struct {
	mu sync.RWMutex // guards every field below

	nodes     []T                  // discovery order
	known     map[T]struct{}       // membership for nodes
	adjacency map[T][]T            // a → dependencies of a, insertion order
	edges     map[Edge[T]]struct{} // membership for adjacency
}

// New returns an empty Graph.
// Complexity: O(1)
func New[T comparable]() *Graph[T] {
	g := &Graph[T]{}
	g.init()

	return g
}

// init lazily allocates storage so the zero value works.
// Caller must hold the write lock (or own g exclusively).
func (g *Graph[T]) init() {
	if g.known != nil {
		return
	}
	g.known = make(map[T]struct{})
	g.adjacency = make(map[T][]T)
	g.edges = make(map[Edge[T]]struct{})
}
