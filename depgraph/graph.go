// File: graph.go
// Role: Graph construction (AddDependency) and read-only accessors.
// Determinism:
//   - Nodes() is discovery order; Dependencies() is insertion order.
//   - Dependents() and Edges() follow discovery order of the dependent task.
// Concurrency:
//   - AddDependency under the write lock, accessors under the read lock.

package depgraph

// AddDependency records that task a depends on task b.
//
// Steps:
//  1. Register a, then b, in the node list if they are new.
//  2. Skip if the edge a→b already exists.
//  3. Append b to a's dependency list.
//
// Self-dependency (a == b) is accepted and behaves as a cycle of length 1.
// Calling AddDependency twice with the same pair has no further effect.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddDependency(a, b T) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.init()
	g.addNode(a)
	g.addNode(b)

	e := Edge[T]{From: a, To: b}
	if _, dup := g.edges[e]; dup {
		return
	}
	g.edges[e] = struct{}{}
	g.adjacency[a] = append(g.adjacency[a], b)
}

// addNode appends id to the discovery list once. Caller holds the write lock.
func (g *Graph[T]) addNode(id T) {
	if _, ok := g.known[id]; ok {
		return
	}
	g.known[id] = struct{}{}
	g.nodes = append(g.nodes, id)
}

// Nodes returns every task in discovery order.
func (g *Graph[T]) Nodes() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]T(nil), g.nodes...)
}

// NodeCount returns the number of tasks.
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of distinct dependency edges.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasNode reports whether id has appeared in any dependency.
func (g *Graph[T]) HasNode(id T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.known[id]

	return ok
}

// HasDependency reports whether a depends directly on b.
func (g *Graph[T]) HasDependency(a, b T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[Edge[T]{From: a, To: b}]

	return ok
}

// Dependencies returns the direct dependencies of a in insertion order.
// Unknown tasks yield nil.
func (g *Graph[T]) Dependencies(a T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deps := g.adjacency[a]
	if len(deps) == 0 {
		return nil
	}

	return append([]T(nil), deps...)
}

// Dependents returns the tasks that depend directly on b, ordered by the
// discovery order of the dependent.
// Complexity: O(V+E)
func (g *Graph[T]) Dependents(b T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []T
	for _, a := range g.nodes {
		if _, ok := g.edges[Edge[T]{From: a, To: b}]; ok {
			out = append(out, a)
		}
	}

	return out
}

// Edges returns every dependency edge, grouped by dependent task in
// discovery order and then by insertion order.
func (g *Graph[T]) Edges() []Edge[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[T], 0, len(g.edges))
	for _, a := range g.nodes {
		for _, b := range g.adjacency[a] {
			out = append(out, Edge[T]{From: a, To: b})
		}
	}

	return out
}

// Clone returns an independent deep copy of g, preserving discovery and
// insertion order.
// Complexity: O(V+E)
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := New[T]()
	for _, a := range g.nodes {
		c.addNode(a)
	}
	for a, deps := range g.adjacency {
		c.adjacency[a] = append([]T(nil), deps...)
	}
	for e := range g.edges {
		c.edges[e] = struct{}{}
	}

	return c
}

// indexes is the derived view shared by the Kahn-based analyses.
type indexes[T comparable] struct {
	indegree   map[T]int // number of unfinished dependencies per task
	dependents map[T][]T // b → tasks depending on b, discovery order
}

// buildIndexes derives indegree and reverse adjacency from the current
// edge set. Caller holds at least the read lock.
// Complexity: O(V+E)
func (g *Graph[T]) buildIndexes() indexes[T] {
	idx := indexes[T]{
		indegree:   make(map[T]int, len(g.nodes)),
		dependents: make(map[T][]T, len(g.nodes)),
	}
	for _, a := range g.nodes {
		deps := g.adjacency[a]
		idx.indegree[a] = len(deps) // includes a self-loop, which never drains
		for _, b := range deps {
			idx.dependents[b] = append(idx.dependents[b], a)
		}
	}

	return idx
}
