// File: approx.go
// Role: cycle-tolerant ordering heuristic (ApproximateOrder) and the
// violation metric it minimizes.
//
// A dependency a→b is violated by an order that places a before b. The search
// starts from tasks sorted by ascending dependency count and performs
// first-improvement adjacent swaps, pass after pass, until no swap helps, the
// count hits zero, or the pass budget runs out.
//
// Swapping neighbors x (at i) and y (at i+1) only changes the status of the
// edges between x and y, so the new count is computed as a delta:
//
//	Δ = [y→x] − [x→y]
//
// which yields exactly the same value as a full recount in O(1).
//
// Known limitation: only adjacent swaps are explored, so the search can stall
// in a local optimum even when a valid topological order exists.
//
// Complexity:
//
//   - Initial order: O(V²) worst case (stable insertion sort)
//   - Initial count: O(V + E), plus an O(E) copy of the edge set
//   - Each pass:     O(V)

package depgraph

import "context"

// WithContext returns an ApproxOption that stops the search between passes
// once ctx is done. The best order found so far is still returned.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) ApproxOption {
	return func(o *approxOptions) {
		if ctx != nil {
			o.done = ctx.Done()
		}
	}
}

// WithOnPass returns an ApproxOption that calls fn after every completed pass
// with the 1-based pass number and the violation count at its end.
// fn runs without the graph lock held and may mutate the graph; the running
// search keeps working on the dependencies it started with.
func WithOnPass(fn func(pass, violations int)) ApproxOption {
	return func(o *approxOptions) {
		o.onPass = fn
	}
}

// ApproxOption configures ApproximateOrder.
type ApproxOption func(*approxOptions)

// approxOptions holds settings for the local search.
type approxOptions struct {
	done   <-chan struct{}            // closed when the search should stop
	onPass func(pass, violations int) // observer invoked after each pass
}

// ApproximateOrder searches for an order with as few violated dependencies
// as possible, running at most maxIterations improvement passes. A negative
// maxIterations is treated as zero. A self-dependency a→a counts as one
// violation in every order, so a graph with k self-loops never scores below k.
//
// It always returns an order holding every task exactly once, together with
// its violation count. A count of zero means the order is a valid topological
// order.
//
// The graph is read once under the read lock; the passes run on that snapshot.
func (g *Graph[T]) ApproximateOrder(maxIterations int, opts ...ApproxOption) ([]T, int) {
	var o approxOptions
	for _, opt := range opts {
		opt(&o)
	}

	g.mu.RLock()
	order := g.initialOrder()
	best := g.violations(order)
	edges := make(edgeSet[T], len(g.edges))
	for e := range g.edges {
		edges[e] = struct{}{}
	}
	g.mu.RUnlock()

	for pass := 1; pass <= maxIterations && best > 0; pass++ {
		if o.done != nil {
			select {
			case <-o.done:
				return order, best
			default:
			}
		}

		improved := false
		for i := 0; i+1 < len(order); i++ {
			x, y := order[i], order[i+1]
			next := best + edges.has(y, x) - edges.has(x, y)
			if next >= best {
				continue // a tentative swap that does not strictly improve is reverted
			}
			order[i], order[i+1] = y, x
			best = next
			improved = true
			if best == 0 {
				break
			}
		}

		if o.onPass != nil {
			o.onPass(pass, best)
		}
		if !improved {
			break
		}
	}

	return order, best
}

// Violations returns the number of dependencies violated by order: edges
// a→b with a placed before b, plus every self-dependency. Tasks missing from
// order, and edges touching them, are ignored. If a task appears more than
// once, its last position counts.
func (g *Graph[T]) Violations(order []T) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.violations(order)
}

// violations counts violated edges. Caller holds at least the read lock.
func (g *Graph[T]) violations(order []T) int {
	pos := make(map[T]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	count := 0
	for a, deps := range g.adjacency {
		pa, ok := pos[a]
		if !ok {
			continue
		}
		for _, b := range deps {
			pb, ok := pos[b]
			if !ok {
				continue
			}
			if pa <= pb { // equality only for a self-dependency
				count++
			}
		}
	}

	return count
}

// initialOrder returns tasks sorted by ascending dependency count using a
// stable insertion sort, so ties keep discovery order.
func (g *Graph[T]) initialOrder() []T {
	order := make([]T, len(g.nodes))
	copy(order, g.nodes)
	for i := 1; i < len(order); i++ {
		cur := order[i]
		deg := len(g.adjacency[cur])
		j := i - 1
		for j >= 0 && len(g.adjacency[order[j]]) > deg {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = cur
	}

	return order
}

// edgeSet is a private copy of the dependency set.
type edgeSet[T comparable] map[Edge[T]]struct{}

// has returns 1 if a depends on b, else 0.
func (s edgeSet[T]) has(a, b T) int {
	if _, ok := s[Edge[T]{From: a, To: b}]; ok {
		return 1
	}

	return 0
}
