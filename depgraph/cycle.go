// File: cycle.go
// Role: cycle detection (IsAcyclic, FindCycle, Validate).
//
// The traversal is an iterative three-color DFS. Each stack frame remembers
// its task and the index of the next dependency to explore, so the frame
// stack doubles as the current DFS path and no recursion depth limit applies.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (state map + frame stack)

package depgraph

// frame is one level of the explicit DFS stack.
type frame[T comparable] struct {
	id   T   // task on the current path
	next int // index into adjacency[id] of the next dependency to explore
}

// IsAcyclic reports whether the graph has no dependency cycle.
// An empty graph is acyclic.
func (g *Graph[T]) IsAcyclic() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, found := g.findCycle()

	return !found
}

// FindCycle returns the first dependency cycle met by a depth-first search
// that starts from each task in discovery order and follows dependencies in
// insertion order.
//
// The returned slice starts at the task where the back edge closes; each
// element depends on the next one and the last depends on the first.
// A self-dependency x→x yields [x]. The cycle is not guaranteed to be minimal.
// Returns (nil, false) when the graph is acyclic.
func (g *Graph[T]) FindCycle() ([]T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findCycle()
}

// Validate returns nil when the graph is acyclic and a *CycleError
// (matching ErrCycleDetected) otherwise.
func (g *Graph[T]) Validate() error {
	if cycle, found := g.FindCycle(); found {
		return &CycleError[T]{Cycle: cycle}
	}

	return nil
}

// findCycle runs the traversal. Caller holds at least the read lock.
//
// Steps:
//  1. For every White root in discovery order, push a frame and mark it Gray.
//  2. Advance the top frame to its next dependency:
//     - Gray neighbor: back edge, cut the path at the neighbor and return it.
//     - White neighbor: mark Gray and push.
//     - Black neighbor: already explored, skip.
//  3. A frame with no dependencies left turns Black and is popped.
func (g *Graph[T]) findCycle() ([]T, bool) {
	state := make(map[T]int, len(g.nodes)) // missing key reads as White
	stack := make([]frame[T], 0, len(g.nodes))

	for _, root := range g.nodes {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack, frame[T]{id: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.adjacency[top.id]
			if top.next == len(deps) {
				state[top.id] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := deps[top.next]
			top.next++

			switch state[nbr] {
			case Gray:
				return cyclePath(stack, nbr), true
			case White:
				state[nbr] = Gray
				stack = append(stack, frame[T]{id: nbr})
			}
		}
	}

	return nil, false
}

// cyclePath extracts the path segment from the Gray task nbr to the top of
// the stack. nbr is guaranteed to be on the stack.
func cyclePath[T comparable](stack []frame[T], nbr T) []T {
	start := len(stack) - 1
	for stack[start].id != nbr {
		start--
	}
	cycle := make([]T, 0, len(stack)-start)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.id)
	}

	return cycle
}
