// File: topological.go
// Role: Kahn's algorithm over the dependents view (TopologicalOrder) and its
// leveled variant (MinimumRounds, Levels, Rounds).
//
// Edges are stored as "a depends on b", the reverse of "b must precede a",
// so the indegree of a task is simply the length of its dependency list and
// the queue relaxes dependents rather than dependencies.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (indegree table + reverse adjacency)

package depgraph

// kahnResult collects everything a single Kahn pass can tell.
type kahnResult[T comparable] struct {
	order []T       // processing order
	level map[T]int // 1-based round of each processed task
	depth int       // maximum level seen
}

// TopologicalOrder returns every task such that each dependency precedes
// its dependents. Among tasks that become ready together, the order is
// strict FIFO: the initial batch in discovery order, then in the order they
// became ready.
//
// Returns (nil, false) when the graph has a cycle. An empty graph yields an
// empty, non-nil order.
func (g *Graph[T]) TopologicalOrder() ([]T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res, ok := g.kahn()
	if !ok {
		return nil, false
	}

	return res.order, true
}

// MinimumRounds returns the minimum number of sequential rounds needed to
// finish every task with unlimited parallel workers, where a task may run in
// round r only if all its dependencies finished before r.
//
// Returns (0, true) for an empty graph and (0, false) when the graph has a
// cycle.
func (g *Graph[T]) MinimumRounds() (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res, ok := g.kahn()
	if !ok {
		return 0, false
	}

	return res.depth, true
}

// Levels returns the earliest round (1-based) of every task.
// Returns (nil, false) when the graph has a cycle.
func (g *Graph[T]) Levels() (map[T]int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res, ok := g.kahn()
	if !ok {
		return nil, false
	}

	return res.level, true
}

// Rounds groups tasks by their earliest round: Rounds()[0] holds round 1.
// Within a round, tasks keep the TopologicalOrder sequence.
// Returns (nil, false) when the graph has a cycle; an empty graph yields an
// empty, non-nil slice.
func (g *Graph[T]) Rounds() ([][]T, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	res, ok := g.kahn()
	if !ok {
		return nil, false
	}

	rounds := make([][]T, res.depth)
	for _, id := range res.order {
		l := res.level[id] - 1
		rounds[l] = append(rounds[l], id)
	}

	return rounds, true
}

// kahn runs the leveled Kahn pass. Caller holds at least the read lock.
//
// Steps:
//  1. Build indegree and dependents indexes.
//  2. Seed the FIFO queue with zero-indegree tasks in discovery order, level 1.
//  3. Pop u, append to order; for each dependent v:
//     level[v] = max(level[v], level[u]+1); decrement indegree[v];
//     enqueue v when it reaches zero.
//  4. Succeed only if every task was processed.
func (g *Graph[T]) kahn() (kahnResult[T], bool) {
	idx := g.buildIndexes()
	res := kahnResult[T]{
		order: make([]T, 0, len(g.nodes)),
		level: make(map[T]int, len(g.nodes)),
	}

	queue := make([]T, 0, len(g.nodes))
	for _, id := range g.nodes {
		if idx.indegree[id] == 0 {
			queue = append(queue, id)
			res.level[id] = 1
		}
	}

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		res.order = append(res.order, u)
		lu := res.level[u]
		if lu > res.depth {
			res.depth = lu
		}
		for _, v := range idx.dependents[u] {
			if lu+1 > res.level[v] {
				res.level[v] = lu + 1
			}
			idx.indegree[v]--
			if idx.indegree[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	if len(res.order) != len(g.nodes) {
		return kahnResult[T]{}, false
	}

	return res, true
}
