// Package depgraph implements a task dependency graph and the analyses a
// scheduler needs on it: cycle detection, topological ordering, round-based
// leveling and a cycle-tolerant local-search ordering heuristic.
//
// What:
//
//   - Graph[T]: a directed graph over any comparable task identifier where an
//     edge a→b reads "a depends on b" (b must complete before a).
//   - IsAcyclic / FindCycle: iterative three-color DFS (White, Gray, Black) that
//     reports the first back edge it meets, in discovery order.
//   - TopologicalOrder: Kahn's algorithm over the reversed (dependents) view,
//     with strict FIFO tie-breaking.
//   - MinimumRounds / Levels / Rounds: leveled Kahn; the minimum number of
//     sequential rounds when every round may run any number of tasks.
//   - ApproximateOrder: greedy adjacent-swap local search minimizing the number
//     of violated dependencies; always returns an order, even on cyclic graphs.
//
// Why:
//
//   - Build systems, CI pipelines and project plans all reduce to "what can run
//     now, what must wait, and is the plan feasible at all".
//
// Determinism:
//
//   - Nodes are kept in discovery order (the order they first appear in an
//     AddDependency call) and dependency lists in insertion order. Every
//     analysis iterates in that order, so results are reproducible.
//
// Infeasibility:
//
//   - A cyclic graph is valid input, not a programming error. Analyses that
//     need acyclicity return the comma-ok form (nil/0, false). Validate turns
//     the same condition into a *CycleError for callers that prefer errors.
//
// Concurrency:
//
//   - Graph is safe for concurrent use. AddDependency takes the write lock,
//     every analysis holds the read lock for its whole run.
//
// Complexity:
//
//   - AddDependency:    O(1) amortized
//   - FindCycle:        Time O(V+E), Memory O(V)
//   - TopologicalOrder: Time O(V+E), Memory O(V+E)
//   - MinimumRounds:    Time O(V+E), Memory O(V+E)
//   - ApproximateOrder: Time O(E + iter·V), Memory O(V)
package depgraph
