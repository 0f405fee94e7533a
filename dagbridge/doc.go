// Package dagbridge exports an acyclic depgraph.Graph into a
// github.com/begmaroman/go-dag DAG.
//
// What:
//
//   - ToDAG copies every task as a vertex and every dependency a→b as the
//     go-dag edge b→a, so go-dag parents run before their children.
//   - Vertex ids come from a caller-supplied function and must be unique.
//
// Why:
//
//   - Engines built on go-dag (ready-set traversal, parent/child walks) can
//     consume a plan that was validated and analyzed by depgraph.
//
// Infeasibility:
//
//   - A cyclic graph is rejected before any vertex is added, with the same
//     *depgraph.CycleError that Graph.Validate returns.
package dagbridge
