// Package builder generates dependency-graph fixtures for tests, benchmarks
// and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates a depgraph.Graph[string] and applies constructors in order.
//     – Constructor:  a closure that adds tasks and dependencies.
//   - Topologies:
//     – Chain:        t0 ← t1 ← … (each task depends on the previous one).
//     – FanIn:        one sink task depending on n-1 sources.
//     – FanOut:       n-1 tasks depending on one shared task.
//     – Ring:         a closed dependency cycle.
//     – Layered:      a random acyclic graph with a fixed number of layers.
//     – RandomSparse: independent random dependencies, cycles allowed.
//   - Task-ID schemes (IDFn): DefaultIDFn, LetterIDFn, PrefixIDFn, PaddedIDFn.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs,
//     including discovery order.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
//   - Every task a constructor names takes part in at least one dependency,
//     since depgraph graphs grow only through edges.
package builder
