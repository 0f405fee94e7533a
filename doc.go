// Package depsched plans and runs tasks that depend on each other.
//
// 🚀 What is depsched?
//
//	A small, thread-safe toolkit built around one dependency graph:
//		• depgraph  – record "a depends on b", detect cycles, order tasks,
//		  count parallel rounds, approximate an order for cyclic graphs
//		• schedule  – execute a graph round by round on a bounded worker pool
//		• manifest  – declare tasks and dependencies in YAML
//		• dagbridge – export a validated graph to github.com/begmaroman/go-dag
//		• builder   – deterministic graph fixtures for tests and benchmarks
//
// ✨ Why depsched?
//
//   - Deterministic – every analysis breaks ties by discovery order
//   - No recursion – deep dependency chains never exhaust the stack
//   - Infeasible is a value – cyclic graphs report "absent", never panic
//
// Quick start:
//
//	g := depgraph.New[string]()
//	g.AddDependency("deploy", "test")
//	g.AddDependency("test", "build")
//
//	order, ok := g.TopologicalOrder() // [build test deploy], true
//	rounds, _ := g.MinimumRounds()    // 3
//
//	rep, err := schedule.New[string](schedule.WithWorkers(4)).
//		Run(ctx, g, func(ctx context.Context, task string) error { ... })
package depsched
