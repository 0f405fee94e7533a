// Package schedule executes a depgraph.Graph round by round.
//
// What:
//
//   - Executor runs the plan produced by Graph.Rounds: rounds strictly in
//     sequence, the tasks of one round in parallel on an errgroup, optionally
//     capped by WithWorkers.
//   - Fail-fast by default: the first task error cancels the round context
//     and no later round starts.
//   - WithContinueOnError keeps going: a failed task's dependents (and their
//     dependents) are skipped, independent tasks still run, and Run reports
//     ErrTasksFailed joined with every task error.
//
// Observability:
//
//   - Structured logs through log/slog (run_id, round, task, duration).
//   - Optional Prometheus collectors via NewMetrics and WithMetrics.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrNilTaskFunc        task function is nil
//   - ErrOptionViolation    an Option received an invalid value
//   - ErrTasksFailed        one or more tasks failed (continue mode)
//   - depgraph.ErrCycleDetected  the graph has no feasible plan
//   - context errors        ctx was canceled between rounds
package schedule
