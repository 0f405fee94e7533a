// File: executor.go
// Role: round-based execution of a depgraph.Graph.
// Determinism:
//   - Rounds and Report.Results follow depgraph.Graph.Rounds.
//   - Inside a round, start order follows the plan, completion order does not.
// Concurrency:
//   - One errgroup per round; each goroutine writes only its own Results slot.

package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/depsched/depgraph"
)

// Executor runs dependency graphs round by round. It is safe to reuse and to
// call Run concurrently on different graphs.
type Executor[T comparable] struct {
	cfg Config
}

// New returns an Executor configured by opts on top of DefaultConfig.
func New[T comparable](opts ...Option) *Executor[T] {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Executor[T]{cfg: cfg}
}

// Config returns a copy of the executor settings.
func (e *Executor[T]) Config() Config {
	return e.cfg
}

// run is the mutable state of a single Run call.
type run[T comparable] struct {
	cfg    Config
	graph  *depgraph.Graph[T]
	fn     TaskFunc[T]
	log    *slog.Logger
	report *Report[T]
	slot   map[T]int // task → index into report.Results
}

// Run executes every task of g with fn, respecting dependencies.
//
// Steps:
//  1. Validate inputs and options.
//  2. Plan with g.Rounds(); a cyclic graph fails with a *depgraph.CycleError.
//  3. For each round: stop if ctx is done, skip tasks whose dependencies did
//     not succeed, run the rest in parallel. A ctx canceled while a round runs
//     ends the run with ctx's error once that round returns.
//  4. Fail-fast: stop after the first failing round and return its error.
//     Continue mode: finish the plan and return ErrTasksFailed joined with
//     every task error.
//
// The returned Report is non-nil whenever planning succeeded, even if Run
// also returns an error.
func (e *Executor[T]) Run(ctx context.Context, g *depgraph.Graph[T], fn TaskFunc[T]) (*Report[T], error) {
	// 1) Inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if fn == nil {
		return nil, ErrNilTaskFunc
	}
	if e.cfg.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, e.cfg.err)
	}

	runID := uuid.NewString()
	log := e.cfg.Logger.With(slog.String("run_id", runID))

	// 2) Plan
	rounds, ok := g.Rounds()
	if !ok {
		err := g.Validate()
		if err == nil { // graph changed between the two reads
			err = depgraph.ErrCycleDetected
		}
		e.cfg.Metrics.observeRun("cyclic")
		log.Error("run rejected", slog.Any("error", err))

		return nil, fmt.Errorf("schedule: Run: %w", err)
	}

	r := &run[T]{
		cfg:    e.cfg,
		graph:  g,
		fn:     fn,
		log:    log,
		report: &Report[T]{RunID: runID, Rounds: len(rounds)},
		slot:   make(map[T]int),
	}
	for i, round := range rounds {
		for _, task := range round {
			r.slot[task] = len(r.report.Results)
			r.report.Results = append(r.report.Results, TaskResult[T]{Task: task, Round: i + 1})
		}
	}

	log.Info("run started",
		slog.Int("tasks", len(r.report.Results)),
		slog.Int("rounds", len(rounds)),
		slog.Int("workers", e.cfg.Workers),
		slog.Bool("continue_on_error", e.cfg.ContinueOnError),
	)

	// 3) Execute
	start := time.Now()
	err := r.execute(ctx, rounds)
	r.report.Duration = time.Since(start)

	// 4) Finalize
	return r.finish(err)
}

// execute runs all rounds and returns the error that stopped the run, if any.
func (r *run[T]) execute(ctx context.Context, rounds [][]T) error {
	for i, round := range rounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		runnable := r.admit(round)
		began := time.Now()
		err := r.runRound(ctx, i+1, runnable)
		took := time.Since(began)
		r.cfg.Metrics.observeRound(took)
		r.log.Debug("round finished",
			slog.Int("round", i+1),
			slog.Int("tasks", len(runnable)),
			slog.Duration("duration", took),
		)

		if err != nil && !r.cfg.ContinueOnError {
			return fmt.Errorf("schedule: round %d: %w", i+1, err)
		}
		// tasks left waiting for a worker were skipped without an error
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("schedule: round %d: %w", i+1, err)
		}
	}

	return nil
}

// admit filters a round down to tasks whose dependencies all succeeded and
// marks the others skipped. Dependencies always belong to earlier rounds, so
// their status is final here.
func (r *run[T]) admit(round []T) []T {
	runnable := make([]T, 0, len(round))
	for _, task := range round {
		if dep, blocked := r.blockedBy(task); blocked {
			r.report.Results[r.slot[task]].Status = StatusSkipped
			r.log.Warn("task skipped",
				slog.Any("task", task),
				slog.Any("dependency", dep),
			)
			continue
		}
		runnable = append(runnable, task)
	}

	return runnable
}

// blockedBy returns the first dependency of task that did not succeed.
func (r *run[T]) blockedBy(task T) (T, bool) {
	for _, dep := range r.graph.Dependencies(task) {
		i, planned := r.slot[dep]
		if !planned {
			continue // edge added after planning
		}
		if r.report.Results[i].Status != StatusSucceeded {
			return dep, true
		}
	}
	var zero T

	return zero, false
}

// runRound runs tasks in parallel and waits for all of them.
// In fail-fast mode the first error cancels the others and is returned.
func (r *run[T]) runRound(ctx context.Context, round int, tasks []T) error {
	grp, gctx := errgroup.WithContext(ctx)
	if r.cfg.Workers > 0 {
		grp.SetLimit(r.cfg.Workers)
	}

	for _, task := range tasks {
		res := &r.report.Results[r.slot[task]]
		grp.Go(func() error {
			if gctx.Err() != nil { // canceled before this task got a worker
				res.Status = StatusSkipped
				return nil
			}

			began := time.Now()
			err := r.fn(gctx, task)
			res.Duration = time.Since(began)

			if err != nil {
				res.Status = StatusFailed
				res.Err = err
				r.log.Error("task failed",
					slog.Int("round", round),
					slog.Any("task", task),
					slog.Duration("duration", res.Duration),
					slog.Any("error", err),
				)
				if r.cfg.ContinueOnError {
					return nil
				}

				return fmt.Errorf("task %v: %w", task, err)
			}

			res.Status = StatusSucceeded
			r.log.Debug("task succeeded",
				slog.Int("round", round),
				slog.Any("task", task),
				slog.Duration("duration", res.Duration),
			)

			return nil
		})
	}

	return grp.Wait()
}

// finish marks leftovers skipped, records metrics and builds the final error.
func (r *run[T]) finish(runErr error) (*Report[T], error) {
	var taskErrs []error
	for i := range r.report.Results {
		res := &r.report.Results[i]
		if res.Status == StatusPending {
			res.Status = StatusSkipped
		}
		if res.Status == StatusFailed {
			taskErrs = append(taskErrs, fmt.Errorf("task %v: %w", res.Task, res.Err))
		}
		r.cfg.Metrics.observeTask(res.Status)
	}

	err := runErr
	if err == nil && len(taskErrs) > 0 {
		err = errors.Join(append([]error{ErrTasksFailed}, taskErrs...)...)
	}

	result := "succeeded"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result = "canceled"
	case err != nil:
		result = "failed"
	}
	r.cfg.Metrics.observeRun(result)

	r.log.Info("run finished",
		slog.String("result", result),
		slog.Int("succeeded", len(r.report.Succeeded())),
		slog.Int("failed", len(r.report.Failed())),
		slog.Int("skipped", len(r.report.Skipped())),
		slog.Duration("duration", r.report.Duration),
	)

	return r.report, err
}
