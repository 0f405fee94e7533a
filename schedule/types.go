// File: types.go
// Role: sentinel errors, task status, Report, Config and its Options.

package schedule

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Sentinel errors for schedule execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to Run.
	ErrGraphNil = errors.New("schedule: graph is nil")

	// ErrNilTaskFunc is returned if Run receives a nil TaskFunc.
	ErrNilTaskFunc = errors.New("schedule: task func is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("schedule: invalid option supplied")

	// ErrTasksFailed reports that at least one task failed in continue mode.
	ErrTasksFailed = errors.New("schedule: tasks failed")
)

// TaskFunc runs a single task. It should honor ctx cancellation.
type TaskFunc[T comparable] func(ctx context.Context, task T) error

// Status is the outcome of one task in a run.
type Status int

// Task outcomes.
const (
	StatusPending   Status = iota // not reached yet
	StatusSucceeded               // TaskFunc returned nil
	StatusFailed                  // TaskFunc returned an error
	StatusSkipped                 // not run: a dependency failed, or the run stopped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// TaskResult records what happened to one task.
type TaskResult[T comparable] struct {
	Task     T             // task identifier
	Round    int           // 1-based round the task was planned in
	Status   Status        // outcome
	Err      error         // TaskFunc error when Status == StatusFailed
	Duration time.Duration // wall time spent in TaskFunc
}

// Report summarizes a run. Results follow plan order: round 1 first, then the
// order of depgraph.Graph.Rounds within each round.
type Report[T comparable] struct {
	RunID    string          // unique id, also attached to every log line
	Rounds   int             // number of planned rounds
	Results  []TaskResult[T] // one entry per task
	Duration time.Duration   // wall time of the whole run
}

// Result returns the result for task, if it was part of the plan.
func (r *Report[T]) Result(task T) (TaskResult[T], bool) {
	for _, res := range r.Results {
		if res.Task == task {
			return res, true
		}
	}

	return TaskResult[T]{}, false
}

// Succeeded lists tasks that completed without error, in plan order.
func (r *Report[T]) Succeeded() []T { return r.withStatus(StatusSucceeded) }

// Failed lists tasks whose TaskFunc returned an error, in plan order.
func (r *Report[T]) Failed() []T { return r.withStatus(StatusFailed) }

// Skipped lists tasks that never ran, in plan order.
func (r *Report[T]) Skipped() []T { return r.withStatus(StatusSkipped) }

func (r *Report[T]) withStatus(s Status) []T {
	var out []T
	for _, res := range r.Results {
		if res.Status == s {
			out = append(out, res.Task)
		}
	}

	return out
}

// Option configures an Executor.
// Invalid values are recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Config)

// Config holds executor settings.
type Config struct {
	// Workers caps the number of tasks running at once inside a round.
	// Zero means unlimited.
	Workers int

	// ContinueOnError keeps running independent tasks after a failure.
	ContinueOnError bool

	// Logger receives structured run events. Never nil after DefaultConfig.
	Logger *slog.Logger

	// Metrics, if non-nil, is updated for every task, round and run.
	Metrics *Metrics

	// internal error recorded during option parsing
	err error
}

// DefaultConfig returns a Config with:
//   - unlimited workers per round
//   - fail-fast error handling
//   - a logger that discards everything
//   - no metrics
func DefaultConfig() Config {
	return Config{
		Workers:         0,
		ContinueOnError: false,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:         nil,
	}
}

// WithWorkers limits concurrency inside a round. n must be >= 0.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n < 0 {
			c.err = fmt.Errorf("workers must be >= 0, got %d", n)
			return
		}
		c.Workers = n
	}
}

// WithContinueOnError selects continue mode (true) or fail-fast (false).
func WithContinueOnError(on bool) Option {
	return func(c *Config) {
		c.ContinueOnError = on
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithMetrics installs Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}
