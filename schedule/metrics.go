// File: metrics.go
// Role: Prometheus collectors updated by Executor.Run.
// Concurrency:
//   - Collectors are safe for concurrent use; a nil *Metrics records nothing.

package schedule

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by an Executor.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// TasksTotal counts finished tasks by status (succeeded, failed, skipped).
	TasksTotal *prometheus.CounterVec

	// RoundDuration observes the wall time of each executed round.
	RoundDuration prometheus.Histogram

	// RunsTotal counts runs by result (succeeded, failed, cyclic, canceled).
	RunsTotal *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry returns the registration error.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		TasksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "depsched",
				Name:      "tasks_total",
				Help:      "Tasks handled by the round executor, by final status.",
			},
			[]string{"status"},
		),
		RoundDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "depsched",
				Name:      "round_duration_seconds",
				Help:      "Wall time of a single execution round.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
			},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "depsched",
				Name:      "runs_total",
				Help:      "Executor runs, by result.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.TasksTotal, m.RoundDuration, m.RunsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("schedule: register metrics: %w", err)
		}
	}

	return m, nil
}

func (m *Metrics) observeTask(s Status) {
	if m == nil {
		return
	}
	m.TasksTotal.WithLabelValues(s.String()).Inc()
}

func (m *Metrics) observeRound(d time.Duration) {
	if m == nil {
		return
	}
	m.RoundDuration.Observe(d.Seconds())
}

func (m *Metrics) observeRun(result string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(result).Inc()
}
