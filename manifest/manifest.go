// File: manifest.go
// Role: YAML decoding (Parse, Load), validation, and conversion into a
// depgraph.Graph and schedule options.

package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/depsched/depgraph"
	"github.com/katalvlaran/depsched/schedule"
)

// Sentinel errors for manifest validation.
var (
	// ErrEmptyTaskID indicates a task without an id.
	ErrEmptyTaskID = errors.New("manifest: task id is empty")

	// ErrDuplicateTask indicates two tasks share an id.
	ErrDuplicateTask = errors.New("manifest: duplicate task id")

	// ErrUnknownTask indicates a dependency on an undeclared task.
	ErrUnknownTask = errors.New("manifest: unknown task")

	// ErrIsolatedTask indicates a task with no dependencies and no dependents.
	// Graphs grow only through dependency edges, so such a task cannot be
	// represented.
	ErrIsolatedTask = errors.New("manifest: isolated task")

	// ErrInvalidSettings indicates a negative setting.
	ErrInvalidSettings = errors.New("manifest: invalid settings")
)

// DefaultApproxIterations is the pass budget used by ApproximateOrder when
// settings.approx_iterations is zero or absent.
const DefaultApproxIterations = 100

// Manifest is the decoded form of a project manifest.
type Manifest struct {
	Name     string   `yaml:"name"`
	Settings Settings `yaml:"settings"`
	Tasks    []Task   `yaml:"tasks"`
}

// Settings carries executor and heuristic knobs.
type Settings struct {
	Workers          int  `yaml:"workers"`
	ContinueOnError  bool `yaml:"continue_on_error"`
	ApproxIterations int  `yaml:"approx_iterations"`
}

// Task declares one task and its direct dependencies.
type Task struct {
	ID        string   `yaml:"id"`
	DependsOn []string `yaml:"depends_on"`
}

// Parse decodes and validates a manifest from YAML bytes.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate checks the manifest without building a graph.
//
// Steps:
//  1. Settings must be non-negative.
//  2. Every task id is non-empty and unique.
//  3. Every dependency refers to a declared task.
//  4. Every task takes part in at least one dependency.
func (m *Manifest) Validate() error {
	// 1) Settings
	if m.Settings.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidSettings, m.Settings.Workers)
	}
	if m.Settings.ApproxIterations < 0 {
		return fmt.Errorf("%w: approx_iterations must be >= 0, got %d", ErrInvalidSettings, m.Settings.ApproxIterations)
	}

	// 2) Ids
	declared := make(map[string]struct{}, len(m.Tasks))
	for i, t := range m.Tasks {
		if t.ID == "" {
			return fmt.Errorf("%w: tasks[%d]", ErrEmptyTaskID, i)
		}
		if _, dup := declared[t.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTask, t.ID)
		}
		declared[t.ID] = struct{}{}
	}

	// 3) References
	linked := make(map[string]struct{}, len(m.Tasks))
	for _, t := range m.Tasks {
		for _, dep := range t.DependsOn {
			if _, ok := declared[dep]; !ok {
				return fmt.Errorf("%w: %q depends on %q", ErrUnknownTask, t.ID, dep)
			}
			linked[t.ID] = struct{}{}
			linked[dep] = struct{}{}
		}
	}

	// 4) Isolation
	for _, t := range m.Tasks {
		if _, ok := linked[t.ID]; !ok {
			return fmt.Errorf("%w: %q", ErrIsolatedTask, t.ID)
		}
	}

	return nil
}

// Graph validates m and builds its dependency graph. Tasks are visited in
// file order and dependencies in list order.
func (m *Manifest) Graph() (*depgraph.Graph[string], error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := depgraph.New[string]()
	for _, t := range m.Tasks {
		for _, dep := range t.DependsOn {
			g.AddDependency(t.ID, dep)
		}
	}

	return g, nil
}

// ScheduleOptions maps Settings onto executor options.
func (m *Manifest) ScheduleOptions() []schedule.Option {
	return []schedule.Option{
		schedule.WithWorkers(m.Settings.Workers),
		schedule.WithContinueOnError(m.Settings.ContinueOnError),
	}
}

// ApproximateOrder builds the graph and runs the local-search heuristic with
// the configured pass budget. It works on cyclic manifests too.
func (m *Manifest) ApproximateOrder() ([]string, int, error) {
	g, err := m.Graph()
	if err != nil {
		return nil, 0, err
	}
	iters := m.Settings.ApproxIterations
	if iters == 0 {
		iters = DefaultApproxIterations
	}
	order, violations := g.ApproximateOrder(iters)

	return order, violations, nil
}
