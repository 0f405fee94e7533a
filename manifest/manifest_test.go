package manifest_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsched/manifest"
	"github.com/katalvlaran/depsched/schedule"
)

// TestLoad_Release decodes the sample manifest and builds its graph.
func TestLoad_Release(t *testing.T) {
	m, err := manifest.Load(filepath.Join("testdata", "release.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "release", m.Name)
	assert.Equal(t, manifest.Settings{Workers: 2, ContinueOnError: true, ApproxIterations: 50}, m.Settings)
	require.Len(t, m.Tasks, 6)
	assert.Equal(t, []string{"test", "lint"}, m.Tasks[0].DependsOn)

	g, err := m.Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"deploy", "test", "lint", "build", "docs", "assets"}, g.Nodes())
	assert.Equal(t, 5, g.EdgeCount())

	order, ok := g.TopologicalOrder()
	require.True(t, ok)
	assert.Equal(t, []string{"build", "assets", "test", "lint", "docs", "deploy"}, order)

	rounds, ok := g.MinimumRounds()
	require.True(t, ok)
	assert.Equal(t, 3, rounds)
}

// TestLoad_Cyclic accepts a cyclic manifest; feasibility is an analysis concern.
func TestLoad_Cyclic(t *testing.T) {
	m, err := manifest.Load(filepath.Join("testdata", "cyclic.yaml"))
	require.NoError(t, err)

	g, err := m.Graph()
	require.NoError(t, err)
	cycle, found := g.FindCycle()
	require.True(t, found)
	assert.Equal(t, []string{"a", "b", "c"}, cycle)

	order, violations, err := m.ApproximateOrder()
	require.NoError(t, err)
	assert.Len(t, order, 3)
	assert.Equal(t, 1, violations)
}

// TestLoad_MissingFile wraps the filesystem error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest: read")
}

// TestParse_Errors covers every validation failure.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "empty id",
			yaml: "tasks:\n  - id: a\n    depends_on: [b]\n  - id: b\n  - depends_on: [a]\n",
			want: manifest.ErrEmptyTaskID,
		},
		{
			name: "duplicate",
			yaml: "tasks:\n  - id: a\n    depends_on: [b]\n  - id: b\n  - id: a\n",
			want: manifest.ErrDuplicateTask,
		},
		{
			name: "unknown dependency",
			yaml: "tasks:\n  - id: a\n    depends_on: [ghost]\n",
			want: manifest.ErrUnknownTask,
		},
		{
			name: "isolated",
			yaml: "tasks:\n  - id: a\n    depends_on: [b]\n  - id: b\n  - id: loner\n",
			want: manifest.ErrIsolatedTask,
		},
		{
			name: "negative workers",
			yaml: "settings:\n  workers: -1\ntasks:\n  - id: a\n    depends_on: [a]\n",
			want: manifest.ErrInvalidSettings,
		},
		{
			name: "negative iterations",
			yaml: "settings:\n  approx_iterations: -3\ntasks:\n  - id: a\n    depends_on: [a]\n",
			want: manifest.ErrInvalidSettings,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := manifest.Parse([]byte(tc.yaml))
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_UnknownField rejects typos in keys.
func TestParse_UnknownField(t *testing.T) {
	_, err := manifest.Parse([]byte("tasks:\n  - id: a\n    depends: [b]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest: decode")
}

// TestParse_Empty yields an empty, valid manifest.
func TestParse_Empty(t *testing.T) {
	m, err := manifest.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, m.Tasks)

	g, err := m.Graph()
	require.NoError(t, err)
	assert.Zero(t, g.NodeCount())
}

// TestParse_SelfDependency is allowed and yields a self-loop.
func TestParse_SelfDependency(t *testing.T) {
	m, err := manifest.Parse([]byte("tasks:\n  - id: a\n    depends_on: [a]\n"))
	require.NoError(t, err)

	g, err := m.Graph()
	require.NoError(t, err)
	assert.False(t, g.IsAcyclic())
}

// TestApproximateOrder_DefaultIterations uses the default budget when unset.
func TestApproximateOrder_DefaultIterations(t *testing.T) {
	m, err := manifest.Parse([]byte("tasks:\n  - id: x\n    depends_on: [y]\n  - id: y\n    depends_on: [z]\n  - id: z\n"))
	require.NoError(t, err)

	order, violations, err := m.ApproximateOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "y", "x"}, order)
	assert.Zero(t, violations)
}

// TestScheduleOptions drives the executor with manifest settings.
func TestScheduleOptions(t *testing.T) {
	m, err := manifest.Load(filepath.Join("testdata", "release.yaml"))
	require.NoError(t, err)

	exec := schedule.New[string](m.ScheduleOptions()...)
	cfg := exec.Config()
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.ContinueOnError)

	g, err := m.Graph()
	require.NoError(t, err)
	rep, err := exec.Run(context.Background(), g, func(context.Context, string) error { return nil })
	require.NoError(t, err)
	assert.Len(t, rep.Succeeded(), 6)
}
