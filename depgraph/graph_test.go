package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsched/depgraph"
)

// scenarioA builds 1→2, 2→4, 3→4, 4→5 (read "1 depends on 2", ...).
func scenarioA() *depgraph.Graph[int] {
	g := depgraph.New[int]()
	g.AddDependency(1, 2)
	g.AddDependency(2, 4)
	g.AddDependency(3, 4)
	g.AddDependency(4, 5)

	return g
}

// scenarioB is scenarioA plus 5→2, closing the cycle 2→4→5→2.
func scenarioB() *depgraph.Graph[int] {
	g := scenarioA()
	g.AddDependency(5, 2)

	return g
}

// TestAddDependency_DiscoveryOrder verifies nodes keep the order they were first seen.
func TestAddDependency_DiscoveryOrder(t *testing.T) {
	g := scenarioA()
	assert.Equal(t, []int{1, 2, 4, 3, 5}, g.Nodes())
	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
}

// TestAddDependency_Idempotent ensures a repeated edge changes nothing.
func TestAddDependency_Idempotent(t *testing.T) {
	once := scenarioA()
	twice := scenarioA()
	twice.AddDependency(1, 2)
	twice.AddDependency(4, 5)

	assert.Equal(t, once.Nodes(), twice.Nodes())
	assert.Equal(t, once.Edges(), twice.Edges())
	assert.Equal(t, []int{2}, twice.Dependencies(1))

	o1, ok1 := once.TopologicalOrder()
	o2, ok2 := twice.TopologicalOrder()
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, o1, o2)
}

// TestAddDependency_SelfLoop checks that a self-dependency registers one node and one edge.
func TestAddDependency_SelfLoop(t *testing.T) {
	g := depgraph.New[string]()
	g.AddDependency("x", "x")

	assert.Equal(t, []string{"x"}, g.Nodes())
	assert.True(t, g.HasDependency("x", "x"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestZeroValueGraph verifies the zero value is usable without New.
func TestZeroValueGraph(t *testing.T) {
	var g depgraph.Graph[string]
	assert.True(t, g.IsAcyclic())
	assert.Empty(t, g.Nodes())

	g.AddDependency("b", "a")
	order, ok := g.TopologicalOrder()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, order)
}

// TestAccessors covers HasNode, HasDependency, Dependencies, Dependents and Edges.
func TestAccessors(t *testing.T) {
	g := scenarioA()

	assert.True(t, g.HasNode(3))
	assert.False(t, g.HasNode(42))
	assert.True(t, g.HasDependency(3, 4))
	assert.False(t, g.HasDependency(4, 3), "direction matters")

	assert.Equal(t, []int{4}, g.Dependencies(2))
	assert.Nil(t, g.Dependencies(5))
	assert.Nil(t, g.Dependencies(42))

	assert.Equal(t, []int{2, 3}, g.Dependents(4))
	assert.Nil(t, g.Dependents(1))

	assert.Equal(t, []depgraph.Edge[int]{
		{From: 1, To: 2},
		{From: 2, To: 4},
		{From: 4, To: 5},
		{From: 3, To: 4},
	}, g.Edges())
}

// TestAccessors_ReturnCopies ensures callers cannot mutate graph state via returned slices.
func TestAccessors_ReturnCopies(t *testing.T) {
	g := scenarioA()

	nodes := g.Nodes()
	nodes[0] = 99
	deps := g.Dependencies(1)
	deps[0] = 99

	assert.Equal(t, []int{1, 2, 4, 3, 5}, g.Nodes())
	assert.Equal(t, []int{2}, g.Dependencies(1))
}

// TestClone verifies Clone is deep and preserves ordering.
func TestClone(t *testing.T) {
	g := scenarioA()
	c := g.Clone()

	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.Edges(), c.Edges())

	c.AddDependency(5, 2) // make the clone cyclic
	assert.True(t, g.IsAcyclic(), "original must be unaffected")
	assert.False(t, c.IsAcyclic())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5, c.EdgeCount())
}
