package depgraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depsched/depgraph"
)

// passLog records every OnPass callback.
type passLog struct {
	passes     []int
	violations []int
}

func (p *passLog) hook() depgraph.ApproxOption {
	return depgraph.WithOnPass(func(pass, v int) {
		p.passes = append(p.passes, pass)
		p.violations = append(p.violations, v)
	})
}

// TestApprox_ZeroIterations returns the initial degree-sorted order unchanged.
func TestApprox_ZeroIterations(t *testing.T) {
	order, v := scenarioA().ApproximateOrder(0)
	// out-degrees: 1:1 2:1 4:1 3:1 5:0 → 5 first, ties in discovery order
	assert.Equal(t, []int{5, 1, 2, 4, 3}, order)
	assert.Equal(t, 2, v)
}

// TestApprox_NegativeIterations behaves like zero.
func TestApprox_NegativeIterations(t *testing.T) {
	order, v := scenarioA().ApproximateOrder(-7)
	assert.Equal(t, []int{5, 1, 2, 4, 3}, order)
	assert.Equal(t, 2, v)
}

// TestApprox_LocalOptimum documents the adjacent-swap limitation: an acyclic
// graph whose search stalls with one violation left.
func TestApprox_LocalOptimum(t *testing.T) {
	var log passLog
	order, v := scenarioA().ApproximateOrder(100, log.hook())

	assert.Equal(t, []int{5, 2, 1, 4, 3}, order)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{1, 2}, log.passes)
	assert.Equal(t, []int{1, 1}, log.violations)

	// the topological order exists, the heuristic just cannot reach it
	_, ok := scenarioA().TopologicalOrder()
	assert.True(t, ok)
}

// TestApprox_ReachesValidOrder stops as soon as the count hits zero.
func TestApprox_ReachesValidOrder(t *testing.T) {
	g := depgraph.New[string]()
	g.AddDependency("x", "y")
	g.AddDependency("y", "z")

	var log passLog
	order, v := g.ApproximateOrder(10, log.hook())
	assert.Equal(t, []string{"z", "y", "x"}, order)
	assert.Zero(t, v)
	assert.Equal(t, []int{1}, log.passes)
	assert.Equal(t, []int{0}, log.violations)
}

// TestApprox_AlreadyValid runs no pass when the initial order has no violations.
func TestApprox_AlreadyValid(t *testing.T) {
	g := depgraph.New[int]()
	g.AddDependency(1, 2)

	var log passLog
	order, v := g.ApproximateOrder(10, log.hook())
	assert.Equal(t, []int{2, 1}, order)
	assert.Zero(t, v)
	assert.Empty(t, log.passes)
}

// TestApprox_IterationCap limits the number of passes.
func TestApprox_IterationCap(t *testing.T) {
	// a long chain added back to front needs several passes
	g := depgraph.New[int]()
	for i := 0; i < 6; i++ {
		g.AddDependency(i, i+1)
	}

	var log passLog
	_, capped := g.ApproximateOrder(1, log.hook())
	assert.Len(t, log.passes, 1)

	_, full := g.ApproximateOrder(1000)
	assert.LessOrEqual(t, full, capped)
}

// TestApprox_TwoCycle always returns an order, with the unavoidable violation.
func TestApprox_TwoCycle(t *testing.T) {
	g := depgraph.New[int]()
	g.AddDependency(1, 2)
	g.AddDependency(2, 1)

	order, v := g.ApproximateOrder(10)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, v)
}

// TestApprox_SelfLoop counts a self-dependency as a permanent violation.
func TestApprox_SelfLoop(t *testing.T) {
	g := depgraph.New[int]()
	g.AddDependency(1, 1)

	order, v := g.ApproximateOrder(10)
	assert.Equal(t, []int{1}, order)
	assert.Equal(t, 1, v)
}

// TestApprox_ScenarioB handles a cyclic graph without failing.
func TestApprox_ScenarioB(t *testing.T) {
	g := scenarioB()
	order, v := g.ApproximateOrder(50)
	assert.ElementsMatch(t, g.Nodes(), order)
	assert.GreaterOrEqual(t, v, 1)
	assert.Equal(t, g.Violations(order), v)
}

// TestApprox_EmptyGraph returns an empty order with no violations.
func TestApprox_EmptyGraph(t *testing.T) {
	order, v := depgraph.New[int]().ApproximateOrder(5)
	assert.Empty(t, order)
	assert.Zero(t, v)
}

// TestApprox_CanceledContext returns the initial order when canceled up front.
func TestApprox_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var log passLog
	order, v := scenarioA().ApproximateOrder(100, depgraph.WithContext(ctx), log.hook())
	assert.Equal(t, []int{5, 1, 2, 4, 3}, order)
	assert.Equal(t, 2, v)
	assert.Empty(t, log.passes)
}

// TestApprox_NilContextIgnored keeps the default behavior.
func TestApprox_NilContextIgnored(t *testing.T) {
	order, v := scenarioA().ApproximateOrder(100, depgraph.WithContext(nil))
	assert.Equal(t, []int{5, 2, 1, 4, 3}, order)
	assert.Equal(t, 1, v)
}

// TestViolations covers valid, invalid, partial and self-loop orders.
func TestViolations(t *testing.T) {
	g := scenarioA()

	assert.Zero(t, g.Violations([]int{5, 4, 2, 3, 1}))
	// exact reverse breaks every edge
	assert.Equal(t, 4, g.Violations([]int{1, 3, 2, 4, 5}))
	// tasks outside the order are ignored
	assert.Equal(t, 1, g.Violations([]int{1, 2}))
	assert.Zero(t, g.Violations(nil))

	loop := depgraph.New[int]()
	loop.AddDependency(7, 7)
	assert.Equal(t, 1, loop.Violations([]int{7}))
}

// TestApprox_ResultMatchesViolations cross-checks the delta bookkeeping.
func TestApprox_ResultMatchesViolations(t *testing.T) {
	g := depgraph.New[string]()
	g.AddDependency("api", "db")
	g.AddDependency("api", "cache")
	g.AddDependency("web", "api")
	g.AddDependency("worker", "db")
	g.AddDependency("cache", "db")
	g.AddDependency("db", "net")

	order, v := g.ApproximateOrder(100)
	require.Len(t, order, g.NodeCount())
	assert.Equal(t, g.Violations(order), v)
}

// TestApprox_SelfLoopFloor never scores below the number of self-dependencies.
func TestApprox_SelfLoopFloor(t *testing.T) {
	g := depgraph.New[int]()
	g.AddDependency(1, 1)
	g.AddDependency(2, 2)
	g.AddDependency(1, 2)

	order, v := g.ApproximateOrder(10)
	assert.Equal(t, []int{2, 1}, order)
	assert.Equal(t, 2, v)
}

// TestApprox_OnPassMayMutate lets the observer write to the graph it observes.
func TestApprox_OnPassMayMutate(t *testing.T) {
	g := scenarioA()

	var passes []int
	order, v := g.ApproximateOrder(100, depgraph.WithOnPass(func(pass, _ int) {
		passes = append(passes, pass)
		g.AddDependency(9, 5)
	}))

	// the search ran on the dependencies present when it started
	assert.Equal(t, []int{5, 2, 1, 4, 3}, order)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{1, 2}, passes)

	assert.True(t, g.HasDependency(9, 5))
	assert.Equal(t, 6, g.NodeCount())
}
