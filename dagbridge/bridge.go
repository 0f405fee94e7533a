// File: bridge.go
// Role: depgraph → go-dag export (ToDAG) and id resolution (Tasks).
// Identity:
//   - Vertices are identified and hashed by their string id, never by task value.

package dagbridge

import (
	"errors"
	"fmt"

	"github.com/begmaroman/go-dag"

	"github.com/katalvlaran/depsched/depgraph"
)

var (
	// ErrGraphNil is returned when ToDAG receives a nil graph.
	ErrGraphNil = errors.New("dagbridge: graph is nil")

	// ErrNilIDFunc is returned when ToDAG receives a nil id function.
	ErrNilIDFunc = errors.New("dagbridge: id function is nil")

	// ErrDuplicateID indicates two tasks mapped to the same vertex id.
	ErrDuplicateID = errors.New("dagbridge: duplicate vertex id")
)

// Vertex wraps a task for storage in a go-dag DAG.
type Vertex[T comparable] struct {
	Task T
	id   string
}

// ID implements dag.Identifiable.
func (v *Vertex[T]) ID() string {
	return v.id
}

// Hash implements dag.Hashable. go-dag keys vertices by hash, and its default
// hash encodes exported fields only, so two tasks without exported fields
// would collide. Vertex ids are unique per DAG.
func (v *Vertex[T]) Hash() (dag.VHash, error) {
	return dag.ToHash(v.id)
}

// ToDAG exports g into a new go-dag DAG.
//
// Steps:
//  1. Reject a cyclic graph with its *depgraph.CycleError.
//  2. Add one vertex per task in discovery order; ids must be unique.
//  3. For each dependency a→b add the edge id(b)→id(a).
//
// g is read through its public snapshot methods, so concurrent writers may
// make steps 1 and 3 disagree; go-dag then reports the loop from AddEdge.
func ToDAG[T comparable](g *depgraph.Graph[T], id func(T) string) (*dag.DAG[*Vertex[T]], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if id == nil {
		return nil, ErrNilIDFunc
	}

	// 1) Feasibility
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("dagbridge: ToDAG: %w", err)
	}

	// 2) Vertices
	d := dag.NewDAG[*Vertex[T]]()
	owner := make(map[string]T)
	for _, task := range g.Nodes() {
		vid := id(task)
		if prev, dup := owner[vid]; dup {
			return nil, fmt.Errorf("%w: %q for %v and %v", ErrDuplicateID, vid, prev, task)
		}
		owner[vid] = task
		if _, err := d.AddVertex(&Vertex[T]{Task: task, id: vid}); err != nil {
			return nil, fmt.Errorf("dagbridge: add vertex %q: %w", vid, err)
		}
	}

	// 3) Edges
	for _, e := range g.Edges() {
		if err := d.AddEdge(id(e.To), id(e.From)); err != nil {
			return nil, fmt.Errorf("dagbridge: add edge %v→%v: %w", e.From, e.To, err)
		}
	}

	return d, nil
}

// Tasks resolves the ids of a go-dag relation map, as returned by GetRoots,
// GetLeaves, GetChildren or GetParents, back to tasks.
func Tasks[T comparable](d *dag.DAG[*Vertex[T]], ids map[string]dag.VHash) (map[string]T, error) {
	out := make(map[string]T, len(ids))
	for vid := range ids {
		v, err := d.GetVertex(vid)
		if err != nil {
			return nil, fmt.Errorf("dagbridge: vertex %q: %w", vid, err)
		}
		out[vid] = v.Task
	}

	return out, nil
}
