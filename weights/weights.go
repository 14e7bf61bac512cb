// Package weights derives per-edge costs from the hub-penalty parameter.
//
// With average total degree avg and penalty p in [0,1]:
//
//	p == 0:  w(e) = avg for every edge
//	p  > 0:  w(u,v) = (1-p)·avg + p·(deg(u)+deg(v))/2
//
// With inverse set, each weight is replaced by its reciprocal so that
// propagation engines prefer low-degree paths.
//
// Weights are returned as a slice indexed by core.Edge.ID and stay valid until
// the graph is compacted. Hidden edges get weight 0.
package weights

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netex/core"
)

var (
	// ErrHubPenalty indicates a hub penalty outside [0,1] or NaN.
	ErrHubPenalty = errors.New("weights: hub penalty must lie in [0,1]")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("weights: graph is nil")
)

// Compute returns one weight per edge ID of g.
//
// A graph without edges yields a slice of zeros; avg degree is then 0 and no
// weight is ever read.
//
// Complexity: O(V + E).
func Compute(g *core.Graph, hubPenalty float64, inverse bool) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if math.IsNaN(hubPenalty) || hubPenalty < 0 || hubPenalty > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrHubPenalty, hubPenalty)
	}

	w := make([]float64, g.Size())
	avg := g.AverageDegree()
	if avg == 0 {
		return w, nil
	}

	var deg []int
	if hubPenalty > 0 {
		deg = make([]int, g.Order())
		for _, u := range g.Nodes() {
			deg[u] = g.Degree(u)
		}
	}

	for _, e := range g.Edges() {
		x := avg
		if hubPenalty > 0 {
			x = (1-hubPenalty)*avg + hubPenalty*float64(deg[e.From]+deg[e.To])/2
		}
		if inverse {
			x = 1 / x
		}
		w[e.ID] = x
	}

	return w, nil
}

// Uniform returns weight 1 for every visible edge.
func Uniform(g *core.Graph) []float64 {
	w := make([]float64, g.Size())
	for _, e := range g.Edges() {
		w[e.ID] = 1
	}

	return w
}

// Total sums the weights of the given edge IDs.
func Total(w []float64, edgeIDs []int) float64 {
	s := 0.0
	for _, id := range edgeIDs {
		s += w[id]
	}

	return s
}
