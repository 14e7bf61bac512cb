// Package dijkstra defines the options, results and sentinel errors of the
// weighted shortest-path engine shared by the Steiner, centrality and
// proximity engines.
//
// Weights are passed as a []float64 indexed by core.Edge.ID (see package
// weights). Distances are float64; unreachable nodes keep math.Inf(1).
//
// Options:
//
//	– Source(s...):          one or more start nodes (multi-source search).
//	– WithDisabledEdges(m):  edges with m[id] == true are not traversed.
//	– WithPathCounts():      count shortest paths per node (ties included).
//	– WithTarget(t):         stop as soon as t is settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrNoSource        if no source was given.
//	– ErrVertexNotFound  if a source is not a visible node.
//	– ErrWeightsLength   if the weight slice does not cover every edge ID.
//	– ErrNegativeWeight  if a visible edge has a negative or NaN weight.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that no source node was configured.
	ErrNoSource = errors.New("dijkstra: no source node")

	// ErrVertexNotFound indicates a source that is not a visible node.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrWeightsLength indicates a weight slice shorter than the edge ID space.
	ErrWeightsLength = errors.New("dijkstra: weight slice does not cover all edges")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// TieEpsilon is the relative tolerance under which two path lengths count
// as equal when path multiplicities are accumulated.
const TieEpsilon = 1e-9

// Options configures a Dijkstra run.
type Options struct {
	Sources    []int  // start nodes, distance 0
	Disabled   []bool // optional edge mask indexed by edge ID
	CountPaths bool   // fill Result.Sigma
	Target     int    // settle-and-stop node, -1 for a full run
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start node(s). Several sources give a multi-source search
// whose distances are the minimum over all sources.
func Source(nodes ...int) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources[:0:0], nodes...)
	}
}

// WithDisabledEdges skips every edge whose ID is flagged in mask.
// The mask is read, never written.
func WithDisabledEdges(mask []bool) Option {
	return func(o *Options) { o.Disabled = mask }
}

// WithPathCounts enables counting of shortest paths per node.
func WithPathCounts() Option {
	return func(o *Options) { o.CountPaths = true }
}

// WithTarget stops the search once t has a final distance.
func WithTarget(t int) Option {
	return func(o *Options) { o.Target = t }
}

// DefaultOptions returns a full single-run configuration without sources.
func DefaultOptions() Options {
	return Options{Target: -1}
}

// Result holds the outcome of one run.
//
// Prev/PrevEdge store one deterministic predecessor per node (the first
// relaxation that reached the final distance); -1 marks sources and
// unreachable nodes.
type Result struct {
	Dist     []float64
	Prev     []int
	PrevEdge []int
	Sigma    []float64 // shortest-path multiplicities; nil unless counted
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool { return !math.IsInf(r.Dist[v], 1) }

// PathTo rebuilds the stored shortest path ending at v, returning its nodes
// (source first) and edge IDs. Both are nil when v is unreachable.
func (r *Result) PathTo(v int) ([]int, []int) {
	if !r.Reachable(v) {
		return nil, nil
	}
	nodes := []int{v}
	var edges []int
	for cur := v; r.Prev[cur] >= 0; cur = r.Prev[cur] {
		edges = append(edges, r.PrevEdge[cur])
		nodes = append(nodes, r.Prev[cur])
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges
}

// SameLength reports whether a and b are equal within TieEpsilon.
func SameLength(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= TieEpsilon*scale
}
