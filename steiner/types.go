// Package steiner approximates Steiner trees over the weighted interaction
// network and searches for several near-optimal alternatives.
//
// Build follows the classical metric-closure heuristic:
//
//  1. one Dijkstra per seed gives the closure distances and concrete paths;
//  2. a dense Prim MST over the closure picks which seed pairs to join;
//  3. the chosen paths are expanded into a multigraph over network nodes;
//  4. a Kruskal MST of that multigraph (unit weights, or the edge weights
//     when penalizing hubs) removes cycles introduced by overlapping paths;
//  5. non-seed leaves are pruned until none remain.
//
// FindTrees repeats Build with single tree edges disabled, skipping bridges,
// and accepts every alternative within the tolerance of the first tree.
//
// Seeds that cannot reach each other yield a forest; Tree.Components counts
// its parts.
package steiner

import "errors"

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrNoSeeds indicates an empty seed list.
	ErrNoSeeds = errors.New("steiner: no seeds")

	// ErrSeedNotFound indicates a seed that is not a visible node.
	ErrSeedNotFound = errors.New("steiner: seed not found in graph")

	// ErrMaxTrees indicates a non-positive tree budget.
	ErrMaxTrees = errors.New("steiner: number of trees must be positive")

	// ErrTolerance indicates a negative or NaN tolerance.
	ErrTolerance = errors.New("steiner: tolerance must be non-negative")
)

// Tree is one approximate Steiner tree.
type Tree struct {
	Nodes      []int   // ascending node indices, seeds included
	Edges      []int   // ascending edge IDs
	Cost       float64 // sum of the input weights over Edges
	Components int     // connected parts spanned by the seeds
}

// Forest is the union of all accepted trees.
//
// Edges holds every visible edge of the graph between two nodes of Nodes,
// not only tree edges.
type Forest struct {
	Nodes []int
	Edges []int
	Trees []*Tree
}

// Options configures Build and FindTrees.
type Options struct {
	Penalize bool   // weight the second MST by the edge weights
	Threads  int    // Dijkstra workers, < 1 means 1
	Disabled []bool // edges excluded from every search (read only)

	MaxTrees   int                   // FindTrees only
	Tolerance  float64               // percent above the first tree's cost
	OnProgress func(tree, total int) // called before searching tree #tree
}

// Option represents a functional option.
type Option func(*Options)

// WithPenalty weights the expanded multigraph by the edge weights instead of
// 1.0, which is how a non-zero hub penalty reaches the tree shape.
func WithPenalty(on bool) Option {
	return func(o *Options) { o.Penalize = on }
}

// WithThreads bounds the number of concurrent Dijkstra runs.
func WithThreads(n int) Option {
	return func(o *Options) { o.Threads = n }
}

// WithDisabledEdges excludes the flagged edge IDs.
func WithDisabledEdges(mask []bool) Option {
	return func(o *Options) { o.Disabled = mask }
}

// WithMaxTrees sets the number of trees FindTrees stops at.
func WithMaxTrees(n int) Option {
	return func(o *Options) { o.MaxTrees = n }
}

// WithTolerance sets the accepted excess cost in percent.
func WithTolerance(pct float64) Option {
	return func(o *Options) { o.Tolerance = pct }
}

// WithProgress registers a milestone callback. It must not block.
func WithProgress(fn func(tree, total int)) Option {
	return func(o *Options) { o.OnProgress = fn }
}

// DefaultOptions mirrors the task defaults: five trees, ten percent.
func DefaultOptions() Options {
	return Options{Threads: 1, MaxTrees: 5, Tolerance: 10}
}
