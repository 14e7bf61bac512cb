// Package trustrank implements personalized PageRank seeded on a node set.
//
// Trust starts as 1/|S| on every seed and is propagated by power iteration:
//
//	r'(v) = (1-d)·p(v) + d·D·p(v) + d·Σ_{u~v} r(u)·w(u,v)/W(u)
//
// where p is the personalization vector, W(u) the total weight around u and D
// the rank held by nodes with W(u) == 0 (returned through p). Iteration stops
// once the L1 change drops below the tolerance or after MaxIterations.
//
// Vector arithmetic uses gonum.org/v1/gonum/floats.
package trustrank

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/netex/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("trustrank: graph is nil")

	// ErrNoSeeds indicates that no visible seed was given.
	ErrNoSeeds = errors.New("trustrank: no seeds")

	// ErrDamping indicates a damping factor outside (0,1).
	ErrDamping = errors.New("trustrank: damping factor must lie in (0,1)")

	// ErrWeights indicates a short weight slice or a negative/NaN weight.
	ErrWeights = errors.New("trustrank: invalid edge weights")
)

// Options configures Rank.
type Options struct {
	Damping       float64
	Tolerance     float64 // L1 convergence threshold
	MaxIterations int
}

// Option represents a functional option.
type Option func(*Options)

// WithDamping sets the damping factor d.
func WithDamping(d float64) Option { return func(o *Options) { o.Damping = d } }

// WithTolerance sets the L1 convergence threshold.
func WithTolerance(eps float64) Option { return func(o *Options) { o.Tolerance = eps } }

// WithMaxIterations caps the number of power iterations.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// DefaultOptions returns d=0.85, tolerance 1e-6, 1000 iterations.
func DefaultOptions() Options {
	return Options{Damping: 0.85, Tolerance: 1e-6, MaxIterations: 1000}
}

// Rank returns one trust score per node index. Hidden nodes score 0.
//
// Complexity: O(I·(V+E)) for I iterations.
func Rank(g *core.Graph, w []float64, seeds []int, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if math.IsNaN(cfg.Damping) || cfg.Damping <= 0 || cfg.Damping >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrDamping, cfg.Damping)
	}
	if len(w) < g.Size() {
		return nil, fmt.Errorf("%w: %d weights for %d edges", ErrWeights, len(w), g.Size())
	}

	n := g.Order()
	pers := make([]float64, n)
	count := 0
	for _, s := range seeds {
		if g.HasNode(s) && pers[s] == 0 {
			pers[s] = 1
			count++
		}
	}
	if count == 0 {
		return nil, ErrNoSeeds
	}
	floats.Scale(1/float64(count), pers)

	out := make([]float64, n)
	for _, e := range g.Edges() {
		x := w[e.ID]
		if x < 0 || math.IsNaN(x) {
			return nil, fmt.Errorf("%w: edge %d weight=%v", ErrWeights, e.ID, x)
		}
		out[e.From] += x
		if e.To != e.From {
			out[e.To] += x
		}
	}

	nodes := g.Nodes()
	d := cfg.Damping
	rank := append([]float64(nil), pers...)
	next := make([]float64, n)
	for it := 0; it < cfg.MaxIterations; it++ {
		dangling := 0.0
		for i := range next {
			next[i] = 0
		}
		for _, u := range nodes {
			if rank[u] == 0 {
				continue
			}
			if out[u] == 0 {
				dangling += rank[u]
				continue
			}
			share := d * rank[u] / out[u]
			g.ForEachNeighbor(u, func(v, id int) {
				next[v] += share * w[id]
			})
		}
		floats.AddScaled(next, (1-d)+d*dangling, pers)

		delta := floats.Distance(next, rank, 1)
		rank, next = next, rank
		if delta < cfg.Tolerance {
			break
		}
	}

	return rank, nil
}
