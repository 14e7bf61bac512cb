// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// weighted interaction network.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one heap entry (lazy decrease-key).
//   - Space: O(V + E) for the per-node slices and the heap.
//
// Notes on implementation choices:
//
//   - Weights are validated upfront (O(E)) so the main loop never fails.
//   - Heap ties are broken by node index, so predecessors are deterministic.
//   - Path multiplicities (Sigma) accumulate over relaxations that match the
//     current distance within TieEpsilon.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/netex/core"
)

// Dijkstra computes shortest distances from the configured sources to every
// node of g using edge weights w.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. at least one source (ErrNoSource), each a visible node (ErrVertexNotFound).
//  3. len(w) >= g.Size() (ErrWeightsLength).
//  4. no visible, enabled edge has a negative or NaN weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, w []float64, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSource
	}
	for _, s := range cfg.Sources {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, s)
		}
	}
	if len(w) < g.Size() {
		return nil, fmt.Errorf("%w: %d < %d", ErrWeightsLength, len(w), g.Size())
	}
	for _, e := range g.Edges() {
		if w[e.ID] < 0 || math.IsNaN(w[e.ID]) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrNegativeWeight, e.From, e.To, w[e.ID])
		}
	}

	r := newRunner(g, w, cfg)
	r.init()
	r.process()

	return &r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	w       []float64
	options Options
	res     Result
	settled []bool
	pq      nodePQ
}

func newRunner(g *core.Graph, w []float64, cfg Options) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		w:       w,
		options: cfg,
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		res: Result{
			Dist:     make([]float64, n),
			Prev:     make([]int, n),
			PrevEdge: make([]int, n),
		},
	}
	if cfg.CountPaths {
		r.res.Sigma = make([]float64, n)
	}

	return r
}

// init sets every distance to +Inf and pushes the sources with distance 0.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = math.Inf(1)
		r.res.Prev[v] = -1
		r.res.PrevEdge[v] = -1
	}
	heap.Init(&r.pq)
	for _, s := range r.options.Sources {
		if r.res.Dist[s] == 0 {
			continue // duplicate source
		}
		r.res.Dist[s] = 0
		if r.res.Sigma != nil {
			r.res.Sigma[s] = 1
		}
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process settles nodes in order of increasing distance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.settled[u] {
			continue
		}
		r.settled[u] = true
		if u == r.options.Target {
			return
		}
		r.relax(u)
	}
}

// relax improves the neighbours of the freshly settled node u.
func (r *runner) relax(u int) {
	du := r.res.Dist[u]
	r.g.ForEachNeighbor(u, func(v, id int) {
		if r.settled[v] || (r.options.Disabled != nil && r.options.Disabled[id]) {
			return
		}
		nd := du + r.w[id]
		dv := r.res.Dist[v]
		switch {
		case r.res.Sigma != nil && !math.IsInf(dv, 1) && SameLength(nd, dv):
			// Another shortest route into v.
			r.res.Sigma[v] += r.res.Sigma[u]
		case nd < dv:
			r.res.Dist[v] = nd
			r.res.Prev[v] = u
			r.res.PrevEdge[v] = id
			if r.res.Sigma != nil {
				r.res.Sigma[v] = r.res.Sigma[u]
			}
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	})
}

// nodeItem represents a node and its tentative distance in the heap.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// ShortestPath returns one shortest path between s and t as node and edge
// lists together with its length. Unreachable targets yield nil slices and
// +Inf.
func ShortestPath(g *core.Graph, w []float64, s, t int, opts ...Option) ([]int, []int, float64, error) {
	if g != nil && !g.HasNode(t) {
		return nil, nil, math.Inf(1), fmt.Errorf("%w: %d", ErrVertexNotFound, t)
	}
	all := append([]Option{Source(s), WithTarget(t)}, opts...)
	res, err := Dijkstra(g, w, all...)
	if err != nil {
		return nil, nil, math.Inf(1), err
	}
	nodes, edges := res.PathTo(t)

	return nodes, edges, res.Dist[t], nil
}
