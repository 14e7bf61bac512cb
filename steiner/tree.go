package steiner

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dijkstra"
	"github.com/katalvlaran/netex/prim_kruskal"
)

// Build returns one approximate Steiner tree connecting seeds in g under the
// weights w (indexed by edge ID). Duplicate seeds are ignored.
//
// Complexity: k Dijkstra runs, O(k·(V+E) log V), plus O(k²) for the closure
// MST and O(P log P) for the expanded MST where P is the total path length.
func Build(g *core.Graph, w []float64, seeds []int, opts ...Option) (*Tree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	terms, err := checkSeeds(g, seeds)
	if err != nil {
		return nil, err
	}

	return build(g, w, terms, cfg)
}

// checkSeeds validates g and seeds and returns the deduplicated seed list in
// first-seen order.
func checkSeeds(g *core.Graph, seeds []int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	seen := make(map[int]bool, len(seeds))
	out := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrSeedNotFound, s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	return out, nil
}

func build(g *core.Graph, w []float64, seeds []int, cfg Options) (*Tree, error) {
	var dopts []dijkstra.Option
	if cfg.Disabled != nil {
		dopts = append(dopts, dijkstra.WithDisabledEdges(cfg.Disabled))
	}
	runs, err := dijkstra.AllFrom(g, w, seeds, cfg.Threads, dopts...)
	if err != nil {
		return nil, fmt.Errorf("steiner: metric closure: %w", err)
	}

	k := len(seeds)
	closure, _ := prim_kruskal.PrimDense(k, func(i, j int) float64 {
		return runs[i].Dist[seeds[j]]
	})

	// Expand closure edges into their concrete paths. Seeds take the first
	// local indices so that they survive even without any path.
	local := make(map[int]int, k)
	nodeOf := make([]int, 0, k)
	localID := func(u int) int {
		if i, ok := local[u]; ok {
			return i
		}
		local[u] = len(nodeOf)
		nodeOf = append(nodeOf, u)
		return local[u]
	}
	for _, s := range seeds {
		localID(s)
	}
	var multi []prim_kruskal.WeightedEdge
	for _, ce := range closure {
		_, path := runs[ce.U].PathTo(seeds[ce.V])
		for _, id := range path {
			e := g.Edge(id)
			weight := 1.0
			if cfg.Penalize {
				weight = w[id]
			}
			multi = append(multi, prim_kruskal.WeightedEdge{
				U: localID(e.From), V: localID(e.To), Weight: weight, Ref: id,
			})
		}
	}
	mst, _, err := prim_kruskal.Kruskal(len(nodeOf), multi)
	if err != nil {
		return nil, fmt.Errorf("steiner: expanded tree: %w", err)
	}

	keepEdge := pruneLeaves(len(nodeOf), k, mst)

	t := &Tree{Components: k - len(closure)}
	used := make([]bool, len(nodeOf))
	for i := 0; i < k; i++ {
		used[i] = true
	}
	for i, e := range mst {
		if !keepEdge[i] {
			continue
		}
		used[e.U], used[e.V] = true, true
		t.Edges = append(t.Edges, e.Ref)
		t.Cost += w[e.Ref]
	}
	for i, ok := range used {
		if ok {
			t.Nodes = append(t.Nodes, nodeOf[i])
		}
	}
	sort.Ints(t.Nodes)
	sort.Ints(t.Edges)

	return t, nil
}

// pruneLeaves repeatedly removes degree-1 nodes that are not seeds (local
// indices < numSeeds) and returns which tree edges survive.
func pruneLeaves(n, numSeeds int, tree []prim_kruskal.WeightedEdge) []bool {
	alive := make([]bool, len(tree))
	deg := make([]int, n)
	inc := make([][]int, n)
	for i, e := range tree {
		alive[i] = true
		deg[e.U]++
		deg[e.V]++
		inc[e.U] = append(inc[e.U], i)
		inc[e.V] = append(inc[e.V], i)
	}

	var queue []int
	for u := numSeeds; u < n; u++ {
		if deg[u] == 1 {
			queue = append(queue, u)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if deg[u] != 1 {
			continue
		}
		for _, i := range inc[u] {
			if !alive[i] {
				continue
			}
			alive[i] = false
			deg[tree[i].U]--
			deg[tree[i].V]--
			other := tree[i].U
			if other == u {
				other = tree[i].V
			}
			if other >= numSeeds && deg[other] == 1 {
				queue = append(queue, other)
			}
			break
		}
	}

	return alive
}
