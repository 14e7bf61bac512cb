// Package result turns engine output into the result network handed back to
// the caller.
//
// Assemble selects the best-scoring candidates and back-fills the shortest
// connections between each candidate and the seeds; Induced and FromEdges
// cover engines that already produce a node set (Steiner trees, neighbour
// expansion, clustering). Payload renders either form with external IDs.
package result

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/netex/bfs"
	"github.com/katalvlaran/netex/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("result: graph is nil")

	// ErrScoresLength indicates a score slice that does not cover the graph.
	ErrScoresLength = errors.New("result: score slice shorter than node index space")
)

// Order tells which end of the score range is better.
type Order int

const (
	// HigherIsBetter ranks by descending score; only scores > 0 qualify.
	HigherIsBetter Order = iota
	// LowerIsBetter ranks by ascending score; any finite score qualifies.
	LowerIsBetter
)

// Request describes one Assemble call. Scores is indexed by node.
type Request struct {
	Target      core.Target
	ResultSize  int
	Seeds       []int
	Drugs       []int
	Scores      []float64
	FilterPaths bool
	Order       Order
}

// Selection is an assembled result network in node-index space.
type Selection struct {
	Nodes        []int    // ascending
	Edges        [][2]int // normalized u < v, sorted, no duplicates
	Seeds        []int
	Candidates   []int // best first
	Intermediate []int // neither seed nor candidate, ascending
}

// Assemble picks up to ResultSize candidates and connects each to the seeds.
//
// Steps:
//  1. Candidates are the drugs (Target == TargetDrug) or every non-seed
//     node, ranked by score with ties on node index.
//  2. Per candidate, hop distances to all seeds come from one BFS. With
//     FilterPaths only seeds at most the mean distance away are kept; the
//     mean is over reachable seeds.
//  3. The BFS path to each kept seed is added unless it runs through a drug
//     other than the candidate.
//
// Unreachable seeds are skipped. The result is deterministic for identical
// input, and a larger ResultSize only adds candidates.
func Assemble(g *core.Graph, req Request) (*Selection, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(req.Scores) < g.Order() {
		return nil, ErrScoresLength
	}

	sel := &Selection{Candidates: rank(g, req)}
	isSeed := make([]bool, g.Order())
	for _, s := range req.Seeds {
		if g.HasNode(s) && !isSeed[s] {
			isSeed[s] = true
			sel.Seeds = append(sel.Seeds, s)
		}
	}

	b := newBuilder(g)
	for _, s := range sel.Seeds {
		b.addNode(s)
	}
	for _, c := range sel.Candidates {
		if err := connect(g, b, c, sel.Seeds, req.FilterPaths); err != nil {
			return nil, err
		}
	}

	isCand := make(map[int]bool, len(sel.Candidates))
	for _, c := range sel.Candidates {
		isCand[c] = true
	}
	sel.Nodes, sel.Edges = b.finish()
	for _, u := range sel.Nodes {
		if !isSeed[u] && !isCand[u] {
			sel.Intermediate = append(sel.Intermediate, u)
		}
	}

	return sel, nil
}

// rank returns the eligible candidates, best first, cut to ResultSize.
func rank(g *core.Graph, req Request) []int {
	isSeed := make(map[int]bool, len(req.Seeds))
	for _, s := range req.Seeds {
		isSeed[s] = true
	}
	pool := req.Drugs
	if req.Target != core.TargetDrug {
		pool = g.Nodes()
	}

	var cands []int
	for _, u := range pool {
		if !g.HasNode(u) || isSeed[u] {
			continue
		}
		x := req.Scores[u]
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if req.Order == HigherIsBetter && x <= 0 {
			continue
		}
		cands = append(cands, u)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := req.Scores[cands[i]], req.Scores[cands[j]]
		if a != b {
			if req.Order == LowerIsBetter {
				return a < b
			}
			return a > b
		}
		return cands[i] < cands[j]
	})
	if req.ResultSize >= 0 && len(cands) > req.ResultSize {
		cands = cands[:req.ResultSize]
	}

	return cands
}

// connect adds the candidate and its kept paths to b.
func connect(g *core.Graph, b *builder, cand int, seeds []int, filterPaths bool) error {
	b.addNode(cand)
	tree, err := bfs.BFS(g, []int{cand})
	if err != nil {
		return err
	}

	limit := math.Inf(1)
	if filterPaths {
		sum, n := 0, 0
		for _, s := range seeds {
			if tree.Reached(s) {
				sum += tree.Depth[s]
				n++
			}
		}
		if n > 0 {
			limit = float64(sum) / float64(n)
		}
	}

	for _, s := range seeds {
		if !tree.Reached(s) || float64(tree.Depth[s]) > limit {
			continue
		}
		nodes, edges, err := tree.PathTo(s)
		if err != nil {
			return err
		}
		if throughOtherDrug(g, nodes, cand) {
			continue
		}
		for _, u := range nodes {
			b.addNode(u)
		}
		for _, id := range edges {
			b.addEdge(id)
		}
	}

	return nil
}

func throughOtherDrug(g *core.Graph, path []int, cand int) bool {
	for _, u := range path {
		if u != cand && g.Node(u).IsDrug() {
			return true
		}
	}

	return false
}

// builder accumulates nodes and direction-free edges.
type builder struct {
	g     *core.Graph
	nodes map[int]bool
	pairs map[[2]int]bool
}

func newBuilder(g *core.Graph) *builder {
	return &builder{g: g, nodes: make(map[int]bool), pairs: make(map[[2]int]bool)}
}

func (b *builder) addNode(u int) { b.nodes[u] = true }

func (b *builder) addEdge(id int) {
	e := b.g.Edge(id)
	if e.From == e.To {
		return
	}
	b.pairs[normalize(e.From, e.To)] = true
}

func (b *builder) finish() ([]int, [][2]int) {
	nodes := make([]int, 0, len(b.nodes))
	for u := range b.nodes {
		nodes = append(nodes, u)
	}
	sort.Ints(nodes)
	edges := make([][2]int, 0, len(b.pairs))
	for p := range b.pairs {
		edges = append(edges, p)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return nodes, edges
}

func normalize(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
