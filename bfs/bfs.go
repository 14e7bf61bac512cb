// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected components.
//
// The result assembler uses hop distances to decide which seeds a candidate
// is connected to; the proximity engine uses components to restrict random
// sampling to the largest connected component.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netex/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from every node in starts (all at depth 0).
// Returns ErrGraphNil, ErrNoStart, ErrStartVertexNotFound or ErrOptionViolation
// for invalid input.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, starts []int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(starts) == 0 {
		return nil, ErrNoStart
	}
	for _, s := range starts {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, s)
		}
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:      make([]int, 0, n),
			Depth:      make([]int, n),
			Parent:     make([]int, n),
			ParentEdge: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
		w.res.ParentEdge[v] = -1
	}
	for _, s := range starts {
		if w.res.Depth[s] < 0 {
			w.enqueue(s, 0, -1, -1)
		}
	}
	w.loop()

	return w.res, nil
}

func (w *walker) enqueue(id, d, parent, edge int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.res.ParentEdge[id] = edge
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		w.graph.ForEachNeighbor(item.id, func(v, edgeID int) {
			if w.res.Depth[v] >= 0 || !w.opts.FilterNeighbor(item.id, v, edgeID) {
				return
			}
			w.enqueue(v, next, item.id, edgeID)
		})
	}
}

// Components returns the connected components of the visible graph, each
// sorted ascending, ordered by size descending and then by smallest member.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]int {
	seen := make([]bool, g.Order())
	var comps [][]int
	for _, s := range g.Nodes() {
		if seen[s] {
			continue
		}
		comp := []int{s}
		seen[s] = true
		for head := 0; head < len(comp); head++ {
			g.ForEachNeighbor(comp[head], func(v, _ int) {
				if !seen[v] {
					seen[v] = true
					comp = append(comp, v)
				}
			})
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	return comps
}

// LargestComponent returns the members of the largest connected component
// (ties resolved towards the component holding the smallest index), or nil
// for an empty graph.
func LargestComponent(g *core.Graph) []int {
	comps := Components(g)
	if len(comps) == 0 {
		return nil
	}

	return comps[0]
}
