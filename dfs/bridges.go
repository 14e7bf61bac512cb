// Package dfs implements depth-first search utilities on core.Graph.
//
// Bridges finds the edges whose removal disconnects their component. The
// multi-Steiner search never deletes a bridge, because the seeds on either
// side could no longer be connected.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for discovery/low-link slices and the explicit stack.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
package dfs

import (
	"errors"

	"github.com/katalvlaran/netex/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// frame is one level of the explicit DFS stack.
type frame struct {
	node       int
	parentEdge int // edge used to enter node, -1 for roots
	next       int // index into the neighbour list
}

// Bridges returns a mask over edge IDs with true for every bridge of the
// visible graph. Parallel edges are never bridges; self-loops never are.
//
// Tarjan's low-link algorithm, iterative to survive deep graphs. The parent
// is skipped by edge ID rather than node so that multi-edges count as cycles.
func Bridges(g *core.Graph) ([]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	isBridge := make([]bool, g.Size())
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	adj := make([][]core.Adjacent, n)
	for _, u := range g.Nodes() {
		adj[u] = g.Neighbors(u)
	}

	timer := 0
	var stack []frame
	for _, root := range g.Nodes() {
		if disc[root] >= 0 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		stack = append(stack[:0], frame{node: root, parentEdge: -1})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.node
			if top.next < len(adj[u]) {
				a := adj[u][top.next]
				top.next++
				if a.Edge == top.parentEdge || a.Node == u {
					continue
				}
				if disc[a.Node] < 0 {
					disc[a.Node], low[a.Node] = timer, timer
					timer++
					stack = append(stack, frame{node: a.Node, parentEdge: a.Edge})
				} else if disc[a.Node] < low[u] {
					low[u] = disc[a.Node]
				}
				continue
			}

			// u is finished: propagate low-link to its parent.
			entered := top.parentEdge
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			p := stack[len(stack)-1].node
			if low[u] < low[p] {
				low[p] = low[u]
			}
			if low[u] > disc[p] {
				isBridge[entered] = true
			}
		}
	}

	return isBridge, nil
}
