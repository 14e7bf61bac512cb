package core

// InducedSubgraph returns a compact copy of the visible graph restricted to
// the nodes with keep[u] == true (all visible nodes when keep is nil), plus
// the mapping from old node index to new index (-1 for dropped nodes).
//
// Nodes keep their relative order, edges keep their relative ID order, so
// compaction is deterministic. Loop permission is inherited.
//
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep []bool) (*Graph, []int) {
	mapping := make([]int, len(g.nodes))
	count := 0
	for u := range g.nodes {
		mapping[u] = -1
		if g.nodeRemoved[u] || (keep != nil && (u >= len(keep) || !keep[u])) {
			continue
		}
		mapping[u] = count
		count++
	}

	h := NewGraph(WithCapacity(count, g.liveEdges))
	h.allowLoops = g.allowLoops
	for u, n := range g.nodes {
		if mapping[u] < 0 {
			continue
		}
		// ExternalID is non-empty for every stored node.
		_, _ = h.AddNode(n)
	}
	for id, e := range g.edges {
		if g.edgeRemoved[id] {
			continue
		}
		a, b := mapping[e.From], mapping[e.To]
		if a < 0 || b < 0 {
			continue
		}
		_, _ = h.AddEdge(a, b, e.Type)
	}

	return h, mapping
}

// Clone returns a compact deep copy of the visible graph.
func (g *Graph) Clone() *Graph {
	h, _ := g.InducedSubgraph(nil)

	return h
}
