package core

import "fmt"

// AddNode appends n and returns its index.
// The first node registered under an ExternalID wins Lookup.
//
// Errors:
//   - ErrEmptyExternalID if n.ExternalID is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) (int, error) {
	if n.ExternalID == "" {
		return -1, ErrEmptyExternalID
	}
	idx := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.nodeRemoved = append(g.nodeRemoved, false)
	g.adj = append(g.adj, nil)
	if _, dup := g.byExternal[n.ExternalID]; !dup {
		g.byExternal[n.ExternalID] = idx
	}
	g.liveNodes++

	return idx, nil
}

// AddEdge connects u and v and returns the new edge ID.
//
// Errors:
//   - ErrNodeNotFound if either endpoint is out of range or removed.
//   - ErrLoopNotAllowed if u == v and the graph was built without WithLoops.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, t EdgeType) (int, error) {
	if !g.HasNode(u) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	if !g.HasNode(v) {
		return -1, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	if u == v && !g.allowLoops {
		return -1, fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Type: t})
	g.edgeRemoved = append(g.edgeRemoved, false)
	g.adj[u] = append(g.adj[u], id)
	if u != v {
		g.adj[v] = append(g.adj[v], id)
	}
	g.liveEdges++

	return id, nil
}

// Order returns the size of the node index space, including hidden nodes.
// Per-node slices used by engines are sized with Order.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the size of the edge ID space, including hidden edges.
func (g *Graph) Size() int { return len(g.edges) }

// NodeCount returns the number of visible nodes.
func (g *Graph) NodeCount() int { return g.liveNodes }

// EdgeCount returns the number of visible edges.
func (g *Graph) EdgeCount() int { return g.liveEdges }

// HasNode reports whether u is a visible node index.
func (g *Graph) HasNode(u int) bool {
	return u >= 0 && u < len(g.nodes) && !g.nodeRemoved[u]
}

// HasEdge reports whether id is a visible edge.
func (g *Graph) HasEdge(id int) bool {
	return id >= 0 && id < len(g.edges) && !g.edgeRemoved[id]
}

// Node returns the attributes of node u. u must be in range.
func (g *Graph) Node(u int) Node { return g.nodes[u] }

// Edge returns edge id. id must be in range.
func (g *Graph) Edge(id int) Edge { return g.edges[id] }

// Lookup resolves an external identifier to a visible node index.
func (g *Graph) Lookup(externalID string) (int, bool) {
	idx, ok := g.byExternal[externalID]
	if !ok || g.nodeRemoved[idx] {
		return -1, false
	}

	return idx, true
}

// Nodes returns the visible node indices in ascending order.
func (g *Graph) Nodes() []int {
	out := make([]int, 0, g.liveNodes)
	for u := range g.nodes {
		if !g.nodeRemoved[u] {
			out = append(out, u)
		}
	}

	return out
}

// Edges returns the visible edges in ascending ID order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.liveEdges)
	for id, e := range g.edges {
		if !g.edgeRemoved[id] {
			out = append(out, e)
		}
	}

	return out
}

// Degree returns the number of visible edges incident to u.
func (g *Graph) Degree(u int) int {
	d := 0
	for _, id := range g.adj[u] {
		if !g.edgeRemoved[id] {
			d++
		}
	}

	return d
}

// ForEachNeighbor calls fn for every visible edge incident to u, passing the
// opposite endpoint and the edge ID. Self-loops report u itself.
func (g *Graph) ForEachNeighbor(u int, fn func(v, edgeID int)) {
	for _, id := range g.adj[u] {
		if g.edgeRemoved[id] {
			continue
		}
		fn(g.edges[id].Other(u), id)
	}
}

// Neighbors returns the visible adjacency of u in insertion order.
func (g *Graph) Neighbors(u int) []Adjacent {
	out := make([]Adjacent, 0, len(g.adj[u]))
	g.ForEachNeighbor(u, func(v, id int) {
		out = append(out, Adjacent{Node: v, Edge: id})
	})

	return out
}

// EdgeBetween returns the lowest visible edge ID joining u and v.
func (g *Graph) EdgeBetween(u, v int) (int, bool) {
	a, b := u, v
	if len(g.adj[b]) < len(g.adj[a]) {
		a, b = b, a
	}
	best := -1
	for _, id := range g.adj[a] {
		if g.edgeRemoved[id] || g.edges[id].Other(a) != b {
			continue
		}
		if best < 0 || id < best {
			best = id
		}
	}

	return best, best >= 0
}

// RemoveEdge hides edge id.
func (g *Graph) RemoveEdge(id int) error {
	if !g.HasEdge(id) {
		return fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}
	g.edgeRemoved[id] = true
	g.liveEdges--

	return nil
}

// RemoveNode hides node u together with all its incident edges.
func (g *Graph) RemoveNode(u int) error {
	if !g.HasNode(u) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}
	for _, id := range g.adj[u] {
		if !g.edgeRemoved[id] {
			g.edgeRemoved[id] = true
			g.liveEdges--
		}
	}
	g.nodeRemoved[u] = true
	g.liveNodes--

	return nil
}

// AverageDegree returns the mean total degree 2E/V of the visible graph,
// or 0 for a graph without nodes.
func (g *Graph) AverageDegree() float64 {
	if g.liveNodes == 0 {
		return 0
	}

	return 2 * float64(g.liveEdges) / float64(g.liveNodes)
}
