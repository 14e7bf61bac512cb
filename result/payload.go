package result

import (
	"math"

	"github.com/katalvlaran/netex/clustering"
	"github.com/katalvlaran/netex/core"
)

// Induced builds a Selection over nodes with every visible edge of g between
// two of them. Candidates are the non-seed nodes.
func Induced(g *core.Graph, nodes, seeds []int) *Selection {
	in := make(map[int]bool, len(nodes))
	for _, u := range nodes {
		if g.HasNode(u) {
			in[u] = true
		}
	}
	var ids []int
	for _, e := range g.Edges() {
		if in[e.From] && in[e.To] {
			ids = append(ids, e.ID)
		}
	}

	return FromEdges(g, nodes, ids, seeds)
}

// FromEdges builds a Selection from explicit nodes and edge IDs. Edge
// endpoints are added to the node set.
func FromEdges(g *core.Graph, nodes, edgeIDs, seeds []int) *Selection {
	b := newBuilder(g)
	for _, u := range nodes {
		if g.HasNode(u) {
			b.addNode(u)
		}
	}
	for _, id := range edgeIDs {
		if !g.HasEdge(id) {
			continue
		}
		e := g.Edge(id)
		b.addNode(e.From)
		b.addNode(e.To)
		b.addEdge(id)
	}

	sel := &Selection{}
	sel.Nodes, sel.Edges = b.finish()
	isSeed := make(map[int]bool, len(seeds))
	for _, s := range seeds {
		if b.nodes[s] && !isSeed[s] {
			isSeed[s] = true
			sel.Seeds = append(sel.Seeds, s)
		}
	}
	for _, u := range sel.Nodes {
		if !isSeed[u] {
			sel.Candidates = append(sel.Candidates, u)
		}
	}

	return sel
}

// Edge is one undirected result edge, From < To in external-ID order.
type Edge struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Network is the node and edge list of a result.
type Network struct {
	Nodes []string `json:"nodes" yaml:"nodes"`
	Edges []Edge   `json:"edges" yaml:"edges"`
}

// NodeAttributes are keyed by external ID.
type NodeAttributes struct {
	NodeTypes map[string]string   `json:"node_types" yaml:"node_types"`
	IsSeed    map[string]bool     `json:"is_seed" yaml:"is_seed"`
	Scores    map[string]*float64 `json:"scores,omitempty" yaml:"scores,omitempty"`
	Groups    map[string]string   `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// Payload is the final structured result of one task.
type Payload struct {
	Algorithm         string           `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Network           Network          `json:"network" yaml:"network"`
	NodeAttributes    NodeAttributes   `json:"node_attributes" yaml:"node_attributes"`
	IntermediateNodes []string         `json:"intermediate_nodes,omitempty" yaml:"intermediate_nodes,omitempty"`
	TargetNodes       []string         `json:"target_nodes,omitempty" yaml:"target_nodes,omitempty"`
	DroppedSeeds      []string         `json:"dropped_seeds,omitempty" yaml:"dropped_seeds,omitempty"`
	TableView         []clustering.Row `json:"table_view,omitempty" yaml:"table_view,omitempty"`
	Modularity        *float64         `json:"modularity,omitempty" yaml:"modularity,omitempty"`
}

// Empty returns a payload with no nodes, the answer to an unresolved seed set.
func Empty() *Payload {
	return &Payload{
		Network: Network{Nodes: []string{}, Edges: []Edge{}},
		NodeAttributes: NodeAttributes{
			NodeTypes: map[string]string{},
			IsSeed:    map[string]bool{},
		},
	}
}

// Payload renders sel with external IDs. scores may be nil; otherwise every
// returned node gets its score, with NaN and ±Inf rendered as null.
func (sel *Selection) Payload(g *core.Graph, scores []float64) *Payload {
	p := Empty()
	name := func(u int) string { return g.Node(u).ExternalID }

	isSeed := make(map[int]bool, len(sel.Seeds))
	for _, s := range sel.Seeds {
		isSeed[s] = true
	}
	if scores != nil {
		p.NodeAttributes.Scores = make(map[string]*float64, len(sel.Nodes))
	}
	for _, u := range sel.Nodes {
		id := name(u)
		p.Network.Nodes = append(p.Network.Nodes, id)
		p.NodeAttributes.NodeTypes[id] = g.Node(u).Type.String()
		p.NodeAttributes.IsSeed[id] = isSeed[u]
		if scores != nil {
			var v *float64
			if x := scores[u]; !math.IsNaN(x) && !math.IsInf(x, 0) {
				v = &x
			}
			p.NodeAttributes.Scores[id] = v
		}
	}
	for _, e := range sel.Edges {
		a, b := name(e[0]), name(e[1])
		if a > b {
			a, b = b, a
		}
		p.Network.Edges = append(p.Network.Edges, Edge{From: a, To: b})
	}
	for _, u := range sel.Intermediate {
		p.IntermediateNodes = append(p.IntermediateNodes, name(u))
	}
	for _, u := range sel.Candidates {
		p.TargetNodes = append(p.TargetNodes, name(u))
	}

	return p
}
