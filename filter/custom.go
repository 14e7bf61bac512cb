package filter

import "github.com/katalvlaran/netex/core"

// EdgePair is an undirected protein pair given by external identifiers.
type EdgePair struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// RemoveProteinEdges drops every protein-protein edge from the working graph,
// leaving drug-protein edges intact. Used before a custom network replaces
// the default interactions.
func (r *Result) RemoveProteinEdges() {
	for _, e := range r.Graph.Edges() {
		if e.Type == core.EdgeProteinProtein {
			_ = r.Graph.RemoveEdge(e.ID)
		}
	}
	r.compactEdges()
}

// AddProteinEdges adds protein-protein edges between nodes already present
// in the working graph. Pairs with an unknown endpoint, self-pairs and pairs
// that are already adjacent are skipped. It returns the number of edges added.
func (r *Result) AddProteinEdges(pairs []EdgePair) int {
	added := 0
	for _, p := range pairs {
		u, ok := r.Graph.Lookup(p.From)
		if !ok {
			continue
		}
		v, ok := r.Graph.Lookup(p.To)
		if !ok || u == v {
			continue
		}
		if _, exists := r.Graph.EdgeBetween(u, v); exists {
			continue
		}
		if _, err := r.Graph.AddEdge(u, v, core.EdgeProteinProtein); err == nil {
			added++
		}
	}

	return added
}

// RestrictProteins keeps only the listed proteins plus every drug node and
// re-resolves the seed and drug index sets in the reduced index space.
// Seeds outside the list are moved to DroppedSeeds.
func (r *Result) RestrictProteins(ids []string) {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	g := r.Graph
	keep := make([]bool, g.Order())
	for _, u := range g.Nodes() {
		n := g.Node(u)
		if n.IsDrug() {
			keep[u] = true
			continue
		}
		_, keep[u] = allowed[n.ExternalID]
	}

	seedIDs := make([]string, 0, len(r.Seeds)+len(r.DroppedSeeds))
	for _, s := range r.Seeds {
		seedIDs = append(seedIDs, g.Node(s).ExternalID)
	}
	dropped := r.DroppedSeeds

	h, mapping := g.InducedSubgraph(keep)
	drugs := make([]int, 0, len(r.Drugs))
	for _, d := range r.Drugs {
		if nd := mapping[d]; nd >= 0 {
			drugs = append(drugs, nd)
		}
	}

	r.Graph = h
	r.resolveSeeds(seedIDs)
	r.DroppedSeeds = append(dropped, r.DroppedSeeds...)
	r.Drugs = drugs
}
