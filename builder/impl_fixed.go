package builder

import (
	"fmt"

	"github.com/katalvlaran/netex/core"
)

const (
	methodProteins     = "Proteins"
	methodInteractions = "Interactions"
	methodDrug         = "Drug"
	methodLoop         = "Loop"
)

// Proteins adds protein nodes in the given order. Existing IDs are skipped.
func Proteins(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if _, err := ensureProtein(g, id); err != nil {
				return wrapf(methodProteins, id, err)
			}
		}

		return nil
	}
}

// Interactions adds protein-protein edges, creating missing proteins on the
// fly. Each pair is {from, to}.
func Interactions(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			u, err := ensureProtein(g, p[0])
			if err != nil {
				return wrapf(methodInteractions, p[0], err)
			}
			v, err := ensureProtein(g, p[1])
			if err != nil {
				return wrapf(methodInteractions, p[1], err)
			}
			if _, err = g.AddEdge(u, v, core.EdgeProteinProtein); err != nil {
				return wrapf(methodInteractions, p[0]+"-"+p[1], err)
			}
		}

		return nil
	}
}

// Chain links the given proteins into a path ids[0]-ids[1]-...-ids[n-1].
func Chain(ids ...string) Constructor {
	pairs := make([][2]string, 0, len(ids))
	for i := 1; i < len(ids); i++ {
		pairs = append(pairs, [2]string{ids[i-1], ids[i]})
	}

	return Interactions(pairs...)
}

// Drug adds a drug node with the given approval status and links it to its
// protein targets, creating missing targets.
func Drug(id, status string, targets ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		d, err := g.AddNode(core.Node{Type: core.NodeDrug, ExternalID: id, Status: status})
		if err != nil {
			return wrapf(methodDrug, id, err)
		}
		for _, t := range targets {
			p, err := ensureProtein(g, t)
			if err != nil {
				return wrapf(methodDrug, t, err)
			}
			if _, err = g.AddEdge(d, p, core.EdgeDrugProtein); err != nil {
				return wrapf(methodDrug, id+"-"+t, err)
			}
		}

		return nil
	}
}

// Loop adds a self-loop on protein id. Requires WithLoops.
func Loop(id string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		u, err := ensureProtein(g, id)
		if err != nil {
			return wrapf(methodLoop, id, err)
		}
		if _, err = g.AddEdge(u, u, core.EdgeProteinProtein); err != nil {
			return wrapf(methodLoop, id, err)
		}

		return nil
	}
}

func ensureProtein(g *core.Graph, id string) (int, error) {
	if idx, ok := g.Lookup(id); ok {
		if g.Node(idx).IsDrug() {
			return -1, fmt.Errorf("%q: %w", id, ErrNotProtein)
		}
		return idx, nil
	}

	return g.AddNode(core.Node{Type: core.NodeProtein, ExternalID: id})
}
