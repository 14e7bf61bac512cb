package core_test

import (
	"fmt"

	"github.com/katalvlaran/netex/core"
)

// ExampleGraph builds a tiny interaction network and compacts it after
// hiding a hub.
func ExampleGraph() {
	g := core.NewGraph()
	hub, _ := g.AddNode(core.Node{Type: core.NodeProtein, ExternalID: "TP53"})
	a, _ := g.AddNode(core.Node{Type: core.NodeProtein, ExternalID: "MDM2"})
	d, _ := g.AddNode(core.Node{Type: core.NodeDrug, ExternalID: "DB001", Status: "approved"})
	_, _ = g.AddEdge(hub, a, core.EdgeProteinProtein)
	_, _ = g.AddEdge(d, a, core.EdgeDrugProtein)

	fmt.Println(g.NodeCount(), g.EdgeCount(), g.Degree(a))

	_ = g.RemoveNode(hub)
	h, mapping := g.InducedSubgraph(nil)
	fmt.Println(h.NodeCount(), h.EdgeCount(), mapping)

	// Output:
	// 3 2 2
	// 2 1 [-1 0 1]
}
