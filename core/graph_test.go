package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/core"
)

// buildTriangleWithDrug builds P1-P2-P3-P1 plus drug D attached to P1.
func buildTriangleWithDrug(t *testing.T) (*core.Graph, []int) {
	t.Helper()
	g := core.NewGraph()
	ids := make([]int, 0, 4)
	for _, n := range []core.Node{
		{Type: core.NodeProtein, ExternalID: "P1"},
		{Type: core.NodeProtein, ExternalID: "P2"},
		{Type: core.NodeProtein, ExternalID: "P3"},
		{Type: core.NodeDrug, ExternalID: "D", Status: "approved"},
	} {
		idx, err := g.AddNode(n)
		require.NoError(t, err)
		ids = append(ids, idx)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		_, err := g.AddEdge(e[0], e[1], core.EdgeProteinProtein)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(3, 0, core.EdgeDrugProtein)
	require.NoError(t, err)

	return g, ids
}

func TestGraph_AddNodeAndLookup(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode(core.Node{Type: core.NodeProtein})
	assert.ErrorIs(t, err, core.ErrEmptyExternalID)

	a, err := g.AddNode(core.Node{Type: core.NodeProtein, ExternalID: "A"})
	require.NoError(t, err)
	dup, err := g.AddNode(core.Node{Type: core.NodeDrug, ExternalID: "A"})
	require.NoError(t, err)
	assert.NotEqual(t, a, dup)

	idx, ok := g.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, a, idx, "first registration wins")

	_, ok = g.Lookup("missing")
	assert.False(t, ok)
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Node{ExternalID: "A"})

	_, err := g.AddEdge(a, 7, core.EdgeProteinProtein)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.AddEdge(a, a, core.EdgeProteinProtein)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	gl := core.NewGraph(core.WithLoops())
	b, _ := gl.AddNode(core.Node{ExternalID: "B"})
	id, err := gl.AddEdge(b, b, core.EdgeProteinProtein)
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, 1, gl.Degree(b))
}

func TestGraph_DegreesAndNeighbors(t *testing.T) {
	g, _ := buildTriangleWithDrug(t)

	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 1, g.Degree(3))
	assert.InDelta(t, 2.0, g.AverageDegree(), 1e-12)

	var got []int
	g.ForEachNeighbor(0, func(v, _ int) { got = append(got, v) })
	assert.ElementsMatch(t, []int{1, 2, 3}, got)

	id, ok := g.EdgeBetween(3, 0)
	require.True(t, ok)
	assert.Equal(t, core.EdgeDrugProtein, g.Edge(id).Type)
	_, ok = g.EdgeBetween(3, 1)
	assert.False(t, ok)
}

func TestGraph_RemoveHidesElements(t *testing.T) {
	g, _ := buildTriangleWithDrug(t)

	require.NoError(t, g.RemoveEdge(0))
	assert.ErrorIs(t, g.RemoveEdge(0), core.ErrEdgeNotFound)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 2, g.Degree(0))

	require.NoError(t, g.RemoveNode(3))
	assert.False(t, g.HasNode(3))
	_, ok := g.Lookup("D")
	assert.False(t, ok)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{0, 1, 2}, g.Nodes())
	assert.ErrorIs(t, g.RemoveNode(3), core.ErrNodeNotFound)
}

func TestGraph_InducedSubgraph(t *testing.T) {
	g, _ := buildTriangleWithDrug(t)
	require.NoError(t, g.RemoveNode(1))

	h, mapping := g.InducedSubgraph(nil)
	assert.Equal(t, []int{0, -1, 1, 2}, mapping)
	assert.Equal(t, 3, h.NodeCount())
	assert.Equal(t, 2, h.EdgeCount())
	assert.Equal(t, 3, h.Order())
	assert.Equal(t, "D", h.Node(2).ExternalID)

	idx, ok := h.Lookup("P3")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	keep := []bool{true, false, true, false}
	k, m2 := g.InducedSubgraph(keep)
	assert.Equal(t, 2, k.NodeCount())
	assert.Equal(t, 1, k.EdgeCount())
	assert.Equal(t, -1, m2[3])
}

func TestParseEnums(t *testing.T) {
	nt, err := core.ParseNodeType("Drug")
	require.NoError(t, err)
	assert.Equal(t, core.NodeDrug, nt)
	_, err = core.ParseNodeType("disorder")
	assert.ErrorIs(t, err, core.ErrUnknownNodeType)

	et, err := core.ParseEdgeType("protein-drug")
	require.NoError(t, err)
	assert.Equal(t, core.EdgeDrugProtein, et)
	_, err = core.ParseEdgeType("drug-disorder")
	assert.ErrorIs(t, err, core.ErrUnknownEdgeType)

	for _, s := range []string{"drug-target", "drug", "other"} {
		tg, err := core.ParseTarget(s)
		require.NoError(t, err)
		assert.Equal(t, s, tg.String())
	}
	_, err = core.ParseTarget("protein")
	assert.ErrorIs(t, err, core.ErrUnknownTarget)
}

func TestNode_Approved(t *testing.T) {
	assert.True(t, core.Node{Status: "['approved', 'investigational']"}.Approved())
	assert.True(t, core.Node{Status: "Approved"}.Approved())
	assert.False(t, core.Node{Status: "experimental"}.Approved())
	assert.False(t, core.Node{}.Approved())
}
