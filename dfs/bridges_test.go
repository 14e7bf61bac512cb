package dfs_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dfs"
)

func bridgeNames(g *core.Graph, mask []bool) []string {
	var out []string
	for _, e := range g.Edges() {
		if mask[e.ID] {
			out = append(out, g.Node(e.From).ExternalID+"-"+g.Node(e.To).ExternalID)
		}
	}

	return out
}

func TestBridges_TriangleWithTail(t *testing.T) {
	// A-B-C-A triangle, C-D-E tail, plus separate X-Y.
	g, err := builder.BuildGraph(nil,
		builder.Chain("A", "B", "C", "A"),
		builder.Chain("C", "D", "E"),
		builder.Interactions([2]string{"X", "Y"}),
	)
	require.NoError(t, err)

	mask, err := dfs.Bridges(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"C-D", "D-E", "X-Y"}, bridgeNames(g, mask))
}

func TestBridges_ParallelEdgesAreNotBridges(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Interactions([2]string{"A", "B"}, [2]string{"A", "B"}, [2]string{"B", "C"}))
	require.NoError(t, err)

	mask, err := dfs.Bridges(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"B-C"}, bridgeNames(g, mask))
}

func TestBridges_HiddenEdgesIgnored(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Chain("A", "B", "C", "A"))
	require.NoError(t, err)
	require.NoError(t, g.RemoveEdge(2))

	mask, err := dfs.Bridges(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"A-B", "B-C"}, bridgeNames(g, mask))
}

func TestBridges_Nil(t *testing.T) {
	_, err := dfs.Bridges(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestBridges_LongPathNoStackOverflow(t *testing.T) {
	ids := make([]string, 20000)
	for i := range ids {
		ids[i] = "P" + strconv.Itoa(i)
	}
	g, err := builder.BuildGraph(nil, builder.Chain(ids...))
	require.NoError(t, err)

	mask, err := dfs.Bridges(g)
	require.NoError(t, err)
	count := 0
	for _, b := range mask {
		if b {
			count++
		}
	}
	assert.Equal(t, g.EdgeCount(), count)
}
