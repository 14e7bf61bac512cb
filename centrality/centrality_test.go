package centrality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/centrality"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/weights"
)

func lookup(t *testing.T, g *core.Graph, names ...string) []int {
	t.Helper()
	out := make([]int, len(names))
	for i, n := range names {
		u, ok := g.Lookup(n)
		require.True(t, ok, n)
		out[i] = u
	}

	return out
}

func TestCloseness_Chain(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain("A", "B", "C"), builder.Proteins("X"))
	w := weights.Uniform(g)
	ix := lookup(t, g, "A", "B", "C", "X")

	s, err := centrality.Closeness(g, w, ix[:1], 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s[ix[0]], 1e-12)
	assert.InDelta(t, 0.5, s[ix[1]], 1e-12)
	assert.InDelta(t, 1.0/3, s[ix[2]], 1e-12)
	assert.InDelta(t, 1/(centrality.UnreachableDistance+1), s[ix[3]], 1e-20)

	s, err = centrality.Closeness(g, w, []int{ix[2], ix[0], ix[0]}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s[ix[0]], 1e-12)
	assert.InDelta(t, 0.5, s[ix[1]], 1e-12)
}

func TestBetweenness_SquareSplitsEvenly(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain("A", "X", "B"), builder.Chain("A", "Y", "B"))
	ix := lookup(t, g, "A", "X", "B", "Y")

	s, err := centrality.Betweenness(g, weights.Uniform(g), []int{ix[0], ix[2]}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s[ix[1]], 1e-12)
	assert.InDelta(t, 0.5, s[ix[3]], 1e-12)
	assert.Zero(t, s[ix[0]])
	assert.Zero(t, s[ix[2]])
}

func TestBetweenness_HubCollectsEveryPair(t *testing.T) {
	g := builder.MustBuild(nil,
		builder.Interactions([2]string{"S1", "H"}, [2]string{"S2", "H"}, [2]string{"S3", "H"}),
		builder.Chain("S1", "L"),
	)
	ix := lookup(t, g, "S1", "S2", "S3", "H", "L")

	s, err := centrality.Betweenness(g, weights.Uniform(g), ix[:3], 3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, s[ix[3]], 1e-12)
	assert.Zero(t, s[ix[4]])
}

func TestBetweenness_UnreachablePairIgnored(t *testing.T) {
	g := builder.MustBuild(nil, builder.Chain("A", "M", "B"), builder.Proteins("Z"))
	ix := lookup(t, g, "A", "M", "B", "Z")

	s, err := centrality.Betweenness(g, weights.Uniform(g), []int{ix[0], ix[2], ix[3]}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s[ix[1]], 1e-12)
}

func TestCentrality_Errors(t *testing.T) {
	_, err := centrality.Closeness(nil, nil, []int{0}, 1)
	assert.ErrorIs(t, err, centrality.ErrNilGraph)

	g := builder.MustBuild(nil, builder.Chain("A", "B"))
	_, err = centrality.Betweenness(g, weights.Uniform(g), nil, 1)
	assert.ErrorIs(t, err, centrality.ErrNoSeeds)
}
