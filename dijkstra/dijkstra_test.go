package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dijkstra"
	"github.com/katalvlaran/netex/weights"
)

// diamond: A-B, A-C, B-D, C-D, D-E plus isolated Z. Unit weights give two
// shortest A→D paths.
func diamond(t *testing.T) (*core.Graph, map[string]int) {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		builder.Interactions(
			[2]string{"A", "B"}, [2]string{"A", "C"}, [2]string{"B", "D"},
			[2]string{"C", "D"}, [2]string{"D", "E"},
		),
		builder.Proteins("Z"),
	)
	require.NoError(t, err)
	idx := map[string]int{}
	for _, u := range g.Nodes() {
		idx[g.Node(u).ExternalID] = u
	}

	return g, idx
}

func TestDijkstra_Validation(t *testing.T) {
	g, idx := diamond(t)
	w := weights.Uniform(g)

	_, err := dijkstra.Dijkstra(nil, w, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, w)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, err = dijkstra.Dijkstra(g, w, dijkstra.Source(99))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, w[:2], dijkstra.Source(idx["A"]))
	assert.ErrorIs(t, err, dijkstra.ErrWeightsLength)

	bad := append([]float64(nil), w...)
	bad[0] = -1
	_, err = dijkstra.Dijkstra(g, bad, dijkstra.Source(idx["A"]))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_DistancesAndPathCounts(t *testing.T) {
	g, idx := diamond(t)
	res, err := dijkstra.Dijkstra(g, weights.Uniform(g), dijkstra.Source(idx["A"]), dijkstra.WithPathCounts())
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Dist[idx["A"]])
	assert.Equal(t, 2.0, res.Dist[idx["D"]])
	assert.Equal(t, 3.0, res.Dist[idx["E"]])
	assert.True(t, math.IsInf(res.Dist[idx["Z"]], 1))
	assert.False(t, res.Reachable(idx["Z"]))

	assert.Equal(t, 2.0, res.Sigma[idx["D"]])
	assert.Equal(t, 2.0, res.Sigma[idx["E"]])
	assert.Equal(t, 1.0, res.Sigma[idx["B"]])

	nodes, edges := res.PathTo(idx["E"])
	assert.Equal(t, []int{idx["A"], idx["B"], idx["D"], idx["E"]}, nodes, "lowest index wins ties")
	assert.Len(t, edges, 3)

	nodes, edges = res.PathTo(idx["Z"])
	assert.Nil(t, nodes)
	assert.Nil(t, edges)
}

func TestDijkstra_WeightedDetourAndDisabledEdges(t *testing.T) {
	g, idx := diamond(t)
	w := weights.Uniform(g)
	abID, _ := g.EdgeBetween(idx["A"], idx["B"])
	w[abID] = 5

	nodes, _, d, err := dijkstra.ShortestPath(g, w, idx["A"], idx["D"])
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
	assert.Equal(t, []int{idx["A"], idx["C"], idx["D"]}, nodes)

	mask := make([]bool, g.Size())
	cdID, _ := g.EdgeBetween(idx["C"], idx["D"])
	mask[cdID] = true
	_, _, d, err = dijkstra.ShortestPath(g, w, idx["A"], idx["D"], dijkstra.WithDisabledEdges(mask))
	require.NoError(t, err)
	assert.Equal(t, 6.0, d)

	_, _, d, err = dijkstra.ShortestPath(g, w, idx["A"], idx["Z"])
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestDijkstra_MultiSource(t *testing.T) {
	g, idx := diamond(t)
	res, err := dijkstra.Dijkstra(g, weights.Uniform(g), dijkstra.Source(idx["A"], idx["E"]))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[idx["D"]])
	assert.Equal(t, 1.0, res.Dist[idx["B"]])
}

func TestAllFrom_MatchesSequential(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomInteractome(60, 0.08))
	w, err := weights.Compute(g, 0.5, false)
	require.NoError(t, err)
	sources := []int{0, 5, 17, 42}

	par, err := dijkstra.AllFrom(g, w, sources, 3)
	require.NoError(t, err)
	require.Len(t, par, len(sources))
	for i, s := range sources {
		seq, err := dijkstra.Dijkstra(g, w, dijkstra.Source(s))
		require.NoError(t, err)
		assert.Equal(t, seq.Dist, par[i].Dist)
	}

	_, err = dijkstra.AllFrom(g, w, []int{0, 1000}, 2)
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}
