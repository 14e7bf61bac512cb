package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/prim_kruskal"
)

func square() []prim_kruskal.WeightedEdge {
	// 0-1 (1), 1-2 (2), 2-3 (1), 3-0 (3), 0-2 (5)
	return []prim_kruskal.WeightedEdge{
		{U: 0, V: 1, Weight: 1, Ref: 10},
		{U: 1, V: 2, Weight: 2, Ref: 11},
		{U: 2, V: 3, Weight: 1, Ref: 12},
		{U: 3, V: 0, Weight: 3, Ref: 13},
		{U: 0, V: 2, Weight: 5, Ref: 14},
	}
}

func TestKruskal_Square(t *testing.T) {
	tree, total, err := prim_kruskal.KruskalTree(4, square())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, total, 1e-12)
	refs := make([]int, len(tree))
	for i, e := range tree {
		refs[i] = e.Ref
	}
	assert.Equal(t, []int{10, 12, 11}, refs)
}

func TestKruskal_ForestAndDisconnected(t *testing.T) {
	edges := []prim_kruskal.WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}}
	forest, total, err := prim_kruskal.Kruskal(4, edges)
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.InDelta(t, 2.0, total, 1e-12)

	_, _, err = prim_kruskal.KruskalTree(4, edges)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestKruskal_SelfLoopAndBadEndpoint(t *testing.T) {
	forest, _, err := prim_kruskal.Kruskal(2, []prim_kruskal.WeightedEdge{{U: 0, V: 0}, {U: 0, V: 1, Weight: 2}})
	require.NoError(t, err)
	assert.Len(t, forest, 1)

	_, _, err = prim_kruskal.Kruskal(2, []prim_kruskal.WeightedEdge{{U: 0, V: 2}})
	assert.ErrorIs(t, err, prim_kruskal.ErrBadEndpoint)
}

func TestKruskal_SingleNode(t *testing.T) {
	tree, total, err := prim_kruskal.KruskalTree(1, nil)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestPrimDense_MatchesKruskal(t *testing.T) {
	m := [4][4]float64{}
	for i := range m {
		for j := range m[i] {
			m[i][j] = math.Inf(1)
		}
	}
	for _, e := range square() {
		m[e.U][e.V], m[e.V][e.U] = e.Weight, e.Weight
	}
	tree, total, err := prim_kruskal.PrimDenseTree(4, func(i, j int) float64 { return m[i][j] })
	require.NoError(t, err)
	assert.Len(t, tree, 3)
	assert.InDelta(t, 4.0, total, 1e-12)
}

func TestPrimDense_InfiniteMeansAbsent(t *testing.T) {
	cost := func(i, j int) float64 {
		if (i < 2) == (j < 2) {
			return 1
		}

		return math.Inf(1)
	}
	forest, total := prim_kruskal.PrimDense(4, cost)
	assert.Len(t, forest, 2)
	assert.InDelta(t, 2.0, total, 1e-12)

	_, _, err := prim_kruskal.PrimDenseTree(4, cost)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}
