package proximity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/proximity"
	"github.com/katalvlaran/netex/weights"
)

func fixture(t *testing.T) (*core.Graph, []int, []int) {
	t.Helper()
	g := builder.MustBuild(nil,
		builder.Chain("P0", "P1", "P2", "P3", "P4", "P5"),
		builder.Drug("DA", "approved", "P0"),
		builder.Drug("DB", "approved", "P5", "P4"),
		builder.Drug("DC", "approved", "ISO"),
	)
	node := func(id string) int {
		u, ok := g.Lookup(id)
		require.True(t, ok, id)
		return u
	}

	return g, []int{node("P0")}, []int{node("DA"), node("DB"), node("DC")}
}

func TestCompute_RawAndOrdering(t *testing.T) {
	g, seeds, drugs := fixture(t)
	res, err := proximity.Compute(g, weights.Uniform(g), seeds, drugs, proximity.WithSamples(8, 8))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, res.Raw[0], 1e-12)
	assert.InDelta(t, 4.5, res.Raw[1], 1e-12)
	assert.True(t, math.IsInf(res.Raw[2], 1))
	assert.True(t, math.IsInf(res.Z[2], 1))
	assert.Equal(t, 64, res.Samples)

	assert.LessOrEqual(t, res.Raw[0], res.Mean)
	assert.LessOrEqual(t, res.Z[0], 0.0)
	assert.Less(t, res.Z[0], res.Z[1])
}

func TestCompute_DeterministicAcrossThreads(t *testing.T) {
	g, seeds, drugs := fixture(t)
	w := weights.Uniform(g)

	one, err := proximity.Compute(g, w, seeds, drugs, proximity.WithRandomSeed(7), proximity.WithThreads(1))
	require.NoError(t, err)
	four, err := proximity.Compute(g, w, seeds, drugs, proximity.WithRandomSeed(7), proximity.WithThreads(4))
	require.NoError(t, err)
	assert.Equal(t, one.Mean, four.Mean)
	assert.Equal(t, one.Std, four.Std)
	assert.Equal(t, one.Z[:2], four.Z[:2])
}

func TestResult_Scores(t *testing.T) {
	g, seeds, drugs := fixture(t)
	res, err := proximity.Compute(g, weights.Uniform(g), seeds, drugs)
	require.NoError(t, err)

	s := res.Scores(g.Order(), drugs)
	assert.Equal(t, res.Z[0], s[drugs[0]])
	assert.True(t, math.IsNaN(s[seeds[0]]))
}

func TestCompute_NoDrugs(t *testing.T) {
	g, seeds, _ := fixture(t)
	res, err := proximity.Compute(g, weights.Uniform(g), seeds, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Z)
	assert.Zero(t, res.Samples)
}

func TestCompute_Errors(t *testing.T) {
	g, seeds, drugs := fixture(t)
	w := weights.Uniform(g)

	_, err := proximity.Compute(nil, w, seeds, drugs)
	assert.ErrorIs(t, err, proximity.ErrNilGraph)
	_, err = proximity.Compute(g, w, []int{999}, drugs)
	assert.ErrorIs(t, err, proximity.ErrNoSeeds)
	_, err = proximity.Compute(g, w, seeds, drugs, proximity.WithSamples(0, 3))
	assert.ErrorIs(t, err, proximity.ErrSampleCount)
}
