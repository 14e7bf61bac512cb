package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
)

func TestBuildGraph_FixedNetwork(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		builder.Chain("A", "B", "C"),
		builder.Drug("D", "approved", "A", "X"),
	)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	d, ok := g.Lookup("D")
	require.True(t, ok)
	assert.True(t, g.Node(d).IsDrug())
	assert.Equal(t, 2, g.Degree(d))
}

func TestBuildGraph_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(nil, builder.Drug("D", ""), builder.Interactions([2]string{"A", "D"}))
	assert.ErrorIs(t, err, builder.ErrNotProtein)

	_, err = builder.BuildGraph(nil, builder.Loop("A"))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = builder.BuildGraph(nil, builder.RandomInteractome(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, builder.RandomInteractome(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomInteractome(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)},
		builder.Proteins("A"), builder.RandomDrugs(1, 2, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
}

func TestRandom_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		return builder.MustBuild([]builder.BuilderOption{builder.WithSeed(42)},
			builder.RandomInteractome(40, 0.1),
			builder.RandomDrugs(5, 3, 0.5),
		)
	}
	g1, g2 := build(), build()
	require.Equal(t, g1.NodeCount(), g2.NodeCount())
	assert.Equal(t, g1.Edges(), g2.Edges())
	assert.Equal(t, 45, g1.NodeCount())

	for i := 0; i < 5; i++ {
		d, ok := g1.Lookup("DB" + string(rune('0'+i)))
		require.True(t, ok)
		assert.Equal(t, 3, g1.Degree(d))
	}
}

func TestRandomInteractome_Complete(t *testing.T) {
	g := builder.MustBuild(nil, builder.RandomInteractome(5, 1))
	assert.Equal(t, 10, g.EdgeCount())
}
