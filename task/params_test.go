package task_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/task"
)

func TestParseKind(t *testing.T) {
	for _, k := range task.Kinds() {
		got, err := task.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := task.ParseKind("Leiden_Clustering")
	require.NoError(t, err)
	assert.Equal(t, task.LeidenClustering, got)

	_, err = task.ParseKind("keypathwayminer")
	assert.ErrorIs(t, err, task.ErrUnknownKind)
}

func TestDefaultParams(t *testing.T) {
	p := task.DefaultParams(task.Closeness)
	assert.Equal(t, core.TargetDrug, p.Target)
	assert.Equal(t, core.TargetDrugTarget, task.DefaultParams(task.TrustRank).Target)
	assert.Equal(t, 20, p.ResultSize)
	assert.Equal(t, 0.85, p.DampingFactor)
	assert.Equal(t, 5, p.NumTrees)
	assert.Equal(t, 10.0, p.Tolerance)
	assert.True(t, p.FilterPaths)
	assert.True(t, p.IgnoreIsolated)
	assert.Equal(t, "symbol", p.Identifier)
}

func TestDecodeParams_KeepsDefaults(t *testing.T) {
	base := task.DefaultParams(task.TrustRank)
	base.NumThreads = 4

	p, err := task.DecodeParams([]byte(`{
		"seeds": ["TP53", "MDM2"],
		"target": "drug",
		"hub_penalty": 0.5,
		"ppi_dataset": {"name": "nedrex", "licenced": false},
		"pdi_dataset": {"name": "drugbank", "licenced": true},
		"input_network": {"nodes": [{"id": "TP53"}], "edges": [{"from": "TP53", "to": "MDM2"}]},
		"config": {"identifier": "symbol"}
	}`), base)
	require.NoError(t, err)

	assert.Equal(t, []string{"TP53", "MDM2"}, p.Seeds)
	assert.Equal(t, core.TargetDrug, p.Target)
	assert.Equal(t, 0.5, p.HubPenalty)
	assert.Equal(t, 4, p.NumThreads)
	assert.Equal(t, 0.85, p.DampingFactor)
	assert.True(t, p.PDIDataset.Licenced)
	assert.Equal(t, "MDM2", p.InputNetwork.Edges[0].To)
	assert.NoError(t, p.Validate(task.TrustRank))
}

func TestDecodeParams_SchemaErrors(t *testing.T) {
	tests := map[string]struct {
		raw   string
		field string
	}{
		"hub penalty":   {`{"seeds": ["A"], "hub_penalty": 3}`, "hub_penalty"},
		"damping":       {`{"seeds": ["A"], "damping_factor": 1}`, "damping_factor"},
		"target":        {`{"seeds": ["A"], "target": "virus"}`, "target"},
		"result size":   {`{"seeds": ["A"], "result_size": 0}`, "result_size"},
		"seed type":     {`{"seeds": "A"}`, "seeds"},
		"missing seeds": {`{}`, "parameters"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := task.DecodeParams([]byte(tc.raw), task.DefaultParams(task.TrustRank))
			var perr *task.ParameterError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tc.field, perr.Field)
		})
	}

	_, err := task.DecodeParams([]byte(`{"seeds": [`), task.DefaultParams(task.TrustRank))
	assert.Error(t, err)
}

func TestParams_Validate(t *testing.T) {
	valid := task.DefaultParams(task.MultiSteiner)
	valid.Snapshot = "net.gt"
	require.NoError(t, valid.Validate(task.MultiSteiner))

	tests := map[string]struct {
		mutate func(p *task.Params)
		field  string
	}{
		"result size": {func(p *task.Params) { p.ResultSize = 0 }, "result_size"},
		"threads":     {func(p *task.Params) { p.NumThreads = 0 }, "num_threads"},
		"trees":       {func(p *task.Params) { p.NumTrees = 0 }, "num_trees"},
		"tolerance":   {func(p *task.Params) { p.Tolerance = -1 }, "tolerance"},
		"samples":     {func(p *task.Params) { p.NumRandomDrugTargetSets = 0 }, "num_random_drug_target_sets"},
		"dataset":     {func(p *task.Params) { p.Snapshot = "" }, "ppi_dataset"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			var perr *task.ParameterError
			require.True(t, errors.As(p.Validate(task.MultiSteiner), &perr))
			assert.Equal(t, tc.field, perr.Field)
		})
	}

	// Louvain clustering needs no snapshot.
	p := task.DefaultParams(task.LouvainClustering)
	assert.NoError(t, p.Validate(task.LouvainClustering))
}
