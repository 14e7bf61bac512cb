package task_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/filter"
	"github.com/katalvlaran/netex/metrics"
	"github.com/katalvlaran/netex/result"
	"github.com/katalvlaran/netex/snapshot"
	"github.com/katalvlaran/netex/task"
)

// recorder collects everything a task reports.
type recorder struct {
	fractions []float64
	statuses  []string
	results   []*result.Payload
}

func (r *recorder) SetProgress(f float64, s string) {
	r.fractions = append(r.fractions, f)
	r.statuses = append(r.statuses, s)
}

func (r *recorder) SetResult(p *result.Payload) { r.results = append(r.results, p) }

func (r *recorder) assertComplete(t *testing.T) *result.Payload {
	t.Helper()
	require.Len(t, r.results, 1)
	require.NotEmpty(t, r.fractions)
	assert.IsNonDecreasing(t, r.fractions)
	assert.Equal(t, 1.0, r.fractions[len(r.fractions)-1])

	return r.results[0]
}

func writeSnapshot(t *testing.T, cons ...builder.Constructor) string {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "net.gt")
	require.NoError(t, snapshot.WriteFile(path, g, snapshot.CompressionZstd))

	return path
}

func params(kind task.Kind, path string, seeds ...string) task.Params {
	p := task.DefaultParams(kind)
	p.Snapshot = path
	p.Seeds = seeds

	return p
}

func run(t *testing.T, kind task.Kind, p task.Params) (*recorder, error) {
	t.Helper()
	rec := &recorder{}
	err := task.NewRunner(nil, t.TempDir()).Run(task.New(kind, p), rec)

	return rec, err
}

// seedPairWithDrug is A–B with an approved drug D on A.
func seedPairWithDrug(t *testing.T) string {
	return writeSnapshot(t,
		builder.Interactions([2]string{"A", "B"}),
		builder.Drug("D", "approved", "A"),
	)
}

func TestRun_MultiSteinerScenario(t *testing.T) {
	p := params(task.MultiSteiner, seedPairWithDrug(t), "A", "B")
	p.NumTrees = 1
	p.Tolerance = 0

	rec, err := run(t, task.MultiSteiner, p)
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Equal(t, "multisteiner", out.Algorithm)
	assert.ElementsMatch(t, []string{"A", "B"}, out.Network.Nodes)
	assert.Equal(t, []result.Edge{{From: "A", To: "B"}}, out.Network.Edges)
	assert.Empty(t, out.TargetNodes)
	assert.True(t, out.NodeAttributes.IsSeed["A"])
}

func TestRun_ClosenessDrugScenario(t *testing.T) {
	p := params(task.Closeness, seedPairWithDrug(t), "A", "B")
	p.ResultSize = 1
	require.Equal(t, core.TargetDrug, p.Target)

	rec, err := run(t, task.Closeness, p)
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Equal(t, []string{"D"}, out.TargetNodes)
	assert.Equal(t, []result.Edge{{From: "A", To: "D"}}, out.Network.Edges)
	assert.Equal(t, "drug", out.NodeAttributes.NodeTypes["D"])
	require.NotNil(t, out.NodeAttributes.Scores["D"])
	assert.Greater(t, *out.NodeAttributes.Scores["D"], 0.0)
}

func TestRun_DroppedAndMissingSeeds(t *testing.T) {
	path := seedPairWithDrug(t)

	rec, err := run(t, task.TrustRank, params(task.TrustRank, path, "A", "B", "ZZZ"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ZZZ"}, rec.assertComplete(t).DroppedSeeds)

	okBefore := testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("trustrank", metrics.StatusEmpty))
	rec, err = run(t, task.TrustRank, params(task.TrustRank, path, "ZZZ"))
	require.NoError(t, err)
	out := rec.assertComplete(t)
	assert.Empty(t, out.Network.Nodes)
	assert.Equal(t, []string{"ZZZ"}, out.DroppedSeeds)
	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("trustrank", metrics.StatusEmpty)))
}

func TestRun_ParameterErrorBeforeLoading(t *testing.T) {
	p := params(task.MultiSteiner, filepath.Join(t.TempDir(), "missing.gt"), "A")
	p.HubPenalty = 2

	rec, err := run(t, task.MultiSteiner, p)
	var perr *task.ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "hub_penalty", perr.Field)
	assert.Empty(t, rec.fractions)
	assert.Empty(t, rec.results)
}

func TestRun_LoadError(t *testing.T) {
	p := params(task.TrustRank, filepath.Join(t.TempDir(), "missing.gt"), "A")

	rec, err := run(t, task.TrustRank, p)
	var lerr *snapshot.LoadError
	assert.True(t, errors.As(err, &lerr))
	assert.Empty(t, rec.results)
}

func TestRun_RecoversPanics(t *testing.T) {
	p := params(task.FirstNeighbor, seedPairWithDrug(t), "A")
	tk := task.New(task.FirstNeighbor, p)
	hooks := task.Hooks{Progress: func(float64, string) { panic("reporter broke") }}

	err := task.NewRunner(nil, "").Run(tk, hooks)
	require.Error(t, err)
	assert.Contains(t, err.Error(), tk.ID.String())
	assert.Contains(t, err.Error(), "reporter broke")
}

func TestRun_FirstNeighbor(t *testing.T) {
	path := writeSnapshot(t,
		builder.Chain("A", "B", "C", "E"),
		builder.Drug("D", "approved", "B"),
	)
	rec, err := run(t, task.FirstNeighbor, params(task.FirstNeighbor, path, "B"))
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Equal(t, []string{"A", "B", "C"}, out.Network.Nodes)
	assert.ElementsMatch(t, []result.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}}, out.Network.Edges)
}

func TestRun_Proximity(t *testing.T) {
	path := writeSnapshot(t,
		builder.Chain("P0", "P1", "P2", "P3", "P4", "P5"),
		builder.Drug("DA", "approved", "P0"),
		builder.Drug("DB", "approved", "P5"),
	)
	p := params(task.Proximity, path, "P0", "P1")
	p.ResultSize = 1
	p.RandomSeed = 7

	rec, err := run(t, task.Proximity, p)
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Equal(t, []string{"DA"}, out.TargetNodes)
	require.NotNil(t, out.NodeAttributes.Scores["DA"])
}

func TestRun_LouvainOnInputNetwork(t *testing.T) {
	p := task.DefaultParams(task.LouvainClustering)
	p.Seeds = []string{"A", "B", "C", "D", "E", "F", "ISO", "GONE"}
	for _, id := range []string{"A", "B", "C", "D", "E", "F", "ISO", "X"} {
		p.InputNetwork.Nodes = append(p.InputNetwork.Nodes, task.NetworkNode{ID: id})
	}
	p.InputNetwork.Edges = []filter.EdgePair{
		{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "A", To: "C"},
		{From: "D", To: "E"}, {From: "E", To: "F"}, {From: "D", To: "F"},
		{From: "C", To: "D"}, {From: "A", To: "X"},
	}

	rec, err := run(t, task.LouvainClustering, p)
	require.NoError(t, err)
	out := rec.assertComplete(t)

	groups := out.NodeAttributes.Groups
	assert.Equal(t, groups["A"], groups["B"])
	assert.Equal(t, groups["A"], groups["C"])
	assert.Equal(t, groups["D"], groups["F"])
	assert.NotEqual(t, groups["A"], groups["D"])
	assert.Equal(t, "none", groups["ISO"])
	assert.NotContains(t, out.Network.Nodes, "X")
	assert.Equal(t, []string{"GONE"}, out.DroppedSeeds)
	assert.Len(t, out.TableView, 2)
	require.NotNil(t, out.Modularity)
	assert.Greater(t, *out.Modularity, 0.0)
}

func TestRun_LeidenUsesSnapshotEdges(t *testing.T) {
	path := writeSnapshot(t,
		builder.Interactions(
			[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"},
			[2]string{"D", "E"}, [2]string{"E", "F"}, [2]string{"D", "F"},
			[2]string{"C", "D"},
		),
	)
	p := params(task.LeidenClustering, path, "A", "B", "C", "D", "E", "F")

	rec, err := run(t, task.LeidenClustering, p)
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Len(t, out.Network.Edges, 7)
	groups := out.NodeAttributes.Groups
	assert.Equal(t, groups["A"], groups["C"])
	assert.Equal(t, groups["D"], groups["F"])
	assert.NotEqual(t, groups["A"], groups["F"])
}

func TestRun_QuickPipeline(t *testing.T) {
	path := writeSnapshot(t,
		builder.Chain("P1", "P2", "P3"),
		builder.Drug("D", "investigational", "P2"),
	)
	rec, err := run(t, task.Quick, params(task.Quick, path, "P1", "P3"))
	require.NoError(t, err)
	out := rec.assertComplete(t)

	assert.Equal(t, "quick", out.Algorithm)
	assert.Equal(t, []string{"D"}, out.TargetNodes)
	assert.True(t, out.NodeAttributes.IsSeed["P2"], "stage two seeds are the stage one proteins")

	sawStageTwo := false
	for i, f := range rec.fractions {
		if rec.statuses[i] == "Computing TrustRank." {
			sawStageTwo = true
			assert.Greater(t, f, 2.0/3)
		}
	}
	assert.True(t, sawStageTwo)
}

func TestRunner_SnapshotPath(t *testing.T) {
	r := task.NewRunner(nil, "/data")
	p := task.DefaultParams(task.TrustRank)
	p.PPIDataset = task.Dataset{Name: "nedrex"}
	p.PDIDataset = task.Dataset{Name: "drugbank", Licenced: true}
	assert.Equal(t, filepath.Join("/data", "symbol_nedrex-drugbank_licenced.gt"), r.SnapshotPath(p))

	p.PDIDataset.Licenced = false
	p.Identifier = "uniprot"
	assert.Equal(t, filepath.Join("/data", "uniprot_nedrex-drugbank.gt"), r.SnapshotPath(p))

	p.Snapshot = "/tmp/x.gt"
	assert.Equal(t, "/tmp/x.gt", r.SnapshotPath(p))
}
