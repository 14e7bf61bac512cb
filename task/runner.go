// Package task is the driver of the analysis engines. A Task names one
// engine Kind and its Params; Runner loads the graph snapshot, builds the
// working graph, runs the engine and hands progress and the final result to a
// Reporter.
//
// Failures are returned as errors: *snapshot.LoadError for unreadable
// snapshots, *ParameterError for invalid parameters. A seed set that resolves
// to no graph node is not a failure; it yields an empty result.
package task

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/filter"
	"github.com/katalvlaran/netex/metrics"
	"github.com/katalvlaran/netex/result"
	"github.com/katalvlaran/netex/snapshot"
)

// Task is one unit of work.
type Task struct {
	ID     uuid.UUID
	Kind   Kind
	Params Params
}

// New returns a task with a fresh random ID.
func New(kind Kind, p Params) *Task {
	return &Task{ID: uuid.New(), Kind: kind, Params: p}
}

// Runner executes tasks. It holds no per-task state and may run several
// tasks concurrently.
type Runner struct {
	log     *logrus.Logger
	dataDir string
}

// NewRunner creates a runner that resolves dataset snapshots under dataDir.
// A nil log discards all output.
func NewRunner(log *logrus.Logger, dataDir string) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Runner{log: log, dataDir: dataDir}
}

// Run executes t. On success rep receives progress ending at 1.0 and exactly
// one result. Panics inside an engine are recovered and returned as errors
// carrying the task ID.
func (r *Runner) Run(t *Task, rep Reporter) (err error) {
	start := time.Now()
	log := r.log.WithFields(logrus.Fields{
		"task_id":   t.ID.String(),
		"algorithm": t.Kind.String(),
	})
	status := metrics.StatusOK
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("task %s: panic: %v", t.ID, rec)
		}
		if err != nil {
			status = metrics.StatusError
			log.WithError(err).Error("task failed")
		}
		elapsed := time.Since(start)
		metrics.TaskDuration.WithLabelValues(t.Kind.String(), status).Observe(elapsed.Seconds())
		metrics.TasksTotal.WithLabelValues(t.Kind.String(), status).Inc()
		log.WithFields(logrus.Fields{"status": status, "elapsed": elapsed}).Info("task finished")
	}()

	if err := t.Params.Validate(t.Kind); err != nil {
		return err
	}
	log.WithField("seeds", len(t.Params.Seeds)).Info("task started")

	prog := newProgress(rep)
	payload, err := r.execute(t.Kind, t.Params, prog, log)
	if err != nil {
		return asParameterError(err)
	}
	if len(payload.Network.Nodes) == 0 {
		status = metrics.StatusEmpty
	}
	payload.Algorithm = t.Kind.String()

	prog.set(1, "Done.")
	rep.SetResult(payload)

	return nil
}

// SnapshotPath returns the snapshot a task reads: Params.Snapshot when set,
// otherwise <data_dir>/<identifier>_<ppi>-<pdi>[_licenced].gt.
func (r *Runner) SnapshotPath(p Params) string {
	if p.Snapshot != "" {
		return p.Snapshot
	}
	name := fmt.Sprintf("%s_%s-%s", p.Identifier, p.PPIDataset.Name, p.PDIDataset.Name)
	if p.PPIDataset.Licenced || p.PDIDataset.Licenced {
		name += "_licenced"
	}

	return filepath.Join(r.dataDir, name+".gt")
}

func (r *Runner) load(p Params, log *logrus.Entry) (*core.Graph, error) {
	path := r.SnapshotPath(p)
	start := time.Now()
	g, info, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}
	metrics.SnapshotLoadDuration.Observe(time.Since(start).Seconds())
	log.WithFields(logrus.Fields{
		"snapshot":    path,
		"size":        humanize.Bytes(uint64(info.Bytes)),
		"compression": info.Compression.String(),
		"nodes":       info.Nodes,
		"edges":       info.Edges,
	}).Debug("snapshot loaded")

	return g, nil
}

// prepare loads the snapshot and builds the working graph for target,
// including the custom overlays.
func (r *Runner) prepare(p Params, target core.Target, log *logrus.Entry) (*filter.Result, error) {
	g, err := r.load(p, log)
	if err != nil {
		return nil, err
	}
	work, err := filter.Apply(g, p.Seeds, filter.Options{
		MaxDegree:               p.MaxDegree,
		IncludeIndirectDrugs:    p.IncludeIndirectDrugs,
		IncludeNonApprovedDrugs: p.IncludeNonApprovedDrugs,
		Target:                  target,
	})
	if err != nil {
		return nil, err
	}

	if p.CustomEdges {
		if p.ExcludeDefaultPPIEdges {
			work.RemoveProteinEdges()
		}
		added := work.AddProteinEdges(p.InputNetwork.Edges)
		log.WithField("custom_edges", added).Debug("custom edges added")
	}
	if len(p.NetworkNodes) > 0 {
		work.RestrictProteins(p.NetworkNodes)
	}

	metrics.GraphNodes.Set(float64(work.Graph.NodeCount()))
	metrics.GraphEdges.Set(float64(work.Graph.EdgeCount()))
	log.WithFields(logrus.Fields{
		"nodes":         work.Graph.NodeCount(),
		"edges":         work.Graph.EdgeCount(),
		"seeds":         len(work.Seeds),
		"drugs":         len(work.Drugs),
		"dropped_seeds": len(work.DroppedSeeds),
	}).Info("working graph ready")
	if len(work.DroppedSeeds) > 0 {
		log.WithField("dropped_seeds", work.DroppedSeeds).Warn("seeds not found in graph")
	}

	return work, nil
}

// empty is the answer to a working graph without resolved seeds.
func empty(work *filter.Result) *result.Payload {
	p := result.Empty()
	p.DroppedSeeds = work.DroppedSeeds

	return p
}
