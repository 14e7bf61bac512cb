package task

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netex/centrality"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/filter"
	"github.com/katalvlaran/netex/proximity"
	"github.com/katalvlaran/netex/steiner"
	"github.com/katalvlaran/netex/trustrank"
	"github.com/katalvlaran/netex/weights"
)

var (
	// ErrUnknownKind is returned by ParseKind.
	ErrUnknownKind = errors.New("task: unknown algorithm")
)

// ParameterError reports an out-of-range or missing parameter. It is raised
// before any graph work starts.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("task: parameter %s: %s", e.Field, e.Reason)
}

// Dataset names one interaction source of the snapshot.
type Dataset struct {
	Name     string `json:"name" yaml:"name"`
	Licenced bool   `json:"licenced" yaml:"licenced"`
}

// NetworkNode is one node of the caller's current network.
type NetworkNode struct {
	ID string `json:"id" yaml:"id"`
}

// InputNetwork is the network currently shown to the caller. Clustering runs
// on it; custom_edges overlays its edges on the snapshot.
type InputNetwork struct {
	Nodes []NetworkNode     `json:"nodes" yaml:"nodes"`
	Edges []filter.EdgePair `json:"edges" yaml:"edges"`
}

// Params is the complete parameter object of a task.
type Params struct {
	Seeds      []string    `json:"seeds" yaml:"seeds"`
	Target     core.Target `json:"target" yaml:"target"`
	ResultSize int         `json:"result_size" yaml:"result_size"`

	// MaxDegree of 0 means no hub cutoff.
	MaxDegree     int     `json:"max_deg" yaml:"max_deg"`
	HubPenalty    float64 `json:"hub_penalty" yaml:"hub_penalty"`
	DampingFactor float64 `json:"damping_factor" yaml:"damping_factor"`
	NumTrees      int     `json:"num_trees" yaml:"num_trees"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`

	IncludeIndirectDrugs    bool `json:"include_indirect_drugs" yaml:"include_indirect_drugs"`
	IncludeNonApprovedDrugs bool `json:"include_non_approved_drugs" yaml:"include_non_approved_drugs"`
	FilterPaths             bool `json:"filter_paths" yaml:"filter_paths"`

	NumThreads              int   `json:"num_threads" yaml:"num_threads"`
	NumRandomSeedSets       int   `json:"num_random_seed_sets" yaml:"num_random_seed_sets"`
	NumRandomDrugTargetSets int   `json:"num_random_drug_target_sets" yaml:"num_random_drug_target_sets"`
	RandomSeed              int64 `json:"random_seed" yaml:"random_seed"`

	Identifier string  `json:"identifier" yaml:"identifier"`
	PPIDataset Dataset `json:"ppi_dataset" yaml:"ppi_dataset"`
	PDIDataset Dataset `json:"pdi_dataset" yaml:"pdi_dataset"`

	// Snapshot overrides the path derived from the data directory and the
	// datasets.
	Snapshot string `json:"snapshot,omitempty" yaml:"snapshot,omitempty"`

	CustomEdges            bool         `json:"custom_edges" yaml:"custom_edges"`
	ExcludeDefaultPPIEdges bool         `json:"exclude_default_ppi_edges" yaml:"exclude_default_ppi_edges"`
	InputNetwork           InputNetwork `json:"input_network" yaml:"input_network"`
	NetworkNodes           []string     `json:"network_nodes,omitempty" yaml:"network_nodes,omitempty"`
	IgnoreIsolated         bool         `json:"ignore_isolated" yaml:"ignore_isolated"`
}

// DefaultParams returns the defaults for kind. Seeds and datasets are left
// empty.
func DefaultParams(kind Kind) Params {
	return Params{
		Target:                  kind.DefaultTarget(),
		ResultSize:              20,
		DampingFactor:           0.85,
		NumTrees:                5,
		Tolerance:               10,
		FilterPaths:             true,
		NumThreads:              1,
		NumRandomSeedSets:       32,
		NumRandomDrugTargetSets: 32,
		Identifier:              "symbol",
		IgnoreIsolated:          true,
	}
}

// Validate range-checks p for kind.
func (p Params) Validate(kind Kind) error {
	bad := func(field, format string, args ...interface{}) error {
		return &ParameterError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	switch {
	case p.ResultSize <= 0:
		return bad("result_size", "must be > 0, got %d", p.ResultSize)
	case p.MaxDegree < 0:
		return bad("max_deg", "must be > 0, got %d", p.MaxDegree)
	case p.HubPenalty < 0 || p.HubPenalty > 1:
		return bad("hub_penalty", "must lie in [0,1], got %g", p.HubPenalty)
	case p.DampingFactor <= 0 || p.DampingFactor >= 1:
		return bad("damping_factor", "must lie in (0,1), got %g", p.DampingFactor)
	case p.NumTrees <= 0:
		return bad("num_trees", "must be > 0, got %d", p.NumTrees)
	case p.Tolerance < 0:
		return bad("tolerance", "must be >= 0, got %g", p.Tolerance)
	case p.NumThreads < 1:
		return bad("num_threads", "must be >= 1, got %d", p.NumThreads)
	case p.NumRandomSeedSets <= 0:
		return bad("num_random_seed_sets", "must be > 0, got %d", p.NumRandomSeedSets)
	case p.NumRandomDrugTargetSets <= 0:
		return bad("num_random_drug_target_sets", "must be > 0, got %d", p.NumRandomDrugTargetSets)
	case p.Target > core.TargetOther:
		return bad("target", "unknown mode %d", p.Target)
	}
	if kind.needsSnapshot() && p.Snapshot == "" {
		if p.PPIDataset.Name == "" {
			return bad("ppi_dataset", "name required when no snapshot is given")
		}
		if p.PDIDataset.Name == "" {
			return bad("pdi_dataset", "name required when no snapshot is given")
		}
		if p.Identifier == "" {
			return bad("identifier", "required when no snapshot is given")
		}
	}

	return nil
}

// engineFields maps engine sentinels to the parameter that triggers them.
var engineFields = []struct {
	err   error
	field string
}{
	{weights.ErrHubPenalty, "hub_penalty"},
	{trustrank.ErrDamping, "damping_factor"},
	{steiner.ErrMaxTrees, "num_trees"},
	{steiner.ErrTolerance, "tolerance"},
	{proximity.ErrSampleCount, "num_random_seed_sets"},
}

// asParameterError converts engine range errors to ParameterError and passes
// anything else through.
func asParameterError(err error) error {
	for _, m := range engineFields {
		if errors.Is(err, m.err) {
			return &ParameterError{Field: m.field, Reason: err.Error()}
		}
	}

	return err
}

// noSeeds reports whether err is one of the engines' empty-seed errors.
func noSeeds(err error) bool {
	return errors.Is(err, steiner.ErrNoSeeds) ||
		errors.Is(err, centrality.ErrNoSeeds) ||
		errors.Is(err, trustrank.ErrNoSeeds) ||
		errors.Is(err, proximity.ErrNoSeeds)
}
