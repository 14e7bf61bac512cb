// Package builder assembles interaction networks for tests, examples and the
// `netex generate` command.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). It creates the graph,
//     resolves the configuration and runs the constructors in order.
//   - Constructors are deterministic for the same options, seed and order.
//   - Constructors validate early and return sentinel errors; they never panic.
//   - Option constructors panic on meaningless input (nil RNG, nil ID scheme).
//
// Fixed fixtures use Proteins, Interactions and Drug; random fixtures use
// RandomInteractome followed by RandomDrugs.
package builder

import (
	"fmt"

	"github.com/katalvlaran/netex/core"
)

// Constructor applies one deterministic mutation to g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new graph, resolves bopts and applies cons in order.
// Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: the sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	var gopts []core.GraphOption
	if cfg.loops {
		gopts = append(gopts, core.WithLoops())
	}
	g := core.NewGraph(gopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
