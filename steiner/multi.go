package steiner

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dfs"
	"github.com/katalvlaran/netex/dijkstra"
)

// FindTrees builds the first Steiner tree with cost C0 and then looks for up
// to MaxTrees-1 alternatives.
//
// Search:
//  1. Tree edges of the first tree form a stack, processed last-in first-out.
//  2. Bridges of g are never disabled; seeds on both sides would separate.
//  3. A popped edge is disabled and the tree rebuilt. The rebuilt tree is
//     accepted when it spans the same number of parts and its cost is at
//     most C0·(1+Tolerance/100), ties within dijkstra.TieEpsilon included.
//  4. Accepted: the edge stays disabled and the stack keeps only the edges
//     the new tree still uses. Rejected: the edge is restored.
//
// The forest holds the union of the accepted trees' nodes and every visible
// edge of g between them.
func FindTrees(g *core.Graph, w []float64, seeds []int, opts ...Option) (*Forest, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxTrees < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxTrees, cfg.MaxTrees)
	}
	if math.IsNaN(cfg.Tolerance) || cfg.Tolerance < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrTolerance, cfg.Tolerance)
	}
	terms, err := checkSeeds(g, seeds)
	if err != nil {
		return nil, err
	}

	progress := func(tree int) {
		if cfg.OnProgress != nil {
			cfg.OnProgress(tree, cfg.MaxTrees)
		}
	}

	progress(1)
	first, err := build(g, w, terms, cfg)
	if err != nil {
		return nil, err
	}
	forest := &Forest{Trees: []*Tree{first}}
	inUnion := make([]bool, g.Order())
	for _, u := range first.Nodes {
		inUnion[u] = true
	}

	if cfg.MaxTrees > 1 && len(first.Edges) > 0 {
		if err := searchAlternatives(g, w, terms, cfg, forest, inUnion, progress); err != nil {
			return nil, err
		}
	}

	for u, ok := range inUnion {
		if ok {
			forest.Nodes = append(forest.Nodes, u)
		}
	}
	for _, e := range g.Edges() {
		if e.From != e.To && inUnion[e.From] && inUnion[e.To] {
			forest.Edges = append(forest.Edges, e.ID)
		}
	}
	sort.Ints(forest.Edges)

	return forest, nil
}

func searchAlternatives(
	g *core.Graph, w []float64, seeds []int, cfg Options,
	forest *Forest, inUnion []bool, progress func(int),
) error {
	first := forest.Trees[0]
	isBridge, err := dfs.Bridges(g)
	if err != nil {
		return err
	}
	disabled := make([]bool, g.Size())
	copy(disabled, cfg.Disabled)
	local := cfg
	local.Disabled = disabled

	limit := first.Cost * (100 + cfg.Tolerance) / 100
	stack := append([]int(nil), first.Edges...)
	announce := true
	for len(stack) > 0 && len(forest.Trees) < cfg.MaxTrees {
		if announce {
			progress(len(forest.Trees) + 1)
			announce = false
		}
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if isBridge[id] || disabled[id] {
			continue
		}

		disabled[id] = true
		next, err := build(g, w, seeds, local)
		if err != nil {
			return err
		}
		if next.Components != first.Components ||
			(next.Cost > limit && !dijkstra.SameLength(next.Cost, limit)) {
			disabled[id] = false
			continue
		}

		forest.Trees = append(forest.Trees, next)
		for _, u := range next.Nodes {
			inUnion[u] = true
		}
		used := make(map[int]bool, len(next.Edges))
		for _, e := range next.Edges {
			used[e] = true
		}
		kept := stack[:0]
		for _, e := range stack {
			if used[e] {
				kept = append(kept, e)
			}
		}
		stack = kept
		announce = true
	}

	return nil
}
