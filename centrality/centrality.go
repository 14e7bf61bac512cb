// Package centrality scores nodes relative to a seed set.
//
//	Closeness:    score(v) = |S| / Σ_{s∈S} (d(s,v) + 1)
//	Betweenness:  score(v) = Σ_{s<t ∈ S} σ_st(v) / σ_st
//
// d is the weighted shortest-path distance; an unreachable pair counts as
// UnreachableDistance so that sums stay finite. σ_st is the number of
// shortest s–t paths and σ_st(v) the number of those passing through v as an
// interior vertex. Lengths equal within dijkstra.TieEpsilon count as ties.
//
// Both engines run one Dijkstra per seed on up to `threads` goroutines and
// return a score slice indexed by node. Hidden nodes score 0.
package centrality

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dijkstra"
)

// UnreachableDistance replaces +Inf distances in closeness sums.
const UnreachableDistance = 99999999999.0

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("centrality: graph is nil")

	// ErrNoSeeds indicates an empty seed list.
	ErrNoSeeds = errors.New("centrality: no seeds")
)

// uniqueSeeds validates g and returns the distinct seeds in ascending order.
func uniqueSeeds(g *core.Graph, seeds []int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := append([]int(nil), seeds...)
	sort.Ints(out)
	k := 0
	for i, s := range out {
		if i > 0 && s == out[i-1] {
			continue
		}
		out[k] = s
		k++
	}
	out = out[:k]
	if len(out) == 0 {
		return nil, ErrNoSeeds
	}

	return out, nil
}

// Closeness returns the seed-relative closeness of every node.
//
// Complexity: O(|S|·(V+E) log V).
func Closeness(g *core.Graph, w []float64, seeds []int, threads int) ([]float64, error) {
	terms, err := uniqueSeeds(g, seeds)
	if err != nil {
		return nil, err
	}
	runs, err := dijkstra.AllFrom(g, w, terms, threads)
	if err != nil {
		return nil, fmt.Errorf("centrality: closeness: %w", err)
	}

	scores := make([]float64, g.Order())
	for _, v := range g.Nodes() {
		sum := 0.0
		for _, r := range runs {
			d := r.Dist[v]
			if math.IsInf(d, 1) {
				d = UnreachableDistance
			}
			sum += d + 1
		}
		scores[v] = float64(len(terms)) / sum
	}

	return scores, nil
}

// Betweenness returns the seed-pair betweenness of every node.
//
// For a pair (s,t) with d(s,t) finite, v lies on a shortest path iff
// d(s,v) + d(v,t) == d(s,t); it then lies on σ_s(v)·σ_t(v) of them.
// Pairs that cannot reach each other contribute nothing.
//
// Complexity: O(|S|·(V+E) log V + |S|²·V).
func Betweenness(g *core.Graph, w []float64, seeds []int, threads int) ([]float64, error) {
	terms, err := uniqueSeeds(g, seeds)
	if err != nil {
		return nil, err
	}
	runs, err := dijkstra.AllFrom(g, w, terms, threads, dijkstra.WithPathCounts())
	if err != nil {
		return nil, fmt.Errorf("centrality: betweenness: %w", err)
	}

	nodes := g.Nodes()
	scores := make([]float64, g.Order())
	for i := 0; i < len(terms); i++ {
		for j := i + 1; j < len(terms); j++ {
			rs, rt := runs[i], runs[j]
			t := terms[j]
			total := rs.Dist[t]
			paths := rs.Sigma[t]
			if math.IsInf(total, 1) || paths == 0 {
				continue
			}
			for _, v := range nodes {
				if v == terms[i] || v == t || !rs.Reachable(v) {
					continue
				}
				if !dijkstra.SameLength(rs.Dist[v]+rt.Dist[v], total) {
					continue
				}
				scores[v] += rs.Sigma[v] * rt.Sigma[v] / paths
			}
		}
	}

	return scores, nil
}
