package prim_kruskal

import (
	"fmt"
	"sort"
)

// Kruskal computes a minimum spanning forest of the undirected multigraph
// given by n nodes and edges.
//
// Steps:
//  1. Validate endpoints (ErrBadEndpoint); skip self-loops.
//  2. Sort edges by ascending Weight with sort.SliceStable, so ties keep
//     input order and the result is deterministic.
//  3. Scan edges, keeping each one that joins two different DSU sets.
//
// Returns the forest edges in acceptance order and their total weight.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(n int, edges []WeightedEdge) ([]WeightedEdge, float64, error) {
	cand := make([]WeightedEdge, 0, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, 0, fmt.Errorf("%w: %d-%d (n=%d)", ErrBadEndpoint, e.U, e.V, n)
		}
		if e.U == e.V {
			continue
		}
		cand = append(cand, e)
	}
	sort.SliceStable(cand, func(i, j int) bool { return cand[i].Weight < cand[j].Weight })

	sets := newDSU(n)
	var (
		forest []WeightedEdge
		total  float64
	)
	for _, e := range cand {
		if !sets.union(e.U, e.V) {
			continue
		}
		forest = append(forest, e)
		total += e.Weight
		if len(forest) == n-1 {
			break
		}
	}

	return forest, total, nil
}

// KruskalTree is Kruskal that fails with ErrDisconnected unless the forest
// spans all n nodes.
func KruskalTree(n int, edges []WeightedEdge) ([]WeightedEdge, float64, error) {
	forest, total, err := Kruskal(n, edges)
	if err != nil {
		return nil, 0, err
	}
	if n > 1 && len(forest) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return forest, total, nil
}
