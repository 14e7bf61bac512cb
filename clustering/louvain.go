package clustering

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
)

// louvain runs gonum's multi-level Louvain and returns the communities of
// the original nodes. Empty communities are dropped.
func louvain(g graph.Undirected, resolution float64, seed int64) [][]int {
	reduced := community.Modularize(g, resolution, rand.NewSource(uint64(seed)))

	var out [][]int
	for _, c := range reduced.Communities() {
		if len(c) == 0 {
			continue
		}
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		out = append(out, ids)
	}

	return out
}
