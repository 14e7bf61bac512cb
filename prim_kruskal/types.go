// Package prim_kruskal computes minimum spanning trees and forests over
// plain weighted edge lists on dense node indices [0, n).
//
// The Steiner approximation uses both algorithms:
//
//	– Prim (dense) on the metric closure, a complete graph over the seeds
//	  whose costs come from a callback: O(k²) without materializing k² edges.
//	– Kruskal on the expanded multigraph built from concrete shortest paths.
//
// Both return spanning forests when the input is disconnected; the *Tree
// variants turn that case into ErrDisconnected.
package prim_kruskal

import "errors"

// ErrDisconnected indicates that the input is not connected, so no spanning
// tree covering all nodes exists. It applies when n > 1.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrBadEndpoint indicates an edge endpoint outside [0, n).
var ErrBadEndpoint = errors.New("prim_kruskal: edge endpoint out of range")

// WeightedEdge is an undirected edge on dense indices.
//
// Ref is opaque caller data carried through unchanged (for example the
// core edge ID or the index of a remembered path).
type WeightedEdge struct {
	U, V   int
	Weight float64
	Ref    int
}

// dsu is a disjoint-set forest with path compression and union by rank.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find is iterative with path halving to avoid deep recursion.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}
