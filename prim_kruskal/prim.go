package prim_kruskal

import "math"

// PrimDense computes a minimum spanning forest of the complete graph on n
// nodes whose edge costs are given by cost(i, j) (i < j is not required; the
// function must be symmetric). Pairs with +Inf cost are treated as absent.
//
// Steps:
//  1. Start a tree at the lowest unvisited index.
//  2. Repeatedly attach the unvisited node with the cheapest link to the tree
//     (ties: lowest index, then lowest parent index).
//  3. When only +Inf links remain, start a new tree at the next unvisited node.
//
// Returned edges have U = tree-side endpoint, V = attached node, Ref = -1.
//
// Complexity: O(n²) time, O(n) memory.
func PrimDense(n int, cost func(i, j int) float64) ([]WeightedEdge, float64) {
	if n <= 1 {
		return nil, 0
	}
	inTree := make([]bool, n)
	key := make([]float64, n)
	link := make([]int, n)
	for i := range key {
		key[i] = math.Inf(1)
		link[i] = -1
	}

	var (
		tree  = make([]WeightedEdge, 0, n-1)
		total float64
	)
	for added := 0; added < n; added++ {
		u := -1
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if u < 0 || key[v] < key[u] {
				u = v
			}
		}
		inTree[u] = true
		if link[u] >= 0 {
			tree = append(tree, WeightedEdge{U: link[u], V: u, Weight: key[u], Ref: -1})
			total += key[u]
		}
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			c := cost(u, v)
			if c < key[v] {
				key[v] = c
				link[v] = u
			}
		}
	}

	return tree, total
}

// PrimDenseTree is PrimDense that fails with ErrDisconnected unless the
// forest spans all n nodes.
func PrimDenseTree(n int, cost func(i, j int) float64) ([]WeightedEdge, float64, error) {
	tree, total := PrimDense(n, cost)
	if n > 1 && len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
