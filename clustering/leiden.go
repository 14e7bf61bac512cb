package clustering

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// link is one weighted adjacency entry of a level graph.
type link struct {
	to int
	w  float64
}

// levelGraph is a weighted graph on dense indices. Self-loop weight is not
// stored in adj; it is folded into strength, which keeps modularity gains
// identical across aggregation levels.
type levelGraph struct {
	adj      [][]link // sorted by to
	strength []float64
	m2       float64 // twice the total edge weight
}

// leiden returns the communities of g as lists of node IDs.
//
// Each round runs local moving, refines every community into its connected
// parts and aggregates the refined parts into super nodes. The moving phase
// of the next round starts from the unrefined communities. Rounds stop once
// refinement no longer merges anything.
func leiden(g graph.Undirected, resolution float64, seed int64) [][]int {
	ids, lg := fromGonum(g)
	rng := rand.New(rand.NewSource(seed))

	member := identity(len(ids)) // original index -> current level node
	cur := lg
	init := identity(len(cur.adj))
	var comm []int
	for {
		comm = localMoving(cur, init, resolution, rng)
		refined, k := connectedParts(cur, comm)
		if k == len(cur.adj) {
			break
		}
		next := aggregate(cur, refined, k)
		init = make([]int, k)
		for v := range cur.adj {
			init[refined[v]] = comm[v]
		}
		relabel(init)
		for i := range member {
			member[i] = refined[member[i]]
		}
		cur = next
	}

	final, k := connectedParts(cur, comm)
	out := make([][]int, k)
	for i, v := range member {
		out[final[v]] = append(out[final[v]], ids[i])
	}

	return out
}

func fromGonum(g graph.Undirected) ([]int, *levelGraph) {
	var ids []int
	for it := g.Nodes(); it.Next(); {
		ids = append(ids, int(it.Node().ID()))
	}
	sort.Ints(ids)
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	lg := &levelGraph{adj: make([][]link, len(ids)), strength: make([]float64, len(ids))}
	for i, id := range ids {
		for it := g.From(int64(id)); it.Next(); {
			j := index[int(it.Node().ID())]
			lg.adj[i] = append(lg.adj[i], link{to: j, w: 1})
			lg.strength[i]++
			lg.m2++
		}
		sort.Slice(lg.adj[i], func(a, b int) bool { return lg.adj[i][a].to < lg.adj[i][b].to })
	}

	return ids, lg
}

// localMoving greedily moves single nodes to the neighbouring community with
// the best modularity gain until a full pass moves nothing.
//
// Gain of inserting isolated node v into community c:
//
//	k_v,c / 2m − γ · k_v · Σ_c / (2m)²
func localMoving(g *levelGraph, init []int, resolution float64, rng *rand.Rand) []int {
	n := len(g.adj)
	comm := append([]int(nil), init...)
	tot := make([]float64, n)
	for v, c := range comm {
		tot[c] += g.strength[v]
	}
	order := rng.Perm(n)
	links := make(map[int]float64)
	var cands []int

	const eps = 1e-12
	for moved := true; moved; {
		moved = false
		for _, v := range order {
			for k := range links {
				delete(links, k)
			}
			cands = cands[:0]
			for _, l := range g.adj[v] {
				c := comm[l.to]
				if _, ok := links[c]; !ok {
					cands = append(cands, c)
				}
				links[c] += l.w
			}
			sort.Ints(cands)

			ki := g.strength[v]
			old := comm[v]
			tot[old] -= ki
			gain := func(c int) float64 {
				return links[c]/g.m2 - resolution*ki*tot[c]/(g.m2*g.m2)
			}
			best, bestGain := old, gain(old)
			for _, c := range cands {
				if x := gain(c); x > bestGain+eps {
					best, bestGain = c, x
				}
			}
			tot[best] += ki
			if best != old {
				comm[v] = best
				moved = true
			}
		}
	}

	return comm
}

// connectedParts splits every community into its connected parts and
// returns dense part labels ordered by smallest node, plus the part count.
func connectedParts(g *levelGraph, comm []int) ([]int, int) {
	part := make([]int, len(g.adj))
	for i := range part {
		part[i] = -1
	}
	k := 0
	var queue []int
	for s := range g.adj {
		if part[s] >= 0 {
			continue
		}
		part[s] = k
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, l := range g.adj[v] {
				if part[l.to] < 0 && comm[l.to] == comm[v] {
					part[l.to] = k
					queue = append(queue, l.to)
				}
			}
		}
		k++
	}

	return part, k
}

// aggregate collapses each label class into one node.
func aggregate(g *levelGraph, labels []int, k int) *levelGraph {
	next := &levelGraph{adj: make([][]link, k), strength: make([]float64, k), m2: g.m2}
	acc := make([]map[int]float64, k)
	for v, nbrs := range g.adj {
		a := labels[v]
		next.strength[a] += g.strength[v]
		for _, l := range nbrs {
			b := labels[l.to]
			if a == b {
				continue
			}
			if acc[a] == nil {
				acc[a] = make(map[int]float64)
			}
			acc[a][b] += l.w
		}
	}
	for a, m := range acc {
		for b, w := range m {
			next.adj[a] = append(next.adj[a], link{to: b, w: w})
		}
		sort.Slice(next.adj[a], func(i, j int) bool { return next.adj[a][i].to < next.adj[a][j].to })
	}

	return next
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// relabel maps labels onto 0..k-1 in order of first appearance.
func relabel(labels []int) {
	seen := make(map[int]int)
	for i, l := range labels {
		id, ok := seen[l]
		if !ok {
			id = len(seen)
			seen[l] = id
		}
		labels[i] = id
	}
}
