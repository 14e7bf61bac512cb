// Package filter turns a freshly loaded snapshot into the working graph of
// one query and resolves the seed and drug index sets.
//
// Rules, in order (degrees are those of the loaded graph):
//
//  1. target == drug: drop isolated nodes.
//  2. drop every non-seed node whose degree exceeds MaxDegree.
//  3. target != drug: drop all drug nodes.
//  4. resolve seeds by exact external identifier; unknown seeds are dropped
//     and reported in Result.DroppedSeeds.
//  5. collect drugs: all of them, or only approved ones.
//  6. drop self-loops.
//  7. without indirect drugs: keep only drug-protein edges joining a seed to a
//     drug adjacent to some seed, and forget every other drug.
//
// The input graph is never modified; Apply returns a compact copy.
package filter

import (
	"errors"
	"math"

	"github.com/katalvlaran/netex/core"
)

// ErrNilGraph is returned when Apply receives a nil graph.
var ErrNilGraph = errors.New("filter: graph is nil")

// Options configures Apply.
type Options struct {
	// MaxDegree suppresses non-seed hubs. Values <= 0 disable the cutoff.
	MaxDegree int

	// IncludeIndirectDrugs keeps drugs that are not adjacent to a seed.
	IncludeIndirectDrugs bool

	// IncludeNonApprovedDrugs keeps drugs whose status lacks "approved".
	IncludeNonApprovedDrugs bool

	// Target selects the query mode.
	Target core.Target
}

// DefaultOptions returns the permissive defaults: no degree cutoff,
// approved direct drugs only, drug-target mode.
func DefaultOptions() Options {
	return Options{
		MaxDegree: math.MaxInt,
		Target:    core.TargetDrugTarget,
	}
}

// Result is the working graph of a query.
type Result struct {
	// Graph is the pruned, densely indexed working graph.
	Graph *core.Graph

	// Seeds are seed node indices in Graph, in request order, deduplicated.
	Seeds []int

	// Drugs are candidate drug indices in Graph, ascending.
	Drugs []int

	// DroppedSeeds are requested identifiers that did not resolve.
	DroppedSeeds []string
}

// Apply prunes g for one query.
//
// Complexity: O(V + E + |seeds|).
func Apply(g *core.Graph, seeds []string, opts Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	maxDeg := opts.MaxDegree
	if maxDeg <= 0 {
		maxDeg = math.MaxInt
	}

	seedSet := make(map[string]struct{}, len(seeds))
	for _, s := range seeds {
		seedSet[s] = struct{}{}
	}

	// Rules 1-3 on the loaded degrees.
	keep := make([]bool, g.Order())
	for _, u := range g.Nodes() {
		n := g.Node(u)
		_, isSeed := seedSet[n.ExternalID]
		deg := g.Degree(u)
		switch {
		case opts.Target == core.TargetDrug && deg == 0:
		case !isSeed && deg > maxDeg:
		case opts.Target != core.TargetDrug && n.IsDrug():
		default:
			keep[u] = true
		}
	}
	work, _ := g.InducedSubgraph(keep)

	res := &Result{Graph: work}
	res.resolveSeeds(seeds)
	res.collectDrugs(opts.IncludeNonApprovedDrugs)

	// Rule 6.
	for _, e := range work.Edges() {
		if e.From == e.To {
			_ = work.RemoveEdge(e.ID)
		}
	}

	if len(res.Drugs) > 0 && !opts.IncludeIndirectDrugs {
		res.restrictToDirectDrugs()
	}
	res.compactEdges()

	return res, nil
}

func (r *Result) resolveSeeds(seeds []string) {
	seen := make(map[int]struct{}, len(seeds))
	r.Seeds = r.Seeds[:0]
	r.DroppedSeeds = nil
	for _, s := range seeds {
		idx, ok := r.Graph.Lookup(s)
		if !ok {
			r.DroppedSeeds = append(r.DroppedSeeds, s)
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		r.Seeds = append(r.Seeds, idx)
	}
}

func (r *Result) collectDrugs(includeNonApproved bool) {
	r.Drugs = r.Drugs[:0]
	for _, u := range r.Graph.Nodes() {
		n := r.Graph.Node(u)
		if n.IsDrug() && (includeNonApproved || n.Approved()) {
			r.Drugs = append(r.Drugs, u)
		}
	}
}

// restrictToDirectDrugs applies rule 7.
func (r *Result) restrictToDirectDrugs() {
	g := r.Graph
	isSeed := r.SeedMask()

	// Directness is decided over every drug node, not only the candidates, so
	// unapproved drugs keep their seed edges for the walk.
	direct := make([]bool, g.Order())
	for _, s := range r.Seeds {
		g.ForEachNeighbor(s, func(v, _ int) {
			if g.Node(v).IsDrug() {
				direct[v] = true
			}
		})
	}

	for _, e := range g.Edges() {
		if e.Type != core.EdgeDrugProtein {
			continue
		}
		drug, protein := e.From, e.To
		if !g.Node(drug).IsDrug() {
			drug, protein = protein, drug
		}
		if !direct[drug] || !isSeed[protein] {
			_ = g.RemoveEdge(e.ID)
		}
	}

	kept := r.Drugs[:0]
	for _, d := range r.Drugs {
		if direct[d] {
			kept = append(kept, d)
		}
	}
	r.Drugs = kept
}

// compactEdges drops hidden edges; node indices are unchanged because no
// node is hidden at this point.
func (r *Result) compactEdges() {
	if r.Graph.Size() == r.Graph.EdgeCount() {
		return
	}
	r.Graph, _ = r.Graph.InducedSubgraph(nil)
}

// SeedMask returns a per-node flag slice marking the seeds.
func (r *Result) SeedMask() []bool {
	mask := make([]bool, r.Graph.Order())
	for _, s := range r.Seeds {
		mask[s] = true
	}

	return mask
}

// DrugMask returns a per-node flag slice marking the candidate drugs.
func (r *Result) DrugMask() []bool {
	mask := make([]bool, r.Graph.Order())
	for _, d := range r.Drugs {
		mask[d] = true
	}

	return mask
}
