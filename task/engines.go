package task

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/netex/centrality"
	"github.com/katalvlaran/netex/clustering"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/filter"
	"github.com/katalvlaran/netex/proximity"
	"github.com/katalvlaran/netex/result"
	"github.com/katalvlaran/netex/steiner"
	"github.com/katalvlaran/netex/trustrank"
	"github.com/katalvlaran/netex/weights"
)

// execute is the single dispatch point from Kind to engine.
func (r *Runner) execute(kind Kind, p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	switch kind {
	case MultiSteiner:
		return r.multiSteiner(p, prog, log)
	case TrustRank:
		return r.trustRank(p, prog, log)
	case Closeness, Betweenness:
		return r.centrality(kind, p, prog, log)
	case Proximity:
		return r.proximity(p, prog, log)
	case LouvainClustering, LeidenClustering:
		return r.cluster(kind, p, prog, log)
	case FirstNeighbor:
		return r.firstNeighbor(p, prog, log)
	case Quick:
		return r.quick(p, prog, log)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func (r *Runner) multiSteiner(p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	steps := float64(p.NumTrees + 3)
	prog.set(0, "Parsing input.")
	work, err := r.prepare(p, p.Target, log)
	if err != nil {
		return nil, err
	}
	if len(work.Seeds) == 0 {
		return empty(work), nil
	}

	prog.set(1/steps, "Computing edge weights.")
	w, err := weights.Compute(work.Graph, p.HubPenalty, false)
	if err != nil {
		return nil, err
	}

	forest, err := steiner.FindTrees(work.Graph, w, work.Seeds,
		steiner.WithPenalty(p.HubPenalty > 0),
		steiner.WithThreads(p.NumThreads),
		steiner.WithMaxTrees(p.NumTrees),
		steiner.WithTolerance(p.Tolerance),
		steiner.WithProgress(func(tree, total int) {
			prog.set(float64(tree+1)/steps, fmt.Sprintf("Computing Steiner tree %d of %d.", tree, total))
		}),
	)
	if err != nil {
		return seedless(work, err)
	}
	log.WithFields(logrus.Fields{
		"trees": len(forest.Trees),
		"cost":  forest.Trees[0].Cost,
		"nodes": len(forest.Nodes),
	}).Debug("steiner trees found")

	prog.set((steps-1)/steps, "Formatting results.")
	sel := result.FromEdges(work.Graph, forest.Nodes, forest.Edges, work.Seeds)
	out := sel.Payload(work.Graph, nil)
	out.DroppedSeeds = work.DroppedSeeds

	return out, nil
}

func (r *Runner) trustRank(p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	prog.set(0, "Parsing input.")
	work, err := r.prepare(p, p.Target, log)
	if err != nil {
		return nil, err
	}
	if len(work.Seeds) == 0 {
		return empty(work), nil
	}

	prog.set(0.25, "Computing edge weights.")
	w, err := weights.Compute(work.Graph, p.HubPenalty, true)
	if err != nil {
		return nil, err
	}

	prog.set(0.5, "Computing TrustRank.")
	scores, err := trustrank.Rank(work.Graph, w, work.Seeds, trustrank.WithDamping(p.DampingFactor))
	if err != nil {
		return seedless(work, err)
	}

	prog.set(0.75, "Formatting results.")

	return assemble(work, p.Target, p, scores, result.HigherIsBetter)
}

func (r *Runner) centrality(kind Kind, p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	prog.set(0, "Parsing input.")
	work, err := r.prepare(p, p.Target, log)
	if err != nil {
		return nil, err
	}
	if len(work.Seeds) == 0 {
		return empty(work), nil
	}

	prog.set(0.25, "Computing edge weights.")
	w, err := weights.Compute(work.Graph, p.HubPenalty, false)
	if err != nil {
		return nil, err
	}

	var scores []float64
	if kind == Closeness {
		prog.set(0.5, "Computing closeness centralities.")
		scores, err = centrality.Closeness(work.Graph, w, work.Seeds, p.NumThreads)
	} else {
		prog.set(0.5, "Computing betweenness centralities.")
		scores, err = centrality.Betweenness(work.Graph, w, work.Seeds, p.NumThreads)
	}
	if err != nil {
		return seedless(work, err)
	}

	prog.set(0.75, "Formatting results.")

	return assemble(work, p.Target, p, scores, result.HigherIsBetter)
}

// proximity always ranks drugs and keeps indirect drugs, whose targets need
// not touch a seed.
func (r *Runner) proximity(p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	p.IncludeIndirectDrugs = true
	prog.set(0, "Parsing input.")
	work, err := r.prepare(p, core.TargetDrug, log)
	if err != nil {
		return nil, err
	}
	if len(work.Seeds) == 0 {
		return empty(work), nil
	}

	prog.set(0.25, "Computing edge weights.")
	w := weights.Uniform(work.Graph)
	if p.HubPenalty > 0 {
		if w, err = weights.Compute(work.Graph, p.HubPenalty, false); err != nil {
			return nil, err
		}
	}

	prog.set(0.5, "Computing network proximity.")
	res, err := proximity.Compute(work.Graph, w, work.Seeds, work.Drugs,
		proximity.WithSamples(p.NumRandomSeedSets, p.NumRandomDrugTargetSets),
		proximity.WithRandomSeed(p.RandomSeed),
		proximity.WithThreads(p.NumThreads),
	)
	if err != nil {
		return seedless(work, err)
	}
	log.WithFields(logrus.Fields{
		"samples": res.Samples,
		"mean":    res.Mean,
		"std":     res.Std,
	}).Debug("proximity background")

	prog.set(0.75, "Formatting results.")

	return assemble(work, core.TargetDrug, p, res.Scores(work.Graph.Order(), work.Drugs), result.LowerIsBetter)
}

// firstNeighbor returns the seeds, their protein neighbours and the edges
// joining them.
func (r *Runner) firstNeighbor(p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	prog.set(0.25, "Parsing input.")
	work, err := r.prepare(p, core.TargetDrugTarget, log)
	if err != nil {
		return nil, err
	}
	if len(work.Seeds) == 0 {
		return empty(work), nil
	}

	prog.set(0.5, "Get all first neighbors.")
	g := work.Graph
	nodes := append([]int(nil), work.Seeds...)
	var edges []int
	for _, s := range work.Seeds {
		g.ForEachNeighbor(s, func(v, edgeID int) {
			if !g.Node(v).IsDrug() {
				nodes = append(nodes, v)
				edges = append(edges, edgeID)
			}
		})
	}

	prog.set(0.75, "Formatting results.")
	out := result.FromEdges(g, nodes, edges, work.Seeds).Payload(g, nil)
	out.DroppedSeeds = work.DroppedSeeds

	return out, nil
}

// cluster partitions the seed network. Louvain reads only the caller's
// network; Leiden takes the edges between seeds from the snapshot.
func (r *Runner) cluster(kind Kind, p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	prog.set(0.25, "Parsing input.")
	var snap *core.Graph
	if kind == LeidenClustering {
		work, err := r.prepare(p, core.TargetOther, log)
		if err != nil {
			return nil, err
		}
		snap = work.Graph
	}
	g, dropped := seedNetwork(p, snap)
	if g.NodeCount() == 0 {
		out := result.Empty()
		out.DroppedSeeds = dropped

		return out, nil
	}

	alg := clustering.Louvain
	if kind == LeidenClustering {
		alg = clustering.Leiden
	}
	prog.set(0.5, fmt.Sprintf("Perform %s clustering.", alg))
	part, err := clustering.Cluster(g, alg,
		clustering.WithIgnoreIsolated(p.IgnoreIsolated),
		clustering.WithRandomSeed(p.RandomSeed),
	)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"clusters":   len(part.Communities),
		"modularity": part.Modularity,
	}).Debug("clustering done")

	prog.set(0.75, "Parse clustering results.")
	all := g.Nodes()
	out := result.Induced(g, all, all).Payload(g, nil)
	out.NodeAttributes.Groups = make(map[string]string, len(all))
	for _, u := range all {
		group := "none"
		if c := part.Cluster[u]; c != clustering.NoCluster {
			group = fmt.Sprintf("cluster%d", c)
		}
		out.NodeAttributes.Groups[g.Node(u).ExternalID] = group
	}
	out.TableView = part.Table()
	modularity := part.Modularity
	out.Modularity = &modularity
	out.DroppedSeeds = dropped

	return out, nil
}

// seedNetwork builds the graph clustering runs on: the seeds listed in the
// caller's network (all seeds when it lists no nodes) and the edges between
// them. With snap the edges come from snap, otherwise from the caller's
// network. Seeds left out are returned as dropped.
func seedNetwork(p Params, snap *core.Graph) (*core.Graph, []string) {
	isSeed := make(map[string]bool, len(p.Seeds))
	for _, s := range p.Seeds {
		isSeed[s] = true
	}
	ids := p.Seeds
	if len(p.InputNetwork.Nodes) > 0 {
		ids = make([]string, 0, len(p.InputNetwork.Nodes))
		for _, n := range p.InputNetwork.Nodes {
			if isSeed[n.ID] {
				ids = append(ids, n.ID)
			}
		}
	}

	g := core.NewGraph()
	for _, id := range ids {
		if _, dup := g.Lookup(id); dup {
			continue
		}
		n := core.Node{Type: core.NodeProtein, ExternalID: id}
		if snap != nil {
			if u, ok := snap.Lookup(id); ok {
				n.Type = snap.Node(u).Type
			}
		}
		_, _ = g.AddNode(n)
	}

	link := func(a, b string) {
		u, ok := g.Lookup(a)
		if !ok {
			return
		}
		v, ok := g.Lookup(b)
		if !ok || u == v {
			return
		}
		if _, exists := g.EdgeBetween(u, v); !exists {
			_, _ = g.AddEdge(u, v, core.EdgeProteinProtein)
		}
	}
	if snap != nil {
		for _, e := range snap.Edges() {
			link(snap.Node(e.From).ExternalID, snap.Node(e.To).ExternalID)
		}
	} else {
		for _, e := range p.InputNetwork.Edges {
			link(e.From, e.To)
		}
	}

	var dropped []string
	for _, s := range p.Seeds {
		if _, ok := g.Lookup(s); !ok {
			dropped = append(dropped, s)
		}
	}

	return g, dropped
}

// quick runs a single hub-penalized Steiner tree and feeds its proteins as
// seeds into a drug TrustRank search.
func (r *Runner) quick(p Params, prog *progress, log *logrus.Entry) (*result.Payload, error) {
	stage1 := p
	stage1.NumTrees = 1
	stage1.HubPenalty = 1
	first, err := r.multiSteiner(stage1, prog.stage(0, 2.0/3), log.WithField("stage", 1))
	if err != nil {
		return nil, err
	}

	stage2, ok := deriveStage2(p, first)
	if !ok {
		out := result.Empty()
		out.DroppedSeeds = first.DroppedSeeds

		return out, nil
	}
	second, err := r.trustRank(stage2, prog.stage(2.0/3, 1), log.WithField("stage", 2))
	if err != nil {
		return nil, err
	}
	second.DroppedSeeds = append(first.DroppedSeeds, second.DroppedSeeds...)

	return second, nil
}

// deriveStage2 turns the Steiner network into TrustRank parameters. It
// reports false when the network holds no protein.
func deriveStage2(p Params, first *result.Payload) (Params, bool) {
	var seeds []string
	for _, id := range first.Network.Nodes {
		if first.NodeAttributes.NodeTypes[id] == core.NodeProtein.String() {
			seeds = append(seeds, id)
		}
	}
	if len(seeds) == 0 {
		return Params{}, false
	}

	next := p
	next.Seeds = seeds
	next.ResultSize = 20
	next.IncludeNonApprovedDrugs = true
	next.IncludeIndirectDrugs = false
	next.Target = core.TargetDrug

	return next, true
}

// seedless turns an engine's no-seed error into the empty answer, keeping the
// dropped seeds. Other errors pass through.
func seedless(work *filter.Result, err error) (*result.Payload, error) {
	if noSeeds(err) {
		return empty(work), nil
	}

	return nil, err
}

func assemble(work *filter.Result, target core.Target, p Params, scores []float64, order result.Order) (*result.Payload, error) {
	sel, err := result.Assemble(work.Graph, result.Request{
		Target:      target,
		ResultSize:  p.ResultSize,
		Seeds:       work.Seeds,
		Drugs:       work.Drugs,
		Scores:      scores,
		FilterPaths: p.FilterPaths,
		Order:       order,
	})
	if err != nil {
		return nil, err
	}
	out := sel.Payload(work.Graph, scores)
	out.DroppedSeeds = work.DroppedSeeds

	return out, nil
}
