// Package clustering partitions a seed network into communities by
// modularity optimization.
//
// Two interchangeable algorithms are offered:
//
//	– Louvain, delegated to gonum.org/v1/gonum/graph/community.Modularize.
//	– Leiden, local moving plus a refinement that splits every community
//	  into connected parts before aggregation, so no community is ever
//	  internally disconnected.
//
// The input is usually small (seeds and the edges among them), so edges are
// unweighted and parallel edges collapse into one.
//
// With IgnoreIsolated, nodes without edges are not clustered and get
// NoCluster instead of a singleton community of their own.
package clustering

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netex/core"
)

// NoCluster marks nodes that belong to no community.
const NoCluster = -1

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("clustering: graph is nil")

	// ErrUnknownAlgorithm indicates an unsupported Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("clustering: unknown algorithm")
)

// Algorithm selects the community detection method.
type Algorithm int

const (
	Louvain Algorithm = iota
	Leiden
)

// String returns "louvain" or "leiden".
func (a Algorithm) String() string {
	switch a {
	case Louvain:
		return "louvain"
	case Leiden:
		return "leiden"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "louvain" and "leiden", case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "louvain":
		return Louvain, nil
	case "leiden":
		return Leiden, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options configures Cluster.
type Options struct {
	Resolution     float64
	IgnoreIsolated bool
	RandomSeed     int64 // 0 selects a fixed default
}

// Option represents a functional option.
type Option func(*Options)

// WithResolution sets the modularity resolution γ.
func WithResolution(r float64) Option { return func(o *Options) { o.Resolution = r } }

// WithIgnoreIsolated toggles the NoCluster treatment of isolated nodes.
func WithIgnoreIsolated(on bool) Option { return func(o *Options) { o.IgnoreIsolated = on } }

// WithRandomSeed fixes the node visiting order.
func WithRandomSeed(seed int64) Option { return func(o *Options) { o.RandomSeed = seed } }

// DefaultOptions returns γ = 1 with isolated nodes ignored.
func DefaultOptions() Options {
	return Options{Resolution: 1, IgnoreIsolated: true}
}

// Partition is the outcome of Cluster.
//
// Communities are ordered by their smallest member; a community's position is
// its cluster ID. Cluster is indexed by node and holds NoCluster for hidden
// and ignored nodes.
type Partition struct {
	Cluster     []int
	Communities [][]int
	Modularity  float64
}

// Row is one line of the cluster table view.
type Row struct {
	ClusterID  int     `json:"cluster_id"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Table summarizes the partition per cluster in ID order.
func (p *Partition) Table() []Row {
	total := 0
	for _, c := range p.Communities {
		total += len(c)
	}
	rows := make([]Row, len(p.Communities))
	for id, c := range p.Communities {
		rows[id] = Row{
			ClusterID:  id,
			Count:      len(c),
			Total:      total,
			Percentage: 100 * float64(len(c)) / float64(total),
		}
	}

	return rows
}

// Cluster partitions the visible nodes of g.
func Cluster(g *core.Graph, alg Algorithm, opts ...Option) (*Partition, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if alg != Louvain && alg != Leiden {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = 1
	}

	gg := toGonum(g, cfg.IgnoreIsolated)
	var comms [][]int
	switch {
	case gg.Edges().Len() == 0:
		comms = singletons(gg)
	case alg == Louvain:
		comms = louvain(gg, cfg.Resolution, seed)
	default:
		comms = leiden(gg, cfg.Resolution, seed)
	}
	normalize(comms)

	p := &Partition{Cluster: make([]int, g.Order()), Communities: comms}
	for i := range p.Cluster {
		p.Cluster[i] = NoCluster
	}
	for id, c := range comms {
		for _, u := range c {
			p.Cluster[u] = id
		}
	}
	if gg.Edges().Len() > 0 {
		p.Modularity = community.Q(gg, toNodes(comms), cfg.Resolution)
	}

	return p, nil
}

// toGonum copies the visible nodes and simple edges of g; node IDs are core
// indices.
func toGonum(g *core.Graph, ignoreIsolated bool) *simple.UndirectedGraph {
	gg := simple.NewUndirectedGraph()
	for _, u := range g.Nodes() {
		if ignoreIsolated && !hasProperNeighbor(g, u) {
			continue
		}
		gg.AddNode(simple.Node(u))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		gg.SetEdge(simple.Edge{F: simple.Node(e.From), T: simple.Node(e.To)})
	}

	return gg
}

func hasProperNeighbor(g *core.Graph, u int) bool {
	found := false
	g.ForEachNeighbor(u, func(v, _ int) {
		if v != u {
			found = true
		}
	})

	return found
}

func singletons(gg graph.Graph) [][]int {
	var out [][]int
	for it := gg.Nodes(); it.Next(); {
		out = append(out, []int{int(it.Node().ID())})
	}

	return out
}

// normalize sorts members and orders communities by their smallest member.
func normalize(comms [][]int) {
	for _, c := range comms {
		sort.Ints(c)
	}
	sort.Slice(comms, func(i, j int) bool { return comms[i][0] < comms[j][0] })
}

func toNodes(comms [][]int) [][]graph.Node {
	out := make([][]graph.Node, len(comms))
	for i, c := range comms {
		out[i] = make([]graph.Node, len(c))
		for j, u := range c {
			out[i][j] = simple.Node(u)
		}
	}

	return out
}
