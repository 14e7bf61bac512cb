// Package proximity ranks drugs by the Z-score of their network proximity to
// a seed set.
//
// raw(drug) is the mean, over the drug's reachable protein targets, of the
// distance to the nearest seed. A drug without reachable targets gets +Inf.
//
// The background is sampled SeedSets × TargetSets times: a random seed set of
// |S| proteins and a random target set whose size is drawn uniformly between
// the smallest and largest real target-set sizes, both from the proteins of
// the largest connected component. With background mean μ and population
// standard deviation σ:
//
//	z(drug) = (raw(drug) − μ) / σ
//
// Lower is better. σ == 0 is replaced by 1.
package proximity

import (
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netex/bfs"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/dijkstra"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("proximity: graph is nil")

	// ErrNoSeeds indicates that no visible seed was given.
	ErrNoSeeds = errors.New("proximity: no seeds")

	// ErrSampleCount indicates a non-positive number of random sets.
	ErrSampleCount = errors.New("proximity: random set counts must be positive")
)

// Options configures Compute.
type Options struct {
	SeedSets   int   // random seed sets
	TargetSets int   // random target sets per seed set
	RandomSeed int64 // 0 selects a fixed default
	Threads    int
}

// Option represents a functional option.
type Option func(*Options)

// WithSamples sets the number of random seed and target sets.
func WithSamples(seedSets, targetSets int) Option {
	return func(o *Options) { o.SeedSets, o.TargetSets = seedSets, targetSets }
}

// WithRandomSeed fixes the background sampling stream.
func WithRandomSeed(seed int64) Option { return func(o *Options) { o.RandomSeed = seed } }

// WithThreads bounds the number of seed sets processed concurrently.
func WithThreads(n int) Option { return func(o *Options) { o.Threads = n } }

// DefaultOptions returns 32 × 32 samples on one thread.
func DefaultOptions() Options {
	return Options{SeedSets: 32, TargetSets: 32, Threads: 1}
}

// Result holds per-drug scores aligned with the drugs passed to Compute.
type Result struct {
	Raw     []float64
	Z       []float64
	Mean    float64
	Std     float64
	Samples int
}

// Scores spreads Z onto a slice indexed by node, NaN elsewhere.
func (r *Result) Scores(n int, drugs []int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	for i, d := range drugs {
		out[d] = r.Z[i]
	}

	return out
}

// Compute scores every drug of drugs against seeds.
//
// Complexity: (1 + SeedSets) multi-source Dijkstra runs plus
// O(SeedSets·TargetSets·V) for the samples.
func Compute(g *core.Graph, w []float64, seeds, drugs []int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.SeedSets < 1 || cfg.TargetSets < 1 {
		return nil, ErrSampleCount
	}
	var live []int
	for _, s := range seeds {
		if g.HasNode(s) {
			live = append(live, s)
		}
	}
	if len(live) == 0 {
		return nil, ErrNoSeeds
	}

	near, err := dijkstra.Dijkstra(g, w, dijkstra.Source(live...))
	if err != nil {
		return nil, err
	}
	res := &Result{Raw: make([]float64, len(drugs)), Z: make([]float64, len(drugs)), Std: 1}
	minT, maxT := math.MaxInt, 0
	for i, d := range drugs {
		targets := proteinTargets(g, d)
		res.Raw[i] = meanDistance(near.Dist, targets)
		if len(targets) < minT {
			minT = len(targets)
		}
		if len(targets) > maxT {
			maxT = len(targets)
		}
	}

	pool := largestProteinComponent(g)
	if len(drugs) > 0 && maxT > 0 && len(pool) > 0 {
		samples, err := background(g, w, pool, len(live), minT, maxT, cfg)
		if err != nil {
			return nil, err
		}
		if len(samples) > 0 {
			mean, variance := stat.MeanVariance(samples, nil)
			n := float64(len(samples))
			std := math.Sqrt(variance * (n - 1) / n)
			if std == 0 || math.IsNaN(std) {
				std = 1
			}
			res.Mean, res.Std, res.Samples = mean, std, len(samples)
		}
	}

	for i, raw := range res.Raw {
		res.Z[i] = (raw - res.Mean) / res.Std
	}

	return res, nil
}

// background draws the random samples. Seed sets run concurrently, each on
// its own pre-derived RNG stream; samples keep their (set, target set) slot so
// the output order is fixed.
func background(g *core.Graph, w []float64, pool []int, numSeeds, minT, maxT int, cfg Options) ([]float64, error) {
	if numSeeds > len(pool) {
		numSeeds = len(pool)
	}
	if minT < 1 {
		minT = 1
	}
	slots := make([]float64, cfg.SeedSets*cfg.TargetSets)
	rngs := streams(cfg.RandomSeed, cfg.SeedSets)

	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	var eg errgroup.Group
	eg.SetLimit(threads)
	for i := 0; i < cfg.SeedSets; i++ {
		i := i
		eg.Go(func() error {
			r := rngs[i]
			perm := append([]int(nil), pool...)
			shuffleInts(perm, r)
			near, err := dijkstra.Dijkstra(g, w, dijkstra.Source(perm[:numSeeds]...))
			if err != nil {
				return err
			}
			for j := 0; j < cfg.TargetSets; j++ {
				shuffleInts(perm, r)
				size := minT + r.Intn(maxT-minT+1)
				if size > len(perm) {
					size = len(perm)
				}
				slots[i*cfg.TargetSets+j] = meanDistance(near.Dist, perm[:size])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	samples := slots[:0]
	for _, x := range slots {
		if !math.IsInf(x, 1) {
			samples = append(samples, x)
		}
	}

	return samples, nil
}

// meanDistance averages dist over the reachable nodes of targets; +Inf when
// none is reachable.
func meanDistance(dist []float64, targets []int) float64 {
	sum, n := 0.0, 0
	for _, t := range targets {
		if math.IsInf(dist[t], 1) {
			continue
		}
		sum += dist[t]
		n++
	}
	if n == 0 {
		return math.Inf(1)
	}

	return sum / float64(n)
}

// proteinTargets lists the distinct protein neighbours of drug.
func proteinTargets(g *core.Graph, drug int) []int {
	if !g.HasNode(drug) {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	g.ForEachNeighbor(drug, func(v, _ int) {
		if g.Node(v).IsDrug() || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	})

	return out
}

// largestProteinComponent returns the proteins of the largest connected
// component in ascending order.
func largestProteinComponent(g *core.Graph) []int {
	var out []int
	for _, u := range bfs.LargestComponent(g) {
		if !g.Node(u).IsDrug() {
			out = append(out, u)
		}
	}

	return out
}
