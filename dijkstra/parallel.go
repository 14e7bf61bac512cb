package dijkstra

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netex/core"
)

// AllFrom runs one single-source Dijkstra per entry of sources on a bounded
// pool of `threads` goroutines (values < 1 mean 1) and returns the results
// in the order of sources.
//
// g and w are shared read-only between workers; opts must not carry a
// Source option. The first error cancels nothing already running but is the
// one returned.
func AllFrom(g *core.Graph, w []float64, sources []int, threads int, opts ...Option) ([]*Result, error) {
	if threads < 1 {
		threads = 1
	}
	out := make([]*Result, len(sources))

	var eg errgroup.Group
	eg.SetLimit(threads)
	for i, s := range sources {
		i, s := i, s
		eg.Go(func() error {
			all := append([]Option{Source(s)}, opts...)
			res, err := Dijkstra(g, w, all...)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
