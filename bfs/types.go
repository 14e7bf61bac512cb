package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound is returned when a start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoStart is returned when no start node was supplied.
	ErrNoStart = errors.New("bfs: no start vertex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a BFS run. Invalid options are recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds the resolved configuration.
type BFSOptions struct {
	// MaxDepth limits exploration depth; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor decides whether the edge curr→neighbor may be followed.
	FilterNeighbor func(curr, neighbor, edgeID int) bool

	err error
}

// DefaultOptions returns options with no depth limit and no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		FilterNeighbor: func(int, int, int) bool { return true },
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor, edgeID int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a traversal:
//   - Order: nodes in visit sequence.
//   - Depth: hop distance per node index, -1 if unreached.
//   - Parent / ParentEdge: BFS tree links, -1 for roots and unreached nodes.
type BFSResult struct {
	Order      []int
	Depth      []int
	Parent     []int
	ParentEdge []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool { return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0 }

// PathTo reconstructs the tree path from a root to dest as node and edge
// lists. Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, []int, error) {
	if !r.Reached(dest) {
		return nil, nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	nodes := []int{dest}
	var edges []int
	for cur := dest; r.Parent[cur] >= 0; cur = r.Parent[cur] {
		edges = append(edges, r.ParentEdge[cur])
		nodes = append(nodes, r.Parent[cur])
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return nodes, edges, nil
}
