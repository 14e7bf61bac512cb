package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyExternalID indicates that a node was added without an identifier.
	ErrEmptyExternalID = errors.New("core: external ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node index.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge index.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrUnknownNodeType indicates a node type string that is neither protein nor drug.
	ErrUnknownNodeType = errors.New("core: unknown node type")

	// ErrUnknownEdgeType indicates an edge type string outside the supported set.
	ErrUnknownEdgeType = errors.New("core: unknown edge type")

	// ErrUnknownTarget indicates a target mode outside drug-target, drug and other.
	ErrUnknownTarget = errors.New("core: unknown target mode")
)

// NodeType distinguishes proteins from drugs.
type NodeType uint8

const (
	// NodeProtein marks a protein (gene product) node.
	NodeProtein NodeType = iota

	// NodeDrug marks a drug node.
	NodeDrug
)

// String returns the lower-case wire name of the node type.
func (t NodeType) String() string {
	switch t {
	case NodeProtein:
		return "protein"
	case NodeDrug:
		return "drug"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// ParseNodeType converts a wire name ("protein", "drug", any case) to a NodeType.
func ParseNodeType(s string) (NodeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protein":
		return NodeProtein, nil
	case "drug":
		return NodeDrug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownNodeType, s)
}

// EdgeType distinguishes protein-protein interactions from drug-protein links.
type EdgeType uint8

const (
	// EdgeProteinProtein is a protein–protein interaction.
	EdgeProteinProtein EdgeType = iota

	// EdgeDrugProtein links a drug to one of its protein targets.
	EdgeDrugProtein
)

// String returns the wire name of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeProteinProtein:
		return "protein-protein"
	case EdgeDrugProtein:
		return "drug-protein"
	default:
		return fmt.Sprintf("EdgeType(%d)", uint8(t))
	}
}

// ParseEdgeType converts a wire name to an EdgeType.
// "protein-drug" is accepted as an alias of "drug-protein".
func ParseEdgeType(s string) (EdgeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protein-protein":
		return EdgeProteinProtein, nil
	case "drug-protein", "protein-drug":
		return EdgeDrugProtein, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownEdgeType, s)
}

// Target selects which nodes a query may return as new candidates.
type Target uint8

const (
	// TargetDrugTarget searches proteins that drugs may target; drug nodes are
	// removed from the working graph.
	TargetDrugTarget Target = iota

	// TargetDrug searches drug nodes.
	TargetDrug

	// TargetOther searches any non-seed protein; drug nodes are removed.
	TargetOther
)

// String returns the parameter spelling of the target mode.
func (t Target) String() string {
	switch t {
	case TargetDrugTarget:
		return "drug-target"
	case TargetDrug:
		return "drug"
	case TargetOther:
		return "other"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

// ParseTarget converts the parameter spelling to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "drug-target", "drug_target":
		return TargetDrugTarget, nil
	case "drug":
		return TargetDrug, nil
	case "other":
		return TargetOther, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// Node is the fixed attribute record of a graph node.
type Node struct {
	// Type is protein or drug.
	Type NodeType

	// ExternalID identifies the node in the caller's identifier space.
	ExternalID string

	// Status holds the drug approval string (e.g. "approved, investigational").
	// It is empty for proteins.
	Status string
}

// IsDrug reports whether the node is a drug.
func (n Node) IsDrug() bool { return n.Type == NodeDrug }

// Approved reports whether the drug status mentions approval.
func (n Node) Approved() bool {
	return strings.Contains(strings.ToLower(n.Status), "approved")
}

// Edge is an undirected edge between two node indices.
type Edge struct {
	// ID is the dense edge index, valid until the graph is compacted.
	ID int

	// From and To are node indices; orientation carries no meaning.
	From, To int

	// Type is protein-protein or drug-protein.
	Type EdgeType
}

// Other returns the endpoint opposite to u.
func (e Edge) Other(u int) int {
	if e.From == u {
		return e.To
	}

	return e.From
}

// Adjacent is a neighbour reached over a specific edge.
type Adjacent struct {
	Node int
	Edge int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops. Snapshots may contain them; the loader
// enables this and the query filter strips them again.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithCapacity preallocates storage for n nodes and m edges.
func WithCapacity(n, m int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]Node, 0, n)
			g.nodeRemoved = make([]bool, 0, n)
			g.adj = make([][]int, 0, n)
		}
		if m > 0 {
			g.edges = make([]Edge, 0, m)
			g.edgeRemoved = make([]bool, 0, m)
		}
	}
}

// Graph is an undirected attributed multigraph addressed by integer indices.
//
// Removal hides nodes and edges without renumbering; query methods skip hidden
// elements. InducedSubgraph produces a compact copy of what is visible.
type Graph struct {
	allowLoops bool

	nodes       []Node
	nodeRemoved []bool
	edges       []Edge
	edgeRemoved []bool
	adj         [][]int // node index -> incident edge IDs

	byExternal map[string]int

	liveNodes int
	liveEdges int
}

// NewGraph creates an empty Graph configured by opts.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	if g.byExternal == nil {
		g.byExternal = make(map[string]int, cap(g.nodes))
	}

	return g
}
