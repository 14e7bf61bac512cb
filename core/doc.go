// Package core provides the in-memory interaction network shared by every
// analysis engine: an undirected, attributed Graph addressed by dense integer
// indices.
//
// Nodes are proteins or drugs. Each node carries a typed attribute record
// (Node) instead of an open property bag: its NodeType, its ExternalID in the
// caller's identifier space and, for drugs, a Status string holding the
// approval state. Edges carry an EdgeType (protein-protein or drug-protein).
//
// Why indices instead of string IDs?
//
//   - Engines keep per-node and per-edge state in plain slices
//     (distances, weights, scores), so lookups are O(1) without hashing.
//   - Edge weights are computed once per query into a []float64 indexed by
//     Edge.ID and stay valid as long as the Graph is not compacted.
//   - Sub-graphs are produced by compaction (InducedSubgraph) which returns
//     the old→new index mapping, keeping seed/drug index sets consistent.
//
// Mutation model:
//
//	AddNode / AddEdge         build the graph (snapshot loader, overlays).
//	RemoveEdge / RemoveNode   hide elements; hidden elements are skipped by
//	                          every query method.
//	InducedSubgraph           materializes the visible part into a fresh,
//	                          densely indexed Graph.
//
// Concurrency:
//
//	A Graph is owned by a single query. It has no internal locking: build and
//	prune it from one goroutine, then share it read-only with worker pools.
//
// Complexity:
//
//	AddNode, AddEdge, Node, Edge, Lookup     O(1)
//	Degree, Neighbors, ForEachNeighbor       O(deg(v))
//	EdgeBetween                              O(min(deg(u), deg(v)))
//	InducedSubgraph, Clone                   O(V + E)
package core
