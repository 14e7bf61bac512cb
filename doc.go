// Package netex is a network-analysis task engine for biological
// interaction networks: protein–protein interactions and the drugs that
// target those proteins.
//
// Given a graph snapshot and a set of seed proteins, netex answers questions
// such as "which proteins best connect these seeds?" or "which drugs sit
// closest to them?". Everything is organized in subpackages:
//
//	core/                       attributed, index-addressed undirected Graph
//	snapshot/                   binary snapshot reader and writer (msgp, snappy, zstd)
//	filter/                     per-query pruning, seed and drug resolution, custom overlays
//	weights/                    hub-penalty edge weights
//	dijkstra/                   weighted shortest paths, path counts, parallel fan-out
//	bfs/, dfs/                  hop distances, components, bridges
//	prim_kruskal/               minimum spanning trees and forests
//	steiner/                    approximate Steiner trees and the multi-tree search
//	centrality/                 seed-relative closeness and betweenness
//	trustrank/                  personalized PageRank seeded at the seed set
//	proximity/                  Z-score network proximity of drugs
//	clustering/                 Louvain and Leiden on the seed network
//	result/                     candidate selection and result networks
//	task/                       the driver: algorithm kinds, parameters, progress, results
//	config/, metrics/, builder/ configuration, Prometheus collectors, fixtures
//
// Quick ASCII example of the Steiner search on a square with seeds A and D:
//
//	    A───B
//	    │   │
//	    C───D
//
// The first tree runs through B or C. Disabling one of its edges yields the
// equally cheap other side, so two trees are accepted and the forest holds
// all four proteins.
//
// The command line front end lives in cmd/netex:
//
//	netex generate net.gt --proteins 500 --drugs 50
//	netex run -a multisteiner -p params.yaml -s net.gt
package netex
