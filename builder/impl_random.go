package builder

import (
	"fmt"

	"github.com/katalvlaran/netex/core"
)

const (
	methodRandomInteractome = "RandomInteractome"
	methodRandomDrugs       = "RandomDrugs"
)

// RandomInteractome adds n proteins named by the protein ID scheme and links
// every unordered pair {i<j} independently with probability p.
//
// Contract:
//   - n >= 1 (ErrTooFewNodes), 0 <= p <= 1 (ErrInvalidProbability).
//   - An RNG is required for 0 < p < 1 (ErrNeedRandSource).
//
// Determinism: trials run for i ascending, then j ascending.
//
// Complexity: O(n²) trials.
func RandomInteractome(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d: %w", methodRandomInteractome, n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomInteractome, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomInteractome, ErrNeedRandSource)
		}

		idx := make([]int, n)
		for i := 0; i < n; i++ {
			u, err := ensureProtein(g, cfg.proteinID(i))
			if err != nil {
				return wrapf(methodRandomInteractome, cfg.proteinID(i), err)
			}
			idx[i] = u
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if _, err := g.AddEdge(idx[i], idx[j], core.EdgeProteinProtein); err != nil {
					return wrapf(methodRandomInteractome, fmt.Sprintf("%d-%d", i, j), err)
				}
			}
		}

		return nil
	}
}

// RandomDrugs adds count drugs, each targeting `targets` distinct proteins
// drawn uniformly from the proteins already in the graph. Each drug is
// "approved" with probability approved, otherwise "experimental".
//
// Contract:
//   - count >= 1, targets >= 1 and at least `targets` proteins present (ErrTooFewNodes).
//   - 0 <= approved <= 1 (ErrInvalidProbability).
//   - An RNG is always required (ErrNeedRandSource).
func RandomDrugs(count, targets int, approved float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < 1 || targets < 1 {
			return fmt.Errorf("%s: count=%d targets=%d: %w", methodRandomDrugs, count, targets, ErrTooFewNodes)
		}
		if approved < 0 || approved > 1 {
			return fmt.Errorf("%s: approved=%.6f: %w", methodRandomDrugs, approved, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDrugs, ErrNeedRandSource)
		}

		proteins := make([]int, 0, g.NodeCount())
		for _, u := range g.Nodes() {
			if !g.Node(u).IsDrug() {
				proteins = append(proteins, u)
			}
		}
		if len(proteins) < targets {
			return fmt.Errorf("%s: %d proteins < %d targets: %w",
				methodRandomDrugs, len(proteins), targets, ErrTooFewNodes)
		}

		for i := 0; i < count; i++ {
			status := "experimental"
			if cfg.rng.Float64() < approved {
				status = "approved"
			}
			d, err := g.AddNode(core.Node{Type: core.NodeDrug, ExternalID: cfg.drugID(i), Status: status})
			if err != nil {
				return wrapf(methodRandomDrugs, cfg.drugID(i), err)
			}
			perm := cfg.rng.Perm(len(proteins))
			for _, k := range perm[:targets] {
				if _, err = g.AddEdge(d, proteins[k], core.EdgeDrugProtein); err != nil {
					return wrapf(methodRandomDrugs, cfg.drugID(i), err)
				}
			}
		}

		return nil
	}
}
