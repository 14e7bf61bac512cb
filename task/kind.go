package task

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netex/core"
)

// Kind is the closed set of engines a task can run.
type Kind uint8

const (
	MultiSteiner Kind = iota
	TrustRank
	Closeness
	Betweenness
	Proximity
	LouvainClustering
	LeidenClustering
	FirstNeighbor
	Quick
)

var kindNames = [...]string{
	MultiSteiner:      "multisteiner",
	TrustRank:         "trustrank",
	Closeness:         "closeness",
	Betweenness:       "betweenness",
	Proximity:         "proximity",
	LouvainClustering: "louvain-clustering",
	LeidenClustering:  "leiden-clustering",
	FirstNeighbor:     "first-neighbor",
	Quick:             "quick",
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}

	return out
}

// String returns the external algorithm name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps an external algorithm name to its Kind. Underscores are
// accepted in place of hyphens.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// DefaultTarget is the target mode used when the parameters name none.
func (k Kind) DefaultTarget() core.Target {
	switch k {
	case Closeness:
		return core.TargetDrug
	default:
		return core.TargetDrugTarget
	}
}

// needsSnapshot reports whether the kind reads a graph snapshot. Louvain
// clustering works on the caller's network alone.
func (k Kind) needsSnapshot() bool { return k != LouvainClustering }
