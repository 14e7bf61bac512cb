package builder

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

// Sentinel errors. Wrap with %w for context and branch with errors.Is.
var (
	// ErrTooFewNodes indicates a size parameter below its minimum.
	ErrTooFewNodes = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrNotProtein indicates an interaction endpoint that names a drug.
	ErrNotProtein = errors.New("builder: endpoint is not a protein")

	// ErrConstructFailed indicates a failure inside a constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// proteinID names random proteins: index -> external ID.
	proteinID func(int) string
	// drugID names random drugs: index -> external ID.
	drugID func(int) string
	// rng drives random constructors; nil means "no randomness".
	rng *rand.Rand
	// loops permits self-loop fixtures.
	loops bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		proteinID: prefixedID("P"),
		drugID:    prefixedID("DB"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func prefixedID(prefix string) func(int) string {
	return func(i int) string { return prefix + strconv.Itoa(i) }
}

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithIDScheme overrides the naming of random proteins and drugs.
// Panics on nil.
func WithIDScheme(protein, drug func(int) string) BuilderOption {
	if protein == nil || drug == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.proteinID, c.drugID = protein, drug }
}

// WithLoops lets the built graph hold self-loops, as raw snapshots may.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

func wrapf(method, what string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, what, err)
}
