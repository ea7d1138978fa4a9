package fragment

import (
	"fmt"
	"math/rand"
	"strconv"
)

//-----------------------------------------------------------------------------
// Generator defaults (no magic numbers/strings in the constructors).
//-----------------------------------------------------------------------------

const (
	methodStar         = "Star"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"

	minStarNodes  = 2
	minCycleNodes = 3

	// hubNodeID is the fixed hub identifier of Star fragments, kept stable
	// so merge tests and golden demos line up across runs.
	hubNodeID = "hub"

	defaultEdgeType = "LINK"
	defaultGroup    = "generated"
	defaultWeight   = 1.0
)

// Option customizes fragment generation via functional arguments.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	edgeType string
	group    string
	idPrefix string
	weight   float64
}

// newConfig resolves options over deterministic defaults (seed 1).
func newConfig(opts []Option) config {
	cfg := config{
		rng:      rand.New(rand.NewSource(1)),
		edgeType: defaultEdgeType,
		group:    defaultGroup,
		weight:   defaultWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed freezes the stochastic generators (RandomSparse) so the same
// seed always yields the same fragment.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeType overrides the relationship type stamped on generated edges.
func WithEdgeType(typ string) Option {
	return func(c *config) {
		if typ != "" {
			c.edgeType = typ
		}
	}
}

// WithGroup overrides the category tag stamped on generated nodes.
func WithGroup(group string) Option {
	return func(c *config) {
		if group != "" {
			c.group = group
		}
	}
}

// WithIDPrefix prefixes every generated node ID, letting two generated
// fragments merge side-by-side without identity collisions.
func WithIDPrefix(prefix string) Option {
	return func(c *config) { c.idPrefix = prefix }
}

// WithWeight overrides the weight stamped on generated edges.
func WithWeight(w float64) Option {
	return func(c *config) { c.weight = w }
}

// Star generates a hub-and-spokes fragment with n nodes: one hub and n-1
// leaves, edges hub→leaf in ascending leaf order.
//
// Complexity: O(n). Deterministic for fixed options.
func Star(n int, opts ...Option) (Fragment, error) {
	if n < minStarNodes {
		return Fragment{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	f := Fragment{
		Nodes: make([]NodeSpec, 0, n),
		Edges: make([]EdgeSpec, 0, n-1),
	}
	hub := cfg.idPrefix + hubNodeID
	f.Nodes = append(f.Nodes, NodeSpec{ID: hub, Label: hub, Group: cfg.group})
	for i := 1; i < n; i++ {
		leaf := cfg.idPrefix + strconv.Itoa(i)
		f.Nodes = append(f.Nodes, NodeSpec{ID: leaf, Label: leaf, Group: cfg.group})
		f.Edges = append(f.Edges, EdgeSpec{
			From: hub, To: leaf, Type: cfg.edgeType, Weight: cfg.weight,
		})
	}
	return f, nil
}

// Cycle generates a ring fragment with n nodes 0→1→…→n-1→0.
//
// Complexity: O(n). Deterministic for fixed options.
func Cycle(n int, opts ...Option) (Fragment, error) {
	if n < minCycleNodes {
		return Fragment{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}
	cfg := newConfig(opts)

	f := Fragment{
		Nodes: make([]NodeSpec, 0, n),
		Edges: make([]EdgeSpec, 0, n),
	}
	for i := 0; i < n; i++ {
		id := cfg.idPrefix + strconv.Itoa(i)
		f.Nodes = append(f.Nodes, NodeSpec{ID: id, Label: id, Group: cfg.group})
	}
	for i := 0; i < n; i++ {
		f.Edges = append(f.Edges, EdgeSpec{
			From:   f.Nodes[i].ID,
			To:     f.Nodes[(i+1)%n].ID,
			Type:   cfg.edgeType,
			Weight: cfg.weight,
		})
	}
	return f, nil
}

// RandomSparse generates n nodes and draws each of the n·(n-1)/2 candidate
// pairs as an edge with probability p, in ascending (i, j) order so a fixed
// seed yields a fixed fragment.
//
// Complexity: O(n²). Deterministic for a fixed seed.
func RandomSparse(n int, p float64, opts ...Option) (Fragment, error) {
	if n < minStarNodes {
		return Fragment{}, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minStarNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return Fragment{}, fmt.Errorf("%s: p=%v: %w", methodRandomSparse, p, ErrBadProbability)
	}
	cfg := newConfig(opts)

	f := Fragment{Nodes: make([]NodeSpec, 0, n)}
	for i := 0; i < n; i++ {
		id := cfg.idPrefix + strconv.Itoa(i)
		f.Nodes = append(f.Nodes, NodeSpec{ID: id, Label: id, Group: cfg.group})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			f.Edges = append(f.Edges, EdgeSpec{
				From:   f.Nodes[i].ID,
				To:     f.Nodes[j].ID,
				Type:   cfg.edgeType,
				Weight: cfg.weight,
			})
		}
	}
	return f, nil
}
