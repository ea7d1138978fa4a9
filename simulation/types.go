package simulation

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/kinetograph/kineto/vizgraph"
)

// Sentinel errors for simulation lifecycle operations.
var (
	// ErrEmptyGraph indicates construction over an empty node array; the
	// caller should tear the simulation down instead.
	ErrEmptyGraph = errors.New("simulation: node array is empty")

	// ErrNodeNotFound indicates a drag operation referenced an unknown node.
	ErrNodeNotFound = errors.New("simulation: node not found")

	// ErrNotStopped indicates Reheat was invoked outside the Stopped state.
	ErrNotStopped = errors.New("simulation: reheat is only legal from Stopped")

	// ErrNotDragging indicates DragMove/DragEnd without a DragStart.
	ErrNotDragging = errors.New("simulation: node is not being dragged")
)

// State is the explicit lifecycle state of a simulation.
type State int

const (
	// Seeding: constructed, positions not yet assigned; the first tick seeds.
	Seeding State = iota

	// Running: forces apply, energy above the settling band.
	Running

	// Settling: energy below the settling band but above the minimum.
	Settling

	// Stopped: energy exhausted (or explicitly halted); ticks are no-ops.
	Stopped
)

// String returns the state name for logs and diagnostics.
func (s State) String() string {
	switch s {
	case Seeding:
		return "seeding"
	case Running:
		return "running"
	case Settling:
		return "settling"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the state by name, so frame consumers read
// "running" rather than a bare ordinal.
func (s State) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(s.String())), nil
}

// Config is the tick-time physics configuration. The simulation reads it
// through a source function every tick, so callers mutate their copy and
// the change takes effect on the next tick without reseeding.
type Config struct {
	// Enabled gates all forces; a disabled simulation stops on next tick.
	Enabled bool

	// Charge is the base pairwise repulsion strength.
	Charge float64

	// LinkDistance is the target length of a semantically visible edge;
	// synthetic/clustering edges aim for half of it.
	LinkDistance float64

	// Gravity is the weak centering pull toward the viewport center.
	Gravity float64

	// Friction is the fraction of velocity retained per tick (0..1).
	Friction float64
}

// DefaultConfig returns the physics defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		Charge:       DefaultCharge,
		LinkDistance: DefaultLinkDistance,
		Gravity:      DefaultGravity,
		Friction:     DefaultFriction,
	}
}

// SimOption configures a simulation at construction.
type SimOption func(*Sim)

// WithViewportCenter sets the layout-space point the centering force and
// the seeding spiral aim at.
func WithViewportCenter(x, y float64) SimOption {
	return func(s *Sim) { s.centerX, s.centerY = x, y }
}

// WithConfigSource installs the tick-time configuration getter. This is
// the stable indirection that keeps configuration changes from restarting
// the simulation: the closure is consulted every tick.
func WithConfigSource(src func() Config) SimOption {
	return func(s *Sim) {
		if src != nil {
			s.config = src
		}
	}
}

// WithOnSettle registers the settled signal, fired exactly once each time
// energy decays below the minimum.
func WithOnSettle(fn func()) SimOption {
	return func(s *Sim) { s.onSettle = fn }
}

// WithRand provides the RNG used to jiggle exactly-coincident nodes apart.
// Defaults to a fixed seed for reproducible layouts.
func WithRand(r *rand.Rand) SimOption {
	return func(s *Sim) {
		if r != nil {
			s.rng = r
		}
	}
}

// With3D integrates the Z coordinate through the repulsion, link and
// centering forces (collision stays planar).
func With3D() SimOption {
	return func(s *Sim) { s.threeD = true }
}

// WithInitialAlpha overrides the seeded energy level, e.g. the reduced
// restart after an append merge onto a preserved layout.
func WithInitialAlpha(alpha float64) SimOption {
	return func(s *Sim) {
		if alpha > 0 {
			s.alpha = alpha
			s.alphaForced = true
		}
	}
}

// WithAlphaDecay overrides the geometric energy decay rate, e.g. the fast
// decay paired with a reduced-energy restart.
func WithAlphaDecay(decay float64) SimOption {
	return func(s *Sim) {
		if decay > 0 && decay < 1 {
			s.alphaDecay = decay
		}
	}
}

// Sim is one physics simulation over a borrowed node/edge set. Exactly one
// instance is active per displayed graph.
type Sim struct {
	nodes []*vizgraph.Node
	edges []*vizgraph.Edge
	byID  map[string]*vizgraph.Node

	state      State
	alpha      float64
	alphaDecay float64
	// alphaForced records a WithInitialAlpha override so seeding does not
	// second-guess it.
	alphaForced bool

	centerX, centerY float64
	threeD           bool

	config   func() Config
	onSettle func()

	dragged map[string]struct{}
	rng     *rand.Rand
	ticks   int
}

// New constructs a simulation borrowing the given node and edge arrays.
//
// Behavior:
//  1. An empty node array is refused with ErrEmptyGraph.
//  2. The arrays are referenced, not copied: tick updates mutate the very
//     records the renderer reads.
//  3. Initial energy: full for a fresh graph, low when any node already
//     holds a position (the merge case), unless WithInitialAlpha overrode it.
//
// The instance starts in Seeding; the first Tick assigns positions to any
// unplaced nodes and moves to Running.
func New(nodes []*vizgraph.Node, edges []*vizgraph.Edge, opts ...SimOption) (*Sim, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	s := &Sim{
		nodes:      nodes,
		edges:      edges,
		byID:       make(map[string]*vizgraph.Node, len(nodes)),
		state:      Seeding,
		alpha:      AlphaFull,
		alphaDecay: AlphaDecay,
		config:     defaultConfigSource,
		dragged:    make(map[string]struct{}),
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, n := range nodes {
		s.byID[n.ID] = n
	}
	for _, opt := range opts {
		opt(s)
	}

	if !s.alphaForced && anyPlaced(nodes) {
		// Most of the graph already has a good layout: restart gently.
		s.alpha = AlphaAppend
		s.alphaDecay = AlphaDecayFast
	}
	return s, nil
}

// defaultConfigSource is the fallback config source used when the caller
// installs none.
func defaultConfigSource() Config { return DefaultConfig() }

// anyPlaced reports whether at least one node already holds a position.
func anyPlaced(nodes []*vizgraph.Node) bool {
	for _, n := range nodes {
		if n.Placed {
			return true
		}
	}
	return false
}

// State returns the current lifecycle state.
func (s *Sim) State() State { return s.state }

// Alpha returns the current energy level.
func (s *Sim) Alpha() float64 { return s.alpha }

// Ticks returns how many ticks have been processed.
func (s *Sim) Ticks() int { return s.ticks }
