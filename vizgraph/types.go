// Package vizgraph: this file declares Node, Edge, Graph, GraphOption,
// EdgeOption, sentinel errors, and the NewGraph constructor.
package vizgraph

import (
	"errors"
	"strconv"
)

// Sentinel errors for displayed-graph operations.
var (
	// ErrNilNode indicates a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("vizgraph: node is nil")

	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("vizgraph: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called for an already-present ID.
	ErrDuplicateNode = errors.New("vizgraph: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("vizgraph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("vizgraph: edge not found")

	// ErrEmptyEdgeType indicates an edge with an empty relationship type.
	ErrEmptyEdgeType = errors.New("vizgraph: edge relationship type is empty")
)

// Node is one displayed graph node.
//
// ID uniquely identifies the node within its Graph. Layout coordinates and
// velocities are mutated every simulation tick or drag event; everything else
// is metadata set at merge time.
type Node struct {
	// ID is the unique identifier for this node.
	ID string

	// Label is the human-readable display label.
	Label string

	// Group is the category tag used for color and grouping.
	Group string

	// Size is the rendered radius hint, derived from connectivity degree
	// via Graph.RecomputeSizeHints.
	Size float64

	// X, Y, Z are mutable layout coordinates. Z stays zero unless the
	// graph was built With3D().
	X, Y, Z float64

	// VX, VY, VZ are velocity components written by the physics integrator.
	VX, VY, VZ float64

	// Pinned excludes the node from physics-driven movement until released.
	Pinned bool

	// Placed reports whether the node has ever been assigned a position
	// (seeded, merged near a centroid, or dragged). Unplaced nodes are
	// seeded by the simulation on first tick.
	Placed bool
}

// Edge is one displayed graph edge.
//
// The (From, To, Type) triple is unique within a Graph; Category and Weight
// are metadata that later merges may overwrite without creating a second
// rendered edge. CurveOffset is derived from the full edge set (see the
// geometry package) whenever that set changes, never per tick.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source node ID.
	From string

	// To is the target node ID.
	To string

	// Type is the relationship-type label rendered along the edge.
	Type string

	// Category is the tag used for color/visibility grouping.
	Category string

	// Weight is a numeric weight (e.g. confidence) mapped to stroke width.
	Weight float64

	// CurveOffset is the perpendicular displacement bending this edge when
	// parallel edges share the same unordered node pair; 0 means straight.
	CurveOffset float64
}

// SelfLoop reports whether the edge starts and ends on the same node.
func (e *Edge) SelfLoop() bool { return e.From == e.To }

// TripleKey returns the (From, To, Type) dedup key for this edge.
// Category and weight are deliberately excluded: the same semantic edge
// re-fetched with different metadata must collapse to one rendered edge.
func (e *Edge) TripleKey() string { return TripleKey(e.From, e.To, e.Type) }

// TripleKey builds the canonical (from, to, type) dedup key. The separator
// is a unit separator so that IDs containing common punctuation cannot
// collide with the composed key.
func TripleKey(from, to, typ string) string {
	return from + "\x1f" + to + "\x1f" + typ
}

// PairKey returns the unordered endpoint key shared by all parallel edges
// between the same two nodes (self-loops collapse to a single endpoint).
func (e *Edge) PairKey() string {
	if e.From <= e.To {
		return e.From + "\x1f" + e.To
	}
	return e.To + "\x1f" + e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// With3D lets the simulation integrate the Z coordinate; without it Z is
// held at zero and the layout stays planar.
func With3D() GraphOption {
	return func(g *Graph) { g.threeD = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeCategory sets the color/visibility grouping tag for this edge.
func WithEdgeCategory(category string) EdgeOption {
	return func(e *Edge) { e.Category = category }
}

// Graph is the displayed graph: the single authoritative node/edge set the
// renderer paints and the simulation mutates.
//
// nodeOrder/edgeOrder preserve insertion order for deterministic iteration;
// tripleIndex maps (from,to,type) keys to edge IDs for O(1) dedup;
// adjacency[from][to][edgeID] mirrors undirected reachability for neighbor
// queries (stored both ways, loops stored once).
type Graph struct {
	threeD bool // integrate Z when true

	nextEdgeID uint64 // sequential edge ID generator

	nodes     map[string]*Node
	nodeOrder []string

	edges       map[string]*Edge
	edgeOrder   []string
	tripleIndex map[string]string // TripleKey → edge ID

	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty displayed graph.
// By default the layout is planar (Z held at zero).
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:       make(map[string]*Node),
		edges:       make(map[string]*Edge),
		tripleIndex: make(map[string]string),
		adjacency:   make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Is3D reports whether the graph integrates the Z coordinate.
func (g *Graph) Is3D() bool { return g.threeD }

// newEdgeID mints the next sequential edge identifier ("e1", "e2", …).
func (g *Graph) newEdgeID() string {
	g.nextEdgeID++
	return "e" + strconv.FormatUint(g.nextEdgeID, 10)
}
