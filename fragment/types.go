package fragment

import (
	"errors"
	"fmt"
)

// Sentinel errors for fragment decoding and generation.
var (
	// ErrEmptyFragmentNodeID indicates a node entry without an id.
	ErrEmptyFragmentNodeID = errors.New("fragment: node id is empty")

	// ErrEmptyFragmentType indicates an edge entry without a relationship type.
	ErrEmptyFragmentType = errors.New("fragment: edge type is empty")

	// ErrDanglingEdge indicates an edge entry missing from or to.
	ErrDanglingEdge = errors.New("fragment: edge endpoint is empty")

	// ErrTooFewNodes indicates a generator invoked below its minimum size.
	ErrTooFewNodes = errors.New("fragment: too few nodes")

	// ErrBadProbability indicates a RandomSparse probability outside [0, 1].
	ErrBadProbability = errors.New("fragment: probability outside [0,1]")
)

// Position is an optional layout hint carried by a fragment node. Fragments
// produced by remote queries normally omit it; replayed snapshots keep it.
type Position struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z,omitempty" json:"z,omitempty"`
}

// NodeSpec is one node entry of a fragment.
type NodeSpec struct {
	ID       string    `yaml:"id" json:"id"`
	Label    string    `yaml:"label,omitempty" json:"label,omitempty"`
	Group    string    `yaml:"group,omitempty" json:"group,omitempty"`
	Size     float64   `yaml:"size,omitempty" json:"size,omitempty"`
	Position *Position `yaml:"position,omitempty" json:"position,omitempty"`
}

// EdgeSpec is one edge entry of a fragment. From/To may reference nodes
// that are absent from this fragment but present in the displayed graph;
// the merger resolves them.
type EdgeSpec struct {
	From     string  `yaml:"from" json:"from"`
	To       string  `yaml:"to" json:"to"`
	Type     string  `yaml:"type" json:"type"`
	Weight   float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Category string  `yaml:"category,omitempty" json:"category,omitempty"`
}

// Fragment is a newly-fetched subgraph: the unit of input the merger
// combines with the currently displayed graph.
type Fragment struct {
	Nodes []NodeSpec `yaml:"nodes" json:"nodes"`
	Edges []EdgeSpec `yaml:"edges" json:"edges"`
}

// Validate checks structural soundness of the fragment entries.
//
// Behavior:
//  1. Every node needs a non-empty id.
//  2. Every edge needs non-empty from, to and type.
//  3. Edge endpoints are NOT required to appear among the fragment's own
//     nodes — append merges may attach onto the displayed graph.
//
// Errors carry the offending index and wrap the matching sentinel, so
// callers can branch with errors.Is. Complexity: O(N + E).
func (f Fragment) Validate() error {
	for i, n := range f.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node[%d]: %w", i, ErrEmptyFragmentNodeID)
		}
	}
	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("edge[%d]: %w", i, ErrDanglingEdge)
		}
		if e.Type == "" {
			return fmt.Errorf("edge[%d] %s→%s: %w", i, e.From, e.To, ErrEmptyFragmentType)
		}
	}
	return nil
}

// IsEmpty reports whether the fragment carries no nodes and no edges.
func (f Fragment) IsEmpty() bool {
	return len(f.Nodes) == 0 && len(f.Edges) == 0
}
