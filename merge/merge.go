package merge

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/kinetograph/kineto/fragment"
	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/vizgraph"
)

// Sentinel errors for merge operations.
var (
	// ErrNilGraph indicates a nil displayed graph was passed.
	ErrNilGraph = errors.New("merge: graph is nil")

	// ErrUnknownMode indicates a load-mode string that is neither
	// "replace" nor "append".
	ErrUnknownMode = errors.New("merge: unknown load mode")
)

// Mode selects how a fragment combines with the displayed graph.
type Mode int

const (
	// Replace discards the existing graph and shows only the fragment.
	Replace Mode = iota

	// Append unions the fragment into the displayed graph.
	Append
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	if m == Append {
		return "append"
	}
	return "replace"
}

// ParseMode maps the caller-facing load-mode strings onto Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "replace":
		return Replace, nil
	case "append":
		return Append, nil
	default:
		return Replace, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// JitterRadius is the maximum distance, in layout units, a truly new node
// spawns away from the pre-merge centroid.
const JitterRadius = 30.0

// Options tunes merge behavior. The zero value is NOT usable; start from
// DefaultOptions.
type Options struct {
	// Rng drives the placement jitter. Inject a seeded source in tests.
	Rng *rand.Rand

	// JitterRadius bounds the centroid placement jitter.
	JitterRadius float64
}

// DefaultOptions returns merge options with a time-independent seed so
// library behavior is reproducible unless the caller opts out.
func DefaultOptions() Options {
	return Options{
		Rng:          rand.New(rand.NewSource(1)),
		JitterRadius: JitterRadius,
	}
}

// Result summarizes what a merge changed.
type Result struct {
	// AddedNodes lists IDs of nodes created by this merge, in fragment order.
	AddedNodes []string

	// AddedEdges lists edge IDs created by this merge, in fragment order.
	AddedEdges []string

	// UpdatedEdges counts fragment edges that collapsed onto existing
	// (from, to, type) triples, overwriting metadata only.
	UpdatedEdges int

	// SkippedEdges counts fragment edges silently dropped because an
	// endpoint exists in neither the fragment nor the displayed graph.
	SkippedEdges int

	// PreservedLayout is true when the merge kept an already-positioned
	// graph on screen; the engine then reseeds the simulation at reduced
	// energy instead of full energy.
	PreservedLayout bool
}

// Apply merges fragment f into the displayed graph g under the given mode.
//
// Behavior:
//  1. Validate inputs; an invalid fragment rejects the whole merge (the
//     displayed graph is never half-updated by malformed input).
//  2. Replace mode clears g first; append keeps it.
//  3. Nodes: new IDs are created — placed at the pre-merge centroid plus
//     jitter when the graph already has placed nodes, at their position
//     hint when the fragment carries one, unplaced otherwise (the
//     simulation seeds them). Existing IDs are updated in place (label,
//     group), keeping their coordinates and pin state.
//  4. Edges: the (from, to, type) triple dedups; endpoints missing from the
//     post-node-insert graph skip the edge silently.
//  5. Derived state: curve offsets and size hints are recomputed from the
//     final edge set.
//
// Complexity: O(N + E) over the fragment plus O(V + E_total) for the
// derived-state refresh.
func Apply(g *vizgraph.Graph, f fragment.Fragment, mode Mode, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	if opts.Rng == nil {
		opts.Rng = DefaultOptions().Rng
	}
	if opts.JitterRadius <= 0 {
		opts.JitterRadius = JitterRadius
	}

	// Capture the pre-merge layout before any mutation.
	cx, cy, hadLayout := g.Centroid()
	if mode == Replace {
		g.Clear()
		hadLayout = false
	}

	var res Result
	res.PreservedLayout = mode == Append && hadLayout

	for _, spec := range f.Nodes {
		if existing, ok := g.Node(spec.ID); ok {
			// Refresh metadata, never coordinates or pin state.
			existing.Label = spec.Label
			existing.Group = spec.Group
			continue
		}

		n := &vizgraph.Node{ID: spec.ID, Label: spec.Label, Group: spec.Group, Size: spec.Size}
		switch {
		case spec.Position != nil:
			n.X, n.Y, n.Z = spec.Position.X, spec.Position.Y, spec.Position.Z
			n.Placed = true
		case hadLayout:
			jx, jy := jitter(opts.Rng, opts.JitterRadius)
			n.X, n.Y = cx+jx, cy+jy
			n.Placed = true
		}
		if err := g.AddNode(n); err != nil {
			// Unreachable given the HasNode guard above; surface anyway.
			return res, fmt.Errorf("merge: add node %s: %w", spec.ID, err)
		}
		res.AddedNodes = append(res.AddedNodes, n.ID)
	}

	for _, spec := range f.Edges {
		if !g.HasNode(spec.From) || !g.HasNode(spec.To) {
			res.SkippedEdges++
			continue
		}
		_, existed := g.EdgeByTriple(spec.From, spec.To, spec.Type)
		id, err := g.AddEdge(spec.From, spec.To, spec.Type, spec.Weight,
			vizgraph.WithEdgeCategory(spec.Category))
		if err != nil {
			return res, fmt.Errorf("merge: add edge %s→%s: %w", spec.From, spec.To, err)
		}
		if existed {
			res.UpdatedEdges++
		} else {
			res.AddedEdges = append(res.AddedEdges, id)
		}
	}

	// Curve offsets and size hints depend on the full edge set, never on
	// node positions: refresh once per merge, not per tick.
	geometry.AssignCurveOffsets(g.Edges())
	g.RecomputeSizeHints()

	return res, nil
}

// jitter draws a uniform point inside a disk of the given radius.
func jitter(rng *rand.Rand, radius float64) (dx, dy float64) {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * radius
	return dist * math.Cos(angle), dist * math.Sin(angle)
}
