package overlay

import (
	"errors"

	"github.com/google/uuid"

	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/vizgraph"
)

// Sentinel errors for annotation-box operations.
var (
	// ErrNodeNotFound indicates an open request for a node absent from the
	// displayed graph.
	ErrNodeNotFound = errors.New("overlay: node not found")

	// ErrEdgeNotFound indicates an open request for an edge absent from the
	// displayed graph.
	ErrEdgeNotFound = errors.New("overlay: edge not found")

	// ErrBoxNotFound indicates a dismissal of an unknown box.
	ErrBoxNotFound = errors.New("overlay: box not found")
)

// Box is one floating annotation, bound to exactly one node ID or one edge
// ID. Anchor is the last-synced layout-space position; Screen is Anchor
// mapped through the transform active at the same sync.
type Box struct {
	// ID is the box's own identity, independent of its binding.
	ID string

	// NodeID is the bound node ("" when edge-bound).
	NodeID string

	// EdgeID is the bound edge ("" when node-bound).
	EdgeID string

	Anchor geometry.Point
	Screen geometry.Point
}

// bindingKey returns the identity the idempotent-open rule dedups on.
func (b *Box) bindingKey() string {
	if b.NodeID != "" {
		return "n:" + b.NodeID
	}
	return "e:" + b.EdgeID
}

// Tracker owns the set of open annotation boxes for one rendered graph.
type Tracker struct {
	boxes map[string]*Box // bindingKey → box
	order []string        // bindingKeys in open order

	// newID mints box identities; replaceable for deterministic tests.
	newID func() string

	// radius supplies the rendered node radius used when anchoring
	// edge-bound boxes, so anchors match what the renderer clips against.
	radius func(*vizgraph.Node) float64
}

// TrackerOption configures a Tracker at construction.
type TrackerOption func(*Tracker)

// WithIDFunc overrides the box ID generator (UUIDv4 by default).
func WithIDFunc(fn func() string) TrackerOption {
	return func(t *Tracker) {
		if fn != nil {
			t.newID = fn
		}
	}
}

// WithRadius overrides the rendered-radius source for edge anchoring.
// The default uses the node's raw size hint.
func WithRadius(fn func(*vizgraph.Node) float64) TrackerOption {
	return func(t *Tracker) {
		if fn != nil {
			t.radius = fn
		}
	}
}

// NewTracker returns an empty tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		boxes:  make(map[string]*Box),
		newID:  uuid.NewString,
		radius: func(n *vizgraph.Node) float64 { return n.Size },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OpenNode opens (or returns) the annotation box bound to the given node.
// Opening a second box for the same node is a no-op returning the existing
// box. The box is anchored immediately from the node's current position
// and the given transform.
func (t *Tracker) OpenNode(g *vizgraph.Graph, id string, tr geometry.Transform) (*Box, error) {
	if _, ok := g.Node(id); !ok {
		return nil, ErrNodeNotFound
	}
	key := "n:" + id
	if existing, ok := t.boxes[key]; ok {
		return existing, nil
	}

	box := &Box{ID: t.newID(), NodeID: id}
	t.boxes[key] = box
	t.order = append(t.order, key)
	t.anchor(box, g, tr)
	return box, nil
}

// OpenEdge opens (or returns) the annotation box bound to the given edge,
// anchored at the edge's label point for its current curve offset.
func (t *Tracker) OpenEdge(g *vizgraph.Graph, id string, tr geometry.Transform) (*Box, error) {
	if _, ok := g.Edge(id); !ok {
		return nil, ErrEdgeNotFound
	}
	key := "e:" + id
	if existing, ok := t.boxes[key]; ok {
		return existing, nil
	}

	box := &Box{ID: t.newID(), EdgeID: id}
	t.boxes[key] = box
	t.order = append(t.order, key)
	t.anchor(box, g, tr)
	return box, nil
}

// Dismiss removes a box by its own ID.
func (t *Tracker) Dismiss(boxID string) error {
	for key, box := range t.boxes {
		if box.ID == boxID {
			t.remove(key)
			return nil
		}
	}
	return ErrBoxNotFound
}

// DismissNode removes the box bound to the given node, if any.
func (t *Tracker) DismissNode(id string) { t.remove("n:" + id) }

// DismissEdge removes the box bound to the given edge, if any.
func (t *Tracker) DismissEdge(id string) { t.remove("e:" + id) }

// Boxes returns the open boxes in open order.
func (t *Tracker) Boxes() []*Box {
	out := make([]*Box, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.boxes[key])
	}
	return out
}

// Count returns the number of open boxes.
func (t *Tracker) Count() int { return len(t.boxes) }

// Sync re-anchors every box against the graph's current coordinates and
// the current transform, and prunes boxes whose bound entity disappeared.
// Call on every simulation tick and every drag delta.
//
// Returns the number of boxes pruned. Complexity: O(B).
func (t *Tracker) Sync(g *vizgraph.Graph, tr geometry.Transform) int {
	var doomed []string
	for key, box := range t.boxes {
		if !t.anchor(box, g, tr) {
			doomed = append(doomed, key)
		}
	}
	for _, key := range doomed {
		t.remove(key)
	}
	return len(doomed)
}

// anchor recomputes one box's layout anchor and screen position; reports
// false when the bound entity no longer exists.
func (t *Tracker) anchor(box *Box, g *vizgraph.Graph, tr geometry.Transform) bool {
	if box.NodeID != "" {
		n, ok := g.Node(box.NodeID)
		if !ok {
			return false
		}
		box.Anchor = geometry.Point{X: n.X, Y: n.Y}
	} else {
		e, ok := g.Edge(box.EdgeID)
		if !ok {
			return false
		}
		src, okS := g.Node(e.From)
		dst, okD := g.Node(e.To)
		if !okS || !okD {
			return false
		}
		box.Anchor = geometry.ResolvePath(src, dst, e, t.radius(dst)).LabelAt
	}

	box.Screen = tr.Apply(box.Anchor)
	return true
}

// remove drops a box by binding key, keeping open order compact.
func (t *Tracker) remove(key string) {
	if _, ok := t.boxes[key]; !ok {
		return
	}
	delete(t.boxes, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}
