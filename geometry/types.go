package geometry

import "math"

// Point is a position in layout or screen space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// PathKind discriminates the three path families an edge can render as.
type PathKind int

const (
	// Straight is the single-segment path of a unique pair edge (offset 0).
	Straight PathKind = iota

	// Quadratic is the arc of one of several parallel edges (offset ≠ 0).
	Quadratic

	// SelfLoop is the cubic hairpin of a self-referential edge.
	SelfLoop
)

// String returns the path-kind name for diagnostics.
func (k PathKind) String() string {
	switch k {
	case Straight:
		return "straight"
	case Quadratic:
		return "quadratic"
	case SelfLoop:
		return "self-loop"
	default:
		return "unknown"
	}
}

// EdgePath is the resolved screen geometry of one edge for one frame.
//
// Start and End are on-curve endpoints (End already shortened to the target
// boundary). Control1 is meaningful for Quadratic and SelfLoop kinds;
// Control2 only for SelfLoop. LabelAt/LabelAngleDeg place the edge label at
// the curve's half-parameter point, rotated along the tangent and flipped
// so text never renders upside-down.
type EdgePath struct {
	Kind PathKind

	Start    Point
	Control1 Point
	Control2 Point
	End      Point

	LabelAt       Point
	LabelAngleDeg float64
}

// Transform is the process-wide 2-D affine pan/zoom transform applied
// uniformly to the rendered layout: screen = layout·Scale + Translate.
type Transform struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// IdentityTransform returns the no-pan, unit-zoom transform.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// Apply maps a layout-space point to screen space.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.TranslateX,
		Y: p.Y*t.Scale + t.TranslateY,
	}
}

// Invert maps a screen-space point back to layout space, the direction
// drag handlers need. A zero scale (never produced by the engine's zoom
// handler) falls back to the identity scale rather than dividing by zero.
func (t Transform) Invert(p Point) Point {
	s := t.Scale
	if math.Abs(s) < Epsilon {
		s = 1
	}
	return Point{
		X: (p.X - t.TranslateX) / s,
		Y: (p.Y - t.TranslateY) / s,
	}
}
