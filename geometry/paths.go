package geometry

import (
	"math"

	"github.com/kinetograph/kineto/vizgraph"
)

// StraightPath computes the single-segment path of a unique pair edge.
//
// Behavior:
//  1. Degenerate guard: if S and T coincide (distance < Epsilon) the path
//     collapses to the shared point with zero label rotation.
//  2. The end point is T shortened by targetRadius+ArrowGap along the unit
//     vector S→T, capped at the chord length, so the segment (and any
//     arrowhead) stops at the node boundary rather than under it.
//  3. Label anchor is the chord midpoint; label rotation is the chord angle
//     flipped into [-90°, 90°].
//
// Complexity: O(1).
func StraightPath(s, t Point, targetRadius float64) EdgePath {
	d := s.Dist(t)
	if d < Epsilon {
		return degeneratePath(Straight, s)
	}

	u := t.Sub(s).Scale(1 / d)
	shorten := math.Min(targetRadius+ArrowGap, d)

	return EdgePath{
		Kind:          Straight,
		Start:         s,
		End:           t.Sub(u.Scale(shorten)),
		LabelAt:       s.Add(t).Scale(0.5),
		LabelAngleDeg: uprightDeg(math.Atan2(u.Y, u.X) * 180 / math.Pi),
	}
}

// QuadraticPath computes the arc of one of several parallel edges.
//
// Behavior:
//  1. Degenerate guard as in StraightPath; |offset| < Epsilon delegates to
//     StraightPath since the arc would be flat anyway.
//  2. Control point = chord midpoint displaced along the perpendicular unit
//     vector by the curve offset.
//  3. The end point is T shortened by targetRadius+ArrowGap along the
//     Bézier tangent at parameter 1 (direction control→T), not along the
//     straight chord, so arrowheads align with the arc's arrival angle.
//  4. Label anchor = the Bézier point at parameter 0.5; the quadratic's
//     tangent there is parallel to the chord, so the label rotation is the
//     chord angle flipped into [-90°, 90°].
//
// Complexity: O(1).
func QuadraticPath(s, t Point, offset, targetRadius float64) EdgePath {
	d := s.Dist(t)
	if d < Epsilon {
		return degeneratePath(Quadratic, s)
	}
	if math.Abs(offset) < Epsilon {
		return StraightPath(s, t, targetRadius)
	}

	u := t.Sub(s).Scale(1 / d)
	perp := Point{X: -u.Y, Y: u.X}
	ctrl := s.Add(t).Scale(0.5).Add(perp.Scale(offset))

	// Tangent at parameter 1 of the quadratic B(S, ctrl, T) points from the
	// control toward T. A zero-length tangent cannot occur here: ctrl is
	// displaced off the chord by a non-Epsilon offset.
	arrive := t.Sub(ctrl)
	arriveLen := math.Hypot(arrive.X, arrive.Y)
	arrive = arrive.Scale(1 / arriveLen)
	shorten := math.Min(targetRadius+ArrowGap, arriveLen)

	return EdgePath{
		Kind:          Quadratic,
		Start:         s,
		Control1:      ctrl,
		End:           t.Sub(arrive.Scale(shorten)),
		LabelAt:       quadPoint(s, ctrl, t, 0.5),
		LabelAngleDeg: uprightDeg(math.Atan2(u.Y, u.X) * 180 / math.Pi),
	}
}

// SelfLoopPath computes the cubic hairpin of a self-referential edge.
//
// Behavior:
//  1. Loop extent = LoopBaseSize·3 + |offset|, so stacked loops grow.
//  2. Start angle is proportional to the offset (LoopStartPerOffsetDeg per
//     layout unit), rotating the whole hairpin so multiple self-loops on
//     one node fan out; the end angle sits LoopSpanDeg further.
//  3. The two endpoints lie on the node boundary at those angles; the two
//     control points are pushed outward to radius+extent along the bisector
//     angle ± LoopSpreadDeg.
//  4. Label anchor = the cubic point at parameter 0.5, rotated along that
//     curve's tangent there, flipped into [-90°, 90°].
//
// Complexity: O(1).
func SelfLoopPath(center Point, radius, offset float64) EdgePath {
	extent := LoopBaseSize*3 + math.Abs(offset)

	startRad := offset * LoopStartPerOffsetDeg * math.Pi / 180
	endRad := startRad + LoopSpanDeg*math.Pi/180
	midRad := (startRad + endRad) / 2
	spreadRad := LoopSpreadDeg * math.Pi / 180

	onBoundary := func(rad float64) Point {
		return center.Add(Point{X: math.Cos(rad), Y: math.Sin(rad)}.Scale(radius))
	}
	outward := func(rad float64) Point {
		return center.Add(Point{X: math.Cos(rad), Y: math.Sin(rad)}.Scale(radius + extent))
	}

	p0 := onBoundary(startRad)
	p3 := onBoundary(endRad)
	c1 := outward(midRad - spreadRad)
	c2 := outward(midRad + spreadRad)

	label := cubicPoint(p0, c1, c2, p3, 0.5)
	tan := cubicTangent(p0, c1, c2, p3, 0.5)
	angle := 0.0
	if math.Hypot(tan.X, tan.Y) >= Epsilon {
		angle = uprightDeg(math.Atan2(tan.Y, tan.X) * 180 / math.Pi)
	}

	return EdgePath{
		Kind:          SelfLoop,
		Start:         p0,
		Control1:      c1,
		Control2:      c2,
		End:           p3,
		LabelAt:       label,
		LabelAngleDeg: angle,
	}
}

// ResolvePath picks the right path family for an edge from the live node
// records: self-loop hairpin when both endpoints coincide, quadratic arc
// when the edge carries a nonzero curve offset, straight segment otherwise.
//
// targetRadius is the RENDERED radius of the target node — the caller's
// responsibility, since visual scaling lives outside the geometry layer.
// Clipping against the raw size hint while painting a scaled circle would
// bury line ends and arrowheads under the node.
func ResolvePath(src, dst *vizgraph.Node, e *vizgraph.Edge, targetRadius float64) EdgePath {
	if e.SelfLoop() {
		return SelfLoopPath(Point{X: src.X, Y: src.Y}, targetRadius, e.CurveOffset)
	}
	s := Point{X: src.X, Y: src.Y}
	t := Point{X: dst.X, Y: dst.Y}
	if math.Abs(e.CurveOffset) < Epsilon {
		return StraightPath(s, t, targetRadius)
	}
	return QuadraticPath(s, t, e.CurveOffset, targetRadius)
}

//-----------------------------------------------------------------------------
// Bézier evaluation helpers
//-----------------------------------------------------------------------------

// quadPoint evaluates the quadratic Bézier (p0, c, p1) at parameter t.
func quadPoint(p0, c, p1 Point, t float64) Point {
	mt := 1 - t
	return p0.Scale(mt * mt).
		Add(c.Scale(2 * mt * t)).
		Add(p1.Scale(t * t))
}

// cubicPoint evaluates the cubic Bézier (p0, c1, c2, p1) at parameter t.
func cubicPoint(p0, c1, c2, p1 Point, t float64) Point {
	mt := 1 - t
	return p0.Scale(mt * mt * mt).
		Add(c1.Scale(3 * mt * mt * t)).
		Add(c2.Scale(3 * mt * t * t)).
		Add(p1.Scale(t * t * t))
}

// cubicTangent evaluates the cubic Bézier derivative at parameter t.
func cubicTangent(p0, c1, c2, p1 Point, t float64) Point {
	mt := 1 - t
	return c1.Sub(p0).Scale(3 * mt * mt).
		Add(c2.Sub(c1).Scale(6 * mt * t)).
		Add(p1.Sub(c2).Scale(3 * t * t))
}

// degeneratePath is the coincident-endpoint fallback: both endpoints and the
// label collapse to the shared point with zero rotation.
func degeneratePath(kind PathKind, at Point) EdgePath {
	return EdgePath{Kind: kind, Start: at, Control1: at, Control2: at, End: at, LabelAt: at}
}

// uprightDeg flips an angle by 180° whenever it falls outside [-90°, 90°]
// so edge labels never render upside-down.
func uprightDeg(deg float64) float64 {
	if deg > 90 {
		return deg - 180
	}
	if deg < -90 {
		return deg + 180
	}
	return deg
}
