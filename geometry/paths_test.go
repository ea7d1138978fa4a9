package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/vizgraph"
)

const tol = 1e-9

// buildParallel returns a graph holding n parallel x→y edges with distinct
// types plus the edge slice in insertion order.
func buildParallel(t *testing.T, types ...string) []*vizgraph.Edge {
	t.Helper()
	g := vizgraph.NewGraph()
	require.NoError(t, g.AddNode(&vizgraph.Node{ID: "x"}))
	require.NoError(t, g.AddNode(&vizgraph.Node{ID: "y"}))
	for _, typ := range types {
		_, err := g.AddEdge("x", "y", typ, 1)
		require.NoError(t, err)
	}
	return g.Edges()
}

// TestAssignCurveOffsets_Symmetry verifies that offsets of parallel edges
// are symmetric around zero and evenly spaced by CurveSpacing.
func TestAssignCurveOffsets_Symmetry(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		types := make([]string, n)
		for i := range types {
			types[i] = string(rune('A' + i))
		}
		edges := buildParallel(t, types...)
		geometry.AssignCurveOffsets(edges)

		sum := 0.0
		for _, e := range edges {
			sum += e.CurveOffset
		}
		assert.InDelta(t, 0, sum, tol, "offsets of %d parallel edges must sum to zero", n)

		for i := 1; i < n; i++ {
			assert.InDelta(t, geometry.CurveSpacing,
				edges[i].CurveOffset-edges[i-1].CurveOffset, tol,
				"adjacent offsets must differ by the curve-spacing constant")
		}
	}
}

// TestAssignCurveOffsets_Scenario pins the triple-edge case: three edges
// A, B, C between X and Y get offsets {-k, 0, +k}.
func TestAssignCurveOffsets_Scenario(t *testing.T) {
	edges := buildParallel(t, "A", "B", "C")
	geometry.AssignCurveOffsets(edges)

	k := geometry.CurveSpacing
	assert.InDelta(t, -k, edges[0].CurveOffset, tol)
	assert.InDelta(t, 0, edges[1].CurveOffset, tol)
	assert.InDelta(t, +k, edges[2].CurveOffset, tol)
}

// TestAssignCurveOffsets_UniqueAndRecompute verifies the size-1 group rule
// and that recomputation resets stale offsets after the edge set shrinks.
func TestAssignCurveOffsets_UniqueAndRecompute(t *testing.T) {
	edges := buildParallel(t, "A", "B")
	geometry.AssignCurveOffsets(edges)
	require.NotZero(t, edges[0].CurveOffset, "parallel edges must curve")

	// Drop one edge; the survivor must straighten on recompute.
	survivor := edges[:1]
	geometry.AssignCurveOffsets(survivor)
	assert.Zero(t, survivor[0].CurveOffset, "a unique pair edge must have offset 0")
}

// TestStraightPath_BoundaryClipping verifies the endpoint lies at distance
// radius+gap from the target center along the chord.
func TestStraightPath_BoundaryClipping(t *testing.T) {
	s := geometry.Point{X: 0, Y: 0}
	target := geometry.Point{X: 100, Y: 50}
	const r = 8.0

	p := geometry.StraightPath(s, target, r)

	assert.InDelta(t, r+geometry.ArrowGap, p.End.Dist(target), tol,
		"end point must sit radius+gap from the target center")

	// End must lie on the chord: cross product of (T−S) and (End−S) ≈ 0.
	chord := target.Sub(s)
	toEnd := p.End.Sub(s)
	assert.InDelta(t, 0, chord.X*toEnd.Y-chord.Y*toEnd.X, 1e-6,
		"straight clipping must stay on the S→T line")
}

// TestQuadraticPath_TangentClipping verifies the endpoint lies at distance
// radius+gap from the target along the Bézier tangent at parameter 1.
func TestQuadraticPath_TangentClipping(t *testing.T) {
	s := geometry.Point{X: -60, Y: 0}
	target := geometry.Point{X: 60, Y: 0}
	const offset, r = 36.0, 10.0

	p := geometry.QuadraticPath(s, target, offset, r)

	require.Equal(t, geometry.Quadratic, p.Kind)
	assert.InDelta(t, r+geometry.ArrowGap, p.End.Dist(target), tol,
		"end point must sit radius+gap from the target center")

	// End−T must be antiparallel to the arrival tangent T−Control1.
	arrive := target.Sub(p.Control1)
	back := p.End.Sub(target)
	assert.InDelta(t, 0, arrive.X*back.Y-arrive.Y*back.X, 1e-6,
		"shortening must follow the Bézier tangent at parameter 1")
	assert.Less(t, arrive.X*back.X+arrive.Y*back.Y, 0.0,
		"shortening must back off toward the control point")

	// Control point = chord midpoint displaced perpendicularly by offset.
	assert.InDelta(t, 0, p.Control1.X, tol, "midpoint x for a horizontal chord")
	assert.InDelta(t, offset, math.Abs(p.Control1.Y), tol,
		"control displaced by the curve offset")
}

// TestQuadraticPath_LabelAnchor verifies the label sits at the Bézier
// half-parameter point with chord-parallel rotation.
func TestQuadraticPath_LabelAnchor(t *testing.T) {
	s := geometry.Point{X: 0, Y: 0}
	target := geometry.Point{X: 100, Y: 0}
	p := geometry.QuadraticPath(s, target, 40, 5)

	// B(0.5) = 0.25·S + 0.5·C + 0.25·T.
	want := s.Scale(0.25).Add(p.Control1.Scale(0.5)).Add(target.Scale(0.25))
	assert.InDelta(t, want.X, p.LabelAt.X, tol)
	assert.InDelta(t, want.Y, p.LabelAt.Y, tol)
	assert.InDelta(t, 0, p.LabelAngleDeg, tol, "horizontal chord, horizontal label")
}

// TestLabelRotation_NeverUpsideDown verifies the 180° flip outside ±90°.
func TestLabelRotation_NeverUpsideDown(t *testing.T) {
	// Right-to-left edge: raw chord angle 180°, must flip to 0°.
	p := geometry.StraightPath(geometry.Point{X: 100, Y: 0}, geometry.Point{}, 5)
	assert.InDelta(t, 0, p.LabelAngleDeg, tol, "180° flips to 0°")

	// Steep downward-left edge: raw −135°, must flip to 45°.
	p = geometry.StraightPath(geometry.Point{}, geometry.Point{X: -100, Y: -100}, 5)
	assert.InDelta(t, 45, p.LabelAngleDeg, tol, "−135° flips to +45°")
}

// TestSelfLoopPath_FanOut verifies that two self-loops with different
// offsets are rotated apart by a predictable multiple of the offset delta.
func TestSelfLoopPath_FanOut(t *testing.T) {
	center := geometry.Point{X: 10, Y: -20}
	const r = 12.0

	a := geometry.SelfLoopPath(center, r, -geometry.CurveSpacing/2)
	b := geometry.SelfLoopPath(center, r, +geometry.CurveSpacing/2)

	assert.Greater(t, a.Start.Dist(b.Start), 1.0,
		"loops with different offsets must not be coincident")

	angle := func(p geometry.Point) float64 {
		return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
	}
	wantDelta := geometry.CurveSpacing * geometry.LoopStartPerOffsetDeg
	assert.InDelta(t, wantDelta, angle(b.Start)-angle(a.Start), 1e-6,
		"start angles must differ by offset·LoopStartPerOffsetDeg")

	// Both endpoints sit exactly on the node boundary.
	for _, p := range []geometry.EdgePath{a, b} {
		assert.InDelta(t, r, p.Start.Dist(center), tol, "hairpin start on boundary")
		assert.InDelta(t, r, p.End.Dist(center), tol, "hairpin end on boundary")
		assert.Greater(t, p.Control1.Dist(center), r, "controls pushed outward")
		assert.Greater(t, p.Control2.Dist(center), r, "controls pushed outward")
	}
}

// TestSelfLoopPath_ExtentGrowsWithOffset verifies stacked loops grow outward.
func TestSelfLoopPath_ExtentGrowsWithOffset(t *testing.T) {
	center := geometry.Point{}
	near := geometry.SelfLoopPath(center, 10, 0)
	far := geometry.SelfLoopPath(center, 10, 72)

	assert.Greater(t, far.Control1.Dist(center), near.Control1.Dist(center),
		"larger |offset| must push the hairpin further out")
}

// TestDegenerateDistanceGuard verifies coincident endpoints fall back to
// midpoint/zero-rotation geometry instead of dividing by zero.
func TestDegenerateDistanceGuard(t *testing.T) {
	at := geometry.Point{X: 3, Y: 4}

	for _, p := range []geometry.EdgePath{
		geometry.StraightPath(at, at, 5),
		geometry.QuadraticPath(at, at, 40, 5),
	} {
		assert.Equal(t, at, p.Start)
		assert.Equal(t, at, p.End)
		assert.Equal(t, at, p.LabelAt)
		assert.Zero(t, p.LabelAngleDeg)
	}
}

// TestResolvePath_KindSelection verifies the family dispatch from live
// node/edge records.
func TestResolvePath_KindSelection(t *testing.T) {
	src := &vizgraph.Node{ID: "a", X: 0, Y: 0, Size: 6}
	dst := &vizgraph.Node{ID: "b", X: 100, Y: 0, Size: 6}

	p := geometry.ResolvePath(src, dst, &vizgraph.Edge{From: "a", To: "b"}, dst.Size)
	assert.Equal(t, geometry.Straight, p.Kind)

	p = geometry.ResolvePath(src, dst, &vizgraph.Edge{From: "a", To: "b", CurveOffset: 36}, dst.Size)
	assert.Equal(t, geometry.Quadratic, p.Kind)

	p = geometry.ResolvePath(src, src, &vizgraph.Edge{From: "a", To: "a"}, src.Size)
	assert.Equal(t, geometry.SelfLoop, p.Kind)
}

// TestResolvePath_ClipsAtCallerRadius verifies the clipping radius comes
// from the caller, not the raw node size hint, so rendered scaling carries
// through to path ends.
func TestResolvePath_ClipsAtCallerRadius(t *testing.T) {
	src := &vizgraph.Node{ID: "a", X: 0, Y: 0, Size: 6}
	dst := &vizgraph.Node{ID: "b", X: 100, Y: 0, Size: 6}

	p := geometry.ResolvePath(src, dst, &vizgraph.Edge{From: "a", To: "b"}, 18)
	assert.InDelta(t, 100-(18+geometry.ArrowGap), p.End.X, tol,
		"straight path must stop at the caller-supplied radius")

	loop := geometry.ResolvePath(src, src, &vizgraph.Edge{From: "a", To: "a"}, 18)
	assert.InDelta(t, 18, loop.Start.Dist(geometry.Point{}), tol,
		"self-loop endpoints must sit on the caller-supplied boundary")
}

// TestTransform_RoundTrip verifies Apply/Invert are inverses and that the
// screen mapping is layout·scale + translate.
func TestTransform_RoundTrip(t *testing.T) {
	tr := geometry.Transform{TranslateX: 120, TranslateY: -45, Scale: 1.75}
	layout := geometry.Point{X: 33, Y: -7}

	screen := tr.Apply(layout)
	assert.InDelta(t, 33*1.75+120, screen.X, tol)
	assert.InDelta(t, -7*1.75-45, screen.Y, tol)

	back := tr.Invert(screen)
	assert.InDelta(t, layout.X, back.X, tol)
	assert.InDelta(t, layout.Y, back.Y, tol)

	id := geometry.IdentityTransform()
	assert.Equal(t, layout, id.Apply(layout), "identity transform must be a no-op")
}
