// Package geometry computes screen-space curves for rendered edges and maps
// layout coordinates through the pan/zoom transform.
//
// Everything in this package is a pure function of node positions, curve
// offsets and node radii — no state, no allocation beyond the returned
// structs — so the renderer can call it every simulation tick.
//
// Three path families are produced:
//
//   - Straight paths for a unique edge between a pair: the segment S→T,
//     shortened at the T end by radius+gap so the line (and any arrowhead)
//     stops at the node boundary rather than under it.
//   - Quadratic arcs for parallel edges: the control point is the chord
//     midpoint displaced perpendicularly by the edge's curve offset, and the
//     shortening at the T end follows the Bézier tangent at parameter 1,
//     not the straight chord.
//   - Cubic self-loop hairpins: the path leaves and re-enters the same node
//     boundary, rotated around the node by the curve offset so several
//     loops on one node fan out.
//
// Curve offsets themselves are assigned by AssignCurveOffsets whenever the
// edge set changes — they depend only on how many edges share an unordered
// node pair, never on node positions, so they are not recomputed per tick.
//
// Label placement: every path carries the Bézier point at parameter 0.5 as
// the label anchor and the tangent angle there as the label rotation, flipped
// by 180° whenever the raw angle leaves [-90°, 90°] so text never renders
// upside-down.
//
// Degenerate inputs (coincident endpoints, zero-length tangents) fall back
// to midpoint/zero-rotation geometry; nothing in this package returns an
// error or divides by zero.
package geometry
