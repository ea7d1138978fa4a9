package geometry

//-----------------------------------------------------------------------------
// Curve-spacing and clipping constants
//-----------------------------------------------------------------------------

// CurveSpacing is the perpendicular displacement step, in layout units,
// between adjacent parallel edges of one unordered node pair. Offsets are
// assigned symmetrically around zero in multiples of this constant.
const CurveSpacing = 36.0

// ArrowGap is the extra clearance, beyond the target node's radius, left
// between a path endpoint and the node center so arrowheads sit just off
// the node boundary.
const ArrowGap = 2.0

// Epsilon is the degenerate-distance guard: whenever two points are closer
// than this, path construction falls back to midpoint/zero-rotation
// geometry instead of normalizing a near-zero vector.
const Epsilon = 1e-6

//-----------------------------------------------------------------------------
// Self-loop hairpin constants
//-----------------------------------------------------------------------------

// LoopBaseSize is the base radial extent of a self-loop hairpin; the full
// extent is LoopBaseSize*3 + |curve offset|, so stacked loops grow outward.
const LoopBaseSize = 10.0

// LoopSpanDeg is the angular span, in degrees, between the hairpin's two
// on-boundary endpoints.
const LoopSpanDeg = 30.0

// LoopSpreadDeg is the angular spread, in degrees, of the two cubic control
// points on either side of the hairpin's bisector.
const LoopSpreadDeg = 25.0

// LoopStartPerOffsetDeg rotates the whole hairpin proportionally to the
// curve offset (degrees per layout unit of offset), fanning multiple
// self-loops around their node.
const LoopStartPerOffsetDeg = 0.8
