// Package overlay maintains the floating annotation boxes bound to
// specific nodes or edges, keeping them glued to moving graph elements
// through simulation ticks, drags, and pan/zoom changes.
//
// A box stores only the identity of its bound entity — never a position
// snapshot. On every simulation tick, and on every drag delta touching a
// bound entity, the tracker recomputes each box's layout-space anchor (the
// node position, or the edge's label anchor via the geometry package for
// the edge's current curve offset) and maps it through the current pan/zoom
// transform (screen = layout·scale + translate) to obtain render
// coordinates. Reading the anchor fresh each sync is what guarantees a box
// never renders against stale pre-tick coordinates or an earlier transform.
//
// Lifecycle: opening a second box for the same bound identity is a no-op
// returning the existing box; a box is destroyed on explicit dismissal or
// automatically when its bound entity disappears from the displayed graph
// (after a merge or filter).
package overlay
