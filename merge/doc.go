// Package merge combines a newly-fetched subgraph fragment with the
// currently displayed graph without destabilizing the running layout.
//
// Two load modes exist:
//
//   - Replace: discard the existing graph and show only the fragment — a new
//     search replacing the canvas.
//   - Append: union the fragment into the displayed graph — "add to graph".
//
// Dedup rules: node identity is the string ID; edge identity is the
// (from, to, type) triple, so the same semantic edge re-fetched with
// different category or weight collapses onto one rendered edge keeping the
// later fetch's metadata. Merging the same fragment twice in append mode is
// therefore a no-op the second time.
//
// New-node placement: a truly new node appended onto a laid-out graph is
// never dropped at the origin. It spawns at the centroid of all currently
// placed nodes plus a small random jitter, so a freshly injected cluster
// cannot trigger a runaway repulsion cascade across the whole layout. Nodes
// carrying an explicit position hint keep it.
//
// Edges referencing nodes that exist in neither the fragment nor the
// displayed graph are silently skipped, mirroring the engine-wide
// missing-referenced-entity rule.
//
// After every merge the package refreshes the derived state that depends on
// the full edge set: curve offsets (geometry.AssignCurveOffsets) and
// degree-derived size hints. The Result tells the caller whether the merge
// preserved an existing layout, which the engine maps to a reduced-energy
// simulation restart instead of a full-energy one.
package merge
