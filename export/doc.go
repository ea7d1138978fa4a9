// Package export renders a settled frame to a standalone SVG document:
// node circles colored by group, edge paths using the exact straight,
// quadratic-arc and self-loop hairpin geometry of the live renderer,
// arrowheads honoring boundary clipping, and labels rotated along each
// curve's tangent.
//
// The exporter consumes a Frame snapshot and never touches the engine's
// internals, so it can run headless (the `kineto layout` command) or
// alongside a live view.
package export
