// Package simulation owns the physics layout: an explicit lifecycle state
// machine over a borrowed node/edge set, with repulsion, link attraction,
// centering and collision forces applied once per animation-frame tick.
//
// Lifecycle:
//
//	Seeding → Running → Settling → Stopped
//	                         ▲        │
//	                         └─Reheat─┘  (only from Stopped)
//
//   - Seeding: the simulation is constructed around the current node/edge
//     arrays. Nodes that already hold positions (the merge case) keep them
//     and the energy starts low; a fresh graph is seeded on a deterministic
//     phyllotaxis spiral around the viewport center at full energy.
//   - Running: all four forces apply every tick; energy (alpha) decays
//     geometrically.
//   - Settling: energy has fallen below the settling band — positions still
//     refine but large-scale motion is over (drives UI affordances like a
//     spinner).
//   - Stopped: energy dropped below the minimum; ticks become no-ops and
//     the settled callback fires exactly once per stop.
//   - Reheat: a manual action injecting fixed mid-level energy, resuming
//     from the graph's current positions, usable only from Stopped.
//
// The simulation borrows the same *vizgraph.Node records the renderer
// paints — tick updates mutate the objects the renderer reads, and nothing
// here copies a position. There is exactly one active simulation per
// displayed graph; the engine stops and discards the old instance before
// seeding a new one.
//
// Manual drag: a dragged node's position is written directly, bypassing the
// integrator, and (with physics enabled) energy is held at a sustaining
// level so the rest of the graph reacts live. On release the node is frozen
// (pinned) unless the simulation had already fully settled — the sticky-pin
// rule — so a just-placed node never drifts the moment the user lets go.
//
// Tunable physics (charge, link distance, gravity, friction, on/off) is
// read through a config source function at tick time, never captured at
// construction: replacing the configuration can never tear down or reseed
// the physics state.
//
// Failure semantics: constructing over an empty node array is refused
// (ErrEmptyGraph) — the engine tears the simulation down instead of running
// it with no effect; an edge whose endpoint is missing from the node array
// (filtered out) is silently excluded from that tick.
package simulation
