// Package engine orchestrates the visualization core: it owns the displayed
// graph, the single active physics simulation, the pan/zoom transform, the
// highlight state and the annotation overlays, and produces one rendered
// Frame per tick.
//
// The engine is single-threaded and frame-driven. Only Tick and the explicit
// interaction methods (hover, focus, click, drag, zoom, pan) mutate shared
// state, and interaction calls arriving while a tick is in flight — for
// example from inside a settle or click callback — are queued and run after
// the tick completes rather than interleaving with it.
//
// Settings live behind a mutable cell the tick handler reads every tick:
// UpdateSettings takes effect on the next tick without tearing down or
// reseeding the simulation. Only replacing the node/edge set itself (Load)
// restarts physics, and a replace synchronously stops the previous
// simulation before the new one is seeded.
package engine
