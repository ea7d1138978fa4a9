// Package kineto is an incremental force-directed graph visualization
// engine: it lays out nodes and edges under a physics simulation, resolves
// curved-edge and self-loop geometry for multi-edges, merges freshly fetched
// subgraph fragments into a running layout without destabilizing it, and
// keeps floating annotation overlays glued to moving graph elements through
// pan/zoom transforms.
//
// 🚀 What is kineto?
//
//	A library-style, in-memory, in-process visualization core:
//		• vizgraph   — displayed-graph model (nodes, multi-edges, self-loops, pins)
//		• geometry   — curve offsets, arc/hairpin paths, label anchors, pan/zoom transform
//		• fragment   — fragment decoding (YAML/JSON) and deterministic topology generators
//		• merge      — incremental append/replace merging with centroid placement
//		• simulation — explicit Seeding→Running→Settling→Stopped lifecycle + forces
//		• highlight  — hover/focus emphasis resolution with strict precedence
//		• overlay    — annotation boxes re-anchored every tick and drag delta
//		• engine     — single-threaded orchestrator producing render frames
//		• export     — SVG snapshots of a settled layout
//
// ✨ Why choose kineto?
//
//   - Deterministic – seeded randomness everywhere a test might look
//   - Single mutator per tick – the simulation and renderer share node records
//   - No I/O of its own – fetching, auth and protocol adapters stay outside
//   - Pure Go library core – the CLI and live viewer live under cmd/
//
// Quick ASCII example:
//
//	    A═══B        three parallel edges A↔B fan out as
//	    A───B        symmetric arcs with offsets {-k, 0, +k}
//	    A═══B
//
// Dive into the package docs for the data flow: fragments → merge →
// simulation ticks → geometry → overlay/highlight → rendered frame.
package kineto
