// Package vizgraph defines the displayed-graph model for the visualization
// engine: Node, Edge, and the Graph container that the simulation, geometry,
// highlight and overlay layers all share.
//
// The model is deliberately renderer-shaped rather than algorithm-shaped:
//
//   - Nodes carry mutable layout coordinates (X, Y, optionally Z), velocity
//     components the physics integrator writes between ticks, a degree-derived
//     size hint, and a pinned flag excluding them from physics-driven movement.
//   - Edges carry a relationship-type label, a category tag, a numeric weight
//     and a derived curve offset (zero for a unique edge between a pair,
//     nonzero when parallel edges share the same unordered pair). Self-edges
//     (From == To) use different geometry and are queried via Edge.SelfLoop().
//   - Parallel edges between the same endpoints are first-class, but the
//     (From, To, Type) triple is unique: re-adding the same semantic edge
//     collapses onto the existing record, keeping the later metadata.
//
// Ownership model: the Graph exclusively owns its nodes and edges; the
// simulation borrows the same *Node records (never copies), so tick updates
// mutate exactly the objects the renderer reads. The engine is single-threaded
// and frame-driven — only the tick handler and explicit interaction handlers
// mutate the graph, always on the same goroutine — so, unlike a general
// concurrent graph store, this container takes no locks.
//
// Iteration is deterministic: Nodes() and Edges() return insertion order,
// NeighborIDs() returns sorted unique IDs.
//
// Errors:
//
//	ErrNilNode        - node pointer is nil.
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - AddNode called for an ID already present.
//	ErrNodeNotFound   - referenced node does not exist.
//	ErrEdgeNotFound   - referenced edge does not exist.
//	ErrEmptyEdgeType  - edge relationship type is the empty string.
package vizgraph
