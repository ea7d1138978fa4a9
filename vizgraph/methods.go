package vizgraph

import (
	"math"
	"sort"
)

//-----------------------------------------------------------------------------
// Size-hint derivation
//-----------------------------------------------------------------------------

// DefaultNodeSize is the rendered radius of a degree-zero node.
const DefaultNodeSize = 6.0

// SizeDegreeFactor scales the contribution of connectivity degree to a
// node's rendered radius. Square-root damping keeps hub nodes prominent
// without letting them dominate the viewport.
const SizeDegreeFactor = 2.5

// Nodes returns all nodes in insertion order. O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order. O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		out = append(out, g.edges[id])
	}
	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns every edge incident to id, in insertion order; loops
// appear once, parallel edges repeated.
//
// Complexity: O(E) — edge sets stay small enough in a rendered graph that
// scanning insertion order beats re-sorting adjacency buckets.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	var out []*Edge
	for _, edgeID := range g.edgeOrder {
		e := g.edges[edgeID]
		if e.From == id || e.To == id {
			out = append(out, e)
		}
	}
	return out, nil
}

// NeighborIDs returns the unique, sorted IDs adjacent to id (excluding id
// itself, even in the presence of self-loops).
//
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	seen := make(map[string]struct{})
	for to := range g.adjacency[id] {
		if to != id {
			seen[to] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for to := range seen {
		out = append(out, to)
	}
	sort.Strings(out)
	return out, nil
}

// Degree returns the total number of incident edges (self-loops count once).
// O(deg(v)).
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	total := 0
	for _, byEdge := range g.adjacency[id] {
		total += len(byEdge)
	}
	// Self-loop edge IDs appear only under adjacency[id][id], already once.
	return total, nil
}

// RecomputeSizeHints refreshes every node's Size from its current
// connectivity degree: Size = DefaultNodeSize + SizeDegreeFactor·√degree.
// Call after any merge or filter changes the edge set. O(V + E).
func (g *Graph) RecomputeSizeHints() {
	for _, id := range g.nodeOrder {
		deg, _ := g.Degree(id) // id is known to exist
		g.nodes[id].Size = DefaultNodeSize + SizeDegreeFactor*math.Sqrt(float64(deg))
	}
}

//-----------------------------------------------------------------------------
// Filtering and pruning
//-----------------------------------------------------------------------------

// FilterEdges removes every edge failing the predicate. O(E).
func (g *Graph) FilterEdges(keep func(*Edge) bool) {
	var doomed []string
	for _, id := range g.edgeOrder {
		if !keep(g.edges[id]) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		_ = g.RemoveEdge(id)
	}
}

// FilterNodes removes every node failing the predicate, along with its
// incident edges. O(V + E).
func (g *Graph) FilterNodes(keep func(*Node) bool) {
	var doomed []string
	for _, id := range g.nodeOrder {
		if !keep(g.nodes[id]) {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		_ = g.RemoveNode(id)
	}
}

// PruneIsolated removes nodes left with no incident edges, the cleanup pass
// after a visibility-filter change makes parts of the graph unreachable.
// Nodes in the keep set survive even when isolated. O(V).
func (g *Graph) PruneIsolated(keep map[string]struct{}) {
	g.FilterNodes(func(n *Node) bool {
		if _, kept := keep[n.ID]; kept {
			return true
		}
		return len(g.adjacency[n.ID]) > 0
	})
}

//-----------------------------------------------------------------------------
// Layout helpers
//-----------------------------------------------------------------------------

// Centroid returns the mean position of all placed nodes; ok is false when
// no node has been placed yet (empty graph or pre-seed fragment). O(V).
func (g *Graph) Centroid() (x, y float64, ok bool) {
	count := 0
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		if !n.Placed {
			continue
		}
		x += n.X
		y += n.Y
		count++
	}
	if count == 0 {
		return 0, 0, false
	}
	return x / float64(count), y / float64(count), true
}

// ReleasePins clears the pinned flag on every node, returning them all to
// free physics-driven movement. O(V).
func (g *Graph) ReleasePins() {
	for _, id := range g.nodeOrder {
		g.nodes[id].Pinned = false
	}
}
