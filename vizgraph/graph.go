package vizgraph

// AddNode inserts a node into the graph.
//
// Behavior:
//  1. Reject nil nodes and empty IDs.
//  2. Reject IDs already present (merging semantics live in the merge
//     package, which updates the existing record in place instead).
//  3. Record insertion order for deterministic iteration.
//
// Complexity: O(1).
func (g *Graph) AddNode(n *Node) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}

	g.nodes[n.ID] = n
	g.nodeOrder = append(g.nodeOrder, n.ID)
	return nil
}

// HasNode reports whether the given node ID is present. O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns the live node record for id. The pointer is shared with the
// simulation and renderer; callers must not retain it past the node's
// removal. O(1).
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// RemoveNode deletes a node and every edge incident to it.
//
// Complexity: O(deg(v) + E_removed) plus an O(V) order-slice compaction.
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrNodeNotFound
	}

	// Collect incident edge IDs from both adjacency directions.
	var doomed []string
	for _, byEdge := range g.adjacency[id] {
		for edgeID := range byEdge {
			doomed = append(doomed, edgeID)
		}
	}
	for _, edgeID := range doomed {
		_ = g.RemoveEdge(edgeID) // incident edges are known to exist
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.nodeOrder = removeFromOrder(g.nodeOrder, id)
	return nil
}

// AddEdge inserts an edge from→to with the given relationship type and
// weight, returning the edge ID.
//
// Behavior:
//  1. Both endpoints must already exist (ErrNodeNotFound otherwise).
//  2. An empty relationship type is rejected (ErrEmptyEdgeType).
//  3. If the (from, to, type) triple is already present, the existing edge
//     is updated in place — weight and any EdgeOption metadata overwrite the
//     old values — and the existing edge ID is returned. The same semantic
//     edge never renders twice.
//  4. Parallel edges with distinct types, and self-loops, are first-class.
//
// CurveOffset is NOT assigned here; call geometry.AssignCurveOffsets after
// the edge set stabilizes.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to, typ string, weight float64, opts ...EdgeOption) (string, error) {
	if !g.HasNode(from) || !g.HasNode(to) {
		return "", ErrNodeNotFound
	}
	if typ == "" {
		return "", ErrEmptyEdgeType
	}

	key := TripleKey(from, to, typ)
	if existingID, ok := g.tripleIndex[key]; ok {
		// Collapse onto the existing record, later metadata wins.
		e := g.edges[existingID]
		e.Weight = weight
		for _, opt := range opts {
			opt(e)
		}
		return existingID, nil
	}

	e := &Edge{
		ID:     g.newEdgeID(),
		From:   from,
		To:     to,
		Type:   typ,
		Weight: weight,
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.tripleIndex[key] = e.ID
	g.link(from, to, e.ID)
	if from != to {
		g.link(to, from, e.ID)
	}
	return e.ID, nil
}

// HasEdge reports whether any edge exists between from and to (either
// direction for adjacency purposes). O(1).
func (g *Graph) HasEdge(from, to string) bool {
	byTo, ok := g.adjacency[from]
	if !ok {
		return false
	}
	return len(byTo[to]) > 0
}

// Edge returns the live edge record for the given edge ID. O(1).
func (g *Graph) Edge(id string) (*Edge, bool) {
	e, ok := g.edges[id]
	return e, ok
}

// EdgeByTriple returns the edge matching the (from, to, type) triple. O(1).
func (g *Graph) EdgeByTriple(from, to, typ string) (*Edge, bool) {
	id, ok := g.tripleIndex[TripleKey(from, to, typ)]
	if !ok {
		return nil, false
	}
	return g.edges[id], true
}

// RemoveEdge deletes an edge by ID. O(1) plus order-slice compaction.
func (g *Graph) RemoveEdge(id string) error {
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(g.edges, id)
	delete(g.tripleIndex, e.TripleKey())
	g.edgeOrder = removeFromOrder(g.edgeOrder, id)
	g.unlink(e.From, e.To, id)
	if e.From != e.To {
		g.unlink(e.To, e.From, id)
	}
	return nil
}

// Clear resets the graph to empty, preserving configuration flags and the
// edge ID counter (IDs never recycle within one Graph). O(1).
func (g *Graph) Clear() {
	g.nodes = make(map[string]*Node)
	g.nodeOrder = nil
	g.edges = make(map[string]*Edge)
	g.edgeOrder = nil
	g.tripleIndex = make(map[string]string)
	g.adjacency = make(map[string]map[string]map[string]struct{})
}

// link records edgeID under adjacency[from][to].
func (g *Graph) link(from, to, edgeID string) {
	byTo, ok := g.adjacency[from]
	if !ok {
		byTo = make(map[string]map[string]struct{})
		g.adjacency[from] = byTo
	}
	byEdge, ok := byTo[to]
	if !ok {
		byEdge = make(map[string]struct{})
		byTo[to] = byEdge
	}
	byEdge[edgeID] = struct{}{}
}

// unlink removes edgeID from adjacency[from][to], pruning empty maps.
func (g *Graph) unlink(from, to, edgeID string) {
	byTo, ok := g.adjacency[from]
	if !ok {
		return
	}
	byEdge, ok := byTo[to]
	if !ok {
		return
	}
	delete(byEdge, edgeID)
	if len(byEdge) == 0 {
		delete(byTo, to)
	}
	if len(byTo) == 0 {
		delete(g.adjacency, from)
	}
}

// removeFromOrder drops the first occurrence of id from an order slice.
func removeFromOrder(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
