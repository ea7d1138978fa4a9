package vizgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetograph/kineto/vizgraph"
)

// addNode is a small helper building a bare node with just an ID.
func addNode(t *testing.T, g *vizgraph.Graph, id string) *vizgraph.Node {
	t.Helper()
	n := &vizgraph.Node{ID: id, Label: id}
	require.NoError(t, g.AddNode(n), "adding node %q should succeed", id)
	return n
}

// TestAddNode_Validation verifies nil, empty-ID and duplicate rejection.
func TestAddNode_Validation(t *testing.T) {
	g := vizgraph.NewGraph()

	assert.ErrorIs(t, g.AddNode(nil), vizgraph.ErrNilNode, "nil node must error")
	assert.ErrorIs(t, g.AddNode(&vizgraph.Node{}), vizgraph.ErrEmptyNodeID, "empty ID must error")

	addNode(t, g, "a")
	assert.ErrorIs(t, g.AddNode(&vizgraph.Node{ID: "a"}), vizgraph.ErrDuplicateNode,
		"second add of the same ID must error")
	assert.Equal(t, 1, g.NodeCount(), "duplicate add must not grow the graph")
}

// TestAddEdge_EndpointsAndType verifies endpoint and type validation.
func TestAddEdge_EndpointsAndType(t *testing.T) {
	g := vizgraph.NewGraph()
	addNode(t, g, "a")

	_, err := g.AddEdge("a", "missing", "LINK", 1)
	assert.ErrorIs(t, err, vizgraph.ErrNodeNotFound, "missing target must error")

	addNode(t, g, "b")
	_, err = g.AddEdge("a", "b", "", 1)
	assert.ErrorIs(t, err, vizgraph.ErrEmptyEdgeType, "empty type must error")
}

// TestAddEdge_TripleCollapse verifies that re-adding the same
// (from, to, type) triple collapses onto one edge, keeping later metadata.
func TestAddEdge_TripleCollapse(t *testing.T) {
	g := vizgraph.NewGraph()
	addNode(t, g, "x")
	addNode(t, g, "y")

	id1, err := g.AddEdge("x", "y", "LINK", 0.4, vizgraph.WithEdgeCategory("old"))
	require.NoError(t, err)
	id2, err := g.AddEdge("x", "y", "LINK", 0.9, vizgraph.WithEdgeCategory("new"))
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "same triple must reuse the existing edge ID")
	assert.Equal(t, 1, g.EdgeCount(), "same triple must not create a second edge")

	e, ok := g.EdgeByTriple("x", "y", "LINK")
	require.True(t, ok)
	assert.Equal(t, 0.9, e.Weight, "later weight wins")
	assert.Equal(t, "new", e.Category, "later category wins")
}

// TestAddEdge_ParallelAndLoops verifies multi-edges with distinct types and
// self-loops coexist as separate records.
func TestAddEdge_ParallelAndLoops(t *testing.T) {
	g := vizgraph.NewGraph()
	addNode(t, g, "x")
	addNode(t, g, "y")

	_, err := g.AddEdge("x", "y", "A", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("y", "x", "C", 1)
	require.NoError(t, err)
	loopID, err := g.AddEdge("x", "x", "SELF", 1)
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount(), "three parallel edges and one loop expected")

	loop, ok := g.Edge(loopID)
	require.True(t, ok)
	assert.True(t, loop.SelfLoop(), "x→x must be flagged as a self-loop")

	// Parallel edges in both directions share one unordered pair key.
	a, _ := g.EdgeByTriple("x", "y", "A")
	c, _ := g.EdgeByTriple("y", "x", "C")
	assert.Equal(t, a.PairKey(), c.PairKey(), "unordered pair key must ignore direction")
}

// TestRemoveNode_CascadesEdges verifies incident edges disappear with a node.
func TestRemoveNode_CascadesEdges(t *testing.T) {
	g := vizgraph.NewGraph()
	addNode(t, g, "a")
	addNode(t, g, "b")
	addNode(t, g, "c")
	_, _ = g.AddEdge("a", "b", "AB", 1)
	_, _ = g.AddEdge("b", "c", "BC", 1)
	_, _ = g.AddEdge("b", "b", "LOOP", 1)

	require.NoError(t, g.RemoveNode("b"))

	assert.False(t, g.HasNode("b"))
	assert.Equal(t, 0, g.EdgeCount(), "all edges touched node b")
	assert.ErrorIs(t, g.RemoveNode("b"), vizgraph.ErrNodeNotFound, "double remove must error")
}

// TestNeighbors_DeterministicOrder verifies insertion-order edges and
// sorted unique neighbor IDs.
func TestNeighbors_DeterministicOrder(t *testing.T) {
	g := vizgraph.NewGraph()
	for _, id := range []string{"n", "z", "a", "m"} {
		addNode(t, g, id)
	}
	_, _ = g.AddEdge("n", "z", "1", 1)
	_, _ = g.AddEdge("n", "a", "2", 1)
	_, _ = g.AddEdge("m", "n", "3", 1)
	_, _ = g.AddEdge("n", "a", "4", 1) // parallel, distinct type
	_, _ = g.AddEdge("n", "n", "5", 1) // loop, excluded from NeighborIDs

	ids, err := g.NeighborIDs("n")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "z"}, ids, "neighbor IDs must be sorted and unique")

	edges, err := g.Neighbors("n")
	require.NoError(t, err)
	require.Len(t, edges, 5, "parallel edges repeated, loop once")
	assert.Equal(t, "1", edges[0].Type, "insertion order expected")

	_, err = g.NeighborIDs("nope")
	assert.ErrorIs(t, err, vizgraph.ErrNodeNotFound)
}

// TestDegreeAndSizeHints verifies degree counting and the √degree size rule.
func TestDegreeAndSizeHints(t *testing.T) {
	g := vizgraph.NewGraph()
	addNode(t, g, "hub")
	addNode(t, g, "leaf")
	_, _ = g.AddEdge("hub", "leaf", "A", 1)
	_, _ = g.AddEdge("hub", "leaf", "B", 1)
	_, _ = g.AddEdge("hub", "hub", "LOOP", 1)

	deg, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 3, deg, "two parallel edges plus one loop")

	g.RecomputeSizeHints()
	hub, _ := g.Node("hub")
	leaf, _ := g.Node("leaf")
	assert.Greater(t, hub.Size, leaf.Size, "hub must render larger than leaf")
	assert.InDelta(t, vizgraph.DefaultNodeSize+vizgraph.SizeDegreeFactor*1.4142135,
		leaf.Size, 1e-6, "leaf size must follow the √degree rule")
}

// TestFilterAndPrune verifies edge filtering and isolated-node pruning.
func TestFilterAndPrune(t *testing.T) {
	g := vizgraph.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		addNode(t, g, id)
	}
	_, _ = g.AddEdge("a", "b", "KEEP", 1)
	_, _ = g.AddEdge("b", "c", "DROP", 1)

	g.FilterEdges(func(e *vizgraph.Edge) bool { return e.Type == "KEEP" })
	assert.Equal(t, 1, g.EdgeCount())

	g.PruneIsolated(nil)
	assert.False(t, g.HasNode("c"), "c lost its only edge and must be pruned")
	assert.True(t, g.HasNode("a"))
	assert.True(t, g.HasNode("b"))
}

// TestCentroid verifies the placed-node mean and the empty fallback.
func TestCentroid(t *testing.T) {
	g := vizgraph.NewGraph()
	_, _, ok := g.Centroid()
	assert.False(t, ok, "empty graph has no centroid")

	a := addNode(t, g, "a")
	a.X, a.Y, a.Placed = 10, 20, true
	b := addNode(t, g, "b")
	b.X, b.Y, b.Placed = 30, 40, true
	addNode(t, g, "unplaced") // must not disturb the mean

	x, y, ok := g.Centroid()
	require.True(t, ok)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 30.0, y)
}

// TestClearAndReleasePins verifies reset semantics.
func TestClearAndReleasePins(t *testing.T) {
	g := vizgraph.NewGraph(vizgraph.With3D())
	n := addNode(t, g, "a")
	n.Pinned = true
	g.ReleasePins()
	assert.False(t, n.Pinned, "ReleasePins must unpin every node")

	addNode(t, g, "b")
	_, _ = g.AddEdge("a", "b", "X", 1)
	g.Clear()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.True(t, g.Is3D(), "Clear must preserve configuration flags")
}
