package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinetograph/kineto/highlight"
	"github.com/kinetograph/kineto/vizgraph"
)

// pathGraph builds a 4-node path a—b—c—d and returns the edge IDs.
func pathGraph(t *testing.T) (*vizgraph.Graph, map[string]string) {
	t.Helper()
	g := vizgraph.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(&vizgraph.Node{ID: id}))
	}
	edges := map[string]string{}
	for _, pair := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}} {
		id, err := g.AddEdge(pair[0], pair[1], "REL", 1)
		require.NoError(t, err)
		edges[pair[0]+pair[1]] = id
	}
	return g, edges
}

// TestNeutral verifies the default: everything full opacity, base stroke.
func TestNeutral(t *testing.T) {
	g, _ := pathGraph(t)
	var c highlight.Controller

	res := c.Resolve(g)
	for id, n := range res.Nodes {
		assert.Equal(t, highlight.FullOpacity, n.Opacity, "node %s neutral", id)
	}
	for id, e := range res.Edges {
		assert.Equal(t, highlight.FullOpacity, e.Opacity, "edge %s neutral", id)
		assert.Equal(t, highlight.BaseStroke, e.StrokeScale, "edge %s neutral stroke", id)
	}
}

// TestNodeHover verifies the hovered node and direct neighbors stay full
// while the rest dims to the light level, incident edges widening.
func TestNodeHover(t *testing.T) {
	g, edges := pathGraph(t)
	var c highlight.Controller
	c.HoverNode("b")

	res := c.Resolve(g)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["b"].Opacity)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["a"].Opacity, "direct neighbor")
	assert.Equal(t, highlight.FullOpacity, res.Nodes["c"].Opacity, "direct neighbor")
	assert.Equal(t, highlight.LightDim, res.Nodes["d"].Opacity, "two hops away dims light")

	assert.Equal(t, highlight.HoverNeighborStroke, res.Edges[edges["ab"]].StrokeScale,
		"incident edge widens on node-hover")
	assert.Equal(t, highlight.LightDim, res.Edges[edges["cd"]].Opacity)
}

// TestNodeHover_NeighborsDisabled verifies the highlightNeighbors setting
// confines emphasis to the hovered node itself.
func TestNodeHover_NeighborsDisabled(t *testing.T) {
	g, _ := pathGraph(t)
	var c highlight.Controller
	c.SetHighlightNeighbors(false)
	c.HoverNode("b")

	res := c.Resolve(g)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["b"].Opacity)
	assert.Equal(t, highlight.LightDim, res.Nodes["a"].Opacity,
		"neighbors dim when the spread is disabled")
}

// TestFocus verifies the sticky heavy dim and base-width emphasized edges.
func TestFocus(t *testing.T) {
	g, edges := pathGraph(t)
	var c highlight.Controller
	c.Focus("b")

	res := c.Resolve(g)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["b"].Opacity)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["c"].Opacity, "direct neighbor visible")
	assert.Equal(t, highlight.HeavyDim, res.Nodes["d"].Opacity, "focus dims heavy")

	assert.Equal(t, highlight.FullOpacity, res.Edges[edges["ab"]].Opacity)
	assert.Equal(t, highlight.BaseStroke, res.Edges[edges["ab"]].StrokeScale,
		"focus leaves emphasized edges at base width, only opacity changes")
	assert.Equal(t, highlight.HeavyDim, res.Edges[edges["cd"]].Opacity)

	// Sticky: hover comes and goes, focus survives.
	c.HoverNode("d")
	c.ClearHover()
	assert.Equal(t, "b", c.Focused())
	c.ClearFocus()
	assert.Empty(t, c.Focused())
}

// TestFocusVsHoverDimLevels verifies focus dim is an order of magnitude
// stronger than hover dim.
func TestFocusVsHoverDimLevels(t *testing.T) {
	assert.LessOrEqual(t, highlight.HeavyDim*10, highlight.LightDim,
		"focus must read as background, not a near-tie with hover")
}

// TestEdgeHoverWinsForEdges verifies the top precedence rule: under
// simultaneous edge-hover and focus, the edge-hover rule decides every
// edge while focus still decides the nodes.
func TestEdgeHoverWinsForEdges(t *testing.T) {
	g, edges := pathGraph(t)
	var c highlight.Controller
	c.Focus("a")
	c.HoverEdge(edges["cd"])

	res := c.Resolve(g)

	// Edges: hovered edge full + double width, all others light dim —
	// regardless of focus.
	assert.Equal(t, highlight.FullOpacity, res.Edges[edges["cd"]].Opacity)
	assert.Equal(t, highlight.HoverEdgeStroke, res.Edges[edges["cd"]].StrokeScale)
	assert.Equal(t, highlight.LightDim, res.Edges[edges["ab"]].Opacity,
		"focus-emphasized edge still dims light under edge-hover")

	// Nodes: focus keeps deciding — heavier dim wins for non-neighbors.
	assert.Equal(t, highlight.FullOpacity, res.Nodes["a"].Opacity)
	assert.Equal(t, highlight.FullOpacity, res.Nodes["b"].Opacity, "focus neighbor")
	assert.Equal(t, highlight.HeavyDim, res.Nodes["c"].Opacity,
		"focus's heavy dim outranks edge-hover for nodes")
}

// TestFocusOutranksNodeHover verifies simultaneous node-hover and focus:
// the heavier focus dim wins for nodes.
func TestFocusOutranksNodeHover(t *testing.T) {
	g, _ := pathGraph(t)
	var c highlight.Controller
	c.Focus("a")
	c.HoverNode("d")

	res := c.Resolve(g)
	assert.Equal(t, highlight.HeavyDim, res.Nodes["d"].Opacity,
		"hovered node outside the focus neighborhood dims heavy")
	assert.Equal(t, highlight.FullOpacity, res.Nodes["a"].Opacity)
}

// TestPrune verifies stale hover/focus references drop after the bound
// entities leave the graph.
func TestPrune(t *testing.T) {
	g, edges := pathGraph(t)
	var c highlight.Controller
	c.Focus("d")
	c.HoverEdge(edges["cd"])

	require.NoError(t, g.RemoveNode("d")) // removes node d and edge cd
	c.Prune(g)

	assert.Empty(t, c.Focused(), "focus on a removed node must clear")
	res := c.Resolve(g)
	for id, e := range res.Edges {
		assert.Equal(t, highlight.FullOpacity, e.Opacity,
			"edge %s must return to neutral after prune", id)
	}
}
