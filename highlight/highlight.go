package highlight

import "github.com/kinetograph/kineto/vizgraph"

//-----------------------------------------------------------------------------
// Emphasis levels
//-----------------------------------------------------------------------------

const (
	// FullOpacity is the neutral/emphasized opacity.
	FullOpacity = 1.0

	// LightDim is the hover dim level for de-emphasized elements.
	LightDim = 0.3

	// HeavyDim is the focus dim level — an order of magnitude more
	// transparent than LightDim, so focus reads as "background", not as a
	// near-tie with hover.
	HeavyDim = 0.03

	// BaseStroke is the neutral stroke-width multiplier.
	BaseStroke = 1.0

	// HoverEdgeStroke doubles the hovered edge's stroke width.
	HoverEdgeStroke = 2.0

	// HoverNeighborStroke widens edges incident to a hovered node.
	HoverNeighborStroke = 1.5
)

// NodeEmphasis is the per-node visual adjustment for one frame.
type NodeEmphasis struct {
	Opacity float64
}

// EdgeEmphasis is the per-edge visual adjustment for one frame.
type EdgeEmphasis struct {
	Opacity     float64
	StrokeScale float64
}

// Resolution is the full emphasis map for one frame, keyed by node ID and
// edge ID.
type Resolution struct {
	Nodes map[string]NodeEmphasis
	Edges map[string]EdgeEmphasis
}

// Controller holds the interaction state feeding the per-frame resolution:
// transient hover (node or edge) and the sticky focus node.
//
// The zero value is a valid neutral controller with neighbor highlighting
// enabled.
type Controller struct {
	hoverNode string
	hoverEdge string
	focusNode string

	// neighborsOff disables the neighbor spread of node-hover (the
	// interaction.highlightNeighbors setting, inverted so the zero value
	// keeps the default behavior).
	neighborsOff bool
}

// HoverNode records the node under the pointer ("" clears).
func (c *Controller) HoverNode(id string) { c.hoverNode = id }

// HoverEdge records the edge under the pointer ("" clears). Edge-hover
// outranks every other state for edges.
func (c *Controller) HoverEdge(id string) { c.hoverEdge = id }

// ClearHover drops both hover states, leaving focus untouched.
func (c *Controller) ClearHover() { c.hoverNode, c.hoverEdge = "", "" }

// Focus enters sticky focus mode on the given node; it survives hover
// changes until ClearFocus.
func (c *Controller) Focus(id string) { c.focusNode = id }

// ClearFocus leaves focus mode.
func (c *Controller) ClearFocus() { c.focusNode = "" }

// Focused returns the sticky focus node ID ("" when not in focus mode).
func (c *Controller) Focused() string { return c.focusNode }

// SetHighlightNeighbors toggles the neighbor spread of node-hover.
func (c *Controller) SetHighlightNeighbors(enabled bool) { c.neighborsOff = !enabled }

// Prune drops any state referencing entities no longer in the graph
// (after a merge or filter).
func (c *Controller) Prune(g *vizgraph.Graph) {
	if c.hoverNode != "" && !g.HasNode(c.hoverNode) {
		c.hoverNode = ""
	}
	if c.focusNode != "" && !g.HasNode(c.focusNode) {
		c.focusNode = ""
	}
	if c.hoverEdge != "" {
		if _, ok := g.Edge(c.hoverEdge); !ok {
			c.hoverEdge = ""
		}
	}
}

// Resolve computes the emphasis of every node and edge for one frame.
//
// Precedence, per element class:
//
//	edges: edge-hover > focus > node-hover > neutral
//	nodes: focus > edge-hover (endpoints) > node-hover > neutral
//
// so that simultaneous edge-hover and focus let edge-hover decide all edges
// while focus keeps deciding the nodes.
//
// Complexity: O(V + E) per frame.
func (c *Controller) Resolve(g *vizgraph.Graph) Resolution {
	res := Resolution{
		Nodes: make(map[string]NodeEmphasis, g.NodeCount()),
		Edges: make(map[string]EdgeEmphasis, g.EdgeCount()),
	}

	c.resolveNodes(g, res.Nodes)
	c.resolveEdges(g, res.Edges)
	return res
}

// resolveNodes fills the per-node opacity map.
func (c *Controller) resolveNodes(g *vizgraph.Graph, out map[string]NodeEmphasis) {
	switch {
	case c.focusNode != "" && g.HasNode(c.focusNode):
		visible := c.neighborhood(g, c.focusNode)
		for _, n := range g.Nodes() {
			if _, ok := visible[n.ID]; ok {
				out[n.ID] = NodeEmphasis{Opacity: FullOpacity}
			} else {
				out[n.ID] = NodeEmphasis{Opacity: HeavyDim}
			}
		}

	case c.hoverEdge != "":
		e, ok := g.Edge(c.hoverEdge)
		for _, n := range g.Nodes() {
			if ok && (n.ID == e.From || n.ID == e.To) {
				out[n.ID] = NodeEmphasis{Opacity: FullOpacity}
			} else {
				out[n.ID] = NodeEmphasis{Opacity: LightDim}
			}
		}

	case c.hoverNode != "" && g.HasNode(c.hoverNode):
		visible := c.neighborhood(g, c.hoverNode)
		for _, n := range g.Nodes() {
			if _, ok := visible[n.ID]; ok {
				out[n.ID] = NodeEmphasis{Opacity: FullOpacity}
			} else {
				out[n.ID] = NodeEmphasis{Opacity: LightDim}
			}
		}

	default:
		for _, n := range g.Nodes() {
			out[n.ID] = NodeEmphasis{Opacity: FullOpacity}
		}
	}
}

// resolveEdges fills the per-edge opacity/stroke map.
func (c *Controller) resolveEdges(g *vizgraph.Graph, out map[string]EdgeEmphasis) {
	switch {
	case c.hoverEdge != "":
		for _, e := range g.Edges() {
			if e.ID == c.hoverEdge {
				out[e.ID] = EdgeEmphasis{Opacity: FullOpacity, StrokeScale: HoverEdgeStroke}
			} else {
				out[e.ID] = EdgeEmphasis{Opacity: LightDim, StrokeScale: BaseStroke}
			}
		}

	case c.focusNode != "" && g.HasNode(c.focusNode):
		// Focus changes opacity only: emphasized edges keep base width.
		for _, e := range g.Edges() {
			if e.From == c.focusNode || e.To == c.focusNode {
				out[e.ID] = EdgeEmphasis{Opacity: FullOpacity, StrokeScale: BaseStroke}
			} else {
				out[e.ID] = EdgeEmphasis{Opacity: HeavyDim, StrokeScale: BaseStroke}
			}
		}

	case c.hoverNode != "" && g.HasNode(c.hoverNode):
		for _, e := range g.Edges() {
			if e.From == c.hoverNode || e.To == c.hoverNode {
				out[e.ID] = EdgeEmphasis{Opacity: FullOpacity, StrokeScale: HoverNeighborStroke}
			} else {
				out[e.ID] = EdgeEmphasis{Opacity: LightDim, StrokeScale: BaseStroke}
			}
		}

	default:
		for _, e := range g.Edges() {
			out[e.ID] = EdgeEmphasis{Opacity: FullOpacity, StrokeScale: BaseStroke}
		}
	}
}

// neighborhood returns the emphasized set around an anchor node: itself
// plus, unless neighbor highlighting is disabled, its direct neighbors.
func (c *Controller) neighborhood(g *vizgraph.Graph, anchor string) map[string]struct{} {
	visible := map[string]struct{}{anchor: {}}
	if c.neighborsOff {
		return visible
	}
	ids, err := g.NeighborIDs(anchor)
	if err != nil {
		return visible
	}
	for _, id := range ids {
		visible[id] = struct{}{}
	}
	return visible
}
