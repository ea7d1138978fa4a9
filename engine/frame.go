package engine

import (
	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/highlight"
	"github.com/kinetograph/kineto/overlay"
	"github.com/kinetograph/kineto/simulation"
)

// FrameNode is one node as a renderer should paint it this tick.
type FrameNode struct {
	ID     string
	Label  string
	Group  string
	Pinned bool

	// Pos is the layout-space center; Screen is Pos through the current
	// pan/zoom transform.
	Pos    geometry.Point
	Screen geometry.Point

	// Radius is the rendered radius after the visual node-size setting.
	Radius float64

	Emphasis highlight.NodeEmphasis
}

// FrameEdge is one edge with its resolved path for this tick. Edges whose
// endpoints are missing from the displayed graph are omitted from the frame
// rather than reported as errors.
type FrameEdge struct {
	ID     string
	From   string
	To     string
	Type   string
	Weight float64

	// Path is in layout space; apply Frame.Transform to reach the screen.
	Path geometry.EdgePath

	// Width is the stroke width after the link-width setting, the edge
	// weight and any hover widening.
	Width float64

	ShowArrow bool

	Emphasis highlight.EdgeEmphasis
}

// Frame is the complete rendered output of one tick: positions, paths,
// label placement, emphasis and overlay box screen coordinates, all
// computed from the same tick's coordinates.
type Frame struct {
	Tick  int
	State simulation.State
	Alpha float64

	Transform geometry.Transform

	Nodes []FrameNode
	Edges []FrameEdge

	// Boxes are the open annotation boxes, re-anchored this tick.
	Boxes []*overlay.Box

	// ShowLabels is false when the settings hide labels or the oversized-
	// graph degradation is active.
	ShowLabels bool

	// Degraded reports that the graph crossed the size threshold and
	// expensive visual effects should stay off.
	Degraded bool
}
