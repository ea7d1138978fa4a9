package engine

import (
	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/overlay"
)

//-----------------------------------------------------------------------------
// Hover / focus
//-----------------------------------------------------------------------------

// HoverNode marks a node as hovered for the next frame's emphasis pass.
func (e *Engine) HoverNode(id string) { e.do(func() { e.emphasis.HoverNode(id) }) }

// HoverEdge marks an edge as hovered; edge-hover outranks every other
// visual state.
func (e *Engine) HoverEdge(id string) { e.do(func() { e.emphasis.HoverEdge(id) }) }

// ClearHover drops both hover marks.
func (e *Engine) ClearHover() { e.do(func() { e.emphasis.ClearHover() }) }

// Focus enters sticky focus mode on a node until ClearFocus.
func (e *Engine) Focus(id string) { e.do(func() { e.emphasis.Focus(id) }) }

// ClearFocus leaves focus mode.
func (e *Engine) ClearFocus() { e.do(func() { e.emphasis.ClearFocus() }) }

// Focused returns the focused node ID, or "".
func (e *Engine) Focused() string { return e.emphasis.Focused() }

//-----------------------------------------------------------------------------
// Clicks
//-----------------------------------------------------------------------------

// ClickNode reports a node click to the registered consumer. Clicks on
// unknown identities are dropped; clicks arriving mid-tick queue behind it.
func (e *Engine) ClickNode(id string) {
	if !e.graph.HasNode(id) || e.onNodeClick == nil {
		return
	}
	e.do(func() { e.onNodeClick(id) })
}

// ClickEdge reports an edge click to the registered consumer.
func (e *Engine) ClickEdge(id string) {
	if _, ok := e.graph.Edge(id); !ok || e.onEdgeClick == nil {
		return
	}
	e.do(func() { e.onEdgeClick(id) })
}

//-----------------------------------------------------------------------------
// Drag
//-----------------------------------------------------------------------------

// DragStart begins a manual drag of a node. When drag interaction is
// disabled the gesture is silently ignored (nil); a missing simulation is
// reported as ErrNoSimulation.
func (e *Engine) DragStart(id string) error {
	if !e.settings.Interaction.EnableDrag {
		return nil
	}
	if e.sim == nil {
		return ErrNoSimulation
	}
	return e.sim.DragStart(id)
}

// DragMove positions a dragged node at a screen coordinate. The point is
// inverted through the pan/zoom transform into layout space, and every open
// annotation box is re-anchored immediately so boxes track each drag delta,
// not just ticks.
func (e *Engine) DragMove(id string, screenX, screenY float64) error {
	if !e.settings.Interaction.EnableDrag {
		return nil
	}
	if e.sim == nil {
		return ErrNoSimulation
	}
	p := e.transform.Invert(geometry.Point{X: screenX, Y: screenY})
	if err := e.sim.DragMove(id, p.X, p.Y); err != nil {
		return err
	}
	e.overlays.Sync(e.graph, e.transform)
	return nil
}

// DragEnd releases a dragged node; the simulation decides whether the node
// stays pinned (still settling) or returns to free movement (settled).
func (e *Engine) DragEnd(id string) error {
	if !e.settings.Interaction.EnableDrag {
		return nil
	}
	if e.sim == nil {
		return ErrNoSimulation
	}
	return e.sim.DragEnd(id)
}

//-----------------------------------------------------------------------------
// Pan / zoom
//-----------------------------------------------------------------------------

// Pan shifts the viewport by a screen-space delta. Ignored when pan
// interaction is disabled.
func (e *Engine) Pan(dx, dy float64) {
	if !e.settings.Interaction.EnablePan {
		return
	}
	e.do(func() {
		e.transform.TranslateX += dx
		e.transform.TranslateY += dy
		e.overlays.Sync(e.graph, e.transform)
	})
}

// Zoom scales the viewport by factor about a screen-space anchor, so the
// layout point under the cursor stays put. Ignored when zoom interaction is
// disabled or the factor is not positive.
func (e *Engine) Zoom(factor, anchorX, anchorY float64) {
	if !e.settings.Interaction.EnableZoom || factor <= 0 {
		return
	}
	e.do(func() {
		t := e.transform
		t.Scale *= factor
		t.TranslateX = anchorX - (anchorX-t.TranslateX)*factor
		t.TranslateY = anchorY - (anchorY-t.TranslateY)*factor
		e.transform = t
		e.overlays.Sync(e.graph, e.transform)
	})
}

// SetTransform replaces the pan/zoom transform wholesale, e.g. a fit-to-
// viewport action.
func (e *Engine) SetTransform(t geometry.Transform) {
	e.do(func() {
		e.transform = t
		e.overlays.Sync(e.graph, e.transform)
	})
}

//-----------------------------------------------------------------------------
// Annotation boxes
//-----------------------------------------------------------------------------

// OpenNodeBox opens (or returns the already-open) annotation box bound to a
// node.
func (e *Engine) OpenNodeBox(id string) (*overlay.Box, error) {
	return e.overlays.OpenNode(e.graph, id, e.transform)
}

// OpenEdgeBox opens (or returns the already-open) annotation box bound to
// an edge.
func (e *Engine) OpenEdgeBox(id string) (*overlay.Box, error) {
	return e.overlays.OpenEdge(e.graph, id, e.transform)
}

// DismissBox closes a box by its box ID.
func (e *Engine) DismissBox(boxID string) error { return e.overlays.Dismiss(boxID) }
