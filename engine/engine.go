package engine

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/kinetograph/kineto/fragment"
	"github.com/kinetograph/kineto/geometry"
	"github.com/kinetograph/kineto/highlight"
	"github.com/kinetograph/kineto/merge"
	"github.com/kinetograph/kineto/overlay"
	"github.com/kinetograph/kineto/simulation"
	"github.com/kinetograph/kineto/vizgraph"
)

// OversizedThreshold is the node+edge count above which expensive visual
// effects are disabled with a one-time warning. The simulation still runs.
const OversizedThreshold = 2000

// ErrNoSimulation indicates a lifecycle operation with no active simulation
// (empty graph, or nothing loaded yet).
var ErrNoSimulation = errors.New("engine: no active simulation")

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger installs a structured logger. The engine logs sparingly: load
// summaries at debug and the one-time degradation warning at warn. Defaults
// to a discarded logger so the library stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithViewport sets the viewport size; the centering force and the seeding
// spiral aim at its center.
func WithViewport(width, height float64) Option {
	return func(e *Engine) { e.viewportW, e.viewportH = width, height }
}

// WithSettings replaces the default settings at construction.
func WithSettings(s Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// WithRand provides the RNG shared by merge jitter and simulation jiggle.
// Defaults to a fixed seed for reproducible layouts.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// With3D builds the displayed graph with Z coordinates integrated by the
// simulation.
func With3D() Option {
	return func(e *Engine) { e.threeD = true }
}

// Engine is the visualization orchestrator. It is not safe for concurrent
// use: all methods must be called from the single render thread.
type Engine struct {
	graph    *vizgraph.Graph
	sim      *simulation.Sim
	overlays *overlay.Tracker
	emphasis highlight.Controller

	transform geometry.Transform

	// settings is the mutable cell read by the simulation's config source
	// every tick; UpdateSettings swaps it without touching the simulation.
	settings Settings

	viewportW, viewportH float64
	threeD               bool

	logger *slog.Logger
	rng    *rand.Rand

	onNodeClick func(id string)
	onEdgeClick func(id string)
	onSettle    func()

	// inTick guards against interaction handlers interleaving with a tick
	// in flight; queued handlers drain after the frame is built.
	inTick bool
	queue  []func()

	tick           int
	degraded       bool
	degradedWarned bool
}

// New constructs an engine with an empty displayed graph.
func New(opts ...Option) *Engine {
	e := &Engine{
		transform: geometry.IdentityTransform(),
		settings:  DefaultSettings(),
		viewportW: 800,
		viewportH: 600,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:       rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	// Edge-bound box anchors must clip at the same radius the renderer
	// paints, which tracks the live visual settings.
	e.overlays = overlay.NewTracker(overlay.WithRadius(func(n *vizgraph.Node) float64 {
		return e.settings.renderedRadius(n)
	}))
	if e.threeD {
		e.graph = vizgraph.NewGraph(vizgraph.With3D())
	} else {
		e.graph = vizgraph.NewGraph()
	}
	e.emphasis.SetHighlightNeighbors(e.settings.Interaction.HighlightNeighbors)
	return e
}

// Graph exposes the displayed graph. Callers must not mutate it while a
// simulation is active; use Load for structural changes.
func (e *Engine) Graph() *vizgraph.Graph { return e.graph }

// Transform returns the current pan/zoom transform.
func (e *Engine) Transform() geometry.Transform { return e.transform }

// Settings returns the current settings snapshot.
func (e *Engine) Settings() Settings { return e.settings }

// State returns the active simulation's lifecycle state, or Stopped when no
// simulation exists.
func (e *Engine) State() simulation.State {
	if e.sim == nil {
		return simulation.Stopped
	}
	return e.sim.State()
}

// Overlays exposes the annotation tracker for box enumeration.
func (e *Engine) Overlays() *overlay.Tracker { return e.overlays }

// OnNodeClick registers the node-click consumer.
func (e *Engine) OnNodeClick(fn func(id string)) { e.onNodeClick = fn }

// OnEdgeClick registers the edge-click consumer.
func (e *Engine) OnEdgeClick(fn func(id string)) { e.onEdgeClick = fn }

// OnSettle registers the settled signal, fired once each time the active
// simulation's energy decays out.
func (e *Engine) OnSettle(fn func()) { e.onSettle = fn }

// UpdateSettings swaps the settings cell. Every option takes effect on the
// next tick; the simulation is never reseeded by a settings change.
func (e *Engine) UpdateSettings(s Settings) {
	e.do(func() {
		e.settings = s
		e.emphasis.SetHighlightNeighbors(s.Interaction.HighlightNeighbors)
	})
}

//-----------------------------------------------------------------------------
// Lifecycle
//-----------------------------------------------------------------------------

// Load merges a fragment into the displayed graph and restarts physics.
//
// Behavior:
//  1. The previous simulation is stopped synchronously before any node is
//     touched; two simulations never mutate the same array.
//  2. merge.Apply deduplicates identities and seeds new nodes near the
//     existing centroid (append) or reseeds from scratch (replace).
//  3. A merge onto a preserved layout restarts at reduced energy.
//  4. An empty post-merge graph tears the simulation down entirely.
//  5. Highlight state and annotation boxes referring to removed entities
//     are pruned.
func (e *Engine) Load(f fragment.Fragment, mode merge.Mode) (merge.Result, error) {
	if e.sim != nil {
		e.sim.Stop()
		e.sim = nil
	}

	opts := merge.DefaultOptions()
	opts.Rng = e.rng
	res, err := merge.Apply(e.graph, f, mode, opts)
	if err != nil {
		return res, err
	}

	e.emphasis.Prune(e.graph)
	e.overlays.Sync(e.graph, e.transform)
	e.checkOversized()

	if e.graph.NodeCount() == 0 {
		return res, nil
	}

	simOpts := []simulation.SimOption{
		simulation.WithViewportCenter(e.viewportW/2, e.viewportH/2),
		simulation.WithConfigSource(func() simulation.Config { return e.settings.simConfig() }),
		simulation.WithOnSettle(e.fireSettle),
		simulation.WithRand(e.rng),
	}
	if e.threeD {
		simOpts = append(simOpts, simulation.With3D())
	}
	if res.PreservedLayout {
		simOpts = append(simOpts,
			simulation.WithInitialAlpha(simulation.AlphaAppend),
			simulation.WithAlphaDecay(simulation.AlphaDecayFast))
	}
	sim, err := simulation.New(e.graph.Nodes(), e.graph.Edges(), simOpts...)
	if err != nil {
		return res, err
	}
	e.sim = sim

	e.logger.Debug("fragment loaded",
		"mode", mode.String(),
		"nodes", e.graph.NodeCount(),
		"edges", e.graph.EdgeCount(),
		"added_nodes", len(res.AddedNodes),
		"added_edges", len(res.AddedEdges),
		"preserved_layout", res.PreservedLayout)
	return res, nil
}

// Clear discards the displayed graph, its simulation and every open box.
func (e *Engine) Clear() {
	e.do(func() {
		if e.sim != nil {
			e.sim.Stop()
			e.sim = nil
		}
		e.graph.Clear()
		e.emphasis.Prune(e.graph)
		e.overlays.Sync(e.graph, e.transform)
		e.degraded = false
	})
}

// Reheat injects mid-level energy into a settled simulation so the current
// layout can resettle. Only legal from Stopped.
func (e *Engine) Reheat() error {
	if e.sim == nil {
		return ErrNoSimulation
	}
	return e.sim.Reheat()
}

// Stop halts the active simulation without firing the settled signal.
func (e *Engine) Stop() {
	if e.sim != nil {
		e.sim.Stop()
	}
}

// fireSettle forwards the simulation's settled signal through the
// reentrancy queue, so a callback that calls back into the engine cannot
// interleave with the tick that settled it.
func (e *Engine) fireSettle() {
	if e.onSettle == nil {
		return
	}
	fn := e.onSettle
	e.do(fn)
}

// checkOversized flips the degradation flag, warning exactly once.
func (e *Engine) checkOversized() {
	total := e.graph.NodeCount() + e.graph.EdgeCount()
	e.degraded = total > OversizedThreshold
	if e.degraded && !e.degradedWarned {
		e.degradedWarned = true
		e.logger.Warn("graph exceeds size threshold; disabling expensive visual effects",
			"elements", total,
			"threshold", OversizedThreshold)
	}
}

//-----------------------------------------------------------------------------
// Tick
//-----------------------------------------------------------------------------

// Tick advances the simulation one step and builds the rendered frame.
// Within the tick, edge geometry is resolved from the freshly updated
// positions before the highlight and overlay passes read them, so no
// consumer ever sees stale pre-tick coordinates.
func (e *Engine) Tick() Frame {
	e.inTick = true

	if e.sim != nil {
		e.sim.Tick()
	}
	frame := e.buildFrame()

	e.inTick = false
	e.drain()
	return frame
}

// buildFrame assembles the render output from the current positions.
func (e *Engine) buildFrame() Frame {
	s := e.settings
	res := e.emphasis.Resolve(e.graph)

	frame := Frame{
		Tick:       e.tick,
		State:      e.State(),
		Transform:  e.transform,
		Nodes:      make([]FrameNode, 0, e.graph.NodeCount()),
		Edges:      make([]FrameEdge, 0, e.graph.EdgeCount()),
		ShowLabels: s.Visual.ShowLabels && !e.degraded,
		Degraded:   e.degraded,
	}
	if e.sim != nil {
		frame.Alpha = e.sim.Alpha()
	}
	e.tick++

	for _, n := range e.graph.Nodes() {
		pos := geometry.Point{X: n.X, Y: n.Y}
		frame.Nodes = append(frame.Nodes, FrameNode{
			ID:       n.ID,
			Label:    n.Label,
			Group:    n.Group,
			Pinned:   n.Pinned,
			Pos:      pos,
			Screen:   e.transform.Apply(pos),
			Radius:   s.renderedRadius(n),
			Emphasis: res.Nodes[n.ID],
		})
	}

	for _, ed := range e.graph.Edges() {
		src, okS := e.graph.Node(ed.From)
		dst, okD := e.graph.Node(ed.To)
		if !okS || !okD {
			// Endpoint filtered out: the edge sits out this frame.
			continue
		}
		em := res.Edges[ed.ID]
		width := s.Visual.LinkWidth * em.StrokeScale
		if ed.Weight > 0 {
			width *= ed.Weight
		}
		frame.Edges = append(frame.Edges, FrameEdge{
			ID:        ed.ID,
			From:      ed.From,
			To:        ed.To,
			Type:      ed.Type,
			Weight:    ed.Weight,
			Path:      geometry.ResolvePath(src, dst, ed, s.renderedRadius(dst)),
			Width:     width,
			ShowArrow: s.Visual.ShowArrows && !ed.SelfLoop(),
			Emphasis:  em,
		})
	}

	// Overlay pass runs last so boxes read this tick's coordinates.
	e.overlays.Sync(e.graph, e.transform)
	frame.Boxes = e.overlays.Boxes()
	return frame
}

//-----------------------------------------------------------------------------
// Reentrancy
//-----------------------------------------------------------------------------

// do runs an interaction handler immediately, or queues it behind the tick
// currently in flight.
func (e *Engine) do(fn func()) {
	if e.inTick {
		e.queue = append(e.queue, fn)
		return
	}
	fn()
}

// drain runs handlers queued during the last tick, in arrival order. A
// queued handler may queue more work; that also runs before drain returns.
func (e *Engine) drain() {
	for len(e.queue) > 0 {
		fn := e.queue[0]
		e.queue = e.queue[1:]
		fn()
	}
}
