package simulation

import "math"

// Tick advances the simulation one discrete step.
//
// Behavior:
//  1. Stopped simulations no-op (synchronous halt guarantees hold).
//  2. The tick-time config is read through the config source; a disabled
//     physics switch stops the simulation without firing the settled signal
//     twice.
//  3. Seeding assigns spiral positions to unplaced nodes, then runs.
//  4. Forces (repulsion, link, centering, collision) write velocities; the
//     integrator applies friction and moves every non-pinned, non-dragged
//     node.
//  5. Energy decays geometrically; crossing AlphaSettling reports Settling,
//     crossing AlphaMin stops and fires the settled signal exactly once.
//
// Returns the post-tick state. Complexity: O(V² + E) per tick (pairwise
// repulsion dominates).
func (s *Sim) Tick() State {
	if s.state == Stopped {
		return s.state
	}

	cfg := s.config()
	if !cfg.Enabled {
		s.stop(true)
		return s.state
	}

	if s.state == Seeding {
		s.seedPositions()
	}

	s.applyRepulsion(cfg)
	s.applyLinks(cfg)
	s.applyCentering(cfg)
	s.integrate(cfg)
	s.applyCollision()

	s.ticks++
	s.alpha *= 1 - s.alphaDecay
	switch {
	case s.alpha <= AlphaMin:
		s.stop(true)
	case s.alpha <= AlphaSettling:
		s.state = Settling
	default:
		s.state = Running
	}
	return s.state
}

// Stop halts the simulation synchronously without a settled signal: the
// graph-replace and teardown path. Subsequent ticks are no-ops, so a new
// simulation can be seeded without two instances mutating one node array.
func (s *Sim) Stop() {
	s.stop(false)
}

// stop transitions to Stopped, optionally firing the settled signal.
func (s *Sim) stop(settled bool) {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	s.alpha = 0
	if settled && s.onSettle != nil {
		s.onSettle()
	}
}

// Reheat injects fixed mid-level energy and resumes ticking from the
// graph's current positions. Legal only from Stopped; any other state
// returns ErrNotStopped.
func (s *Sim) Reheat() error {
	if s.state != Stopped {
		return ErrNotStopped
	}
	s.alpha = AlphaReheat
	s.alphaDecay = AlphaDecay
	s.state = Running
	return nil
}

// seedPositions places every unplaced node on a deterministic phyllotaxis
// spiral around the viewport center, then leaves Seeding. Placed nodes
// (merge case) are untouched.
func (s *Sim) seedPositions() {
	i := 0
	for _, n := range s.nodes {
		if n.Placed {
			i++
			continue
		}
		radius := seedRadiusStep * math.Sqrt(float64(i)+0.5)
		angle := float64(i) * goldenAngle
		n.X = s.centerX + radius*math.Cos(angle)
		n.Y = s.centerY + radius*math.Sin(angle)
		if s.threeD {
			n.Z = seedRadiusStep * math.Sin(float64(i))
		}
		n.Placed = true
		i++
	}
	s.state = Running
}

// integrate applies friction and advances positions by velocity. Pinned
// and dragged nodes hold still (their velocity is also bled off so a later
// release does not catapult them).
func (s *Sim) integrate(cfg Config) {
	for _, n := range s.nodes {
		n.VX *= cfg.Friction
		n.VY *= cfg.Friction
		n.VZ *= cfg.Friction

		if n.Pinned || s.isDragged(n.ID) {
			n.VX, n.VY, n.VZ = 0, 0, 0
			continue
		}
		n.X += n.VX
		n.Y += n.VY
		if s.threeD {
			n.Z += n.VZ
		}
	}
}

// isDragged reports whether the node is under an active drag.
func (s *Sim) isDragged(id string) bool {
	_, ok := s.dragged[id]
	return ok
}
