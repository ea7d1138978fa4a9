package simulation

import (
	"math"

	"github.com/kinetograph/kineto/vizgraph"
)

// applyRepulsion accumulates pairwise repulsion into velocities.
//
// Strength scales with each node's structural importance: the size hint is
// degree-derived, so hub/document-like nodes push harder than leaves.
// Exactly coincident pairs are jiggled apart with the seeded RNG before the
// inverse law applies.
//
// Complexity: O(V²) — acceptable at rendered-graph scale, where the node
// count is bounded by what a human can read on screen.
func (s *Sim) applyRepulsion(cfg Config) {
	for i := 0; i < len(s.nodes); i++ {
		a := s.nodes[i]
		for j := i + 1; j < len(s.nodes); j++ {
			b := s.nodes[j]

			dx, dy, dz := b.X-a.X, b.Y-a.Y, 0.0
			if s.threeD {
				dz = b.Z - a.Z
			}
			distSq := dx*dx + dy*dy + dz*dz
			if distSq < minDistance {
				// Degenerate pair: nudge apart along a random direction.
				angle := s.rng.Float64() * 2 * math.Pi
				dx, dy = math.Cos(angle), math.Sin(angle)
				distSq = 1
			}
			dist := math.Sqrt(distSq)

			importance := (sizeOrDefault(a.Size) / vizgraph.DefaultNodeSize) *
				(sizeOrDefault(b.Size) / vizgraph.DefaultNodeSize)
			force := s.alpha * cfg.Charge * importance / distSq
			fx, fy, fz := dx/dist*force, dy/dist*force, dz/dist*force

			a.VX -= fx
			a.VY -= fy
			b.VX += fx
			b.VY += fy
			if s.threeD {
				a.VZ -= fz
				b.VZ += fz
			}
		}
	}
}

// sizeOrDefault substitutes the default radius for nodes whose size hint
// was never derived (degree recomputation has not run yet).
func sizeOrDefault(size float64) float64 {
	if size <= 0 {
		return vizgraph.DefaultNodeSize
	}
	return size
}

// applyLinks pulls connected nodes toward a target distance: full link
// distance for semantically visible edges, half for synthetic/clustering
// edges. Self-loops exert no force; an edge whose endpoint is missing from
// the node array (filtered out) is silently excluded from this tick.
//
// Complexity: O(E).
func (s *Sim) applyLinks(cfg Config) {
	for _, e := range s.edges {
		if e.SelfLoop() {
			continue
		}
		a, okA := s.byID[e.From]
		b, okB := s.byID[e.To]
		if !okA || !okB {
			continue // missing referenced node: skip for this tick
		}

		dx, dy, dz := b.X-a.X, b.Y-a.Y, 0.0
		if s.threeD {
			dz = b.Z - a.Z
		}
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if dist < minDistance {
			dist = minDistance
		}

		target := cfg.LinkDistance
		if e.Category == CategorySynthetic {
			target *= SyntheticDistanceFactor
		}

		correction := (dist - target) / dist * LinkStrength * s.alpha
		fx, fy, fz := dx*correction, dy*correction, dz*correction

		a.VX += fx
		a.VY += fy
		b.VX -= fx
		b.VY -= fy
		if s.threeD {
			a.VZ += fz
			b.VZ -= fz
		}
	}
}

// applyCentering pulls every node weakly toward the viewport center so the
// whole graph drifts into view rather than off-screen.
//
// Complexity: O(V).
func (s *Sim) applyCentering(cfg Config) {
	k := cfg.Gravity * s.alpha
	for _, n := range s.nodes {
		n.VX += (s.centerX - n.X) * k
		n.VY += (s.centerY - n.Y) * k
		if s.threeD {
			n.VZ += -n.Z * k
		}
	}
}

// applyCollision resolves residual overlap between rendered radii by
// displacing positions directly (half the overlap each, pinned and dragged
// nodes absorb none and push the full overlap onto the free partner).
// Collision stays planar: it models screen-space disc overlap.
//
// Complexity: O(V²).
func (s *Sim) applyCollision() {
	for i := 0; i < len(s.nodes); i++ {
		a := s.nodes[i]
		for j := i + 1; j < len(s.nodes); j++ {
			b := s.nodes[j]

			dx, dy := b.X-a.X, b.Y-a.Y
			dist := math.Hypot(dx, dy)
			minSep := sizeOrDefault(a.Size) + sizeOrDefault(b.Size) + CollisionPadding
			if dist >= minSep {
				continue
			}
			if dist < minDistance {
				dx, dy, dist = 1, 0, 1
			}

			overlap := minSep - dist
			ux, uy := dx/dist, dy/dist

			aFixed := a.Pinned || s.isDragged(a.ID)
			bFixed := b.Pinned || s.isDragged(b.ID)
			switch {
			case aFixed && bFixed:
				// Both held: leave them; the user placed them deliberately.
			case aFixed:
				b.X += ux * overlap
				b.Y += uy * overlap
			case bFixed:
				a.X -= ux * overlap
				a.Y -= uy * overlap
			default:
				a.X -= ux * overlap / 2
				a.Y -= uy * overlap / 2
				b.X += ux * overlap / 2
				b.Y += uy * overlap / 2
			}
		}
	}
}
