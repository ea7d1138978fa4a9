package simulation

// DragStart begins a manual drag of the given node. While the drag is
// active the integrator never moves the node; DragMove writes its position
// directly.
func (s *Sim) DragStart(id string) error {
	if _, ok := s.byID[id]; !ok {
		return ErrNodeNotFound
	}
	s.dragged[id] = struct{}{}
	return nil
}

// DragMove sets the dragged node's layout position directly, bypassing the
// integrator's velocity, and — with physics enabled — holds energy at the
// sustaining level so the rest of the graph reacts live. A stopped
// simulation resumes Running for the duration of the drag.
func (s *Sim) DragMove(id string, x, y float64) error {
	n, ok := s.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	if !s.isDragged(id) {
		return ErrNotDragging
	}

	n.X, n.Y = x, y
	n.VX, n.VY = 0, 0
	n.Placed = true

	if s.config().Enabled {
		if s.alpha < AlphaDrag {
			s.alpha = AlphaDrag
		}
		if s.state == Stopped || s.state == Settling {
			s.state = Running
		}
	}
	return nil
}

// DragEnd releases the drag. The node's position is frozen (pinned) unless
// the simulation has already fully settled, in which case it returns to
// free movement — the sticky-pin rule: a just-placed node must not drift
// the moment the user lets go mid-simulation.
func (s *Sim) DragEnd(id string) error {
	n, ok := s.byID[id]
	if !ok {
		return ErrNodeNotFound
	}
	if !s.isDragged(id) {
		return ErrNotDragging
	}
	delete(s.dragged, id)

	n.Pinned = s.state != Stopped
	return nil
}
