package clock

// Group collects the handles owned by one entity so they can be cancelled
// together on teardown.
type Group struct {
	handles   []*Handle
	cancelled bool
}

// Track adds h to the group. If the group was already cancelled, h is
// cancelled straight away.
func (g *Group) Track(h *Handle) *Handle {
	if h == nil {
		return nil
	}
	if g.cancelled {
		h.Cancel()
		return h
	}
	if len(g.handles) >= 32 {
		g.prune()
	}
	g.handles = append(g.handles, h)
	return h
}

// Cancel cancels every tracked handle and every handle tracked later.
func (g *Group) Cancel() {
	g.cancelled = true
	for _, h := range g.handles {
		h.Cancel()
	}
	g.handles = nil
}

// Cancelled reports whether Cancel was called. Recurring tasks check it
// before rescheduling themselves.
func (g *Group) Cancelled() bool {
	return g.cancelled
}

// Active returns the number of tracked handles that may still fire.
func (g *Group) Active() int {
	n := 0
	for _, h := range g.handles {
		if h.Active() {
			n++
		}
	}
	return n
}

func (g *Group) prune() {
	kept := g.handles[:0]
	for _, h := range g.handles {
		if h.Active() {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(g.handles); i++ {
		g.handles[i] = nil
	}
	g.handles = kept
}
