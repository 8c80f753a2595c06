package drag

// registry owns the one live monitor per window. Callers hold Bridge.mu.
type registry struct {
	entries map[Window]*monitor
}

func newRegistry() *registry {
	return &registry{entries: make(map[Window]*monitor)}
}

// install makes m the window's monitor and returns the one it replaced.
func (r *registry) install(m *monitor) (prev *monitor) {
	prev = r.entries[m.req.Window]
	r.entries[m.req.Window] = m
	return prev
}

func (r *registry) lookup(w Window) *monitor {
	return r.entries[w]
}

// take removes and returns the window's monitor, if any.
func (r *registry) take(w Window) *monitor {
	m := r.entries[w]
	delete(r.entries, w)
	return m
}

// remove drops m only if it is still the window's current monitor.
func (r *registry) remove(m *monitor) bool {
	if r.entries[m.req.Window] != m {
		return false
	}
	delete(r.entries, m.req.Window)
	return true
}

func (r *registry) drain() []*monitor {
	all := make([]*monitor, 0, len(r.entries))
	for w, m := range r.entries {
		all = append(all, m)
		delete(r.entries, w)
	}
	return all
}

func (r *registry) len() int {
	return len(r.entries)
}
