package drag

import "time"

// monitor is the installed observer for one armed request. All fields are
// guarded by the owning Bridge's mutex once the monitor is installed.
type monitor struct {
	bridge  *Bridge
	req     *Request
	sub     Subscription
	armedAt time.Time
	state   State
}

func (m *monitor) OnMove(p Point) {
	m.bridge.handleMove(m, p)
}

func (m *monitor) OnUp() {
	m.bridge.handleUp(m)
}

// uninstall cancels the observer. Must be called without Bridge.mu held:
// event sources may synchronise with their own delivery path in Cancel.
func (m *monitor) uninstall() {
	if m != nil && m.sub != nil {
		m.sub.Cancel()
	}
}
