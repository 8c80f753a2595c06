// Package inputmonitor observes a window's pointer events through an
// AppKit local event monitor. It only sees events dispatched to this
// process, so it needs no accessibility permission.
package inputmonitor

import "github.com/mmilitzer/dragout/internal/drag"

// Source installs NSEvent local monitors. It satisfies drag.EventSource.
type Source struct{}

var _ drag.EventSource = Source{}

// New returns the local monitor source.
func New() Source {
	return Source{}
}

// Subscribe installs a monitor for left-mouse drag and release events in w.
func (Source) Subscribe(w drag.Window, h drag.Handler) (drag.Subscription, error) {
	return subscribeImpl(w, h)
}
