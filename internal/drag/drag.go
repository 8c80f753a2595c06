// Package drag arms, monitors and starts outbound native file drags.
//
// A drag is armed on mouse-down with Bridge.PrepareDrag. The armed monitor
// watches the window's pointer events through an EventSource and, once the
// pointer has travelled past the drag threshold, hands the file paths to the
// Initiator and uninstalls itself. A mouse-up before that point cancels the
// drag. At most one monitor is live per window; arming again replaces it.
package drag

import "math"

// Window is an opaque native window handle (an NSWindow pointer on macOS).
// This package never dereferences it; zero is treated as invalid.
type Window uintptr

// Point is a pointer position in the event source's coordinate space.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Handler receives the pointer events an armed monitor cares about.
type Handler interface {
	OnMove(p Point)
	OnUp()
}

// Subscription is one installed observer of a window's input events.
type Subscription interface {
	// Origin is the pointer position at the moment of subscription.
	Origin() Point
	// Cancel uninstalls the observer. It must be safe to call more than once.
	Cancel()
}

// EventSource installs input-event observers scoped to a window.
type EventSource interface {
	Subscribe(w Window, h Handler) (Subscription, error)
}

// Initiator hands file paths to the OS drag mechanism.
type Initiator interface {
	StartDrag(paths []string, w Window) error
}
