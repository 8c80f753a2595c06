// Package nativedrag hands file paths to the operating system's drag
// session API. Only macOS is implemented; other platforms fail closed.
package nativedrag

import "github.com/mmilitzer/dragout/internal/drag"

// Initiator starts OS drag sessions. It satisfies drag.Initiator.
type Initiator struct{}

var _ drag.Initiator = Initiator{}

// New returns the initiator for this platform.
func New() Initiator {
	return Initiator{}
}

// StartDrag begins a native drag of paths, in order, from window w.
func (Initiator) StartDrag(paths []string, w drag.Window) error {
	return startDragImpl(paths, w)
}
