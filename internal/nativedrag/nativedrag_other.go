//go:build !darwin || !cgo

package nativedrag

import "github.com/mmilitzer/dragout/internal/drag"

// startDragImpl is not supported without the Cocoa bridge.
func startDragImpl(paths []string, w drag.Window) error {
	return drag.ErrUnsupported
}
