//go:build darwin && cgo

package platform

// AppKit starts a drag once the pointer leaves a small hysteresis box around
// the mouse-down point; 3pt matches what NSView-based drag sources observe.
const darwinDragThreshold = 3.0

type darwinPlatform struct{}

var current Platform = darwinPlatform{}

func (darwinPlatform) Name() string             { return "darwin" }
func (darwinPlatform) IsMacOS() bool            { return true }
func (darwinPlatform) SupportsNativeDrag() bool { return true }
func (darwinPlatform) DragThreshold() float64   { return darwinDragThreshold }
