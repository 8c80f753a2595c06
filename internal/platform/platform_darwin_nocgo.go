//go:build darwin && !cgo

package platform

// darwinNoCgoPlatform is macOS without the Cocoa bridge: the platform query still says
// macOS, but every drag call fails closed.
type darwinNoCgoPlatform struct{}

var current Platform = darwinNoCgoPlatform{}

func (darwinNoCgoPlatform) Name() string             { return "darwin" }
func (darwinNoCgoPlatform) IsMacOS() bool            { return true }
func (darwinNoCgoPlatform) SupportsNativeDrag() bool { return false }
func (darwinNoCgoPlatform) DragThreshold() float64   { return 3.0 }
