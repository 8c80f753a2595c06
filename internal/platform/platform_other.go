//go:build !darwin

package platform

import "runtime"

const defaultDragThreshold = 4.0

type otherPlatform struct {
	name string
}

var current Platform = otherPlatform{name: runtime.GOOS}

func (p otherPlatform) Name() string           { return p.name }
func (otherPlatform) IsMacOS() bool            { return false }
func (otherPlatform) SupportsNativeDrag() bool { return false }
func (otherPlatform) DragThreshold() float64   { return defaultDragThreshold }
