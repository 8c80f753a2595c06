// Package platform reports which OS family the binary runs on and what the
// native drag mechanism can do there.
package platform

// Platform describes the native drag capability of the running OS.
type Platform interface {
	// Name is the GOOS-style family name ("darwin", "windows", "linux", ...).
	Name() string
	IsMacOS() bool
	// SupportsNativeDrag is false wherever drag calls must fail closed.
	SupportsNativeDrag() bool
	// DragThreshold is the pointer displacement, in points, past which a
	// press becomes a drag.
	DragThreshold() float64
}

// Current returns the capability for the platform this binary was built for.
func Current() Platform {
	return current
}

// IsMacOS reports whether the binary is running on macOS.
func IsMacOS() bool {
	return current.IsMacOS()
}
