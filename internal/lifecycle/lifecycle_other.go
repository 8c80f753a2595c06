//go:build !darwin || !cgo

package lifecycle

// observeActivationImpl is a no-op without NSApplication.
func observeActivationImpl(callback ActivationCallback) (cleanup func(), err error) {
	return func() {}, nil
}
