// Package lifecycle reports when the app moves between foreground and
// background, so armed drags can be dropped when focus is lost.
package lifecycle

// ActivationCallback receives true when the app becomes active and false
// when it resigns active.
type ActivationCallback func(active bool)

// ObserveActivation calls callback on every activation change until the
// returned cleanup function is called.
func ObserveActivation(callback ActivationCallback) (cleanup func(), err error) {
	return observeActivationImpl(callback)
}

// OnResignActive is ObserveActivation for the common case of only caring
// about losing focus.
func OnResignActive(fn func()) (cleanup func(), err error) {
	return ObserveActivation(func(active bool) {
		if !active {
			fn()
		}
	})
}
