//go:build darwin && cgo

package lifecycle

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Cocoa -framework Foundation
int DragOut_StartObservingActivation(int callbackID);
void DragOut_StopObservingActivation(int callbackID);
*/
import "C"
import (
	"fmt"
	"log"
	"sync"
)

var (
	mu             sync.Mutex
	nextCallbackID int
	callbacks      = make(map[int]ActivationCallback)
)

//export DragOut_OnActivationChange
func DragOut_OnActivationChange(callbackID C.int, active C.int) {
	mu.Lock()
	callback, exists := callbacks[int(callbackID)]
	mu.Unlock()

	if !exists {
		log.Printf("[lifecycle] Warning: callback %d not found", callbackID)
		return
	}
	callback(active != 0)
}

func observeActivationImpl(callback ActivationCallback) (cleanup func(), err error) {
	mu.Lock()
	cbID := nextCallbackID
	nextCallbackID++
	callbacks[cbID] = callback
	mu.Unlock()

	if rc := C.DragOut_StartObservingActivation(C.int(cbID)); rc != 0 {
		mu.Lock()
		delete(callbacks, cbID)
		mu.Unlock()
		return nil, fmt.Errorf("failed to start observing activation events")
	}
	log.Printf("[lifecycle] Activation observer %d started", cbID)

	var once sync.Once
	return func() {
		once.Do(func() {
			C.DragOut_StopObservingActivation(C.int(cbID))
			mu.Lock()
			delete(callbacks, cbID)
			mu.Unlock()
			log.Printf("[lifecycle] Activation observer %d stopped", cbID)
		})
	}, nil
}
