//go:build darwin && cgo

package inputmonitor

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Cocoa
#include <stdint.h>
int DragOut_InstallMonitor(int subID, uintptr_t windowPtr, double *originX, double *originY);
void DragOut_RemoveMonitor(int subID);
*/
import "C"
import (
	"fmt"
	"log"
	"sync"

	"github.com/mmilitzer/dragout/internal/drag"
)

var (
	mu        sync.Mutex
	nextSubID int
	handlers  = make(map[int]drag.Handler)
)

//export DragOut_OnMouseMove
func DragOut_OnMouseMove(subID C.int, x, y C.double) {
	if h := lookup(subID); h != nil {
		h.OnMove(drag.Point{X: float64(x), Y: float64(y)})
	}
}

//export DragOut_OnMouseUp
func DragOut_OnMouseUp(subID C.int) {
	if h := lookup(subID); h != nil {
		h.OnUp()
	}
}

func lookup(subID C.int) drag.Handler {
	mu.Lock()
	defer mu.Unlock()
	return handlers[int(subID)]
}

type subscription struct {
	id     int
	origin drag.Point
	once   sync.Once
}

func (s *subscription) Origin() drag.Point { return s.origin }

func (s *subscription) Cancel() {
	s.once.Do(func() {
		mu.Lock()
		delete(handlers, s.id)
		mu.Unlock()

		C.DragOut_RemoveMonitor(C.int(s.id))
		log.Printf("[inputmonitor] Monitor %d removed", s.id)
	})
}

func subscribeImpl(w drag.Window, h drag.Handler) (drag.Subscription, error) {
	mu.Lock()
	id := nextSubID
	nextSubID++
	handlers[id] = h
	mu.Unlock()

	var ox, oy C.double
	if rc := C.DragOut_InstallMonitor(C.int(id), C.uintptr_t(w), &ox, &oy); rc != 0 {
		mu.Lock()
		delete(handlers, id)
		mu.Unlock()
		return nil, fmt.Errorf("failed to install local event monitor (code %d)", int(rc))
	}

	log.Printf("[inputmonitor] Monitor %d installed for window 0x%x", id, uintptr(w))
	return &subscription{
		id:     id,
		origin: drag.Point{X: float64(ox), Y: float64(oy)},
	}, nil
}
