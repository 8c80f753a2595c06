// Package inputhook feeds drag monitors from a system-wide input hook.
//
// The hook sees every pointer event on the desktop, not just the ones
// dispatched to a given window, so each subscription receives all moves and
// releases. On macOS it requires the accessibility permission.
package inputhook

import (
	"fmt"
	"log"
	"sync"

	hook "github.com/robotn/gohook"

	"github.com/mmilitzer/dragout/internal/drag"
)

// libuiohook numbers the left button 1.
const leftButton = 1

type eventKind int

const (
	kindOther eventKind = iota
	kindPress
	kindMove
	kindRelease
)

// classify maps a hook event to what a drag monitor cares about. gohook's
// mouse constants keep libuiohook's ordinals: MouseHold is the press,
// MouseDown is the release and MouseUp is the click that follows it.
// A button-less MouseMove only counts while the left button is held;
// otherwise it is hover.
func classify(ev hook.Event, pressed bool) eventKind {
	switch ev.Kind {
	case hook.MouseHold:
		if ev.Button == leftButton {
			return kindPress
		}
	case hook.MouseDown, hook.MouseUp:
		if ev.Button == leftButton {
			return kindRelease
		}
	case hook.MouseMove:
		if pressed {
			return kindMove
		}
	case hook.MouseDrag:
		return kindMove
	}
	return kindOther
}

// Source is a drag.EventSource backed by gohook. The hook starts on the
// first subscription (or an explicit Start) and runs until Close.
type Source struct {
	startHook func() chan hook.Event
	endHook   func()

	mu       sync.Mutex
	running  bool
	nextID   int
	subs     map[int]*subscription
	lastDown drag.Point
	pressed  bool // left button held
}

var _ drag.EventSource = (*Source)(nil)

// New creates a Source using the process-wide gohook event loop.
func New() *Source {
	return &Source{
		startHook: hook.Start,
		endHook:   hook.End,
		subs:      make(map[int]*subscription),
	}
}

// Start runs the hook ahead of the first subscription, so the position of
// the mouse-down that precedes arming is already known.
func (s *Source) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked()
}

func (s *Source) startLocked() error {
	if s.running {
		return nil
	}
	evChan := s.startHook()
	if evChan == nil {
		return fmt.Errorf("gohook returned no event channel")
	}
	s.running = true
	go s.pump(evChan)
	log.Printf("[inputhook] Global input hook started")
	return nil
}

// Close stops the hook and drops every subscription.
func (s *Source) Close() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.subs = make(map[int]*subscription)
	s.mu.Unlock()

	s.endHook()
	log.Printf("[inputhook] Global input hook stopped")
}

// Subscribe registers h for pointer moves and left-button releases. The
// subscription's origin is the press currently held. Without one it is set by
// the next press, or by the first drag event if the hook missed the press.
func (s *Source) Subscribe(w drag.Window, h drag.Handler) (drag.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.startLocked(); err != nil {
		return nil, err
	}

	sub := &subscription{
		src:       s,
		id:        s.nextID,
		handler:   h,
		origin:    s.lastDown,
		hasOrigin: s.pressed,
	}
	s.nextID++
	s.subs[sub.id] = sub
	return sub, nil
}

func (s *Source) pump(evChan chan hook.Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[inputhook] PANIC in event pump: %v", r)
		}
	}()

	for ev := range evChan {
		s.dispatch(ev)
	}
	log.Printf("[inputhook] Event channel closed")
}

func (s *Source) dispatch(ev hook.Event) {
	p := drag.Point{X: float64(ev.X), Y: float64(ev.Y)}

	s.mu.Lock()
	kind := classify(ev, s.pressed)
	switch kind {
	case kindOther:
		s.mu.Unlock()
		return
	case kindPress:
		s.lastDown = p
		s.pressed = true
		for _, sub := range s.subs {
			sub.origin = p
			sub.hasOrigin = true
		}
		s.mu.Unlock()
		return
	case kindRelease:
		s.pressed = false
	case kindMove:
		// A drag event means the button is down even if the press was missed.
		s.pressed = true
	}

	targets := make([]*subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if !sub.hasOrigin && kind == kindMove {
			// Baseline for a subscription whose press the hook never saw.
			sub.origin = p
			sub.hasOrigin = true
			continue
		}
		targets = append(targets, sub)
	}
	s.mu.Unlock()

	// Handlers run without s.mu so they may cancel their own subscription.
	for _, sub := range targets {
		switch kind {
		case kindMove:
			sub.handler.OnMove(p)
		case kindRelease:
			sub.handler.OnUp()
		}
	}
}

// Pressed reports whether the hook last saw the left button held.
func (s *Source) Pressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pressed
}

func (s *Source) cancel(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

func (s *Source) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

type subscription struct {
	src       *Source
	id        int
	handler   drag.Handler
	origin    drag.Point
	hasOrigin bool
}

func (sub *subscription) Origin() drag.Point {
	sub.src.mu.Lock()
	defer sub.src.mu.Unlock()
	return sub.origin
}

func (sub *subscription) Cancel() {
	sub.src.cancel(sub.id)
}
