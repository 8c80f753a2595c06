package drag

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mmilitzer/dragout/internal/goroutineid"
	"github.com/mmilitzer/dragout/internal/logging"
	"github.com/mmilitzer/dragout/internal/platform"
)

// Options configures a Bridge.
type Options struct {
	Platform  platform.Platform
	Source    EventSource
	Initiator Initiator

	// Threshold is the drag threshold in points. Zero uses the platform's.
	Threshold float64

	// ArmTimeout bounds how long a monitor may stay armed. An event or State
	// call after the deadline tears the monitor down without a drag. Zero
	// disables the bound.
	ArmTimeout time.Duration

	// Now is the clock used for arm expiry. Defaults to time.Now.
	Now func() time.Time
}

// Bridge is the entry point the UI layer calls to start native file drags.
// IPC bindings may call it from any goroutine, and event callbacks may arrive
// on an event source's own goroutine; all of it is serialised with mu.
type Bridge struct {
	platform   platform.Platform
	source     EventSource
	initiator  Initiator
	threshold  float64
	armTimeout time.Duration
	now        func() time.Time

	mu       sync.Mutex
	monitors *registry
}

// NewBridge creates a Bridge. A nil Platform means platform.Current().
func NewBridge(opts Options) *Bridge {
	p := opts.Platform
	if p == nil {
		p = platform.Current()
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = p.DragThreshold()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Bridge{
		platform:   p,
		source:     opts.Source,
		initiator:  opts.Initiator,
		threshold:  threshold,
		armTimeout: opts.ArmTimeout,
		now:        now,
		monitors:   newRegistry(),
	}
}

// IsMacOS reports whether the bridge runs on macOS.
func (b *Bridge) IsMacOS() bool {
	return b.platform.IsMacOS()
}

// Threshold returns the effective drag threshold in points.
func (b *Bridge) Threshold() float64 {
	return b.threshold
}

// PrepareDrag arms a drag of path from window w. It returns true once the
// monitor is live; the OS drag itself starts later, when the pointer crosses
// the drag threshold. Any unfired monitor for w is torn down first.
func (b *Bridge) PrepareDrag(path string, w Window) bool {
	if err := b.arm([]string{path}, w); err != nil {
		log.Printf("[drag] PrepareDrag %q rejected: %v", path, err)
		return false
	}
	return true
}

// StartFileDrag arms a single-file drag. It is PrepareDrag under another
// name: the visible drag begins only after the pointer moves past the
// threshold, not when this call returns.
func (b *Bridge) StartFileDrag(path string, w Window) bool {
	return b.PrepareDrag(path, w)
}

// StartMultiFileDrag hands paths to the OS drag mechanism immediately,
// bypassing the arm/monitor path. Order is preserved. Any armed monitor for w
// is torn down so a later pointer move cannot start a second drag.
func (b *Bridge) StartMultiFileDrag(paths []string, w Window) bool {
	if err := b.start(paths, w); err != nil {
		log.Printf("[drag] StartMultiFileDrag of %d path(s) failed: %v", len(paths), err)
		return false
	}
	return true
}

// Cancel tears down the armed monitor for w, if any.
func (b *Bridge) Cancel(w Window) {
	b.mu.Lock()
	m := b.monitors.take(w)
	if m != nil {
		m.state = Idle
	}
	b.mu.Unlock()

	if m != nil {
		log.Printf("[drag] session %s cancelled", m.req.ID)
		m.uninstall()
	}
}

// CancelAll tears down every armed monitor. The app calls it when it loses
// focus, since a blurred window will never see the mouse-up.
func (b *Bridge) CancelAll() {
	b.mu.Lock()
	all := b.monitors.drain()
	for _, m := range all {
		m.state = Idle
	}
	b.mu.Unlock()

	for _, m := range all {
		m.uninstall()
	}
	if len(all) > 0 {
		log.Printf("[drag] cancelled %d armed monitor(s)", len(all))
	}
}

// State reports the monitor state for w. An armed monitor past its
// ArmTimeout is torn down here and reported as Idle.
func (b *Bridge) State(w Window) State {
	b.mu.Lock()
	m := b.monitors.lookup(w)
	if m == nil {
		b.mu.Unlock()
		return Idle
	}
	if m.state != Armed || !b.expiredLocked(m) {
		state := m.state
		b.mu.Unlock()
		return state
	}
	b.monitors.remove(m)
	m.state = Idle
	b.mu.Unlock()

	log.Printf("[drag] session %s expired after %v without a drag", m.req.ID, b.armTimeout)
	m.uninstall()
	return Idle
}

func (b *Bridge) gate() error {
	if !b.platform.SupportsNativeDrag() || b.initiator == nil {
		return ErrUnsupported
	}
	return nil
}

func (b *Bridge) arm(paths []string, w Window) error {
	if err := b.gate(); err != nil {
		return err
	}
	if b.source == nil {
		return ErrUnsupported
	}
	req, err := NewRequest(paths, w)
	if err != nil {
		return err
	}

	b.Cancel(w)

	m := &monitor{
		bridge: b,
		req:    req,
		state:  Armed,
	}
	sub, err := b.source.Subscribe(w, m)
	if err != nil {
		return fmt.Errorf("failed to install event monitor: %w", err)
	}
	m.sub = sub
	m.armedAt = b.now()

	b.mu.Lock()
	prev := b.monitors.install(m)
	if prev != nil {
		prev.state = Idle
	}
	b.mu.Unlock()

	// Only reachable if another arm for w raced this one.
	prev.uninstall()

	origin := sub.Origin()
	log.Printf("[drag] session %s armed: window=0x%x origin=(%.1f,%.1f) paths=%d goroutine=%d",
		req.ID, uintptr(w), origin.X, origin.Y, len(req.Paths), goroutineid.Get())
	return nil
}

func (b *Bridge) start(paths []string, w Window) error {
	if err := b.gate(); err != nil {
		return err
	}
	req, err := NewRequest(paths, w)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	b.Cancel(w)
	return b.initiate(req)
}

func (b *Bridge) initiate(req *Request) error {
	defer logging.Trace("drag.initiate", "session=%s paths=%d goroutine=%d", req.ID, len(req.Paths), goroutineid.Get())()

	if err := b.initiator.StartDrag(req.Paths, req.Window); err != nil {
		return fmt.Errorf("session %s: OS drag failed: %w", req.ID, err)
	}
	log.Printf("[drag] session %s handed %d path(s) to the OS", req.ID, len(req.Paths))
	return nil
}

func (b *Bridge) handleMove(m *monitor, p Point) {
	b.mu.Lock()
	if b.monitors.lookup(m.req.Window) != m || m.state != Armed {
		b.mu.Unlock()
		return
	}
	if b.expiredLocked(m) {
		b.monitors.remove(m)
		m.state = Idle
		b.mu.Unlock()

		log.Printf("[drag] session %s expired after %v without a drag", m.req.ID, b.armTimeout)
		m.uninstall()
		return
	}
	// The origin is read per event: a source may only learn the mouse-down
	// position after subscribing.
	if p.DistanceTo(m.sub.Origin()) <= b.threshold {
		b.mu.Unlock()
		return
	}
	m.state = Firing
	b.mu.Unlock()

	b.fire(m)

	b.mu.Lock()
	b.monitors.remove(m)
	m.state = Idle
	b.mu.Unlock()

	m.uninstall()
}

func (b *Bridge) handleUp(m *monitor) {
	b.mu.Lock()
	if b.monitors.lookup(m.req.Window) != m || m.state != Armed {
		b.mu.Unlock()
		return
	}
	b.monitors.remove(m)
	m.state = Idle
	b.mu.Unlock()

	log.Printf("[drag] session %s released before threshold, no drag", m.req.ID)
	m.uninstall()
}

// fire runs the initiator for an armed request. The outcome is logged and
// otherwise dropped: the monitor goes back to Idle either way.
func (b *Bridge) fire(m *monitor) {
	if err := m.req.Validate(); err != nil {
		log.Printf("[drag] session %s not started: %v", m.req.ID, err)
		return
	}
	if err := b.initiate(m.req); err != nil {
		log.Printf("[drag] %v", err)
	}
}

func (b *Bridge) expiredLocked(m *monitor) bool {
	return b.armTimeout > 0 && b.now().Sub(m.armedAt) > b.armTimeout
}
