package drag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakePlatform struct {
	mac       bool
	supported bool
	threshold float64
}

func (p fakePlatform) Name() string             { return "fake" }
func (p fakePlatform) IsMacOS() bool            { return p.mac }
func (p fakePlatform) SupportsNativeDrag() bool { return p.supported }
func (p fakePlatform) DragThreshold() float64   { return p.threshold }

var macPlatform = fakePlatform{mac: true, supported: true, threshold: 3}

type fakeSub struct {
	src       *fakeSource
	w         Window
	h         Handler
	origin    Point
	cancelled bool
}

func (s *fakeSub) Origin() Point { return s.origin }

func (s *fakeSub) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	s.src.cancels++
}

// fakeSource stands in for the OS input-event stream. Every subscription
// stays in subs so tests can deliver events to stale observers too.
type fakeSource struct {
	origin  Point
	subs    []*fakeSub
	cancels int
	err     error
}

func (s *fakeSource) Subscribe(w Window, h Handler) (Subscription, error) {
	if s.err != nil {
		return nil, s.err
	}
	sub := &fakeSub{src: s, w: w, h: h, origin: s.origin}
	s.subs = append(s.subs, sub)
	return sub, nil
}

// live returns the uncancelled subscriptions for w.
func (s *fakeSource) live(w Window) []*fakeSub {
	var out []*fakeSub
	for _, sub := range s.subs {
		if sub.w == w && !sub.cancelled {
			out = append(out, sub)
		}
	}
	return out
}

// move delivers a pointer move to every subscription for w, stale or not,
// the way an OS would if a monitor had leaked.
func (s *fakeSource) move(w Window, x, y float64) {
	for _, sub := range append([]*fakeSub(nil), s.subs...) {
		if sub.w == w && !sub.cancelled {
			sub.h.OnMove(Point{X: x, Y: y})
		}
	}
}

func (s *fakeSource) up(w Window) {
	for _, sub := range append([]*fakeSub(nil), s.subs...) {
		if sub.w == w && !sub.cancelled {
			sub.h.OnUp()
		}
	}
}

type dragCall struct {
	paths []string
	w     Window
}

type fakeInitiator struct {
	calls []dragCall
	err   error
}

func (i *fakeInitiator) StartDrag(paths []string, w Window) error {
	i.calls = append(i.calls, dragCall{paths: append([]string(nil), paths...), w: w})
	return i.err
}

var errOSDrag = errors.New("drag session refused")

func newTestBridge(p fakePlatform) (*Bridge, *fakeSource, *fakeInitiator) {
	src := &fakeSource{origin: Point{X: 100, Y: 100}}
	initiator := &fakeInitiator{}
	b := NewBridge(Options{
		Platform:  p,
		Source:    src,
		Initiator: initiator,
	})
	return b, src, initiator
}

// writeFiles creates readable files in a temp dir and returns their paths.
func writeFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte("payload"), 0600); err != nil {
			t.Fatalf("Failed to create %s: %v", p, err)
		}
		paths = append(paths, p)
	}
	return paths
}
