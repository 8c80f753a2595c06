package platform

import (
	"runtime"
	"testing"
)

func TestCurrentMatchesGOOS(t *testing.T) {
	p := Current()
	if p.Name() != runtime.GOOS {
		t.Errorf("Expected name %q, got %q", runtime.GOOS, p.Name())
	}

	wantMac := runtime.GOOS == "darwin"
	if p.IsMacOS() != wantMac {
		t.Errorf("IsMacOS() = %v on %s", p.IsMacOS(), runtime.GOOS)
	}
	if IsMacOS() != p.IsMacOS() {
		t.Error("package-level IsMacOS disagrees with Current()")
	}
}

func TestNativeDragFailsClosedOffMacOS(t *testing.T) {
	p := Current()
	if !p.IsMacOS() && p.SupportsNativeDrag() {
		t.Errorf("native drag reported as supported on %s", p.Name())
	}
}

func TestDragThresholdPositive(t *testing.T) {
	if th := Current().DragThreshold(); th <= 0 {
		t.Errorf("Expected positive drag threshold, got %v", th)
	}
}
