package goroutineid

import "testing"

func TestGetStableWithinGoroutine(t *testing.T) {
	a, b := Get(), Get()
	if a == 0 {
		t.Fatal("Expected non-zero goroutine ID")
	}
	if a != b {
		t.Errorf("Expected same ID on the same goroutine, got %d and %d", a, b)
	}
}

func TestGetDiffersAcrossGoroutines(t *testing.T) {
	mine := Get()
	other := make(chan uint64)
	go func() { other <- Get() }()

	if theirs := <-other; theirs == mine {
		t.Errorf("Expected different IDs, both were %d", mine)
	}
}
