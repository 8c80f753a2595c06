package logging

import (
	"fmt"
	"log"
	"time"
)

// Trace logs entry to and exit from a call that runs on the UI thread, with
// its duration. Anything slow here stalls event dispatch.
//
//	defer logging.Trace("StartDrag", "paths=%d", len(paths))()
func Trace(op string, format string, args ...any) func() {
	t0 := time.Now()
	log.Printf("[trace] %s ENTER %s", op, fmt.Sprintf(format, args...))
	return func() {
		log.Printf("[trace] %s EXIT  dur=%v", op, time.Since(t0))
	}
}
