package drag

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Request is one drag session's payload: the ordered file paths and the
// window the drag starts from. It lives from arming until the OS drag call
// returns.
type Request struct {
	// ID correlates the log lines of one session.
	ID     string
	Paths  []string
	Window Window
}

// NewRequest checks the shape of a drag payload. It does not touch the
// filesystem; that happens in Validate, right before the OS call.
func NewRequest(paths []string, w Window) (*Request, error) {
	if w == 0 {
		return nil, ErrInvalidWindow
	}
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	for _, p := range paths {
		if p == "" {
			return nil, ErrNoPaths
		}
		if !filepath.IsAbs(p) {
			return nil, fmt.Errorf("%w: %s", ErrRelativePath, p)
		}
	}

	return &Request{
		ID:     uuid.NewString(),
		Paths:  append([]string(nil), paths...),
		Window: w,
	}, nil
}

// Validate re-checks that every path still names an existing, readable
// regular file. Time passes between mouse-down and the actual drag, so this
// runs at drag start rather than at arm time.
func (r *Request) Validate() error {
	for _, p := range r.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("cannot stat %s: %w", p, err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotRegularFile, p)
		}
		if err := checkReadable(p); err != nil {
			return fmt.Errorf("file not readable: %s: %w", p, err)
		}
	}
	return nil
}
