//go:build !darwin || !cgo

package inputmonitor

import (
	"fmt"

	"github.com/mmilitzer/dragout/internal/drag"
)

func subscribeImpl(w drag.Window, h drag.Handler) (drag.Subscription, error) {
	return nil, fmt.Errorf("local event monitor: %w", drag.ErrUnsupported)
}
