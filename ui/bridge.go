package ui

import (
	"log"

	"github.com/mmilitzer/dragout/internal/drag"
	"github.com/mmilitzer/dragout/internal/inputhook"
	"github.com/mmilitzer/dragout/internal/inputmonitor"
	"github.com/mmilitzer/dragout/internal/nativedrag"
	"github.com/mmilitzer/dragout/internal/platform"
	"github.com/mmilitzer/dragout/pkg/config"
)

// NewBridge builds a drag bridge for this platform from cfg. The returned
// cleanup stops the global hook when one was started.
func NewBridge(cfg *config.Config) (*drag.Bridge, func(), error) {
	armTimeout, err := cfg.ArmTimeoutDuration()
	if err != nil {
		return nil, nil, err
	}

	var (
		source  drag.EventSource
		cleanup = func() {}
	)
	switch cfg.EventSource {
	case config.EventSourceGlobal:
		hookSource := inputhook.New()
		source = hookSource
		cleanup = hookSource.Close
	default:
		source = inputmonitor.New()
	}

	p := platform.Current()
	bridge := drag.NewBridge(drag.Options{
		Platform:   p,
		Source:     source,
		Initiator:  nativedrag.New(),
		Threshold:  cfg.DragThreshold,
		ArmTimeout: armTimeout,
	})

	log.Printf("[ui] Drag bridge ready: platform=%s native=%v source=%s threshold=%.1f arm_timeout=%v",
		p.Name(), p.SupportsNativeDrag(), cfg.EventSource, bridge.Threshold(), armTimeout)
	return bridge, cleanup, nil
}
