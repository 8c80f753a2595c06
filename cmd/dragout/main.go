package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmilitzer/dragout/internal/drag"
	"github.com/mmilitzer/dragout/internal/inputhook"
	"github.com/mmilitzer/dragout/internal/logging"
	"github.com/mmilitzer/dragout/internal/platform"
	"github.com/mmilitzer/dragout/pkg/config"
)

var (
	info  = flag.Bool("info", false, "Print the platform's native drag capability and exit")
	check = flag.Bool("check", false, "Validate the file paths given as arguments and exit")
	watch = flag.Bool("watch", false, "Arm a dry-run drag of the file argument on the global input hook and log each gesture")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.FileLogging {
		if err := logging.Init(cfg.LogDir); err != nil {
			log.Printf("Warning: Failed to initialize file logging: %v", err)
		}
		defer logging.Close()
	}

	switch {
	case *info:
		runInfo()
	case *check:
		if !runCheck(flag.Args()) {
			os.Exit(1)
		}
	case *watch:
		if flag.NArg() != 1 {
			log.Fatal("-watch takes exactly one file path")
		}
		runWatch(cfg, flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runInfo() {
	p := platform.Current()
	fmt.Printf("platform:        %s\n", p.Name())
	fmt.Printf("macOS:           %v\n", p.IsMacOS())
	fmt.Printf("native drag:     %v\n", p.SupportsNativeDrag())
	fmt.Printf("drag threshold:  %.1fpt\n", p.DragThreshold())
}

func runCheck(paths []string) bool {
	req, err := drag.NewRequest(paths, 1)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		fmt.Printf("not draggable: %v\n", err)
		return false
	}
	for _, p := range req.Paths {
		fmt.Printf("ok  %s\n", p)
	}
	return true
}

// dryRun reports native drag support everywhere so the state machine can be
// exercised on any desktop.
type dryRun struct {
	platform.Platform
}

func (dryRun) SupportsNativeDrag() bool { return true }

type printInitiator struct{}

func (printInitiator) StartDrag(paths []string, w drag.Window) error {
	fmt.Printf("drag would start: %v\n", paths)
	return nil
}

func runWatch(cfg *config.Config, path string) {
	armTimeout, err := cfg.ArmTimeoutDuration()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	source := inputhook.New()
	if err := source.Start(); err != nil {
		log.Fatalf("Failed to start input hook: %v", err)
	}
	defer source.Close()

	bridge := drag.NewBridge(drag.Options{
		Platform:   dryRun{platform.Current()},
		Source:     source,
		Initiator:  printInitiator{},
		Threshold:  cfg.DragThreshold,
		ArmTimeout: armTimeout,
	})
	const window drag.Window = 1

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Watching pointer gestures (threshold %.1fpt). Press Ctrl+C to exit.", bridge.Threshold())

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		// Re-arm between gestures only, so one press fires at most once.
		if bridge.State(window) == drag.Idle && !source.Pressed() {
			if !bridge.PrepareDrag(path, window) {
				log.Fatalf("Cannot arm a drag of %s", path)
			}
			fmt.Println("armed: press and move past the threshold to fire, release to cancel")
		}

		select {
		case <-ctx.Done():
			bridge.CancelAll()
			log.Println("Received shutdown signal")
			return
		case <-ticker.C:
		}
	}
}
