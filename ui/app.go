package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/mmilitzer/dragout/internal/drag"
	"github.com/mmilitzer/dragout/internal/lifecycle"
)

// App is the object an IPC layer binds so the frontend can start native
// drags. Window handles cross the boundary as integers.
type App struct {
	ctx    context.Context
	bridge *drag.Bridge

	stopObserving func()
}

func NewApp(bridge *drag.Bridge) *App {
	return &App{
		bridge: bridge,
	}
}

// Startup drops any armed drag whenever the app loses focus: a window in
// the background never sees the mouse-up that would disarm it.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	stop, err := lifecycle.OnResignActive(a.bridge.CancelAll)
	if err != nil {
		log.Printf("[ui] Warning: armed drags will not be cleared on blur: %v", err)
		return
	}
	a.stopObserving = stop
}

func (a *App) Shutdown(ctx context.Context) {
	if a.stopObserving != nil {
		a.stopObserving()
		a.stopObserving = nil
	}
	a.bridge.CancelAll()
}

type DragRequest struct {
	Paths  []string `json:"paths"`
	Window uint64   `json:"window"`
}

type DragResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// IsMacOS lets the frontend hide native drag affordances elsewhere.
func (a *App) IsMacOS() bool {
	return a.bridge.IsMacOS()
}

// PrepareDrag arms a drag of path on mouse-down.
func (a *App) PrepareDrag(path string, window uint64) bool {
	return a.bridge.PrepareDrag(path, drag.Window(window))
}

// StartFileDrag arms a single-file drag; see drag.Bridge.StartFileDrag.
func (a *App) StartFileDrag(path string, window uint64) bool {
	return a.bridge.StartFileDrag(path, drag.Window(window))
}

// StartMultiFileDrag starts a drag of all paths immediately.
func (a *App) StartMultiFileDrag(paths []string, window uint64) bool {
	return a.bridge.StartMultiFileDrag(paths, drag.Window(window))
}

// StartDrag is the structured form for frontends that want a message to
// show. One path arms; several start immediately.
func (a *App) StartDrag(req DragRequest) DragResponse {
	if !a.bridge.IsMacOS() {
		return DragResponse{
			Success: false,
			Message: "Native drag is only available on macOS",
		}
	}

	var ok bool
	switch len(req.Paths) {
	case 0:
		return DragResponse{Success: false, Message: "No files to drag"}
	case 1:
		ok = a.PrepareDrag(req.Paths[0], req.Window)
	default:
		ok = a.StartMultiFileDrag(req.Paths, req.Window)
	}

	if !ok {
		return DragResponse{
			Success: false,
			Message: fmt.Sprintf("Could not start native drag of %d file(s)", len(req.Paths)),
		}
	}
	if len(req.Paths) == 1 {
		return DragResponse{Success: true, Message: "Drag armed"}
	}
	return DragResponse{Success: true, Message: "Drag started"}
}
