package drag

// State is the lifecycle position of a window's drag monitor.
type State int

const (
	// Idle means no observer is installed for the window.
	Idle State = iota
	// Armed means an observer is waiting for the threshold crossing or a mouse-up.
	Armed
	// Firing means the threshold was crossed and the initiator is running.
	Firing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Firing:
		return "firing"
	default:
		return "unknown"
	}
}
