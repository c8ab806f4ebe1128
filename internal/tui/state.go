package tui

// State is the lifecycle state of a session.
type State int

const (
	// StateEditing accepts edits and navigation. It is the initial state.
	StateEditing State = iota
	// StateExiting is terminal: the program has been asked to quit.
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
