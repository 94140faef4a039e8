package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left
	ActionRight          // Right arrow, D - steer right
	ActionStart          // Enter, Space - start a new run
	ActionPause          // P, Escape - pause/resume the run
	ActionBack           // B - leave the game
	ActionRestart        // R - start again after game over
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the command queue for one simulation tick.
// Actions keep arrival order, so a pause followed by a resume within the
// same tick cancel out, and repeated steering presses each take effect.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to the queue. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear empties the queue for the next frame, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	if len(f.Actions) == 0 {
		return InputFrame{}
	}
	clone := make([]Action, len(f.Actions))
	copy(clone, f.Actions)
	return InputFrame{Actions: clone}
}
