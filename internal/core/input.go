package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - hop forward
	ActionDown           // S, Down arrow - hop back
	ActionLeft           // A, Left arrow - hop left
	ActionRight          // D, Right arrow - hop right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - go back to menu
	ActionRestart        // R, Space - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
// It is a plain value, so copies never share state.
type InputFrame uint32

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return 0
}

func (a Action) bit() InputFrame {
	if a <= ActionNone || a > ActionPause {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	*f |= a.bit()
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f&b != 0
}

// First returns the first of actions present in the frame, or ActionNone.
// Callers list actions in priority order.
func (f InputFrame) First(actions ...Action) Action {
	for _, a := range actions {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = 0
}
