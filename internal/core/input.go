package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota

	// Held actions: set on every tick the key is held.
	ActionForward // W, Up
	ActionBack    // S, Down
	ActionLeft    // A, Left
	ActionRight   // D, Right
	ActionJump    // Space

	// Trigger actions: set once per key press.
	ActionDash       // X, Shift+W
	ActionTurnLeft   // Q, comma
	ActionTurnRight  // E, period
	ActionToggleView // V, F3
	ActionRestart    // R
	ActionPause      // P
	ActionQuit       // Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionDash:
		return "Dash"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionToggleView:
		return "ToggleView"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Held reports whether the action describes a key being held down rather
// than a single press.
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionJump
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
