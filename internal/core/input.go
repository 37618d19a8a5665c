package core

// Action represents a semantic input, abstracted from physical keys and buttons.
// Backends translate their own key codes into actions once per frame.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - flap while playing
	ActionConfirm        // Enter - start, continue, leave credits
	ActionClick          // Primary mouse button - counts as both jump and confirm
	ActionCredits        // C - open credits from the menu
	ActionCancel         // Escape - leave credits
	ActionQuit           // Close request (window close, q, Ctrl+C)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionClick:
		return "Click"
	case ActionCredits:
		return "Credits"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions pressed during one frame.
// Only press edges are recorded; held keys do not repeat.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool)}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any returns true if at least one of the actions was triggered.
func (f InputFrame) Any(actions ...Action) bool {
	for _, a := range actions {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
