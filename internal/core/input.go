package core

// Action is a semantic input, decoupled from the device that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up, Comma - steer up
	ActionDown           // S, Down, O - steer down
	ActionLeft           // A, Left - move gun left
	ActionRight          // D, Right - move gun right
	ActionFire           // Space, left mouse button
	ActionConfirm        // Enter
	ActionBack           // B, Esc
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
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
	case ActionFire:
		return "Fire"
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

// Cursor is the last known pointer position in screen cells.
type Cursor struct {
	X, Y  int
	Valid bool
}

// InputFrame is the input snapshot for one simulation tick.
//
// Pressed holds actions triggered during this tick (edge events).
// Held holds actions whose key is still down. Terminals report no key-up
// events, so the TUI platform approximates Held from key repeat.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
	Cursor  Cursor
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick. Pressed actions also count
// as held for the same tick.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// Hold marks an action as held without an edge event.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has reports whether the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld reports whether the action is held this tick.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// HeldAny reports whether any of the actions is held.
func (f InputFrame) HeldAny(actions ...Action) bool {
	for _, a := range actions {
		if f.Held[a] {
			return true
		}
	}
	return false
}

// SetCursor records the pointer position.
func (f *InputFrame) SetCursor(x, y int) {
	f.Cursor = Cursor{X: x, Y: y, Valid: true}
}

// Clear resets pressed and held actions. The cursor is kept, since a
// pointer that did not move is still where it was.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	c.Cursor = f.Cursor
	return c
}
