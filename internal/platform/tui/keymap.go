package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", ",": // comma and o are W and S on Dvorak
		return core.ActionUp, false
	case "s", "down", "o":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records the pointer cell; a left-button press fires.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.SetCursor(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionFire)
	}
}

// HoldTracker approximates held keys. Terminals only report key presses,
// so an action stays held for a number of ticks after its last press and
// auto-repeat keeps refreshing it while the key is down.
type HoldTracker struct {
	ticks     int
	remaining map[core.Action]int
}

// opposites cancel each other: pressing one releases the other at once.
var opposites = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// NewHoldTracker creates a tracker that holds each action for ticks ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{
		ticks:     max(ticks, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press refreshes an action. Only steering actions are tracked.
func (h *HoldTracker) Press(a core.Action) {
	other, ok := opposites[a]
	if !ok {
		return
	}
	delete(h.remaining, other)
	h.remaining[a] = h.ticks
}

// Apply marks tracked actions as held in frame and counts them down.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.remaining)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
