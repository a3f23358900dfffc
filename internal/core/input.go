package core

import "time"

// Direction is a movement or serving direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionLeftUp              // W - left paddle up
	ActionLeftDown            // S - left paddle down
	ActionRightUp             // Up arrow - right paddle up
	ActionRightDown           // Down arrow - right paddle down
	ActionPause               // P - pause/unpause
	ActionReset               // R - reset the match
	ActionSlower              // Z - lower the speed multiplier
	ActionFaster              // X - raise the speed multiplier
	ActionToggleInterp        // I - toggle interpolated rendering
	ActionToggleFPS           // F - toggle the FPS readout
	ActionToggleLimits        // L - toggle the field outline
	ActionQuit                // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionSlower:
		return "Slower"
	case ActionFaster:
		return "Faster"
	case ActionToggleInterp:
		return "ToggleInterp"
	case ActionToggleFPS:
		return "ToggleFPS"
	case ActionToggleLimits:
		return "ToggleLimits"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered since the last rendered frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldDirection emulates a held key on terminals that only report presses.
// Each press keeps the direction active for the hold window; key auto-repeat
// extends it.
type HeldDirection struct {
	Hold  time.Duration
	dir   Direction
	until time.Time
}

// Press activates dir until now + Hold.
func (h *HeldDirection) Press(dir Direction, now time.Time) {
	h.dir = dir
	h.until = now.Add(h.Hold)
}

// Release drops the held direction immediately.
func (h *HeldDirection) Release() {
	h.dir = DirNone
	h.until = time.Time{}
}

// At returns the direction held at the given instant.
func (h *HeldDirection) At(now time.Time) Direction {
	if h.dir == DirNone || !now.Before(h.until) {
		return DirNone
	}
	return h.dir
}
