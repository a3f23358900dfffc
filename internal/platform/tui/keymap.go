package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	LeftUp       key.Binding
	LeftDown     key.Binding
	RightUp      key.Binding
	RightDown    key.Binding
	Pause        key.Binding
	Reset        key.Binding
	Slower       key.Binding
	Faster       key.Binding
	ToggleInterp key.Binding
	ToggleFPS    key.Binding
	ToggleLimits key.Binding
	Help         key.Binding
	Back         key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.RightUp, k.Pause, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.Reset, k.Slower, k.Faster},
		{k.ToggleInterp, k.ToggleFPS, k.ToggleLimits},
		{k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/s", "left paddle"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "right paddle"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Slower: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "slower"),
		),
		Faster: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "faster"),
		),
		ToggleInterp: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "interpolation"),
		),
		ToggleFPS: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fps"),
		),
		ToggleLimits: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "limits"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp, false
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown, false
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp, false
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Slower):
		return core.ActionSlower, false
	case key.Matches(msg, k.Faster):
		return core.ActionFaster, false
	case key.Matches(msg, k.ToggleInterp):
		return core.ActionToggleInterp, false
	case key.Matches(msg, k.ToggleFPS):
		return core.ActionToggleFPS, false
	case key.Matches(msg, k.ToggleLimits):
		return core.ActionToggleLimits, false
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

// Controls turns the key presses of one frame into a simulation input.
// Terminals report no key releases, so a press keeps its paddle moving for
// the hold duration; auto-repeat renews it.
type Controls struct {
	left  core.HeldDirection
	right core.HeldDirection
	cpu   pong.Side
}

// NewControls creates controls for a match where cpu steers one paddle.
// In that case both key sets drive the remaining paddle.
func NewControls(hold time.Duration, cpu pong.Side) *Controls {
	return &Controls{
		left:  core.HeldDirection{Hold: hold},
		right: core.HeldDirection{Hold: hold},
		cpu:   cpu,
	}
}

// Input builds the simulation input for the frame at now.
func (c *Controls) Input(f core.InputFrame, now time.Time) pong.Input {
	leftKeys, rightKeys := &c.left, &c.right
	switch c.cpu {
	case pong.SideLeft:
		leftKeys = &c.right
	case pong.SideRight:
		rightKeys = &c.left
	}
	press(leftKeys, f, core.ActionLeftUp, core.ActionLeftDown, now)
	press(rightKeys, f, core.ActionRightUp, core.ActionRightDown, now)

	in := pong.Input{
		Left:                c.left.At(now),
		Right:               c.right.At(now),
		PauseToggled:        f.Has(core.ActionPause),
		ResetRequested:      f.Has(core.ActionReset),
		ToggleInterpolation: f.Has(core.ActionToggleInterp),
		ToggleFPS:           f.Has(core.ActionToggleFPS),
		ToggleLimits:        f.Has(core.ActionToggleLimits),
	}
	if f.Has(core.ActionSlower) {
		in.SpeedAdjust--
	}
	if f.Has(core.ActionFaster) {
		in.SpeedAdjust++
	}
	if in.ResetRequested {
		c.left.Release()
		c.right.Release()
	}
	return in
}

func press(h *core.HeldDirection, f core.InputFrame, up, down core.Action, now time.Time) {
	switch {
	case f.Has(up):
		h.Press(core.DirUp, now)
	case f.Has(down):
		h.Press(core.DirDown, now)
	}
}

// MenuAction represents actions in the menu context.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionHistory
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key message to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "up", "k", "w":
		return MenuActionUp
	case "down", "j", "s":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab", "h":
		return MenuActionHistory
	case "esc", "b":
		return MenuActionBack
	case "q", "ctrl+c":
		return MenuActionQuit
	}
	return MenuActionNone
}
