package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// Terminals report presses and auto-repeats but never releases, so a held
// action stays active for a window after each press.
const (
	FirstHold  = 550 * time.Millisecond // Covers the auto-repeat start delay
	RepeatHold = 120 * time.Millisecond // Covers the gap between repeats
)

// KeyMap defines the key bindings for a climb.
type KeyMap struct {
	Forward    key.Binding
	Back       key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Dash       key.Binding
	TurnLeft   key.Binding
	TurnRight  key.Binding
	ToggleView key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Jump, k.Dash, k.TurnLeft, k.TurnRight, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Back, k.Left, k.Right},
		{k.Jump, k.Dash, k.TurnLeft, k.TurnRight},
		{k.ToggleView, k.Restart, k.Pause, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/up", "forward"),
		),
		Back: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/down", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "strafe left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "strafe right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Dash: key.NewBinding(
			key.WithKeys("x", "W"),
			key.WithHelp("x/W", "dash"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("q", ","),
			key.WithHelp("q", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("e", "."),
			key.WithHelp("e", "turn right"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v", "f3"),
			key.WithHelp("v", "view"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Action returns the action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Dash, core.ActionDash},
		{k.Forward, core.ActionForward},
		{k.Back, core.ActionBack},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
		{k.TurnLeft, core.ActionTurnLeft},
		{k.TurnRight, core.ActionTurnRight},
		{k.ToggleView, core.ActionToggleView},
		{k.Restart, core.ActionRestart},
		{k.Pause, core.ActionPause},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// opposite returns the direction cancelled by pressing a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionForward:
		return core.ActionBack
	case core.ActionBack:
		return core.ActionForward
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}

// KeyMapper translates Bubble Tea key messages to per-tick input frames.
// Trigger actions fire on the next frame only; held actions stay active
// while presses keep arriving.
type KeyMapper struct {
	Keys KeyMap

	held    map[core.Action]time.Time // Expiry of each held action
	pending core.InputFrame
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Keys:    DefaultKeyMap(),
		held:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.Keys.Action(msg)
	return action, action == core.ActionQuit
}

// Press records a key press at now and returns its action.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) (action core.Action, isQuit bool) {
	action, isQuit = km.MapKey(msg)
	switch {
	case action == core.ActionNone || isQuit:
	case action.Held():
		hold := FirstHold
		if until, ok := km.held[action]; ok && now.Before(until) {
			hold = RepeatHold
		}
		km.held[action] = now.Add(hold)
		delete(km.held, opposite(action))
	default:
		km.pending.Set(action)
	}
	return action, isQuit
}

// Frame returns the actions active for the tick at now and consumes
// pending triggers.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	frame := km.pending.Clone()
	km.pending.Clear()
	for action, until := range km.held {
		if now.Before(until) {
			frame.Set(action)
		} else {
			delete(km.held, action)
		}
	}
	return frame
}

// Release drops every held action and pending trigger.
func (km *KeyMapper) Release() {
	clear(km.held)
	km.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionTimes
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "t":
		return MenuActionTimes
	}
	return MenuActionNone
}
