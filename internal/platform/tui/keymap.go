package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/realm-runner/internal/core"
)

// Terminals deliver auto-repeat presses but no releases. A held key repeats
// roughly every 30-50ms, so a press is kept alive for a few ticks.
const (
	jumpHoldTicks  = 8
	axisDecayTicks = 10
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Realm   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Realm, k.Pause, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Realm, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Realm: key.NewBinding(
			key.WithKeys("e", "tab"),
			key.WithHelp("e", "realm"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Controls accumulates key events between ticks and turns them into one
// input frame per tick.
type Controls struct {
	keys    KeyMap
	jump    *core.ButtonTracker
	axis    *core.AxisTracker
	pending core.InputFrame
}

// NewControls creates controls for the given bindings.
func NewControls(keys KeyMap) *Controls {
	return &Controls{
		keys:    keys,
		jump:    core.NewButtonTracker(jumpHoldTicks),
		axis:    core.NewAxisTracker(axisDecayTicks),
		pending: core.NewInputFrame(),
	}
}

// HandleKey records a key event. It returns the discrete action the key
// maps to, or ActionNone.
func (c *Controls) HandleKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, c.keys.Quit):
		c.pending.Set(core.ActionQuit)
		return core.ActionQuit
	case key.Matches(msg, c.keys.Left):
		c.axis.Push(-1)
		return core.ActionLeft
	case key.Matches(msg, c.keys.Right):
		c.axis.Push(1)
		return core.ActionRight
	case key.Matches(msg, c.keys.Jump):
		c.jump.Press()
		return core.ActionJump
	case key.Matches(msg, c.keys.Realm):
		c.pending.Set(core.ActionRealm)
		return core.ActionRealm
	case key.Matches(msg, c.keys.Pause):
		c.pending.Set(core.ActionPause)
		return core.ActionPause
	case key.Matches(msg, c.keys.Restart):
		c.pending.Set(core.ActionRestart)
		return core.ActionRestart
	}
	return core.ActionNone
}

// Frame returns the input for the next tick and starts a new one.
func (c *Controls) Frame() core.InputFrame {
	in := c.pending.Clone()
	in.SetAxis(c.axis.Tick())
	in.Jump = c.jump.Tick()
	c.pending.Clear()
	return in
}

// Reset drops held state, e.g. after a restart.
func (c *Controls) Reset() {
	c.jump.Reset()
	c.axis.Reset()
	c.pending.Clear()
}
