package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/realm-runner/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyMapsActions(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d steers right", runeKey("d"), core.ActionRight},
		{"e toggles realm", runeKey("e"), core.ActionRealm},
		{"tab toggles realm", tea.KeyMsg{Type: tea.KeyTab}, core.ActionRealm},
		{"p pauses", runeKey("p"), core.ActionPause},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewControls(DefaultKeyMap())
			if got := c.HandleKey(tt.msg); got != tt.want {
				t.Errorf("HandleKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestControlsJumpEdges(t *testing.T) {
	c := NewControls(DefaultKeyMap())
	c.HandleKey(runeKey("w"))

	first := c.Frame()
	if !first.Jump.Pressed || !first.Jump.Held {
		t.Fatalf("first frame = %+v, expected pressed and held", first.Jump)
	}

	released := false
	for i := 1; i <= jumpHoldTicks+1; i++ {
		f := c.Frame()
		if f.Jump.Pressed {
			t.Fatalf("tick %d: press edge repeated", i)
		}
		if f.Jump.Released {
			released = true
			break
		}
	}
	if !released {
		t.Error("expected a release edge once the hold window ran out")
	}
}

func TestControlsAutoRepeatKeepsHeld(t *testing.T) {
	c := NewControls(DefaultKeyMap())
	c.HandleKey(runeKey("w"))
	c.Frame()

	for i := 0; i < 3*jumpHoldTicks; i++ {
		if i%4 == 0 {
			c.HandleKey(runeKey("w"))
		}
		f := c.Frame()
		if f.Jump.Pressed || f.Jump.Released || !f.Jump.Held {
			t.Fatalf("tick %d: %+v, expected a steady hold under auto-repeat", i, f.Jump)
		}
	}
}

func TestControlsAxisDecays(t *testing.T) {
	c := NewControls(DefaultKeyMap())
	c.HandleKey(tea.KeyMsg{Type: tea.KeyLeft})

	if f := c.Frame(); f.Axis != -1 {
		t.Fatalf("Axis = %v, expected -1", f.Axis)
	}
	var last float64
	for i := 0; i < axisDecayTicks+1; i++ {
		last = c.Frame().Axis
	}
	if last != 0 {
		t.Errorf("Axis = %v after decay, expected 0", last)
	}
}

func TestControlsDiscreteActionsLastOneFrame(t *testing.T) {
	c := NewControls(DefaultKeyMap())
	c.HandleKey(runeKey("e"))

	if !c.Frame().Has(core.ActionRealm) {
		t.Fatal("expected realm action in the next frame")
	}
	if c.Frame().Has(core.ActionRealm) {
		t.Error("realm action must not repeat")
	}
}
