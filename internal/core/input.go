package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionJump           // Space, W, Up - jump
	ActionRealm          // E, Tab - toggle realm
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRealm:
		return "Realm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ButtonState is the per-tick state of a held button.
type ButtonState struct {
	Pressed  bool // Went down this tick
	Held     bool // Is down this tick
	Released bool // Went up this tick
}

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps discrete actions to whether they were triggered this frame.
	Actions map[Action]bool

	// Axis is the horizontal input, normalized to [-1, 1].
	Axis float64

	// Jump carries the edges of the jump button.
	Jump ButtonState
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

// SetAxis stores the horizontal input, clamped to [-1, 1].
func (f *InputFrame) SetAxis(v float64) {
	f.Axis = ClampF(v, -1, 1)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Axis = 0
	f.Jump = ButtonState{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Axis = f.Axis
	clone.Jump = f.Jump
	return clone
}

// ButtonTracker turns discrete key-press events into held/released edges.
// Terminals report presses and auto-repeats but never releases, so a button
// counts as held for holdTicks ticks after its most recent press.
type ButtonTracker struct {
	holdTicks int
	remaining int
	wasHeld   bool
	pressed   bool
}

// NewButtonTracker creates a tracker that holds for the given number of ticks.
func NewButtonTracker(holdTicks int) *ButtonTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &ButtonTracker{holdTicks: holdTicks}
}

// Press records a key-press (or auto-repeat) event. A press after the hold
// window has run out is a new edge, even on the tick it closed.
func (b *ButtonTracker) Press() {
	if b.remaining == 0 {
		b.pressed = true
	}
	b.remaining = b.holdTicks
}

// Tick advances the tracker by one tick and returns the button state for it.
func (b *ButtonTracker) Tick() ButtonState {
	held := b.remaining > 0
	st := ButtonState{
		Pressed:  b.pressed,
		Held:     held,
		Released: b.wasHeld && !held,
	}
	if b.remaining > 0 {
		b.remaining--
	}
	b.wasHeld = held
	b.pressed = false
	return st
}

// Reset clears any held state.
func (b *ButtonTracker) Reset() {
	b.remaining = 0
	b.wasHeld = false
	b.pressed = false
}

// AxisTracker smooths discrete left/right presses into an analog axis value,
// snapping to the pressed direction and decaying back toward zero.
type AxisTracker struct {
	value float64
	decay float64 // units per tick
}

// NewAxisTracker creates an axis tracker that returns to zero after
// roughly decayTicks ticks without input.
func NewAxisTracker(decayTicks int) *AxisTracker {
	if decayTicks < 1 {
		decayTicks = 1
	}
	return &AxisTracker{decay: 1.0 / float64(decayTicks)}
}

// Push snaps the axis toward the given direction (-1 or +1).
func (a *AxisTracker) Push(dir float64) {
	a.value = ClampF(dir, -1, 1)
}

// Tick returns the current axis value and decays it for the next tick.
func (a *AxisTracker) Tick() float64 {
	v := a.value
	switch {
	case a.value > 0:
		a.value = max(0, a.value-a.decay)
	case a.value < 0:
		a.value = min(0, a.value+a.decay)
	}
	return v
}

// Reset zeroes the axis.
func (a *AxisTracker) Reset() {
	a.value = 0
}
