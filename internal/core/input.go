package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionRight          // Right arrow, D - run right (cumulative while held)
	ActionSlide          // Down arrow, S - slide under obstacles
	ActionJump           // Space, Up, W - jump
	ActionConfirm        // Enter - confirm (new game prompt)
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRight:
		return "Right"
	case ActionSlide:
		return "Slide"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An action being present means the corresponding key is held on this tick;
// the game polls it, it is not edge-triggered.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// KeyState tracks which actions are currently held, reconstructed from
// terminal key events. Terminals report key-down only (via autorepeat),
// never key-up, so an action counts as held for a short window of ticks
// after its last event. The platform calls Press on key events, Tick once
// per simulation step, and Snapshot to build the frame handed to the game.
type KeyState struct {
	held      map[Action]int
	holdTicks int
}

// NewKeyState creates a key state with the given hold window in ticks.
// The window should cover the terminal's autorepeat delay at the active
// tick rate, or held keys will flicker.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyState{
		held:      make(map[Action]int),
		holdTicks: holdTicks,
	}
}

// Press records a key event for the given action.
func (k *KeyState) Press(a Action) {
	k.held[a] = k.holdTicks
}

// Tick ages all held actions by one simulation step.
func (k *KeyState) Tick() {
	for a, n := range k.held {
		if n <= 1 {
			delete(k.held, a)
		} else {
			k.held[a] = n - 1
		}
	}
}

// Pressed returns true if the action is currently considered held.
func (k *KeyState) Pressed(a Action) bool {
	return k.held[a] > 0
}

// Snapshot fills the given frame with all currently held actions.
func (k *KeyState) Snapshot(f *InputFrame) {
	f.Clear()
	for a := range k.held {
		f.Set(a)
	}
}
