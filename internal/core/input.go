package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up
	ActionPause          // P
	ActionRestart        // R, after the session ended
	ActionBack           // B, Escape
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputLatch is the edge-triggered jump port between the host and a session.
// The host calls Request any number of times between ticks; the session calls
// Take exactly once per tick, which returns the flag and clears it.
type InputLatch struct {
	jump bool
}

// Request records a jump request for the next tick.
func (l *InputLatch) Request() {
	l.jump = true
}

// Pending reports whether a request is waiting without consuming it.
func (l *InputLatch) Pending() bool {
	return l.jump
}

// Take returns the pending request and clears it.
// A nil latch never has a request.
func (l *InputLatch) Take() bool {
	if l == nil {
		return false
	}
	jump := l.jump
	l.jump = false
	return jump
}

// Clear drops any pending request.
func (l *InputLatch) Clear() {
	l.jump = false
}
