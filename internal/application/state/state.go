package state

// GameState represents the current state of the host.
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplaying
)

// String returns the string representation of the game state.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the simulation advances in this state.
func (s GameState) Simulating() bool {
	return s == StatePlaying || s == StateReplaying
}

// Flow tracks the host state and the state a pause resumes to.
type Flow struct {
	current GameState
	resume  GameState
}

// NewFlow starts in start.
func NewFlow(start GameState) *Flow {
	return &Flow{current: start, resume: start}
}

// Current returns the active state.
func (f *Flow) Current() GameState {
	return f.current
}

// TogglePause pauses a running simulation or resumes a paused one.
func (f *Flow) TogglePause() {
	if f.current == StatePaused {
		f.current = f.resume
		return
	}
	f.resume = f.current
	f.current = StatePaused
}

// Set switches to s. A paused flow stays paused and resumes to s.
func (f *Flow) Set(s GameState) {
	if f.current == StatePaused && s != StatePaused {
		f.resume = s
		return
	}
	f.current = s
}
