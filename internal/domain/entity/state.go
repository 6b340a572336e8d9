package entity

// ActorState classifies the actor's situation for visuals and audio.
type ActorState int

const (
	StateIdle ActorState = iota
	StateRun
	StateAirborne
	StateOnWall
	StateOnLedge
	StateClimbingLedge
	StateDashing
	StateGliding
)

// String returns the string representation of the actor state.
func (s ActorState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRun:
		return "Run"
	case StateAirborne:
		return "Airborne"
	case StateOnWall:
		return "OnWall"
	case StateOnLedge:
		return "OnLedge"
	case StateClimbingLedge:
		return "ClimbingLedge"
	case StateDashing:
		return "Dashing"
	case StateGliding:
		return "Gliding"
	default:
		return "Unknown"
	}
}
