package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// JumpState holds the jump gate plus the early-release latch and air jumps.
type JumpState struct {
	Gate Gate

	CanEndEarly bool
	EndedEarly  bool
	AirJumps    int

	WallCoyoteUsable bool
	WallCoyoteTimer  float64
}

// WallCoyote reports whether a wall jump is still honored after leaving the wall.
func (j *JumpState) WallCoyote(window float64) bool {
	return j.WallCoyoteUsable && j.WallCoyoteTimer < window
}

// DashState holds the dash gate and the running dash.
type DashState struct {
	Gate Gate

	Dashing       bool
	Velocity      cp.Vector
	Timer         float64
	CooldownTimer float64
}

// LedgeClimbPhase is the step of a running ledge climb.
type LedgeClimbPhase int

const (
	LedgeClimbIdle LedgeClimbPhase = iota
	LedgeClimbStarting
	LedgeClimbInProgress
	LedgeClimbComplete
)

// String returns the phase name.
func (p LedgeClimbPhase) String() string {
	switch p {
	case LedgeClimbIdle:
		return "Idle"
	case LedgeClimbStarting:
		return "Starting"
	case LedgeClimbInProgress:
		return "InProgress"
	case LedgeClimbComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// LedgeClimbState carries the progress of one ledge climb.
type LedgeClimbState struct {
	Phase     LedgeClimbPhase
	Timer     float64
	Startup   cp.Vector
	Resultant cp.Vector
}

// Active reports whether a climb is underway.
func (l *LedgeClimbState) Active() bool {
	return l.Phase != LedgeClimbIdle
}

// Actor is the complete mutable state of one controlled character.
type Actor struct {
	Position cp.Vector

	// Velocity is the intentional component, ExternalVelocity decays on its own
	Velocity         cp.Vector
	ExternalVelocity cp.Vector

	// Input holds this tick's axes, LastInput the last nonzero value of each axis
	Input     cp.Vector
	LastInput cp.Vector

	Collider   CapsuleShape
	HasControl bool
	FocalPoint cp.Vector

	Contact          Contact
	Jump             JumpState
	Dash             DashState
	Gliding          bool
	Grapple          GrappleState
	AlternateGrapple GrappleState
	Freeze           FreezeState
	LedgeClimb       LedgeClimbState
	ControlLoss      ControlLossSet

	State ActorState
}

// NewActor creates an idle actor standing at position.
func NewActor(position cp.Vector, collider CapsuleShape) *Actor {
	a := &Actor{
		Position:    position,
		LastInput:   cp.Vector{X: 1, Y: 0},
		Collider:    collider,
		HasControl:  true,
		FocalPoint:  position,
		ControlLoss: NewControlLossSet(),
		State:       StateIdle,
	}
	a.Jump.Gate = NewGate()
	a.Jump.WallCoyoteTimer = math.Inf(1)
	a.Dash.Gate = NewGate()
	a.Grapple.Gate = NewGate()
	a.AlternateGrapple.Gate = NewGate()
	return a
}

// Capsule returns the active collider placed at the current position.
func (a *Actor) Capsule() Capsule {
	return a.Collider.At(a.Position)
}

// Center returns the collider center.
func (a *Actor) Center() cp.Vector {
	return a.Position.Add(a.Collider.Offset)
}

// Facing returns +1 when facing right and -1 when facing left.
func (a *Actor) Facing() float64 {
	if a.LastInput.X >= 0 {
		return 1
	}
	return -1
}

// SetInput records this tick's axes and remembers the last nonzero values.
func (a *Actor) SetInput(axes cp.Vector) {
	a.Input = axes
	if axes.X != 0 {
		a.LastInput.X = axes.X
	}
	if axes.Y != 0 {
		a.LastInput.Y = axes.Y
	}
}

// Tick advances every fixed-step timer by dt.
func (a *Actor) Tick(dt float64) {
	a.Jump.Gate.Tick(dt)
	a.Jump.WallCoyoteTimer += dt
	a.Dash.Gate.Tick(dt)
	a.Dash.Timer += dt
	a.Dash.CooldownTimer += dt
	a.Grapple.Gate.Tick(dt)
	a.AlternateGrapple.Gate.Tick(dt)
	a.ControlLoss.Tick(dt)
	if a.LedgeClimb.Active() {
		a.LedgeClimb.Timer += dt
	}
}

// OwnsVelocity reports whether an ability pins velocity this tick.
func (a *Actor) OwnsVelocity() bool {
	return a.Dash.Dashing || a.Grapple.Grappling || a.AlternateGrapple.Grappling
}
