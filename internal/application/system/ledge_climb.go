package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// LedgeClimbSystem runs the scripted climb over a ledge corner.
// Once started a climb always runs to completion.
type LedgeClimbSystem struct{}

// NewLedgeClimbSystem creates a new ledge climb system.
func NewLedgeClimbSystem() *LedgeClimbSystem {
	return &LedgeClimbSystem{}
}

// grabPosition is where the actor hangs from corner.
func grabPosition(t *Tick, corner cp.Vector) cp.Vector {
	g := t.Physics.Ledge.GrabPoint
	return corner.Sub(cp.Vector{X: g.X * t.Actor.Contact.WallDirection, Y: g.Y})
}

// standPosition is where the actor stands after climbing over corner.
func standPosition(t *Tick, corner cp.Vector) cp.Vector {
	o := t.Physics.Ledge.StandUpOffset
	return corner.Add(cp.Vector{X: o.X * t.Actor.Contact.WallDirection, Y: o.Y})
}

// Start revokes control and snaps the actor to the hanging position.
func (s *LedgeClimbSystem) Start(t *Tick) {
	a := t.Actor
	lc := &a.LedgeClimb

	t.Events.emit(entity.EventLedgeClimb, true, 0)

	a.HasControl = false
	a.Velocity.Y = 0
	t.Body.SetVelocity(cp.Vector{})

	a.Contact.ClimbingLedge = true
	lc.Phase = entity.LedgeClimbStarting
	lc.Timer = 0
	lc.Startup = grabPosition(t, a.Contact.LedgeCorner)
	lc.Resultant = standPosition(t, a.Contact.LedgeCorner)

	a.Position = lc.Startup
	t.Body.SetPosition(lc.Startup)
	a.FocalPoint = lc.Startup
}

// Advance moves the climb forward by one tick.
func (s *LedgeClimbSystem) Advance(t *Tick) {
	lc := &t.Actor.LedgeClimb
	duration := t.Physics.Ledge.ClimbDuration

	switch lc.Phase {
	case entity.LedgeClimbIdle:
		return
	case entity.LedgeClimbStarting:
		lc.Phase = entity.LedgeClimbInProgress
		fallthrough
	case entity.LedgeClimbInProgress:
		if !elapsed(lc.Timer, duration) {
			progress := entity.Clamp01(lc.Timer / duration)
			t.Actor.FocalPoint = lc.Startup.Lerp(lc.Resultant, progress)
			return
		}
		lc.Phase = entity.LedgeClimbComplete
		fallthrough
	case entity.LedgeClimbComplete:
		s.complete(t)
	}
}

func (s *LedgeClimbSystem) complete(t *Tick) {
	a := t.Actor
	lc := &a.LedgeClimb

	a.Position = lc.Resultant
	t.Body.SetPosition(lc.Resultant)
	a.FocalPoint = lc.Resultant

	a.Contact.LeaveWall()
	a.Jump.WallCoyoteUsable = false

	a.HasControl = true
	a.Velocity.X = 0

	lc.Phase = entity.LedgeClimbIdle
	lc.Timer = 0

	t.Events.emit(entity.EventLedgeClimb, false, 0)
}
