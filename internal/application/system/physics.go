package system

import (
	"math"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// PhysicsSystem integrates the actor's intentional velocity for one tick.
// Every change is a MoveTowards step, so constants read as real rates.
type PhysicsSystem struct{}

// NewPhysicsSystem creates a new physics system.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update applies vertical then horizontal integration.
// Dash and grapple travel pin velocity themselves, so the tick is skipped for them.
func (s *PhysicsSystem) Update(t *Tick) {
	a := t.Actor
	if a.OwnsVelocity() {
		return
	}

	s.applyVertical(t)
	s.applyHorizontal(t, a.ControlLoss.None())
}

func (s *PhysicsSystem) applyVertical(t *Tick) {
	a := t.Actor
	p := t.Physics
	c := &a.Contact
	v := &a.Velocity

	switch {
	case c.ClimbingLedge:
		v.Y = 0

	case c.OnWall:
		switch {
		case a.Input.Y > 0 && !c.OnLedge:
			v.Y = p.Wall.ClimbSpeed
		case a.Input.Y < 0:
			v.Y = -p.Wall.FastFallSpeed
		case c.OnLedge:
			v.Y = entity.MoveTowards(v.Y, 0, p.Ledge.GrabDeceleration*t.DT)
		case v.Y < -p.Wall.MaxFallSpeed:
			v.Y = -p.Wall.MaxFallSpeed
		default:
			v.Y = entity.MoveTowards(math.Min(v.Y, 0), -p.Wall.MaxFallSpeed, p.Wall.FallAcceleration*t.DT)
		}

	case a.Gliding && v.Y < 0:
		v.Y = math.Max(v.Y, -p.Glide.FallSpeed)
		v.Y = entity.MoveTowards(v.Y, -p.Glide.FallSpeed, p.Glide.FallAcceleration*t.DT)

	case !c.OnGround:
		accel := p.Jump.FallAcceleration
		if a.Jump.EndedEarly && v.Y > 0 {
			accel *= p.Jump.EndEarlyGravityModifier
		}
		v.Y = entity.MoveTowards(v.Y, -p.Jump.MaxFallSpeed, accel*t.DT)
	}
}

func (s *PhysicsSystem) applyHorizontal(t *Tick, noControlLoss bool) {
	a := t.Actor
	p := t.Physics
	v := &a.Velocity
	in := a.Input.X

	switch {
	// instant reversal, no skid
	case in != 0 && v.X != 0 && entity.Sign(in) != entity.Sign(v.X) && noControlLoss:
		v.X = 0

	case in == 0 && noControlLoss:
		decel := p.Movement.AirDeceleration
		if a.Contact.OnGround {
			decel = p.Movement.GroundDeceleration
		}
		v.X = entity.MoveTowards(v.X, 0, decel*t.DT)

	default:
		accel := a.ControlLoss.Product() * p.Movement.Acceleration
		v.X = entity.MoveTowards(v.X, in*p.Movement.MaxRunSpeed, accel*t.DT)
		if a.Contact.OnWall {
			v.X = 0
		}
	}
}
