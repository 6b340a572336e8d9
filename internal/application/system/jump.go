package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// JumpSystem resolves jump input into one of the four jump variants.
type JumpSystem struct{}

// NewJumpSystem creates a new jump system.
func NewJumpSystem() *JumpSystem {
	return &JumpSystem{}
}

// Update detects an early release, then resolves a fresh or buffered press.
// Priority: dash jump, wall jump, normal jump, air jump. The press is
// consumed even when no variant fires.
func (s *JumpSystem) Update(t *Tick) {
	a := t.Actor
	p := t.Physics
	j := &a.Jump
	c := &a.Contact

	if !j.EndedEarly && c.Airborne() && !t.Input.IsActionHeld(entity.ActionJump) &&
		a.Velocity.Y > 0 && j.CanEndEarly {
		j.EndedEarly = true
		j.CanEndEarly = false
	}

	if !j.Gate.Requested(p.Jump.BufferTime) {
		return
	}

	switch {
	case a.Dash.Dashing && (c.OnGround || j.AirJumps > 0):
		s.dashJump(t)
	case (c.OnWall || j.WallCoyote(p.Wall.JumpCoyoteTime)) && !c.ClimbingLedge:
		s.wallJump(t)
	case c.OnGround || j.Gate.Coyote(p.Jump.CoyoteTime):
		s.normalJump(t)
	case j.AirJumps > 0:
		s.airJump(t)
	}

	j.Gate.ToConsume = false
}

func (s *JumpSystem) normalJump(t *Tick) {
	j := &t.Actor.Jump
	j.EndedEarly = false
	j.CanEndEarly = true
	j.Gate.BufferUsable = false
	j.Gate.CoyoteUsable = false

	t.Actor.Velocity.Y = t.Physics.Jump.Strength
	t.Events.fire(entity.EventJump)
}

func (s *JumpSystem) wallJump(t *Tick) {
	a := t.Actor
	j := &a.Jump
	j.EndedEarly = false
	j.CanEndEarly = true
	j.Gate.BufferUsable = false
	j.WallCoyoteUsable = false

	strength := t.Physics.Wall.JumpStrength
	a.Velocity = cp.Vector{X: strength.X * -a.Contact.WallDirection, Y: strength.Y}
	a.ControlLoss[entity.LossWallJump].Reset()

	a.Contact.OnWall = false
	t.Events.fire(entity.EventWallJump)
}

func (s *JumpSystem) airJump(t *Tick) {
	a := t.Actor
	j := &a.Jump

	endGlide(t)
	endAllGrapples(t)

	j.EndedEarly = false
	j.CanEndEarly = true
	j.AirJumps--

	a.Velocity.Y = t.Physics.Jump.Strength
	a.ExternalVelocity.Y = 0
	t.Events.fire(entity.EventAirJump)
}

func (s *JumpSystem) dashJump(t *Tick) {
	a := t.Actor
	j := &a.Jump
	j.EndedEarly = false
	j.CanEndEarly = true
	j.Gate.BufferUsable = false
	j.Gate.CoyoteUsable = false
	if a.Contact.Airborne() {
		j.AirJumps--
	}

	strength := t.Physics.Dash.JumpStrength
	a.Velocity = cp.Vector{X: strength.X * entity.Sign(a.Velocity.X), Y: strength.Y}
	a.ControlLoss[entity.LossDashJump].Reset()

	a.Dash.Dashing = false
	a.Dash.CooldownTimer = 0

	t.Events.emit(entity.EventDash, false, 0)
	t.Events.fire(entity.EventDashJump)
}
