package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// DashSystem starts, maintains and ends horizontal dashes.
type DashSystem struct{}

// NewDashSystem creates a new dash system.
func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

// Update starts a dash when every gate passes, then pins velocity while it runs.
func (s *DashSystem) Update(t *Tick) {
	a := t.Actor
	p := t.Physics
	d := &a.Dash

	coyote := d.Gate.Coyote(p.Dash.CoyoteTime)
	if t.Unlocks.Dash && !d.Dashing && d.Gate.Requested(p.Dash.BufferTime) &&
		(d.Gate.CanUse || coyote) && d.CooldownTimer > p.Dash.CooldownTime {
		s.start(t, coyote)
	}

	if d.Dashing {
		a.Velocity = d.Velocity
		if elapsed(d.Timer, p.Dash.Time) {
			endDash(t)
			d.CooldownTimer = 0
			a.Velocity.X *= p.Dash.EndHorizontalMultiplier
			a.Velocity.Y = math.Min(0, a.Velocity.Y)
		}
	}

	d.Gate.ToConsume = false
}

func (s *DashSystem) start(t *Tick, coyote bool) {
	a := t.Actor
	d := &a.Dash
	c := &a.Contact

	endGlide(t)
	endAllGrapples(t)

	dir := entity.Sign(a.LastInput.X)
	if c.OnWall {
		dir = -c.WallDirection
	}
	d.Velocity = cp.Vector{X: dir * t.Physics.Dash.Velocity}

	d.Dashing = true
	// ground and wall dashes are free
	if c.Airborne() {
		if !coyote {
			d.Gate.CanUse = false
			d.Gate.BufferUsable = false
		}
		d.Gate.CoyoteUsable = false
	}

	d.Timer = 0
	a.ExternalVelocity = cp.Vector{}
	t.Events.emit(entity.EventDash, true, 0)
}
