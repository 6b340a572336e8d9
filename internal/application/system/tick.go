package system

import (
	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// timeEpsilon absorbs float drift when fixed steps are summed into a duration.
const timeEpsilon = 1e-9

// Tick is everything one fixed step of the systems reads and writes.
type Tick struct {
	DT      float64
	Actor   *entity.Actor
	Body    Body
	Input   Input
	Events  *Events
	Physics *config.PhysicsConfig
	Unlocks *config.UnlocksConfig
}

// elapsed reports whether timer has reached duration.
func elapsed(timer, duration float64) bool {
	return timer+timeEpsilon >= duration
}

// UpdateControlLoss recomputes every control-loss multiplier from its timer.
func UpdateControlLoss(a *entity.Actor, p *config.PhysicsConfig) {
	a.ControlLoss[entity.LossWallJump].Update(p.Wall.JumpControlLossTime)
	a.ControlLoss[entity.LossDashJump].Update(p.Dash.JumpControlLossTime)
	a.ControlLoss[entity.LossGrapple].Update(p.Grapple.ControlLossTime)
	a.ControlLoss[entity.LossAlternateGrapple].Update(p.AlternateGrapple.ControlLossTime)
}

// resetAbilities re-arms every gate after touching ground or a wall.
func resetAbilities(t *Tick) {
	resetJump(t)
	resetDash(t)
	resetGrapple(&t.Actor.Grapple)
	resetGrapple(&t.Actor.AlternateGrapple)
}

func resetJump(t *Tick) {
	a := t.Actor
	a.Jump.EndedEarly = false
	a.Jump.CanEndEarly = false
	a.Jump.Gate.BufferUsable = true
	if a.Contact.OnGround {
		a.Jump.Gate.CoyoteUsable = true
	}
	if a.Contact.OnWall && !a.Contact.OnGround {
		a.Jump.WallCoyoteUsable = true
	}
	a.Jump.AirJumps = t.Unlocks.AirJumps
}

func resetDash(t *Tick) {
	g := &t.Actor.Dash.Gate
	g.CanUse = true
	// no dash buffer on walls
	if t.Actor.Contact.OnGround {
		g.BufferUsable = true
	}
	g.CoyoteUsable = true
}

func resetGrapple(g *entity.GrappleState) {
	g.Gate.CanUse = true
	g.Gate.BufferUsable = true
}

func endDash(t *Tick) {
	if !t.Actor.Dash.Dashing {
		return
	}
	t.Actor.Dash.Dashing = false
	t.Events.emit(entity.EventDash, false, 0)
}

func endGlide(t *Tick) {
	if !t.Actor.Gliding {
		return
	}
	t.Actor.Gliding = false
	t.Events.emit(entity.EventGlide, false, 0)
}

func endGrapple(t *Tick, g *entity.GrappleState) {
	if !g.Grappling {
		return
	}
	g.Grappling = false
	g.Target = entity.GrappleTarget{}
	t.Events.emit(entity.EventGrapple, false, 0)
}

// endAllGrapples stops travel of both variants.
func endAllGrapples(t *Tick) {
	endGrapple(t, &t.Actor.Grapple)
	endGrapple(t, &t.Actor.AlternateGrapple)
}
