package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// grappleVariant binds the shared grapple protocol to one variant's state and tuning.
type grappleVariant struct {
	action entity.Action
	loss   entity.ControlLossSource
	state  func(a *entity.Actor) *entity.GrappleState
	tuning func(p *config.PhysicsConfig) config.GrappleConfig
}

var (
	standardGrapple = grappleVariant{
		action: entity.ActionGrapple,
		loss:   entity.LossGrapple,
		state:  func(a *entity.Actor) *entity.GrappleState { return &a.Grapple },
		tuning: func(p *config.PhysicsConfig) config.GrappleConfig { return p.Grapple },
	}
	alternateGrapple = grappleVariant{
		action: entity.ActionAlternateGrapple,
		loss:   entity.LossAlternateGrapple,
		state:  func(a *entity.Actor) *entity.GrappleState { return &a.AlternateGrapple },
		tuning: func(p *config.PhysicsConfig) config.GrappleConfig { return p.AlternateGrapple.GrappleConfig },
	}
)

// GrappleSystem runs both grapple variants through aim, launch and travel.
// The alternate variant aims inside a slow-motion freeze advanced per rendered frame.
type GrappleSystem struct {
	geometry Geometry
	clock    *TimeScale
}

// NewGrappleSystem creates a new grapple system.
func NewGrappleSystem(geometry Geometry, clock *TimeScale) *GrappleSystem {
	return &GrappleSystem{
		geometry: geometry,
		clock:    clock,
	}
}

// Update runs the standard grapple for one fixed tick.
func (s *GrappleSystem) Update(t *Tick) {
	v := standardGrapple
	g := v.state(t.Actor)

	if s.canStartAim(t, v) {
		s.startAim(t, v)
	}
	if g.Aiming {
		s.aim(t, v)
		if !t.Input.IsActionHeld(v.action) {
			s.release(t, v)
		}
	}
	s.travel(t, v)

	g.Gate.ToConsume = false
}

// UpdateAlternate runs the alternate grapple for one fixed tick.
// Aiming itself happens in Frame while the freeze is active.
func (s *GrappleSystem) UpdateAlternate(t *Tick) {
	v := alternateGrapple
	g := v.state(t.Actor)

	if s.canStartAim(t, v) {
		s.startAim(t, v)
		t.Actor.Freeze = entity.FreezeState{Active: true}
		s.advanceFreeze(t, 0)
	}
	s.travel(t, v)

	g.Gate.ToConsume = false
}

// Frame advances the alternate grapple freeze by unscaled frame time.
func (s *GrappleSystem) Frame(t *Tick, unscaledDT float64) {
	if !t.Actor.Freeze.Active {
		return
	}
	s.advanceFreeze(t, unscaledDT)
}

func (s *GrappleSystem) canStartAim(t *Tick, v grappleVariant) bool {
	g := v.state(t.Actor)
	return t.Unlocks.Grapple && !g.Aiming &&
		g.Gate.Requested(v.tuning(t.Physics).BufferTime) && g.Gate.CanUse
}

func (s *GrappleSystem) startAim(t *Tick, v grappleVariant) {
	g := v.state(t.Actor)
	t.Events.emit(entity.EventGrappleAim, true, 0)
	g.Aiming = true
	g.Aim = entity.GrappleTarget{}
	g.Gate.BufferUsable = false
	g.Indicator.Visible = true
}

// advanceFreeze is one pass of the freeze loop: aim, slow time on its own
// cadence, then advance the timers. It ends on release or timeout.
func (s *GrappleSystem) advanceFreeze(t *Tick, unscaledDT float64) {
	v := alternateGrapple
	f := &t.Actor.Freeze
	cfg := t.Physics.AlternateGrapple

	if !t.Input.IsActionHeld(v.action) || f.Timer >= cfg.FreezeTime {
		f.Active = false
		s.clock.Restore()
		s.release(t, v)
		return
	}

	s.aim(t, v)

	if f.LerpTimer > cfg.TimeScaleLerpTime {
		s.clock.Set(entity.Lerp(s.clock.Scale(), 0, cfg.TimeScaleLerpFactor))
		f.LerpTimer -= cfg.TimeScaleLerpTime
	}

	f.Timer += unscaledDT
	f.LerpTimer += unscaledDT
}

// aim picks the candidate target along the aim direction and updates the indicator.
// An enemy hit wins over terrain.
func (s *GrappleSystem) aim(t *Tick, v grappleVariant) {
	a := t.Actor
	g := v.state(a)
	center := a.Center()

	dir := t.Input.WorldAimPoint().Sub(center)
	if dir.LengthSq() == 0 {
		dir = cp.Vector{X: a.Facing()}
	}
	dir = dir.Normalize()
	g.AimDir = dir

	reach := t.Unlocks.GrappleDistance
	if hit, ok := s.geometry.Raycast(center, dir, reach, entity.LayerEnemy); ok {
		g.Aim = entity.GrappleTarget{Collider: hit.Collider, Position: hit.Point, IsEnemy: true}
	} else if hit, ok := s.geometry.Raycast(center, dir, reach, entity.LayerTerrain); ok {
		g.Aim = entity.GrappleTarget{Collider: hit.Collider, Position: hit.Point}
	} else {
		g.Aim = entity.GrappleTarget{}
	}

	g.Indicator = entity.Indicator{
		Visible:   true,
		Center:    center,
		Radius:    reach * 2,
		LineStart: center.Add(dir.Mult(v.tuning(t.Physics).LineOffset)),
		LineEnd:   center.Add(dir.Mult(reach)),
	}
}

// release ends aiming and launches toward the candidate, if any.
func (s *GrappleSystem) release(t *Tick, v grappleVariant) {
	a := t.Actor
	g := v.state(a)
	cfg := v.tuning(t.Physics)

	g.Aiming = false
	endDash(t)
	endGlide(t)

	a.Jump.EndedEarly = false
	a.Jump.CanEndEarly = false
	a.Jump.Gate.CoyoteUsable = false
	a.Jump.WallCoyoteUsable = false
	a.Dash.Gate.CoyoteUsable = false

	g.Indicator.Visible = false
	t.Events.emit(entity.EventGrappleAim, false, 0)

	if !g.Aim.Acquired() || !g.Aim.Collider.Valid() {
		return
	}

	target := g.Aim
	if !target.IsEnemy {
		// stop short of the surface so the actor does not wedge into it
		back := target.Position.Sub(a.Center()).Normalize().Mult(cfg.TargetOffset)
		target.Position = target.Position.Sub(back)
	}
	g.Target = target
	g.Grappling = true
	a.Velocity = g.AimDir.Mult(cfg.Velocity)
	t.Events.emit(entity.EventGrapple, true, 0)
}

// travel pulls the actor toward the target until the collider reaches it.
// A destroyed target ends travel as if it had been reached.
func (s *GrappleSystem) travel(t *Tick, v grappleVariant) {
	a := t.Actor
	g := v.state(a)
	if !g.Grappling {
		return
	}

	if g.Target.Collider == nil || !g.Target.Collider.Valid() {
		s.arrive(t, v)
		return
	}

	center := a.Center()
	if g.Target.IsEnemy {
		g.Target.Position = g.Target.Collider.ClosestPoint(center)
	}

	if a.Capsule().Contains(g.Target.Position) {
		s.arrive(t, v)
		return
	}
	a.Velocity = g.Target.Position.Sub(center).Normalize().Mult(v.tuning(t.Physics).Velocity)
}

func (s *GrappleSystem) arrive(t *Tick, v grappleVariant) {
	endGrapple(t, v.state(t.Actor))
	t.Actor.ControlLoss[v.loss].Reset()
}
