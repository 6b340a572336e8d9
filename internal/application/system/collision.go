package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

const (
	// slopeEpsilon treats smaller normal components as "no slope"
	slopeEpsilon = 1e-4
	// clearanceShrink keeps a placement test from touching the surface it stands on
	clearanceShrink = 0.1
)

// CollisionSystem resolves ground, ceiling, wall and ledge contact from sweeps.
type CollisionSystem struct {
	geometry Geometry
	ledge    *LedgeClimbSystem
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(geometry Geometry, ledge *LedgeClimbSystem) *CollisionSystem {
	return &CollisionSystem{
		geometry: geometry,
		ledge:    ledge,
	}
}

// contactProbe is the outcome of one contact sweep.
type contactProbe struct {
	hit    bool
	normal cp.Vector
	point  cp.Vector
}

// probe casts the actor capsule along dir. The cast reaches twice the contact
// tolerance so a normal is known slightly before contact is accepted.
func (s *CollisionSystem) probe(t *Tick, dir cp.Vector) contactProbe {
	tolerance := t.Physics.Collision.RaycastDistance
	hit, ok := s.geometry.SweepCapsule(t.Actor.Capsule(), dir, tolerance*2, entity.LayerTerrain)
	if !ok {
		return contactProbe{}
	}
	return contactProbe{
		hit:    hit.Distance <= tolerance,
		normal: hit.Normal,
		point:  hit.Point,
	}
}

// Update refreshes every contact flag for this tick.
func (s *CollisionSystem) Update(t *Tick) {
	ceiling := s.updateVertical(t)
	s.updateHorizontal(t, ceiling)
}

func (s *CollisionSystem) updateVertical(t *Tick) bool {
	a := t.Actor
	c := &a.Contact
	p := t.Physics

	ground := s.probe(t, entity.Down)
	roof := s.probe(t, entity.Up)
	c.GroundNormal = ground.normal
	c.CeilingNormal = roof.normal
	groundAngle := entity.AngleDegrees(ground.normal, entity.Up)
	walkable := ground.hit && groundAngle <= p.Collision.MaxWalkAngle

	switch {
	case !c.OnGround && walkable:
		c.OnGround = true
		resetAbilities(t)
		t.Events.emit(entity.EventGrounded, true, math.Abs(a.Velocity.Y))

	case c.OnGround && !walkable:
		c.OnGround = false
		a.Jump.Gate.ArmCoyote()
		a.Dash.Gate.ArmCoyote()
		t.Events.emit(entity.EventGrounded, false, 0)

	case c.OnGround:
		n := ground.normal
		if !entity.IsZero(n) && !entity.Approximately(math.Abs(n.Y), 1) && math.Abs(n.Y) > slopeEpsilon {
			a.Velocity.Y = a.Velocity.X * (-n.X / n.Y)
			if a.Velocity.X != 0 {
				a.Velocity.Y += p.Movement.GroundingForce
			}
		}
	}

	c.Ceiling = roof.hit && math.Abs(roof.normal.Y) > math.Abs(roof.normal.X)
	if c.Ceiling {
		a.ExternalVelocity.Y = math.Min(0, a.ExternalVelocity.Y)
		a.Velocity.Y = math.Min(0, a.Velocity.Y)
	}
	return c.Ceiling
}

func (s *CollisionSystem) updateHorizontal(t *Tick, ceiling bool) {
	a := t.Actor
	c := &a.Contact
	p := t.Physics

	wall := s.probe(t, cp.Vector{X: entity.Sign(a.LastInput.X)})
	c.WallNormal = wall.normal
	wallAngle := math.Min(
		entity.AngleDegrees(wall.normal, entity.Left),
		entity.AngleDegrees(wall.normal, entity.Right),
	)
	climbable := wall.hit && wallAngle <= p.Collision.MaxClimbAngle

	switch {
	case t.Unlocks.WallClimb && !c.OnWall && climbable && a.Input.X != 0 &&
		!c.OnGround && !ceiling && a.Velocity.Y < 0:
		impact := math.Abs(a.Velocity.X)
		c.OnWall = true
		c.WallDirection = entity.Sign(a.LastInput.X)
		a.Velocity = cp.Vector{}
		resetAbilities(t)
		t.Events.emit(entity.EventWallCling, true, impact)

	case c.OnWall && (!climbable || c.OnGround):
		c.LeaveWall()
		a.Jump.WallCoyoteTimer = 0
		a.Dash.Gate.ArmCoyote()
		t.Events.emit(entity.EventWallCling, false, 0)

	case c.OnWall:
		n := wall.normal
		if !entity.IsZero(n) && !entity.Approximately(math.Abs(n.X), 1) && math.Abs(n.X) > slopeEpsilon {
			a.Velocity.X = a.Velocity.Y * (-n.Y / n.X)
		}
		s.updateLedge(t)

	default:
		c.OnLedge = false
	}
}

// updateLedge finds the ledge corner while holding a wall and starts a climb on request.
func (s *CollisionSystem) updateLedge(t *Tick) {
	a := t.Actor
	c := &a.Contact
	p := t.Physics

	corner, ok := s.ledgeCorner(t)
	c.OnLedge = ok
	if !ok {
		return
	}
	c.LedgeCorner = corner

	if a.HasControl {
		target := grabPosition(t, corner)
		a.Position = entity.MoveTowardsVector(a.Position, target, p.Ledge.GrabDeceleration*t.DT)
		t.Body.SetPosition(a.Position)
	}

	if !c.ClimbingLedge && a.Input.Y > 0 && s.positionClear(t, standPosition(t, corner)) {
		s.ledge.Start(t)
	}
}

// ledgeCorner combines three probes: the space above the collider toward the
// wall must be open, the wall itself must be there, and a ray dropped just
// past the wall face must land on its top. The corner is (wall x, top y).
func (s *CollisionSystem) ledgeCorner(t *Tick) (cp.Vector, bool) {
	a := t.Actor
	c := &a.Contact
	p := t.Physics
	if !c.OnWall {
		return cp.Vector{}, false
	}

	capsule := a.Capsule()
	dir := cp.Vector{X: c.WallDirection}
	halfHeight := cp.Vector{Y: capsule.Size.Y / 2}

	topOrigin := capsule.Center.Add(halfHeight)
	topDistance := capsule.Size.X/2 + p.Ledge.RaycastDistance
	if _, blocked := s.geometry.Raycast(topOrigin, dir, topDistance, entity.LayerTerrain); blocked {
		return cp.Vector{}, false
	}

	wallHit, ok := s.geometry.SweepCapsule(capsule, dir, p.Ledge.RaycastDistance, entity.LayerTerrain)
	if !ok {
		return cp.Vector{}, false
	}

	dropOrigin := capsule.Center.Add(cp.Vector{X: c.WallDirection * p.Ledge.GrabPoint.X * 2, Y: capsule.Size.Y / 2})
	topHit, ok := s.geometry.Raycast(dropOrigin, entity.Down, capsule.Size.Y, entity.LayerTerrain)
	if !ok {
		return cp.Vector{}, false
	}

	return cp.Vector{X: wallHit.Point.X, Y: topHit.Point.Y}, true
}

// positionClear reports whether the actor would fit standing at position.
func (s *CollisionSystem) positionClear(t *Tick, position cp.Vector) bool {
	shape := t.Actor.Collider.At(position).Shrink(clearanceShrink)
	return !s.geometry.OverlapCapsule(shape, entity.LayerTerrain)
}
