package system

import "github.com/younwookim/loppy/internal/domain/entity"

// GlideSystem toggles gliding. The fall itself is shaped by PhysicsSystem.
type GlideSystem struct{}

// NewGlideSystem creates a new glide system.
func NewGlideSystem() *GlideSystem {
	return &GlideSystem{}
}

// Update starts or ends the glide.
func (s *GlideSystem) Update(t *Tick) {
	a := t.Actor
	c := &a.Contact
	held := t.Input.IsActionHeld(entity.ActionGlide)

	if t.Unlocks.Glide && !a.Gliding && held && c.Airborne() && !a.Dash.Dashing {
		a.Gliding = true
		t.Events.emit(entity.EventGlide, true, 0)
	}

	if a.Gliding && (!held || c.OnGround || c.OnWall || a.Dash.Dashing) {
		endGlide(t)
	}
}
