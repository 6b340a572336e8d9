package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

const (
	// skinWidth is the gap the mover keeps from terrain
	skinWidth = 0.01
	// maxSlides bounds the move-and-slide iterations of one step
	maxSlides = 4
	minMove   = 1e-6
)

// ActorBody is a kinematic capsule moved by velocity with move-and-slide
// against terrain. It is not part of the cp space, so enemies never push it.
type ActorBody struct {
	world    *World
	shape    entity.CapsuleShape
	position cp.Vector
	velocity cp.Vector
}

// Position returns the feet position.
func (b *ActorBody) Position() cp.Vector {
	return b.position
}

// SetPosition teleports the body.
func (b *ActorBody) SetPosition(p cp.Vector) {
	b.position = p
}

// Velocity returns the commanded velocity.
func (b *ActorBody) Velocity() cp.Vector {
	return b.velocity
}

// SetVelocity sets the velocity used by the next steps.
func (b *ActorBody) SetVelocity(v cp.Vector) {
	b.velocity = v
}

// SetShape swaps the capsule, e.g. after a config reload.
func (b *ActorBody) SetShape(shape entity.CapsuleShape) {
	b.shape = shape
}

// Capsule returns the collider placed at the current position.
func (b *ActorBody) Capsule() entity.Capsule {
	return b.shape.At(b.position)
}

// step moves the body by velocity*dt, sliding along whatever it touches.
func (b *ActorBody) step(dt float64) {
	remaining := b.velocity.Mult(dt)

	for i := 0; i < maxSlides; i++ {
		dist := remaining.Length()
		if dist < minMove {
			return
		}
		dir := remaining.Mult(1 / dist)

		hit, reach, ok := b.world.cast(b.Capsule(), dir, dist+skinWidth, entity.LayerTerrain)
		if !ok {
			b.position = b.position.Add(remaining)
			return
		}

		// reach may be negative when already touching; moving back restores the skin
		travel := math.Min(reach-skinWidth, dist)
		b.position = b.position.Add(dir.Mult(travel))

		leftover := remaining.Sub(dir.Mult(math.Max(travel, 0)))
		n := hit.Normal
		remaining = leftover.Sub(n.Mult(leftover.Dot(n)))
	}
}
