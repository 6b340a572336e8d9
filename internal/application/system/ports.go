package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// Input is the per-tick input snapshot the controller consumes.
type Input interface {
	IsActionHeld(action entity.Action) bool
	// IsActionPressed is true only on the tick the action became held
	IsActionPressed(action entity.Action) bool
	WorldAimPoint() cp.Vector
}

// Geometry answers shape queries against the stage.
// A miss is reported as false and is never an error.
type Geometry interface {
	SweepCapsule(shape entity.Capsule, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool)
	OverlapCapsule(shape entity.Capsule, mask entity.LayerMask) bool
	Raycast(origin, dir cp.Vector, maxDistance float64, mask entity.LayerMask) (entity.Hit, bool)
}

// Body is the simulated rigid body that carries the actor through the world.
type Body interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	SetVelocity(v cp.Vector)
}

// Settings hands out the configuration snapshot for one tick.
type Settings interface {
	Current() *config.GameConfig
}

// Axes reads the horizontal and vertical direction axes from input.
func Axes(in Input) cp.Vector {
	return cp.Vector{
		X: entity.Axis(in.IsActionHeld, entity.ActionLeft, entity.ActionRight),
		Y: entity.Axis(in.IsActionHeld, entity.ActionDown, entity.ActionUp),
	}
}
