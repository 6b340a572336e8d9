package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// Enemy is a patrolling kinematic circle on the enemy layer.
type Enemy struct {
	Entity   *entity.Enemy
	body     *cp.Body
	shape    *cp.Shape
	collider *shapeCollider
}

func newEnemy(space *cp.Space, id entity.EnemyID, spawn entity.EnemySpawn) *Enemy {
	e := entity.NewEnemy(id, "drone", spawn)

	body := space.AddBody(cp.NewKinematicBody())
	body.SetPosition(spawn.Position)

	shape := cp.NewCircle(body, spawn.Radius, cp.Vector{})
	collider := attach(shape, entity.LayerEnemy)
	space.AddShape(shape)

	return &Enemy{
		Entity:   e,
		body:     body,
		shape:    shape,
		collider: collider,
	}
}

// Position returns the enemy center.
func (e *Enemy) Position() cp.Vector {
	return e.Entity.Position
}

// Collider returns the handle grapples lock onto.
func (e *Enemy) Collider() entity.Collider {
	return e.collider
}

// prepare picks the patrol velocity before the space steps.
func (e *Enemy) prepare() {
	e.Entity.Position = e.body.Position()
	e.body.SetVelocityVector(e.Entity.Patrol())
}

// sync copies the stepped body position back into the entity.
func (e *Enemy) sync() {
	e.Entity.Position = e.body.Position()
}
