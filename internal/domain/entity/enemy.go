package entity

import "github.com/jakecoffman/cp"

// EnemyID identifies an enemy within one stage.
type EnemyID int

// Enemy is a patrolling grapple target.
type Enemy struct {
	ID       EnemyID
	Type     string
	Position cp.Vector
	Velocity cp.Vector
	Radius   float64
	Active   bool

	// Patrol
	Speed          float64
	PatrolDistance float64
	PatrolStartX   float64
	PatrolDir      float64
}

// NewEnemy creates an active enemy at its spawn point.
func NewEnemy(id EnemyID, enemyType string, spawn EnemySpawn) *Enemy {
	return &Enemy{
		ID:             id,
		Type:           enemyType,
		Position:       spawn.Position,
		Radius:         spawn.Radius,
		Active:         true,
		Speed:          spawn.Speed,
		PatrolDistance: spawn.PatrolDistance,
		PatrolStartX:   spawn.Position.X,
		PatrolDir:      -1,
	}
}

// IsAlive returns true if enemy is still alive.
func (e *Enemy) IsAlive() bool {
	return e.Active
}

// Patrol turns around at either end of the patrol range and returns the new velocity.
func (e *Enemy) Patrol() cp.Vector {
	if !e.Active || e.Speed == 0 || e.PatrolDistance <= 0 {
		e.Velocity = cp.Vector{}
		return e.Velocity
	}

	offset := e.Position.X - e.PatrolStartX
	if offset <= -e.PatrolDistance {
		e.PatrolDir = 1
	} else if offset >= e.PatrolDistance {
		e.PatrolDir = -1
	}

	e.Velocity = cp.Vector{X: e.PatrolDir * e.Speed}
	return e.Velocity
}
