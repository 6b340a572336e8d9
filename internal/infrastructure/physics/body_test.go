package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/loppy/internal/domain/entity"
)

const testDT = 1.0 / 60

func stepFor(w *World, seconds float64) {
	for i := 0; i < int(math.Round(seconds/testDT)); i++ {
		w.Step(testDT)
	}
}

func TestActorBody_Step(t *testing.T) {
	tests := []struct {
		name     string
		start    cp.Vector
		velocity cp.Vector
		check    func(t *testing.T, p cp.Vector)
	}{
		{
			name:     "lands on floor",
			start:    cp.Vector{X: 5, Y: 3},
			velocity: cp.Vector{Y: -10},
			check: func(t *testing.T, p cp.Vector) {
				assert.InDelta(t, 1+skinWidth, p.Y, 5e-3)
				assert.InDelta(t, 5, p.X, 1e-9)
			},
		},
		{
			name:     "slides along floor",
			start:    cp.Vector{X: 3, Y: 1.5},
			velocity: cp.Vector{X: 5, Y: -10},
			check: func(t *testing.T, p cp.Vector) {
				assert.GreaterOrEqual(t, p.Y, 1.0)
				assert.Greater(t, p.X, 4.0)
			},
		},
		{
			name:     "stops at wall",
			start:    cp.Vector{X: 3, Y: 1 + skinWidth},
			velocity: cp.Vector{X: -10},
			check: func(t *testing.T, p cp.Vector) {
				assert.InDelta(t, 1.4+skinWidth, p.X, 5e-3)
				assert.GreaterOrEqual(t, p.Y, 1.0)
			},
		},
		{
			name:     "free flight",
			start:    cp.Vector{X: 5, Y: 3},
			velocity: cp.Vector{X: 1, Y: 1},
			check: func(t *testing.T, p cp.Vector) {
				assert.InDelta(t, 5.5, p.X, 1e-2)
				assert.InDelta(t, 3.5, p.Y, 1e-2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(floorStage())
			b := w.AddActor(tt.start, testShape)
			b.SetVelocity(tt.velocity)

			stepFor(w, 0.5)

			tt.check(t, b.Position())
		})
	}
}

func TestActorBody_NeverSinks(t *testing.T) {
	w := NewWorld(floorStage())
	b := w.AddActor(cp.Vector{X: 5, Y: 4}, testShape)
	b.SetVelocity(cp.Vector{Y: -40})

	for i := 0; i < 120; i++ {
		w.Step(testDT)
		require.GreaterOrEqual(t, b.Position().Y, 1.0, "tick %d", i)
	}
	assert.False(t, w.OverlapCapsule(b.Capsule(), entity.LayerTerrain))
}

func TestActorBody_SetShape(t *testing.T) {
	w := NewWorld(floorStage())
	b := w.AddActor(cp.Vector{X: 5, Y: 2}, testShape)

	b.SetShape(entity.CapsuleShape{Size: cp.Vector{X: 1, Y: 1}, Offset: cp.Vector{Y: 0.5}})

	assert.Equal(t, cp.Vector{X: 5, Y: 2.5}, b.Capsule().Center)
	assert.Equal(t, cp.Vector{X: 1, Y: 1}, b.Capsule().Size)
}
