package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func createTestCollider() CapsuleShape {
	return CapsuleShape{
		Size:   cp.Vector{X: 0.8, Y: 1.8},
		Offset: cp.Vector{X: 0, Y: 0.9},
	}
}

func TestCapsuleShape_At(t *testing.T) {
	c := createTestCollider().At(cp.Vector{X: 2, Y: 3})

	assert.InDelta(t, 2, c.Center.X, 1e-9)
	assert.InDelta(t, 3.9, c.Center.Y, 1e-9)
	assert.InDelta(t, 0.4, c.Radius(), 1e-9)
	assert.InDelta(t, 4.8, c.Top().Y, 1e-9)

	bottom, top := c.Spine()
	assert.InDelta(t, 3.4, bottom.Y, 1e-9)
	assert.InDelta(t, 4.4, top.Y, 1e-9)
}

func TestCapsule_Contains(t *testing.T) {
	c := createTestCollider().At(cp.Vector{})

	tests := []struct {
		name string
		p    cp.Vector
		want bool
	}{
		{"center", cp.Vector{X: 0, Y: 0.9}, true},
		{"side edge", cp.Vector{X: 0.399, Y: 0.9}, true},
		{"outside side", cp.Vector{X: 0.41, Y: 0.9}, false},
		{"feet", cp.Vector{X: 0, Y: 0.001}, true},
		{"below feet", cp.Vector{X: 0, Y: -0.01}, false},
		{"rounded corner excluded", cp.Vector{X: 0.39, Y: 0.01}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.p))
		})
	}
}

func TestCapsule_Shrink(t *testing.T) {
	c := createTestCollider().At(cp.Vector{}).Shrink(0.1)

	assert.InDelta(t, 0.7, c.Size.X, 1e-9)
	assert.InDelta(t, 1.7, c.Size.Y, 1e-9)
	assert.Equal(t, cp.Vector{X: 0, Y: 0.9}, c.Center)
}

func TestCapsule_WideDegeneratesToCircle(t *testing.T) {
	c := Capsule{Size: cp.Vector{X: 2, Y: 1}}
	bottom, top := c.Spine()

	assert.Equal(t, bottom, top)
	assert.InDelta(t, 0.5, c.Radius(), 1e-9)
}
