package entity

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CapsuleShape is the actor's collider in local space.
// Offset is measured from the actor position (the feet) to the capsule center.
// Size.X is the diameter, Size.Y the full height.
type CapsuleShape struct {
	Size   cp.Vector
	Offset cp.Vector
}

// At places the collider at the given actor position.
func (s CapsuleShape) At(position cp.Vector) Capsule {
	return Capsule{Center: position.Add(s.Offset), Size: s.Size}
}

// Capsule is a vertical capsule placed in world space.
type Capsule struct {
	Center cp.Vector
	Size   cp.Vector
}

// Radius returns the radius of the capsule's rounded ends.
func (c Capsule) Radius() float64 {
	return math.Min(c.Size.X, c.Size.Y) / 2
}

// Spine returns the bottom and top centers of the end circles.
// For a capsule wider than tall the spine degenerates to the center point.
func (c Capsule) Spine() (bottom, top cp.Vector) {
	half := math.Max(c.Size.Y/2-c.Radius(), 0)
	return c.Center.Add(cp.Vector{Y: -half}), c.Center.Add(cp.Vector{Y: half})
}

// Top returns the highest point on the capsule's axis.
func (c Capsule) Top() cp.Vector {
	return c.Center.Add(cp.Vector{Y: c.Size.Y / 2})
}

// Shrink returns the capsule with both dimensions reduced by d.
func (c Capsule) Shrink(d float64) Capsule {
	return Capsule{
		Center: c.Center,
		Size:   cp.Vector{X: math.Max(c.Size.X-d, 0), Y: math.Max(c.Size.Y-d, 0)},
	}
}

// Translate returns the capsule moved by delta.
func (c Capsule) Translate(delta cp.Vector) Capsule {
	return Capsule{Center: c.Center.Add(delta), Size: c.Size}
}

// Contains reports whether p lies inside or on the capsule.
func (c Capsule) Contains(p cp.Vector) bool {
	bottom, top := c.Spine()
	return distanceToSegment(p, bottom, top) <= c.Radius()
}

func distanceToSegment(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := Clamp01(p.Sub(a).Dot(ab) / lenSq)
	return p.Distance(a.Add(ab.Mult(t)))
}
