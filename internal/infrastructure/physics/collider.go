package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// shapeCollider is the borrowed handle query results hand out for a cp shape.
type shapeCollider struct {
	shape *cp.Shape
	layer entity.LayerMask
}

// Valid reports whether the shape is still part of a space.
func (c *shapeCollider) Valid() bool {
	return c.shape != nil && c.shape.Space() != nil
}

// ClosestPoint returns the point on the shape nearest p, or p itself when p is inside.
func (c *shapeCollider) ClosestPoint(p cp.Vector) cp.Vector {
	info := c.shape.PointQuery(p)
	if info.Distance <= 0 {
		return p
	}
	return info.Point
}

// Layer returns the collision layer the shape belongs to.
func (c *shapeCollider) Layer() entity.LayerMask {
	return c.layer
}

// attach tags shape with its layer and makes it resolvable from query results.
func attach(shape *cp.Shape, layer entity.LayerMask) *shapeCollider {
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(layer),
		Mask:       cp.ALL_CATEGORIES,
	})
	c := &shapeCollider{shape: shape, layer: layer}
	shape.UserData = c
	return c
}

// queryFilter selects shapes on any layer in mask.
func queryFilter(mask entity.LayerMask) cp.ShapeFilter {
	return cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: cp.ALL_CATEGORIES,
		Mask:       uint(mask),
	}
}

func colliderOf(shape *cp.Shape) entity.Collider {
	if c, ok := shape.UserData.(*shapeCollider); ok {
		return c
	}
	return nil
}
