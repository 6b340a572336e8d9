package entity

import "github.com/jakecoffman/cp"

// Hit is the result of a sweep or ray query.
// Distance is how far the shape or ray travelled before touching the surface.
type Hit struct {
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
	Collider Collider
}
