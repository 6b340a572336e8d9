package playing

import "github.com/jakecoffman/cp"

// camera maps world units (y up) to screen pixels (y down) around a focus point.
type camera struct {
	focus         cp.Vector
	screenW       float64
	screenH       float64
	pixelsPerUnit float64
}

func newCamera(screenW, screenH int, pixelsPerUnit float64) *camera {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &camera{
		screenW:       float64(screenW),
		screenH:       float64(screenH),
		pixelsPerUnit: pixelsPerUnit,
	}
}

// follow eases toward target, snapping when rate covers the whole distance.
func (c *camera) follow(target cp.Vector, rate float64) {
	c.focus = c.focus.Lerp(target, cp.Clamp01(rate))
}

func (c *camera) toScreen(p cp.Vector) (float32, float32) {
	x := (p.X-c.focus.X)*c.pixelsPerUnit + c.screenW/2
	y := c.screenH/2 - (p.Y-c.focus.Y)*c.pixelsPerUnit
	return float32(x), float32(y)
}

func (c *camera) toWorld(x, y float64) cp.Vector {
	return cp.Vector{
		X: c.focus.X + (x-c.screenW/2)/c.pixelsPerUnit,
		Y: c.focus.Y - (y-c.screenH/2)/c.pixelsPerUnit,
	}
}

func (c *camera) length(units float64) float32 {
	return float32(units * c.pixelsPerUnit)
}
