package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
)

// solidRect is a run of solid tiles in tile coordinates, rows top-first.
type solidRect struct {
	x0, x1 int // inclusive columns
	y0, y1 int // inclusive rows
}

// mergeSolidTiles greedily merges solid tiles into rectangles: horizontal runs
// first, then runs with equal columns in consecutive rows.
func mergeSolidTiles(stage *entity.Stage) []solidRect {
	var rects []solidRect
	open := make(map[[2]int]int) // run columns -> index of the rect still growing downward

	for y := 0; y < stage.Height; y++ {
		next := make(map[[2]int]int)
		for x := 0; x < stage.Width; {
			if stage.GetTile(x, y).Type != entity.TileSolid {
				x++
				continue
			}
			start := x
			for x < stage.Width && stage.GetTile(x, y).Type == entity.TileSolid {
				x++
			}
			key := [2]int{start, x - 1}
			if i, ok := open[key]; ok {
				rects[i].y1 = y
				next[key] = i
				continue
			}
			rects = append(rects, solidRect{x0: start, x1: x - 1, y0: y, y1: y})
			next[key] = len(rects) - 1
		}
		open = next
	}
	return rects
}

// rectBounds converts a tile rectangle to world space.
func rectBounds(stage *entity.Stage, r solidRect) cp.BB {
	topLeft := stage.TileBounds(r.x0, r.y0)
	bottomRight := stage.TileBounds(r.x1, r.y1)
	return cp.BB{L: topLeft.L, B: bottomRight.B, R: bottomRight.R, T: topLeft.T}
}

// slopeVerts returns the triangle of a slope tile, counter-clockwise.
func slopeVerts(bb cp.BB, t entity.TileType) []cp.Vector {
	if t == entity.TileSlopeUp {
		return []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.R, Y: bb.T}}
	}
	return []cp.Vector{{X: bb.L, Y: bb.B}, {X: bb.R, Y: bb.B}, {X: bb.L, Y: bb.T}}
}

// buildTerrain adds static shapes for every solid and slope tile of stage.
func buildTerrain(space *cp.Space, stage *entity.Stage) []*cp.Shape {
	var shapes []*cp.Shape

	for _, r := range mergeSolidTiles(stage) {
		shape := cp.NewBox2(space.StaticBody, rectBounds(stage, r), 0)
		attach(shape, entity.LayerTerrain)
		shapes = append(shapes, space.AddShape(shape))
	}

	for y := 0; y < stage.Height; y++ {
		for x := 0; x < stage.Width; x++ {
			t := stage.GetTile(x, y).Type
			if t != entity.TileSlopeUp && t != entity.TileSlopeDown {
				continue
			}
			verts := slopeVerts(stage.TileBounds(x, y), t)
			shape := cp.NewPolyShape(space.StaticBody, len(verts), verts, cp.NewTransformIdentity(), 0)
			attach(shape, entity.LayerTerrain)
			shapes = append(shapes, space.AddShape(shape))
		}
	}
	return shapes
}
