package entity

import "github.com/jakecoffman/cp"

// TileType represents the type of a tile.
type TileType int

const (
	TileEmpty TileType = iota
	TileSolid
	// TileSlopeUp rises toward +x, TileSlopeDown falls toward +x.
	TileSlopeUp
	TileSlopeDown
)

// Tile represents a single tile in the stage.
type Tile struct {
	Type TileType
}

// Solid reports whether the tile blocks movement at all.
func (t Tile) Solid() bool {
	return t.Type != TileEmpty
}

// EnemySpawn places a patrolling grapple target.
type EnemySpawn struct {
	Position       cp.Vector
	Radius         float64
	PatrolDistance float64
	Speed          float64
}

// Stage is the tile layout the geometry backend is built from.
// Row 0 of Tiles is the top row; world y grows upward.
type Stage struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile
	Spawn    cp.Vector
	Enemies  []EnemySpawn
}

// GetTile returns the tile at the given tile coordinates.
// Everything outside the stage counts as empty.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileEmpty}
	}
	return s.Tiles[ty][tx]
}

// TileBounds returns the world-space box of a tile.
func (s *Stage) TileBounds(tx, ty int) cp.BB {
	l := float64(tx) * s.TileSize
	b := float64(s.Height-ty-1) * s.TileSize
	return cp.BB{L: l, B: b, R: l + s.TileSize, T: b + s.TileSize}
}

// TileCenter returns the world-space center of a tile.
func (s *Stage) TileCenter(tx, ty int) cp.Vector {
	return s.TileBounds(tx, ty).Center()
}
