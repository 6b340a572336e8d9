package system

import (
	"github.com/jakecoffman/cp"

	"github.com/younwookim/loppy/internal/domain/entity"
	"github.com/younwookim/loppy/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// The widest row sets the stage width; short rows are padded with empty tiles.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 1
	}

	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}
			tiles[y][x] = entity.Tile{Type: tileType(mapping.Type)}
		}
	}

	enemies := make([]entity.EnemySpawn, 0, len(cfg.Enemies))
	for _, e := range cfg.Enemies {
		enemies = append(enemies, entity.EnemySpawn{
			Position:       cp.Vector{X: e.X, Y: e.Y},
			Radius:         e.Radius,
			PatrolDistance: e.PatrolDistance,
			Speed:          e.Speed,
		})
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		Spawn:    cp.Vector{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		Enemies:  enemies,
	}
}

func tileType(name string) entity.TileType {
	switch name {
	case "solid":
		return entity.TileSolid
	case "slopeUp":
		return entity.TileSlopeUp
	case "slopeDown":
		return entity.TileSlopeDown
	default:
		return entity.TileEmpty
	}
}
