package config

// StageConfig is the root config for stage YAML files.
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    float64                      `yaml:"tileSize"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Enemies     []EnemySpawnConfig           `yaml:"enemies"`
}

// PositionConfig is a world-space position (y grows upward).
type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayersConfig holds tile rows, top row first.
type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type string `yaml:"type"` // solid, slopeUp, slopeDown
}

// EnemySpawnConfig places a patrolling grapple target.
type EnemySpawnConfig struct {
	Type           string  `yaml:"type"`
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	Radius         float64 `yaml:"radius"`
	PatrolDistance float64 `yaml:"patrolDistance"`
	Speed          float64 `yaml:"speed"`
}
