package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds one consistent snapshot of every loaded configuration.
type GameConfig struct {
	Physics  *PhysicsConfig
	Unlocks  *UnlocksConfig
	Controls *ControlsConfig
}

// Current returns the snapshot itself, so a plain GameConfig can be handed
// to anything that reads settings once per tick.
func (g *GameConfig) Current() *GameConfig {
	return g
}

// Loader loads game configuration from YAML files using fs.FS interface.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for.
func (l *Loader) BasePath() string {
	return l.basePath
}

// decodeFile decodes name over out, leaving fields the file omits untouched.
func (l *Loader) decodeFile(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadPhysics loads physics.yaml on top of the defaults.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg := DefaultPhysics()
	if err := l.decodeFile("physics.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadUnlocks loads unlocks.yaml on top of the defaults.
func (l *Loader) LoadUnlocks() (*UnlocksConfig, error) {
	cfg := DefaultUnlocks()
	if err := l.decodeFile("unlocks.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadControls loads controls.yaml. Actions the file does not bind keep their default keys.
func (l *Loader) LoadControls() (*ControlsConfig, error) {
	cfg := DefaultControls()
	var file ControlsConfig
	if err := l.decodeFile("controls.yaml", &file); err != nil {
		return nil, err
	}
	for action, keys := range file.Bindings {
		cfg.Bindings[action] = keys
	}
	return &cfg, nil
}

// LoadStage loads a stage YAML file.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".yaml"
	var cfg StageConfig
	if err := l.decodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads and validates every base configuration.
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	unlocks, err := l.LoadUnlocks()
	if err != nil {
		return nil, err
	}

	controls, err := l.LoadControls()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics:  physics,
		Unlocks:  unlocks,
		Controls: controls,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}
