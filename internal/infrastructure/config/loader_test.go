package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 18.0, cfg.Jump.Strength)
	assert.Equal(t, 0.1, cfg.Jump.CoyoteTime)
	assert.Equal(t, Vec2{X: 7, Y: 20}, cfg.Wall.JumpStrength)
	assert.Equal(t, 0.25, cfg.Dash.EndHorizontalMultiplier)
	assert.Equal(t, 4.0, cfg.AlternateGrapple.FreezeTime)
	assert.Equal(t, 0.4, cfg.AlternateGrapple.TargetOffset, "inline grapple fields decode")
}

func TestLoader_LoadUnlocks(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadUnlocks()
	require.NoError(t, err)

	assert.True(t, cfg.WallClimb)
	assert.True(t, cfg.Dash)
	assert.Equal(t, 1, cfg.AirJumps)
	assert.Equal(t, 8.0, cfg.GrappleDistance)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, 1.0, cfg.TileSize)
	assert.Equal(t, PositionConfig{X: 3, Y: 2}, cfg.PlayerSpawn)
	assert.Len(t, cfg.Layers.Collision, 18)

	solid, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.Equal(t, "solid", solid.Type)

	slope, ok := cfg.TileMapping["\\"]
	require.True(t, ok)
	assert.Equal(t, "slopeDown", slope.Type)

	require.Len(t, cfg.Enemies, 1)
	assert.Equal(t, "drone", cfg.Enemies[0].Type)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Unlocks)
	assert.NotNil(t, cfg.Controls)
	assert.Same(t, cfg, cfg.Current())
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.yaml":  {Data: []byte("jump:\n  strength: 22\n")},
		"unlocks.yaml":  {Data: []byte("airJumps: 2\n")},
		"controls.yaml": {Data: []byte("bindings:\n  jump: [K]\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 22.0, cfg.Physics.Jump.Strength)
	assert.Equal(t, 0.1, cfg.Physics.Jump.CoyoteTime, "omitted keys keep defaults")
	assert.Equal(t, 40.0, cfg.Physics.Jump.MaxFallSpeed)
	assert.Equal(t, 2, cfg.Unlocks.AirJumps)
	assert.True(t, cfg.Unlocks.Grapple)
	assert.Equal(t, []string{"K"}, cfg.Controls.Bindings["jump"])
	assert.Equal(t, []string{"E"}, cfg.Controls.Bindings["alternateGrapple"])
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
	}{
		{
			name:    "missing physics",
			fsys:    fstest.MapFS{},
			wantErr: "failed to read physics.yaml",
		},
		{
			name: "malformed yaml",
			fsys: fstest.MapFS{
				"physics.yaml": {Data: []byte("jump: [unterminated\n")},
			},
			wantErr: "failed to parse physics.yaml",
		},
		{
			name: "invalid values",
			fsys: fstest.MapFS{
				"physics.yaml":  {Data: []byte("dash:\n  time: -1\n")},
				"unlocks.yaml":  {Data: []byte("{}\n")},
				"controls.yaml": {Data: []byte("{}\n")},
			},
			wantErr: "dash.time must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
