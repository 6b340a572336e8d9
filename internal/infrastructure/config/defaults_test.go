package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPhysics_IsValid(t *testing.T) {
	cfg := DefaultPhysics()
	require.NoError(t, cfg.Validate())

	unlocks := DefaultUnlocks()
	require.NoError(t, unlocks.Validate())
}

func TestDefaultPhysics_ReturnsFreshValues(t *testing.T) {
	a := DefaultPhysics()
	a.Jump.Strength = 99

	b := DefaultPhysics()
	assert.Equal(t, 18.0, b.Jump.Strength)

	c1 := DefaultControls()
	c1.Bindings["jump"] = []string{"X"}
	c2 := DefaultControls()
	assert.Equal(t, []string{"Space"}, c2.Bindings["jump"])
}

func TestPhysicsConfig_ValidateCollectsEveryViolation(t *testing.T) {
	cfg := DefaultPhysics()
	cfg.Dash.Time = -1
	cfg.Collision.MaxWalkAngle = 270
	cfg.AlternateGrapple.TimeScaleLerpFactor = 2
	cfg.Collider.Size.X = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dash.time")
	assert.Contains(t, err.Error(), "collision.maxWalkAngle")
	assert.Contains(t, err.Error(), "timeScaleLerpFactor")
	assert.Contains(t, err.Error(), "collider.size.x")
}

func TestGameConfig_ValidateMissingParts(t *testing.T) {
	err := (&GameConfig{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics config is missing")
	assert.Contains(t, err.Error(), "unlocks config is missing")

	require.NoError(t, DefaultGameConfig().Validate())
}
