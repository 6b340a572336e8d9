package config

import "github.com/jakecoffman/cp"

// PhysicsConfig is the root config for physics.yaml.
type PhysicsConfig struct {
	Display          DisplayConfig          `yaml:"display"`
	Collider         ColliderConfig         `yaml:"collider"`
	Movement         MovementConfig         `yaml:"movement"`
	Jump             JumpConfig             `yaml:"jump"`
	Wall             WallConfig             `yaml:"wall"`
	Ledge            LedgeConfig            `yaml:"ledge"`
	Dash             DashConfig             `yaml:"dash"`
	Glide            GlideConfig            `yaml:"glide"`
	Grapple          GrappleConfig          `yaml:"grapple"`
	AlternateGrapple AlternateGrappleConfig `yaml:"alternateGrapple"`
	Collision        CollisionConfig        `yaml:"collision"`
	External         ExternalConfig         `yaml:"external"`
}

// Vec2 is a two-component config value.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vector converts to the simulation vector type.
func (v Vec2) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screenWidth"`
	ScreenHeight  int     `yaml:"screenHeight"`
	Scale         int     `yaml:"scale"`
	Framerate     int     `yaml:"framerate"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// ColliderConfig is the actor capsule. Offset lifts the center above the feet.
type ColliderConfig struct {
	Size   Vec2 `yaml:"size"`
	Offset Vec2 `yaml:"offset"`
}

type MovementConfig struct {
	MaxRunSpeed        float64 `yaml:"maxRunSpeed"`
	Acceleration       float64 `yaml:"acceleration"`
	GroundDeceleration float64 `yaml:"groundDeceleration"`
	AirDeceleration    float64 `yaml:"airDeceleration"`
	GroundingForce     float64 `yaml:"groundingForce"` // Downward bias while grounded (negative)
}

type JumpConfig struct {
	Strength                float64 `yaml:"strength"`
	MaxFallSpeed            float64 `yaml:"maxFallSpeed"`
	FallAcceleration        float64 `yaml:"fallAcceleration"`
	EndEarlyGravityModifier float64 `yaml:"endEarlyGravityModifier"`
	BufferTime              float64 `yaml:"bufferTime"`
	CoyoteTime              float64 `yaml:"coyoteTime"`
}

type WallConfig struct {
	ClimbSpeed          float64 `yaml:"climbSpeed"`
	FallAcceleration    float64 `yaml:"fallAcceleration"`
	MaxFallSpeed        float64 `yaml:"maxFallSpeed"`
	FastFallSpeed       float64 `yaml:"fastFallSpeed"`
	JumpStrength        Vec2    `yaml:"jumpStrength"`
	JumpControlLossTime float64 `yaml:"jumpControlLossTime"`
	JumpCoyoteTime      float64 `yaml:"jumpCoyoteTime"`
}

type LedgeConfig struct {
	GrabDeceleration float64 `yaml:"grabDeceleration"`
	GrabPoint        Vec2    `yaml:"grabPoint"`     // Hang offset from the corner, mirrored by wall side
	StandUpOffset    Vec2    `yaml:"standUpOffset"` // Post-climb offset from the corner
	RaycastDistance  float64 `yaml:"raycastDistance"`
	ClimbDuration    float64 `yaml:"climbDuration"`
}

type DashConfig struct {
	Velocity                float64 `yaml:"velocity"`
	Time                    float64 `yaml:"time"`
	CooldownTime            float64 `yaml:"cooldownTime"`
	EndHorizontalMultiplier float64 `yaml:"endHorizontalMultiplier"`
	BufferTime              float64 `yaml:"bufferTime"`
	CoyoteTime              float64 `yaml:"coyoteTime"`
	JumpStrength            Vec2    `yaml:"jumpStrength"`
	JumpControlLossTime     float64 `yaml:"jumpControlLossTime"`
}

type GlideConfig struct {
	FallSpeed        float64 `yaml:"fallSpeed"`
	FallAcceleration float64 `yaml:"fallAcceleration"`
}

// GrappleConfig tunes one grapple variant.
type GrappleConfig struct {
	Velocity        float64 `yaml:"velocity"`
	BufferTime      float64 `yaml:"bufferTime"`
	ControlLossTime float64 `yaml:"controlLossTime"`
	TargetOffset    float64 `yaml:"targetOffset"` // Pull-back from terrain targets
	LineOffset      float64 `yaml:"lineOffset"`   // Indicator line starts this far from the actor
}

// AlternateGrappleConfig adds the slow-motion aiming window.
type AlternateGrappleConfig struct {
	GrappleConfig       `yaml:",inline"`
	FreezeTime          float64 `yaml:"freezeTime"`
	TimeScaleLerpFactor float64 `yaml:"timeScaleLerpFactor"`
	TimeScaleLerpTime   float64 `yaml:"timeScaleLerpTime"`
}

type CollisionConfig struct {
	RaycastDistance float64 `yaml:"raycastDistance"` // Contact tolerance
	MaxWalkAngle    float64 `yaml:"maxWalkAngle"`    // Degrees
	MaxClimbAngle   float64 `yaml:"maxClimbAngle"`   // Degrees
}

type ExternalConfig struct {
	VelocityDecay float64 `yaml:"velocityDecay"`
}

// UnlocksConfig is the root config for unlocks.yaml.
type UnlocksConfig struct {
	WallClimb       bool    `yaml:"wallClimb"`
	AirJumps        int     `yaml:"airJumps"`
	Dash            bool    `yaml:"dash"`
	DirectionalDash bool    `yaml:"directionalDash"`
	AirDashes       int     `yaml:"airDashes"`
	Glide           bool    `yaml:"glide"`
	Grapple         bool    `yaml:"grapple"`
	GrappleDistance float64 `yaml:"grappleDistance"`
}

// ControlsConfig is the root config for controls.yaml.
// Bindings maps an action name to the keys that trigger it.
type ControlsConfig struct {
	Bindings map[string][]string `yaml:"bindings"`
}
