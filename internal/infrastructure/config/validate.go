package config

import (
	"errors"
	"fmt"
)

// Validate reports every value the simulation cannot run with.
func (c *PhysicsConfig) Validate() error {
	var errs []error

	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %g", name, v))
		}
	}
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	positive("collider.size.x", c.Collider.Size.X)
	positive("collider.size.y", c.Collider.Size.Y)

	nonNegative("movement.maxRunSpeed", c.Movement.MaxRunSpeed)
	nonNegative("movement.acceleration", c.Movement.Acceleration)
	nonNegative("movement.groundDeceleration", c.Movement.GroundDeceleration)
	nonNegative("movement.airDeceleration", c.Movement.AirDeceleration)

	nonNegative("jump.maxFallSpeed", c.Jump.MaxFallSpeed)
	nonNegative("jump.fallAcceleration", c.Jump.FallAcceleration)
	nonNegative("jump.bufferTime", c.Jump.BufferTime)
	nonNegative("jump.coyoteTime", c.Jump.CoyoteTime)

	nonNegative("wall.fallAcceleration", c.Wall.FallAcceleration)
	nonNegative("wall.maxFallSpeed", c.Wall.MaxFallSpeed)
	nonNegative("wall.jumpControlLossTime", c.Wall.JumpControlLossTime)
	nonNegative("wall.jumpCoyoteTime", c.Wall.JumpCoyoteTime)

	nonNegative("ledge.grabDeceleration", c.Ledge.GrabDeceleration)
	nonNegative("ledge.raycastDistance", c.Ledge.RaycastDistance)
	nonNegative("ledge.climbDuration", c.Ledge.ClimbDuration)

	nonNegative("dash.time", c.Dash.Time)
	nonNegative("dash.cooldownTime", c.Dash.CooldownTime)
	nonNegative("dash.bufferTime", c.Dash.BufferTime)
	nonNegative("dash.coyoteTime", c.Dash.CoyoteTime)
	nonNegative("dash.jumpControlLossTime", c.Dash.JumpControlLossTime)

	nonNegative("glide.fallSpeed", c.Glide.FallSpeed)
	nonNegative("glide.fallAcceleration", c.Glide.FallAcceleration)

	for _, g := range []struct {
		prefix string
		cfg    GrappleConfig
	}{
		{"grapple", c.Grapple},
		{"alternateGrapple", c.AlternateGrapple.GrappleConfig},
	} {
		nonNegative(g.prefix+".velocity", g.cfg.Velocity)
		nonNegative(g.prefix+".bufferTime", g.cfg.BufferTime)
		nonNegative(g.prefix+".controlLossTime", g.cfg.ControlLossTime)
		nonNegative(g.prefix+".targetOffset", g.cfg.TargetOffset)
	}
	nonNegative("alternateGrapple.freezeTime", c.AlternateGrapple.FreezeTime)
	positive("alternateGrapple.timeScaleLerpTime", c.AlternateGrapple.TimeScaleLerpTime)
	if f := c.AlternateGrapple.TimeScaleLerpFactor; f < 0 || f > 1 {
		errs = append(errs, fmt.Errorf("alternateGrapple.timeScaleLerpFactor must be within [0, 1], got %g", f))
	}

	positive("collision.raycastDistance", c.Collision.RaycastDistance)
	for _, a := range []struct {
		name  string
		angle float64
	}{
		{"collision.maxWalkAngle", c.Collision.MaxWalkAngle},
		{"collision.maxClimbAngle", c.Collision.MaxClimbAngle},
	} {
		if a.angle < 0 || a.angle > 180 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 180], got %g", a.name, a.angle))
		}
	}
	nonNegative("external.velocityDecay", c.External.VelocityDecay)

	return errors.Join(errs...)
}

// Validate reports impossible loadouts.
func (u *UnlocksConfig) Validate() error {
	var errs []error
	if u.AirJumps < 0 {
		errs = append(errs, fmt.Errorf("airJumps must not be negative, got %d", u.AirJumps))
	}
	if u.AirDashes < 0 {
		errs = append(errs, fmt.Errorf("airDashes must not be negative, got %d", u.AirDashes))
	}
	if u.GrappleDistance < 0 {
		errs = append(errs, fmt.Errorf("grappleDistance must not be negative, got %g", u.GrappleDistance))
	}
	return errors.Join(errs...)
}

// Validate checks every part of the snapshot.
func (g *GameConfig) Validate() error {
	var errs []error
	if g.Physics == nil {
		errs = append(errs, errors.New("physics config is missing"))
	} else if err := g.Physics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}
	if g.Unlocks == nil {
		errs = append(errs, errors.New("unlocks config is missing"))
	} else if err := g.Unlocks.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("unlocks: %w", err))
	}
	return errors.Join(errs...)
}
