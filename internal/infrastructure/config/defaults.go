package config

// DefaultPhysics returns a fresh physics config holding the stock tuning.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:   640,
			ScreenHeight:  360,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 24,
		},
		Collider: ColliderConfig{
			Size:   Vec2{X: 0.8, Y: 1.8},
			Offset: Vec2{X: 0, Y: 0.9},
		},
		Movement: MovementConfig{
			MaxRunSpeed:        10,
			Acceleration:       100,
			GroundDeceleration: 200,
			AirDeceleration:    100,
			GroundingForce:     -2,
		},
		Jump: JumpConfig{
			Strength:                18,
			MaxFallSpeed:            40,
			FallAcceleration:        50,
			EndEarlyGravityModifier: 5,
			BufferTime:              0.1,
			CoyoteTime:              0.1,
		},
		Wall: WallConfig{
			ClimbSpeed:          8,
			FallAcceleration:    16,
			MaxFallSpeed:        6,
			FastFallSpeed:       12,
			JumpStrength:        Vec2{X: 7, Y: 20},
			JumpControlLossTime: 0.15,
			JumpCoyoteTime:      0.1,
		},
		Ledge: LedgeConfig{
			GrabDeceleration: 8,
			GrabPoint:        Vec2{X: 0.4, Y: 1},
			StandUpOffset:    Vec2{X: 0.4, Y: 0},
			RaycastDistance:  2,
			ClimbDuration:    0.2,
		},
		Dash: DashConfig{
			Velocity:                25,
			Time:                    0.2,
			CooldownTime:            0.2,
			EndHorizontalMultiplier: 0.25,
			BufferTime:              0.1,
			CoyoteTime:              0.1,
			JumpStrength:            Vec2{X: 30, Y: 18},
			JumpControlLossTime:     0.3,
		},
		Glide: GlideConfig{
			FallSpeed:        4,
			FallAcceleration: 20,
		},
		Grapple: GrappleConfig{
			Velocity:        10,
			BufferTime:      0.1,
			ControlLossTime: 0.5,
			TargetOffset:    0.4,
			LineOffset:      0.5,
		},
		AlternateGrapple: AlternateGrappleConfig{
			GrappleConfig: GrappleConfig{
				Velocity:        10,
				BufferTime:      0.1,
				ControlLossTime: 0.5,
				TargetOffset:    0.4,
				LineOffset:      0.5,
			},
			FreezeTime:          4,
			TimeScaleLerpFactor: 0.5,
			TimeScaleLerpTime:   1.0 / 60.0,
		},
		Collision: CollisionConfig{
			RaycastDistance: 0.05,
			MaxWalkAngle:    30,
			MaxClimbAngle:   30,
		},
		External: ExternalConfig{
			VelocityDecay: 100,
		},
	}
}

// DefaultUnlocks returns the loadout of a fresh save.
func DefaultUnlocks() UnlocksConfig {
	return UnlocksConfig{
		WallClimb:       false,
		AirJumps:        0,
		Dash:            false,
		DirectionalDash: false,
		AirDashes:       1,
		Glide:           false,
		Grapple:         true,
		GrappleDistance: 5,
	}
}

// DefaultControls returns the stock key bindings.
func DefaultControls() ControlsConfig {
	return ControlsConfig{
		Bindings: map[string][]string{
			"up":               {"W", "ArrowUp"},
			"down":             {"S", "ArrowDown"},
			"left":             {"A", "ArrowLeft"},
			"right":            {"D", "ArrowRight"},
			"jump":             {"Space"},
			"dash":             {"ShiftLeft"},
			"glide":            {"ControlLeft"},
			"grapple":          {"MouseRight"},
			"alternateGrapple": {"E"},
			"pause":            {"Escape"},
		},
	}
}

// DefaultGameConfig bundles every default into one snapshot.
func DefaultGameConfig() *GameConfig {
	physics := DefaultPhysics()
	unlocks := DefaultUnlocks()
	controls := DefaultControls()
	return &GameConfig{
		Physics:  &physics,
		Unlocks:  &unlocks,
		Controls: &controls,
	}
}
