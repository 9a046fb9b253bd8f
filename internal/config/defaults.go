package config

import (
	_ "embed"
)

//go:embed defaults/skyclimb.yaml
var defaultClimbYAML []byte

// DefaultClimbConfig returns the standard course configuration.
// It matches the embedded defaults/skyclimb.yaml.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Physics: PhysicsConfig{
			Gravity:            30,
			JumpForce:          15,
			PlayerSpeed:        10,
			MaxHorizontalSpeed: 20,
			GroundDamping:      0.9,
			MaxFrameTime:       0.1,
		},
		Player: PlayerConfig{
			Spawn:          [3]float64{0, 2, 0},
			Size:           [3]float64{1, 2, 1},
			MaxHealth:      10,
			SafeFallHeight: 3,
			OutOfBoundsY:   -10,
		},
		Dash: DashConfig{
			Multiplier: 2.5,
			Cooldown:   10,
		},
		Level: LevelConfig{
			Ceiling:        500,
			StartX:         7,
			ForwardMin:     5,
			ForwardSpan:    3,
			LateralSpan:    8,
			RiseMin:        1,
			RiseSpan:       2,
			BounceRiseMin:  3,
			BounceRiseSpan: 4,
			BreakChance:    0.15,
			BounceChance:   0.10,
			StartSize:      [3]float64{5, 0.5, 5},
			StepSize:       [3]float64{3, 0.5, 3},
			GoalSize:       [3]float64{5, 0.5, 5},
			VoidFloorY:     -20,
			VoidFloorSize:  [3]float64{5000, 0.5, 5000},
		},
		Platforms: PlatformConfig{
			BreakDelay:  2,
			BounceForce: 20,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClimbYAML
}
