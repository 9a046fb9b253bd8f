package config

import (
	"errors"
	"fmt"
)

// Preset adjustments.
const (
	easyCeiling     = 150.0
	hardBreakChance = 0.25
)

// ApplyPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded values.
func ApplyPreset(cfg *ClimbConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Level.Ceiling = min(cfg.Level.Ceiling, easyCeiling)
		cfg.Level.BreakChance /= 2
	case DifficultyHard:
		cfg.Level.BreakChance = max(cfg.Level.BreakChance, hardBreakChance)
		cfg.Player.SafeFallHeight /= 2
	}
}

// Validate reports the first setting that would make the course unplayable
// or stop level generation from terminating.
func (c ClimbConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.MaxFrameTime > 0, "physics.max_frame_time must be positive")
	check(c.Physics.MaxHorizontalSpeed >= 0, "physics.max_horizontal_speed must not be negative")
	check(c.Physics.GroundDamping >= 0 && c.Physics.GroundDamping <= 1,
		"physics.ground_damping must be within [0, 1], got %v", c.Physics.GroundDamping)

	check(c.Player.MaxHealth > 0, "player.max_health must be positive")
	check(c.Player.Size[0] > 0 && c.Player.Size[1] > 0 && c.Player.Size[2] > 0,
		"player.size must be positive on every axis")
	check(c.Player.OutOfBoundsY > c.Level.VoidFloorY,
		"player.out_of_bounds_y (%v) must be above level.void_floor_y (%v)", c.Player.OutOfBoundsY, c.Level.VoidFloorY)

	check(c.Dash.Cooldown >= 0, "dash.cooldown must not be negative")

	check(c.Level.Ceiling > 0, "level.ceiling must be positive")
	check(c.Level.RiseMin > 0, "level.rise_min must be positive")
	check(c.Level.BounceRiseMin > 0, "level.bounce_rise_min must be positive")
	check(c.Level.ForwardSpan >= 0 && c.Level.RiseSpan >= 0 && c.Level.BounceRiseSpan >= 0 && c.Level.LateralSpan >= 0,
		"level spans must not be negative")
	check(inUnit(c.Level.BreakChance), "level.break_chance must be within [0, 1], got %v", c.Level.BreakChance)
	check(inUnit(c.Level.BounceChance), "level.bounce_chance must be within [0, 1], got %v", c.Level.BounceChance)

	check(c.Platforms.BreakDelay >= 0, "platforms.break_delay must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
