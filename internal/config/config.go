// Package config provides YAML-based course configuration loading and
// difficulty presets for Sky Climb.
package config

import "github.com/vovakirdan/skyclimb/internal/engine"

// ClimbConfig contains every tunable of a course.
type ClimbConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Dash       DashConfig       `yaml:"dash"`
	Level      LevelConfig      `yaml:"level"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// PhysicsConfig defines movement parameters.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpForce          float64 `yaml:"jump_force"`
	PlayerSpeed        float64 `yaml:"player_speed"`
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed"`
	GroundDamping      float64 `yaml:"ground_damping"`
	MaxFrameTime       float64 `yaml:"max_frame_time"`
}

// PlayerConfig defines the player body and health.
type PlayerConfig struct {
	Spawn          [3]float64 `yaml:"spawn,flow"`
	Size           [3]float64 `yaml:"size,flow"`
	MaxHealth      int        `yaml:"max_health"`
	SafeFallHeight float64    `yaml:"safe_fall_height"`
	OutOfBoundsY   float64    `yaml:"out_of_bounds_y"`
}

// DashConfig defines the dash impulse and cooldown.
type DashConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	Cooldown   float64 `yaml:"cooldown"`
}

// LevelConfig defines the procedural layout.
type LevelConfig struct {
	Ceiling        float64    `yaml:"ceiling"`
	StartX         float64    `yaml:"start_x"`
	ForwardMin     float64    `yaml:"forward_min"`
	ForwardSpan    float64    `yaml:"forward_span"`
	LateralSpan    float64    `yaml:"lateral_span"`
	RiseMin        float64    `yaml:"rise_min"`
	RiseSpan       float64    `yaml:"rise_span"`
	BounceRiseMin  float64    `yaml:"bounce_rise_min"`
	BounceRiseSpan float64    `yaml:"bounce_rise_span"`
	BreakChance    float64    `yaml:"break_chance"`
	BounceChance   float64    `yaml:"bounce_chance"`
	StartSize      [3]float64 `yaml:"start_size,flow"`
	StepSize       [3]float64 `yaml:"step_size,flow"`
	GoalSize       [3]float64 `yaml:"goal_size,flow"`
	VoidFloorY     float64    `yaml:"void_floor_y"`
	VoidFloorSize  [3]float64 `yaml:"void_floor_size,flow"`
}

// PlatformConfig defines the behaviour of special platforms.
type PlatformConfig struct {
	BreakDelay  float64 `yaml:"break_delay"`  // Seconds from first contact to collapse
	BounceForce float64 `yaml:"bounce_force"` // Upward impulse per contact frame
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted difficulty names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a difficulty name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Params converts the configuration into engine parameters.
func (c ClimbConfig) Params() engine.Params {
	return engine.Params{
		Motion: engine.MotionParams{
			Gravity:            c.Physics.Gravity,
			JumpForce:          c.Physics.JumpForce,
			PlayerSpeed:        c.Physics.PlayerSpeed,
			MaxHorizontalSpeed: c.Physics.MaxHorizontalSpeed,
			GroundDamping:      c.Physics.GroundDamping,
			MaxFrameTime:       c.Physics.MaxFrameTime,
		},
		Damage: engine.DamageParams{
			MaxHealth:      c.Player.MaxHealth,
			SafeFallHeight: c.Player.SafeFallHeight,
			OutOfBoundsY:   c.Player.OutOfBoundsY,
		},
		Dash: engine.DashParams{
			Multiplier: c.Dash.Multiplier,
			Cooldown:   c.Dash.Cooldown,
		},
		Level: engine.LevelParams{
			Ceiling:        c.Level.Ceiling,
			StartX:         c.Level.StartX,
			ForwardMin:     c.Level.ForwardMin,
			ForwardSpan:    c.Level.ForwardSpan,
			LateralSpan:    c.Level.LateralSpan,
			RiseMin:        c.Level.RiseMin,
			RiseSpan:       c.Level.RiseSpan,
			BounceRiseMin:  c.Level.BounceRiseMin,
			BounceRiseSpan: c.Level.BounceRiseSpan,
			BreakChance:    c.Level.BreakChance,
			BounceChance:   c.Level.BounceChance,
			BreakDelay:     c.Platforms.BreakDelay,
			BounceForce:    c.Platforms.BounceForce,
			StartSize:      engine.Vec3(c.Level.StartSize),
			StepSize:       engine.Vec3(c.Level.StepSize),
			GoalSize:       engine.Vec3(c.Level.GoalSize),
			VoidFloorY:     c.Level.VoidFloorY,
			VoidFloorSize:  engine.Vec3(c.Level.VoidFloorSize),
		},
		Spawn:      engine.Vec3(c.Player.Spawn),
		PlayerSize: engine.Vec3(c.Player.Size),
	}
}
