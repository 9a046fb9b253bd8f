package engine

import "math/rand"

// Layout bounds for the generated course. Every random draw is uniform.
const (
	DefaultCeiling = 500.0 // Chain stops once the cursor reaches this height

	ChainStartX = 7.0 // X of the first chain platform

	ForwardStepMin  = 5.0 // X advance per step: [ForwardStepMin, ForwardStepMin+ForwardStepSpan)
	ForwardStepSpan = 3.0
	LateralSpan     = 8.0 // Z jitter per step: [-LateralSpan/2, LateralSpan/2)
	RiseMin         = 1.0 // Height advance per step: [RiseMin, RiseMin+RiseSpan)
	RiseSpan        = 2.0
	BounceRiseMin   = 3.0 // Height advance after a bounce pad: [BounceRiseMin, BounceRiseMin+BounceRiseSpan)
	BounceRiseSpan  = 4.0

	BreakChance  = 0.15 // Chance per step of a breakable platform
	BounceChance = 0.10 // Chance per step of a bounce pad

	BreakDelay  = 2.0  // Seconds between first contact and a breakable collapsing
	BounceForce = 20.0 // Impulse magnitude of a bounce pad

	PlatformThickness = 0.5
	VoidFloorY        = -20.0
	VoidFloorWidth    = 5000.0
)

// LevelParams configures GenerateLevel. DefaultLevelParams returns the stock course.
type LevelParams struct {
	Ceiling float64
	StartX  float64

	ForwardMin     float64
	ForwardSpan    float64
	LateralSpan    float64
	RiseMin        float64
	RiseSpan       float64
	BounceRiseMin  float64
	BounceRiseSpan float64

	BreakChance  float64
	BounceChance float64

	BreakDelay  float64
	BounceForce float64

	StartSize     Vec3 // Spawn platform at the origin
	StepSize      Vec3 // Chain, breakable and bounce platforms
	GoalSize      Vec3
	VoidFloorY    float64
	VoidFloorSize Vec3
}

// DefaultLevelParams returns the layout used by the standard course.
func DefaultLevelParams() LevelParams {
	return LevelParams{
		Ceiling:        DefaultCeiling,
		StartX:         ChainStartX,
		ForwardMin:     ForwardStepMin,
		ForwardSpan:    ForwardStepSpan,
		LateralSpan:    LateralSpan,
		RiseMin:        RiseMin,
		RiseSpan:       RiseSpan,
		BounceRiseMin:  BounceRiseMin,
		BounceRiseSpan: BounceRiseSpan,
		BreakChance:    BreakChance,
		BounceChance:   BounceChance,
		BreakDelay:     BreakDelay,
		BounceForce:    BounceForce,
		StartSize:      Vec3{5, PlatformThickness, 5},
		StepSize:       Vec3{3, PlatformThickness, 3},
		GoalSize:       Vec3{5, PlatformThickness, 5},
		VoidFloorY:     VoidFloorY,
		VoidFloorSize:  Vec3{VoidFloorWidth, PlatformThickness, VoidFloorWidth},
	}
}

// layoutCursor is the generator's position while placing platforms.
type layoutCursor struct {
	x, height, z float64
}

// advance moves the cursor one step: forward on X, jitter on Z, then up.
func (c *layoutCursor) advance(rng *rand.Rand, p LevelParams, riseMin, riseSpan float64) {
	c.x += p.ForwardMin + rng.Float64()*p.ForwardSpan
	c.z += (rng.Float64() - 0.5) * p.LateralSpan
	rise := riseMin + rng.Float64()*riseSpan
	if rise <= 0 {
		// Keep the chain strictly climbing so generation always terminates.
		rise = RiseMin
	}
	c.height += rise
}

func (c *layoutCursor) pos() Vec3 {
	return Vec3{c.x, c.height, c.z}
}

// GenerateLevel lays out a course using rng as the only source of randomness.
//
// Output order is: the spawn platform, the climbing chain (with breakable and
// bounce platforms interleaved where they were rolled), the goal, and finally
// the void floor. The same params and seed always give the same layout.
func GenerateLevel(p LevelParams, rng *rand.Rand) []Platform {
	platforms := make([]Platform, 0, 256)

	platforms = append(platforms, Platform{
		Kind: KindSolid,
		Box:  BoxFromCenter(Vec3{}, p.StartSize),
	})

	cur := layoutCursor{x: p.StartX}
	for cur.height < p.Ceiling {
		platforms = append(platforms, Platform{
			Kind: KindSolid,
			Box:  BoxFromCenter(cur.pos(), p.StepSize),
		})
		cur.advance(rng, p, p.RiseMin, p.RiseSpan)

		if rng.Float64() < p.BreakChance {
			platforms = append(platforms, Platform{
				Kind:       KindBreakable,
				Box:        BoxFromCenter(cur.pos(), p.StepSize),
				BreakDelay: p.BreakDelay,
			})
			cur.advance(rng, p, p.RiseMin, p.RiseSpan)
		}

		if rng.Float64() < p.BounceChance {
			platforms = append(platforms, Platform{
				Kind:        KindBounce,
				Box:         BoxFromCenter(cur.pos(), p.StepSize),
				BounceDir:   Up,
				BounceForce: p.BounceForce,
			})
			cur.advance(rng, p, p.BounceRiseMin, p.BounceRiseSpan)
		}
	}

	platforms = append(platforms, Platform{
		Kind: KindGoal,
		Box:  BoxFromCenter(cur.pos(), p.GoalSize),
	})

	platforms = append(platforms, Platform{
		Kind:  KindSolid,
		Box:   BoxFromCenter(Vec3{0, p.VoidFloorY, 0}, p.VoidFloorSize),
		Floor: true,
	})

	return platforms
}
