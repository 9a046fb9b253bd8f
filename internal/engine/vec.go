// Package engine implements the Sky Climb simulation core: motion integration,
// AABB collision resolution, platform behaviour, fall damage, dash gating, the
// run clock and procedural level layout.
//
// The package has no rendering, terminal or logging dependencies. Everything
// is driven by World.Step with an explicit frame time, and time-based
// behaviour (decay timers, dash cooldown) runs against the world's own
// virtual clock, so a run is fully reproducible from its seed and inputs.
package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the vector type used for positions, velocities and directions.
type Vec3 = mgl64.Vec3

// Up is the world up direction.
var Up = Vec3{0, 1, 0}

// HorizontalDir projects v onto the XZ plane and normalizes it.
// A vector with no horizontal component yields the zero vector.
func HorizontalDir(v Vec3) Vec3 {
	h := Vec3{v.X(), 0, v.Z()}
	l := h.Len()
	if l == 0 {
		return Vec3{}
	}
	return h.Mul(1 / l)
}

// RightOf returns the horizontal right-hand vector for a horizontal forward direction.
func RightOf(forward Vec3) Vec3 {
	return Vec3{-forward.Z(), 0, forward.X()}
}

// HorizontalSpeed returns the magnitude of the XZ component of v.
func HorizontalSpeed(v Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// ClampHorizontal rescales the XZ component of v so its magnitude does not
// exceed maxSpeed, preserving direction. The vertical component is untouched.
func ClampHorizontal(v Vec3, maxSpeed float64) Vec3 {
	speed := HorizontalSpeed(v)
	if speed == 0 || speed <= maxSpeed {
		return v
	}
	scale := maxSpeed / speed
	return Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}
