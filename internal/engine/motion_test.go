package engine

import (
	"math"
	"math/rand"
	"testing"
)

func TestIntegrateGravityWhenAirborne(t *testing.T) {
	mp := DefaultMotionParams()
	p := Player{Position: Vec3{0, 10, 0}, Size: Vec3{1, 2, 1}}

	Integrate(&p, Input{}, 0.1, mp)

	if got, want := p.Velocity.Y(), -3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Velocity.Y = %f, expected %f", got, want)
	}
	if got, want := p.Position.Y(), 10-0.3; math.Abs(got-want) > 1e-9 {
		t.Errorf("Position.Y = %f, expected %f", got, want)
	}
}

func TestIntegrateGroundedDampingAndHeight(t *testing.T) {
	mp := DefaultMotionParams()
	p := Player{
		Position: Vec3{0, 4, 0},
		Velocity: Vec3{10, 0, -10},
		Size:     Vec3{1, 2, 1},
		Grounded: true,
	}

	Integrate(&p, Input{}, 0.05, mp)

	if p.Velocity.X() != 9 || p.Velocity.Z() != -9 {
		t.Errorf("grounded damping: velocity = %v, expected (9, 0, -9)", p.Velocity)
	}
	if p.Velocity.Y() != 0 {
		t.Errorf("grounded player should not gain vertical velocity, got %f", p.Velocity.Y())
	}
	if p.LastGroundHeight != 4 {
		t.Errorf("LastGroundHeight = %f, expected 4", p.LastGroundHeight)
	}
}

func TestIntegrateJumpOnlyWhenGrounded(t *testing.T) {
	mp := DefaultMotionParams()

	grounded := Player{Position: Vec3{0, 1, 0}, Size: Vec3{1, 2, 1}, Grounded: true}
	Integrate(&grounded, Input{Jump: true}, 0.01, mp)
	if grounded.Velocity.Y() != JumpForce {
		t.Errorf("jump from ground: Velocity.Y = %f, expected %f", grounded.Velocity.Y(), JumpForce)
	}
	if grounded.Grounded {
		t.Error("jump should clear Grounded immediately")
	}

	airborne := Player{Position: Vec3{0, 5, 0}, Size: Vec3{1, 2, 1}}
	Integrate(&airborne, Input{Jump: true}, 0.01, mp)
	if airborne.Velocity.Y() >= 0 {
		t.Errorf("jump in the air should do nothing, Velocity.Y = %f", airborne.Velocity.Y())
	}
}

func TestIntegrateDirectionalInput(t *testing.T) {
	mp := DefaultMotionParams()
	mp.Gravity = 0
	forward := Vec3{0, 0, -1}

	tests := []struct {
		name     string
		in       Input
		expected Vec3
	}{
		{"forward", Input{Forward: true}, Vec3{0, 0, -1}},
		{"back", Input{Back: true}, Vec3{0, 0, 1}},
		{"right", Input{Right: true}, Vec3{1, 0, 0}},
		{"left", Input{Left: true}, Vec3{-1, 0, 0}},
		{"forward and right add up", Input{Forward: true, Right: true}, Vec3{1, 0, -1}},
		{"forward and back cancel", Input{Forward: true, Back: true}, Vec3{0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.in
			in.ViewForward = forward
			p := Player{Position: Vec3{0, 10, 0}, Size: Vec3{1, 2, 1}}

			Integrate(&p, in, 0.1, mp)

			// PlayerSpeed * dt = 1 per active axis
			if !p.Velocity.ApproxEqualThreshold(tc.expected, 1e-9) {
				t.Errorf("Velocity = %v, expected %v", p.Velocity, tc.expected)
			}
		})
	}
}

func TestIntegrateIgnoresVerticalLook(t *testing.T) {
	mp := DefaultMotionParams()
	mp.Gravity = 0

	// Looking almost straight down still moves at full horizontal speed.
	p := Player{Size: Vec3{1, 2, 1}}
	Integrate(&p, Input{Forward: true, ViewForward: Vec3{0, -10, -0.001}}, 0.1, mp)
	if got := HorizontalSpeed(p.Velocity); math.Abs(got-1) > 1e-9 {
		t.Errorf("horizontal speed = %f, expected 1", got)
	}

	// Looking straight down gives no direction at all.
	q := Player{Size: Vec3{1, 2, 1}}
	Integrate(&q, Input{Forward: true, Right: true, ViewForward: Vec3{0, -1, 0}}, 0.1, mp)
	if q.Velocity != (Vec3{}) {
		t.Errorf("zero horizontal view should give no movement, got %v", q.Velocity)
	}
	if math.IsNaN(q.Position.X()) || math.IsNaN(q.Position.Z()) {
		t.Error("position became NaN")
	}
}

func TestClampHorizontalNeverExceedsMax(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		v := Vec3{
			(rng.Float64() - 0.5) * 200,
			(rng.Float64() - 0.5) * 200,
			(rng.Float64() - 0.5) * 200,
		}
		got := ClampHorizontal(v, MaxHorizontalSpeed)

		if speed := HorizontalSpeed(got); speed > MaxHorizontalSpeed+1e-9 {
			t.Fatalf("ClampHorizontal(%v) speed = %f, exceeds %f", v, speed, MaxHorizontalSpeed)
		}
		if got.Y() != v.Y() {
			t.Fatalf("ClampHorizontal changed vertical velocity: %f -> %f", v.Y(), got.Y())
		}
		// Direction is preserved: the 2D cross product stays zero.
		if cross := v.X()*got.Z() - v.Z()*got.X(); math.Abs(cross) > 1e-6 {
			t.Fatalf("ClampHorizontal(%v) changed direction to %v", v, got)
		}
	}
}

func TestClampHorizontalZeroVector(t *testing.T) {
	v := Vec3{0, -5, 0}
	got := ClampHorizontal(v, MaxHorizontalSpeed)
	if got != v {
		t.Errorf("ClampHorizontal(%v) = %v, expected unchanged", v, got)
	}
	if got := ClampHorizontal(Vec3{1, 0, 0}, 0); got != (Vec3{}) {
		t.Errorf("ClampHorizontal with zero max = %v, expected zero", got)
	}
}

func TestClampFrameTime(t *testing.T) {
	tests := []struct {
		dt, expected float64
	}{
		{0.016, 0.016},
		{0.1, 0.1},
		{0.5, 0.1},
		{-1, 0},
		{0, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0.1},
	}

	for _, tc := range tests {
		if got := ClampFrameTime(tc.dt, MaxFrameTime); got != tc.expected {
			t.Errorf("ClampFrameTime(%f) = %f, expected %f", tc.dt, got, tc.expected)
		}
	}
}

func TestWorldStepIgnoresNaNFrameTime(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)
	w.Step(Input{Forward: true, ViewForward: Vec3{1, 0, 0}}, 1.0/60)

	snap := w.Step(Input{Forward: true, ViewForward: Vec3{1, 0, 0}}, math.NaN())
	for i := 0; i < 3; i++ {
		if math.IsNaN(snap.Player.Position[i]) || math.IsNaN(snap.Player.Velocity[i]) {
			t.Fatalf("NaN frame time leaked into the player: %+v", snap.Player)
		}
	}
	if math.IsNaN(snap.Elapsed) || math.IsNaN(w.Now()) {
		t.Errorf("NaN frame time leaked into the clock: elapsed %f, now %f", snap.Elapsed, w.Now())
	}
}
