package engine

import (
	"math"
	"testing"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) Box {
	return Box{Min: Vec3{minX, minY, minZ}, Max: Vec3{maxX, maxY, maxZ}}
}

func TestBoxIntersects(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"overlapping", box(0.5, 0.5, 0.5, 2, 2, 2), true},
		{"contained", box(0.25, 0.25, 0.25, 0.75, 0.75, 0.75), true},
		{"touching top face", box(0, 1, 0, 1, 2, 1), true},
		{"separated on x", box(1.01, 0, 0, 2, 1, 1), false},
		{"separated on y", box(0, -2, 0, 1, -0.01, 1), false},
		{"separated on z", box(0, 0, 3, 1, 1, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPenetrationsMinTieBreak(t *testing.T) {
	tests := []struct {
		name     string
		pen      Penetrations
		expected Axis
	}{
		{"unique minimum", Penetrations{5, 4, 3, 0.5, 2, 1}, AxisLeftRight},
		{"all equal picks bottom-top", Penetrations{1, 1, 1, 1, 1, 1}, AxisBottomTop},
		{"bottom-top beats right-left", Penetrations{0.2, 1, 0.2, 1, 1, 1}, AxisBottomTop},
		{"top-bottom beats back-front", Penetrations{1, 0.2, 1, 1, 1, 0.2}, AxisTopBottom},
		{"right-left beats left-right", Penetrations{1, 1, 0.3, 0.3, 1, 1}, AxisRightLeft},
		{"left-right beats front-back", Penetrations{1, 1, 1, 0.3, 0.3, 1}, AxisLeftRight},
		{"front-back beats back-front", Penetrations{1, 1, 1, 1, 0.3, 0.3}, AxisFrontBack},
		{"last axis when strictly smallest", Penetrations{1, 1, 1, 1, 1, 0}, AxisBackFront},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pen.Min(); got != tc.expected {
				t.Errorf("Min() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPenetrateCornerTie(t *testing.T) {
	// Player box corner sunk equally into the platform's top and -X face.
	player := box(-0.75, 0.75, -0.5, 0.25, 2.75, 0.5)
	platform := box(0, -0.5, -5, 10, 1, 5)

	pen := Penetrate(player, platform)
	if pen[AxisBottomTop] != 0.25 || pen[AxisRightLeft] != 0.25 {
		t.Fatalf("penetrations = %v, expected 0.25 on bottom-top and right-left", pen)
	}
	if got := pen.Min(); got != AxisBottomTop {
		t.Errorf("corner tie resolved to %v, expected %v", got, AxisBottomTop)
	}
}

func TestSeparate(t *testing.T) {
	platform := box(-2, -1, -2, 2, 1, 2)
	size := Vec3{1, 2, 1}

	tests := []struct {
		axis     Axis
		position Vec3
		zeroed   int
		grounded bool
	}{
		{AxisBottomTop, Vec3{0, 2, 0}, 1, true},
		{AxisTopBottom, Vec3{0, -2, 0}, 1, false},
		{AxisRightLeft, Vec3{-2.5, 0, 0}, 0, false},
		{AxisLeftRight, Vec3{2.5, 0, 0}, 0, false},
		{AxisFrontBack, Vec3{0, 0, -2.5}, 2, false},
		{AxisBackFront, Vec3{0, 0, 2.5}, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.axis.String(), func(t *testing.T) {
			p := Player{Position: Vec3{0.1, 0.1, 0.1}, Velocity: Vec3{3, 3, 3}, Size: size}
			Separate(&p, platform, tc.axis)

			want := Vec3{0.1, 0.1, 0.1}
			want[tc.zeroed] = tc.position[tc.zeroed]
			if p.Position != want {
				t.Errorf("Position = %v, expected %v", p.Position, want)
			}
			for i := 0; i < 3; i++ {
				expected := 3.0
				if i == tc.zeroed {
					expected = 0
				}
				if p.Velocity[i] != expected {
					t.Errorf("Velocity[%d] = %f, expected %f", i, p.Velocity[i], expected)
				}
			}
			if p.Grounded != tc.grounded {
				t.Errorf("Grounded = %v, expected %v", p.Grounded, tc.grounded)
			}
		})
	}
}

func TestResolveSequentialUsesCorrectedBox(t *testing.T) {
	params := DefaultParams()
	params.Motion.Gravity = 0

	// The first platform pushes the player up; afterwards the player no
	// longer reaches the second, lower platform.
	platforms := []Platform{
		{Kind: KindSolid, Box: box(-5, -1, -5, 5, 0.2, 5)},
		{Kind: KindBreakable, Box: box(-5, -3, -5, 5, 0.1, 5), BreakDelay: BreakDelay},
	}
	w := NewWorldWithPlatforms(params, platforms)
	w.Start()
	w.SetPlayer(Player{Position: Vec3{0, 1, 0}, Size: Vec3{1, 2, 1}, Health: MaxHealth})

	w.Step(Input{}, 0.01)

	if got := w.Player().Position.Y(); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("Position.Y = %f, expected 1.2", got)
	}
	if state := w.Registry().At(1).Break; state != BreakIntact {
		t.Errorf("second platform state = %v, expected intact (no overlap after correction)", state)
	}
}

func TestBounceRepeatsWhileTouching(t *testing.T) {
	params := DefaultParams()
	params.Motion.Gravity = 0

	pillar := Platform{
		Kind:        KindBounce,
		Box:         box(1, 0, -5, 3, 10, 5),
		BounceDir:   Up,
		BounceForce: BounceForce,
	}
	w := NewWorldWithPlatforms(params, []Platform{pillar})
	w.Start()
	w.SetPlayer(Player{Position: Vec3{0.51, 5, 0}, Size: Vec3{1, 2, 1}, Health: MaxHealth})

	snap := w.Step(Input{}, 0.01)
	if got := w.Player().Velocity.Y(); got != 20 {
		t.Fatalf("after frame 1 Velocity.Y = %f, expected 20", got)
	}
	if !snap.Has(EventBounced) {
		t.Error("frame 1 should emit a bounce event")
	}

	w.Step(Input{}, 0.01)
	if got := w.Player().Velocity.Y(); got != 40 {
		t.Errorf("after frame 2 Velocity.Y = %f, expected 40", got)
	}
}

func TestBreakableTriggeredOnce(t *testing.T) {
	params := DefaultParams()
	platforms := []Platform{
		{Kind: KindBreakable, Box: BoxFromCenter(Vec3{}, Vec3{3, 0.5, 3}), BreakDelay: BreakDelay},
	}
	w := NewWorldWithPlatforms(params, platforms)
	w.Start()
	w.SetPlayer(Player{Position: Vec3{0, 1.25, 0}, Size: Vec3{1, 2, 1}, Grounded: true, Health: MaxHealth})

	snap := w.Step(Input{}, 0.25)
	if !snap.Has(EventPlatformTriggered) {
		t.Fatal("standing on a breakable platform should trigger it")
	}
	for i := 0; i < 3; i++ {
		snap = w.Step(Input{}, 0.25)
		if snap.Has(EventPlatformTriggered) {
			t.Fatalf("frame %d: platform triggered again", i+2)
		}
	}
	if n := w.PendingDecays(); n != 1 {
		t.Errorf("PendingDecays() = %d, expected 1", n)
	}
}

func TestGoalEndsRunOnce(t *testing.T) {
	params := DefaultParams()
	platforms := []Platform{
		{Kind: KindGoal, Box: BoxFromCenter(Vec3{}, Vec3{5, 0.5, 5})},
	}
	w := NewWorldWithPlatforms(params, platforms)
	w.Start()
	w.SetPlayer(Player{Position: Vec3{0, 1.25, 0}, Size: Vec3{1, 2, 1}, Grounded: true, Health: MaxHealth})

	snap := w.Step(Input{}, 0.5)
	if snap.Phase != PhaseSucceeded || snap.Outcome != OutcomeSuccess {
		t.Fatalf("phase = %v outcome = %v, expected succeeded/success", snap.Phase, snap.Outcome)
	}
	if snap.FinalTime != 0.5 {
		t.Errorf("FinalTime = %f, expected 0.5", snap.FinalTime)
	}

	snap = w.Step(Input{}, 0.5)
	if snap.Has(EventRunSucceeded) {
		t.Error("goal success should only be reported once")
	}
	if snap.FinalTime != 0.5 {
		t.Errorf("FinalTime changed to %f after success", snap.FinalTime)
	}
	if snap.Elapsed != 1.0 {
		t.Errorf("Elapsed = %f, expected the clock to keep running (1.0)", snap.Elapsed)
	}
}
