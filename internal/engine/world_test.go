package engine

import (
	"math"
	"reflect"
	"testing"
)

const frame = 1.0 / 60

func TestWorldWaitsForStart(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)

	for i := 0; i < 30; i++ {
		snap := w.Step(Input{Jump: true}, frame)
		if snap.Phase != PhaseNotStarted {
			t.Fatalf("frame %d: phase %v, expected not-started", i, snap.Phase)
		}
		if snap.Player.Position != w.Params().Spawn {
			t.Fatalf("frame %d: player moved to %v before the run started", i, snap.Player.Position)
		}
		if snap.Elapsed != 0 {
			t.Fatalf("frame %d: elapsed %f before start", i, snap.Elapsed)
		}
	}

	snap := w.Step(Input{Forward: true, ViewForward: Vec3{1, 0, 0}}, frame)
	if snap.Phase != PhaseRunning {
		t.Errorf("phase %v, expected running after movement", snap.Phase)
	}
	if !snap.Has(EventRunStarted) {
		t.Error("expected a run-started event")
	}
}

func TestWorldSpawnLandingIsFree(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)

	var snap Snapshot
	for i := 0; i < 120; i++ {
		snap = w.Step(Input{Start: true}, frame)
	}

	if !snap.Player.Grounded {
		t.Fatal("player should be resting on the spawn platform")
	}
	if math.Abs(snap.Player.Position.Y()-1.25) > 1e-9 {
		t.Errorf("Position.Y = %f, expected 1.25", snap.Player.Position.Y())
	}
	if snap.Player.Health != MaxHealth {
		t.Errorf("Health = %d, expected %d", snap.Player.Health, MaxHealth)
	}
	// The run starts on the first frame, after its time has been counted.
	if want := 119 * frame; math.Abs(snap.Elapsed-want) > 1e-9 {
		t.Errorf("Elapsed = %f, expected %f", snap.Elapsed, want)
	}
	if snap.TimeText() != "2.0" {
		t.Errorf("TimeText() = %q, expected %q", snap.TimeText(), "2.0")
	}
}

func TestWorldRestart(t *testing.T) {
	w := NewWorld(DefaultParams(), 7)
	layout := w.Snapshot().Platforms
	for i := 0; i < 30; i++ {
		w.Step(Input{Forward: true, Dash: i == 0, ViewForward: Vec3{1, 0, 0}}, frame)
	}
	if w.Snapshot().CanDash {
		t.Fatal("dash should be cooling down")
	}

	p := w.Player()
	p.Health = 1
	w.SetPlayer(p)

	w.Restart()
	snap := w.Step(Input{}, 0)

	if !snap.Has(EventRunRestarted) {
		t.Error("expected a run-restarted event")
	}
	if snap.Phase != PhaseRunning || snap.Elapsed != 0 {
		t.Errorf("phase %v elapsed %f, expected running at 0", snap.Phase, snap.Elapsed)
	}
	if snap.Player.Health != MaxHealth || snap.Player.Position != w.Params().Spawn {
		t.Errorf("player = %+v, expected full health at spawn", snap.Player)
	}
	if !snap.CanDash {
		t.Error("dash should be available after restart")
	}
	if !reflect.DeepEqual(layout, snap.Platforms) {
		t.Error("restart should keep the layout")
	}
}

func TestWorldDeterministic(t *testing.T) {
	script := func(i int) Input {
		return Input{
			Forward:     i%40 < 30,
			Right:       i%90 > 70,
			Jump:        i%25 == 0,
			Dash:        i == 200,
			ViewForward: Vec3{1, 0, 0.1},
		}
	}

	a := NewWorld(DefaultParams(), 99)
	b := NewWorld(DefaultParams(), 99)
	for i := 0; i < 600; i++ {
		sa := a.Step(script(i), frame)
		sb := b.Step(script(i), frame)
		if !reflect.DeepEqual(sa, sb) {
			t.Fatalf("frame %d: snapshots differ", i)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := NewWorld(DefaultParams(), 1)
	snap := w.Snapshot()
	snap.Platforms[0].Visible = false
	snap.Platforms[0].Box = Box{}

	if again := w.Snapshot(); !again.Platforms[0].Visible || again.Platforms[0].Box == (Box{}) {
		t.Error("modifying a snapshot changed the world")
	}
}

func TestRunClock(t *testing.T) {
	var c RunClock

	c.Advance(5)
	if c.Elapsed() != 0 || c.Started() {
		t.Fatal("clock should not run before Start")
	}
	if !c.Start(1) || c.Start(2) {
		t.Fatal("Start should only succeed once")
	}
	c.Advance(4)
	if c.Elapsed() != 3 {
		t.Errorf("Elapsed() = %f, expected 3", c.Elapsed())
	}
	if !c.Succeed(6) || c.FinalTime() != 5 {
		t.Errorf("FinalTime() = %f, expected 5", c.FinalTime())
	}
	if c.Succeed(7) || c.Fail(7) {
		t.Error("a finished run cannot end again")
	}
	c.Advance(9)
	if c.FinalTime() != 5 || c.Elapsed() != 8 {
		t.Errorf("after success: final %f elapsed %f, expected 5 and 8", c.FinalTime(), c.Elapsed())
	}

	c.Restart(10)
	if c.Phase() != PhaseRunning || c.FinalTime() != 0 || c.Outcome() != OutcomeNone {
		t.Errorf("after restart: phase %v final %f outcome %v", c.Phase(), c.FinalTime(), c.Outcome())
	}
}
