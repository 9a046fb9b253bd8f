package skyclimb

import (
	"testing"

	"github.com/vovakirdan/skyclimb/internal/engine"
)

func pilotRun(seed int64, frames int) (engine.Snapshot, *Autopilot) {
	w := engine.NewWorld(engine.DefaultParams(), seed)
	pilot := NewAutopilot()
	snap := w.Snapshot()
	for i := 0; i < frames && !snap.Over(); i++ {
		snap = w.Step(pilot.Next(snap), 1.0/60)
	}
	return snap, pilot
}

func TestAutopilotMovesTowardChain(t *testing.T) {
	snap, _ := pilotRun(21, 60)

	if snap.Phase == engine.PhaseNotStarted {
		t.Fatal("autopilot should start the run")
	}
	if x := snap.Player.Position.X(); x <= 1 {
		t.Errorf("Position.X = %f, expected progress toward the chain", x)
	}
}

func TestAutopilotDeterministic(t *testing.T) {
	a, pa := pilotRun(5, 1200)
	b, pb := pilotRun(5, 1200)

	if a.Player != b.Player || a.Phase != b.Phase || pa.Reached() != pb.Reached() {
		t.Errorf("autopilot runs differ: %+v vs %+v", a.Player, b.Player)
	}
}

func TestStandingOn(t *testing.T) {
	platforms := []engine.Platform{
		{Kind: engine.KindSolid, Box: engine.BoxFromCenter(engine.Vec3{}, engine.Vec3{5, 0.5, 5})},
		{Kind: engine.KindSolid, Box: engine.BoxFromCenter(engine.Vec3{7, 0, 0}, engine.Vec3{3, 0.5, 3})},
	}
	w := engine.NewWorldWithPlatforms(engine.DefaultParams(), platforms)
	w.SetPlayer(engine.Player{
		Position: engine.Vec3{7, 1.25, 0.5},
		Size:     engine.Vec3{1, 2, 1},
		Grounded: true,
		Health:   engine.MaxHealth,
	})

	id, ok := standingOn(w.Snapshot())
	if !ok || id != 1 {
		t.Errorf("standingOn() = %d, %v, expected 1, true", id, ok)
	}

	p := w.Player()
	p.Position = engine.Vec3{20, 1.25, 0}
	w.SetPlayer(p)
	if _, ok := standingOn(w.Snapshot()); ok {
		t.Error("player off every platform should not be standing on one")
	}
}

func TestAutopilotIdleWhenOver(t *testing.T) {
	pilot := NewAutopilot()
	in := pilot.Next(engine.Snapshot{Phase: engine.PhaseFailed})
	if in.Moving() || in.Jump || in.Dash {
		t.Errorf("input after the run = %+v, expected idle", in)
	}
}
