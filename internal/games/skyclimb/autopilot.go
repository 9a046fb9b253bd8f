package skyclimb

import (
	"github.com/vovakirdan/skyclimb/internal/engine"
)

// Autopilot tuning.
const (
	arriveRadius = 0.4 // Horizontal distance at which the pilot stops pushing
	jumpDistance = 1.5 // Jump once the target is further than this
	dashDistance = 6.0 // Dash toward targets at least this far away
)

// Autopilot is a scripted climber used for headless runs. It walks the
// chain in generation order: from the platform it stands on, it steers
// toward the next one and jumps when grounded.
type Autopilot struct {
	target  int
	reached int
}

// NewAutopilot creates a pilot heading for the first chain platform.
func NewAutopilot() *Autopilot {
	return &Autopilot{target: 1}
}

// Reached returns the highest platform id the pilot has stood on.
func (a *Autopilot) Reached() int {
	return a.reached
}

// Reset sends the pilot back to the start of the chain.
func (a *Autopilot) Reset() {
	a.target = 1
	a.reached = 0
}

// Next decides the input for the coming frame from the last snapshot.
func (a *Autopilot) Next(snap engine.Snapshot) engine.Input {
	in := engine.Input{Start: true}
	if snap.Over() || len(snap.Platforms) == 0 {
		return in
	}

	p := snap.Player
	if p.Grounded {
		if id, ok := standingOn(snap); ok && id >= a.reached {
			a.reached = id
			a.target = id + 1
		}
	}
	if a.target >= len(snap.Platforms) || snap.Platforms[a.target].Floor {
		a.target = a.reached
	}
	target := snap.Platforms[a.target]
	for !target.Visible && a.target+1 < len(snap.Platforms) && !snap.Platforms[a.target+1].Floor {
		a.target++
		target = snap.Platforms[a.target]
	}

	to := target.Box.Center().Sub(p.Position)
	dist := engine.HorizontalSpeed(to)
	in.ViewForward = engine.HorizontalDir(to)
	in.Forward = dist > arriveRadius
	in.Jump = p.Grounded && dist > jumpDistance
	in.Dash = snap.CanDash && dist >= dashDistance && !p.Grounded
	return in
}

// standingOn returns the id of the platform directly under a grounded player.
func standingOn(snap engine.Snapshot) (int, bool) {
	feet := snap.Player.Box.Min.Y()
	pb := snap.Player.Box
	for _, plat := range snap.Platforms {
		if !plat.Visible || plat.Floor {
			continue
		}
		b := plat.Box
		if abs(b.Max.Y()-feet) > 1e-6 {
			continue
		}
		if pb.Max.X() < b.Min.X() || pb.Min.X() > b.Max.X() || pb.Max.Z() < b.Min.Z() || pb.Min.Z() > b.Max.Z() {
			continue
		}
		return plat.ID, true
	}
	return 0, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
