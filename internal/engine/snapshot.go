package engine

import "fmt"

// PlatformView is the presentation view of one platform.
type PlatformView struct {
	ID      int
	Kind    PlatformKind
	Box     Box
	Floor   bool
	Visible bool
	Break   BreakState
}

// PlayerView is the presentation view of the player.
type PlayerView struct {
	Position  Vec3
	Velocity  Vec3
	Box       Box
	Grounded  bool
	Health    int
	MaxHealth int
}

// Snapshot is everything the presentation, UI and audio collaborators need
// for one frame. It shares no memory with the world.
type Snapshot struct {
	Frame     uint64
	Now       float64
	Player    PlayerView
	Platforms []PlatformView

	Phase     Phase
	Outcome   Outcome
	Elapsed   float64
	FinalTime float64

	CanDash     bool
	DashReadyIn float64

	Events []Event
}

// Snapshot captures the current state without advancing it.
func (w *World) Snapshot() Snapshot {
	platforms := w.registry.Platforms()
	views := make([]PlatformView, len(platforms))
	for i := range platforms {
		p := &platforms[i]
		views[i] = PlatformView{
			ID:      p.ID,
			Kind:    p.Kind,
			Box:     p.Box,
			Floor:   p.Floor,
			Visible: p.Visible(),
			Break:   p.Break,
		}
	}

	var events []Event
	if len(w.events) > 0 {
		events = make([]Event, len(w.events))
		copy(events, w.events)
	}

	return Snapshot{
		Frame: w.frame,
		Now:   w.now,
		Player: PlayerView{
			Position:  w.player.Position,
			Velocity:  w.player.Velocity,
			Box:       w.player.Box(),
			Grounded:  w.player.Grounded,
			Health:    w.player.Health,
			MaxHealth: w.params.Damage.MaxHealth,
		},
		Platforms:   views,
		Phase:       w.clock.Phase(),
		Outcome:     w.clock.Outcome(),
		Elapsed:     w.clock.Elapsed(),
		FinalTime:   w.clock.FinalTime(),
		CanDash:     w.dash.Ready(w.now),
		DashReadyIn: w.dash.Remaining(w.now),
		Events:      events,
	}
}

// Over reports whether the run has ended.
func (s Snapshot) Over() bool {
	return s.Phase == PhaseSucceeded || s.Phase == PhaseFailed
}

// TimeText returns the elapsed time for the HUD, one decimal place.
func (s Snapshot) TimeText() string {
	return FormatSeconds(s.Elapsed)
}

// Has reports whether an event of kind k was emitted this frame.
func (s Snapshot) Has(k EventKind) bool {
	for _, ev := range s.Events {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

// FormatSeconds formats a duration in seconds with one decimal place.
func FormatSeconds(sec float64) string {
	return fmt.Sprintf("%.1f", sec)
}
