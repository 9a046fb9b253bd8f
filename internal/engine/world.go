package engine

import "math/rand"

// Params bundles every tunable the world needs.
type Params struct {
	Motion MotionParams
	Damage DamageParams
	Dash   DashParams
	Level  LevelParams

	Spawn      Vec3
	PlayerSize Vec3
}

// DefaultParams returns the stock course and tuning.
func DefaultParams() Params {
	return Params{
		Motion:     DefaultMotionParams(),
		Damage:     DefaultDamageParams(),
		Dash:       DefaultDashParams(),
		Level:      DefaultLevelParams(),
		Spawn:      Vec3{0, 2, 0},
		PlayerSize: Vec3{1, 2, 1},
	}
}

// World is the full mutable state of one run: player, platforms, decay
// timers, dash and clock. It is not safe for concurrent use; drive it from a
// single frame loop.
type World struct {
	params   Params
	player   Player
	registry *Registry
	decay    DecayQueue
	dash     DashController
	clock    RunClock

	now    float64
	frame  uint64
	events []Event
}

// NewWorld generates a level from seed and places the player at the spawn point.
func NewWorld(p Params, seed int64) *World {
	return NewWorldWithRand(p, rand.New(rand.NewSource(seed)))
}

// NewWorldWithRand generates a level using rng as the only random source.
func NewWorldWithRand(p Params, rng *rand.Rand) *World {
	return NewWorldWithPlatforms(p, GenerateLevel(p.Level, rng))
}

// NewWorldWithPlatforms builds a world over a fixed, pre-built platform set.
func NewWorldWithPlatforms(p Params, platforms []Platform) *World {
	w := &World{
		params:   p,
		registry: NewRegistry(platforms),
		dash:     NewDashController(p.Dash),
	}
	w.resetPlayer()
	return w
}

// Params returns the world's configuration.
func (w *World) Params() Params {
	return w.params
}

// Player returns a copy of the player state.
func (w *World) Player() Player {
	return w.player
}

// SetPlayer overwrites the player state.
func (w *World) SetPlayer(p Player) {
	w.player = p
}

// Registry returns the level's platforms.
func (w *World) Registry() *Registry {
	return w.registry
}

// Phase returns the run phase.
func (w *World) Phase() Phase {
	return w.clock.Phase()
}

// Now returns the world's virtual time in seconds.
func (w *World) Now() float64 {
	return w.now
}

// PendingDecays returns the number of breakable platforms waiting to collapse.
func (w *World) PendingDecays() int {
	return w.decay.Pending()
}

// Start begins the run. It is a no-op once the run has started.
func (w *World) Start() bool {
	if !w.clock.Start(w.now) {
		return false
	}
	w.emit(Event{Kind: EventRunStarted, Platform: -1})
	return true
}

// Restart resets the player, re-arms every breakable platform, cancels all
// pending decays, makes the dash available, and starts the timer again.
// The layout is kept. Everything happens inside this call, so the next frame
// never observes a partial reset.
func (w *World) Restart() {
	w.registry.Reset(&w.decay)
	w.decay.CancelAll()
	w.dash.Reset()
	w.resetPlayer()
	w.clock.Restart(w.now)
	w.emit(Event{Kind: EventRunRestarted, Platform: -1})
}

func (w *World) resetPlayer() {
	w.player = Player{
		Position: w.params.Spawn,
		Size:     w.params.PlayerSize,
		Health:   w.params.Damage.MaxHealth,
	}
}

// Step advances the world by one frame of dt seconds and returns the
// presentation snapshot. The snapshot carries every event emitted since the
// previous Step, including those from Start and Restart calls in between.
//
// Order within a frame: start check, due decays, dash, motion, collisions,
// clock. dt advances the virtual clock unclamped; the motion step uses dt
// clamped to MaxFrameTime. Physics only runs while the run is in progress.
func (w *World) Step(in Input, dt float64) Snapshot {
	w.frame++
	if dt > 0 {
		w.now += dt
	}

	if !w.clock.Started() && (in.Start || in.Moving()) {
		w.Start()
	}

	if w.clock.Started() {
		w.fireDecays()
	}

	if w.clock.Phase() == PhaseRunning {
		if in.Dash && w.dash.Trigger(&w.player, in.ViewForward, w.params.Motion.PlayerSpeed, w.now) {
			w.emit(Event{Kind: EventDashed, Platform: -1})
		}
		Integrate(&w.player, in, ClampFrameTime(dt, w.params.Motion.MaxFrameTime), w.params.Motion)
		w.resolveCollisions()
	}

	w.clock.Advance(w.now)
	snap := w.Snapshot()
	w.events = w.events[:0]
	return snap
}

// fireDecays breaks every triggered platform whose delay has elapsed.
func (w *World) fireDecays() {
	for _, id := range w.decay.Due(w.now) {
		if w.registry.Break(id) {
			w.emit(Event{Kind: EventPlatformBroken, Platform: id})
		}
	}
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}
