// Package skyclimb adapts the engine to the platform's Game interface:
// it owns the camera, maps actions to engine input, draws the course into a
// character screen and logs what happens during a run.
package skyclimb

import (
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/engine"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/replay"
)

// TurnStep is the camera yaw change per turn action.
const TurnStep = 15 * math.Pi / 180

// Mode is a registered course variant.
type Mode struct {
	ID      string
	Title   string
	Ceiling float64 // Upper bound on the level ceiling; 0 keeps the configured one
}

// Modes lists every registered course variant.
var Modes = []Mode{
	{ID: "skyclimb", Title: "Sky Climb"},
	{ID: "skyclimb_sprint", Title: "Sky Climb Sprint", Ceiling: 100},
}

// ModeByID returns the registered mode with the given id.
func ModeByID(id string) (Mode, bool) {
	for _, m := range Modes {
		if m.ID == id {
			return m, true
		}
	}
	return Mode{}, false
}

// View selects the projection used by Render.
type View uint8

const (
	ViewSide View = iota // Height against distance along the camera direction
	ViewTop              // Looking straight down, camera direction up the screen
)

// String returns a human-readable name for the view.
func (v View) String() string {
	if v == ViewTop {
		return "top"
	}
	return "side"
}

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultClimbConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.ClimbConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentConfig() config.ClimbConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// Game is one player's session on a course mode.
type Game struct {
	mode    Mode
	cfg     config.ClimbConfig // Effective config, mode applied
	runtime core.RuntimeConfig
	world   *engine.World
	snap    engine.Snapshot

	yaw    float64 // Camera heading in radians; 0 faces +X
	peak   float64
	view   View
	paused bool

	recorder *replay.Recording
	logger   *log.Logger
}

// New creates a game for mode using cfg.
func New(mode Mode, cfg config.ClimbConfig) *Game {
	if mode.Ceiling > 0 {
		cfg.Level.Ceiling = min(cfg.Level.Ceiling, mode.Ceiling)
	}
	return &Game{
		mode:   mode,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger routes run events to l.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l.With("mode", g.mode.ID)
}

// Record starts capturing every engine frame into a new recording.
// It must be called after Reset.
func (g *Game) Record() *replay.Recording {
	g.recorder = replay.New(g.mode.ID, g.runtime.Seed, g.cfg)
	return g.recorder
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// Config returns the effective course configuration.
func (g *Game) Config() config.ClimbConfig {
	return g.cfg
}

// Seed returns the layout seed of the current course.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// Snapshot returns the state after the last tick.
func (g *Game) Snapshot() engine.Snapshot {
	return g.snap
}

// View returns the active projection.
func (g *Game) View() View {
	return g.view
}

// Forward returns the camera's horizontal look direction.
func (g *Game) Forward() engine.Vec3 {
	return engine.Vec3{math.Cos(g.yaw), 0, math.Sin(g.yaw)}
}

// Reset generates a new course from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = engine.NewWorld(g.cfg.Params(), runtime.Seed)
	g.snap = g.world.Snapshot()
	g.peak = g.snap.Player.Position.Y()
	g.yaw = 0
	g.paused = false
	g.recorder = nil

	counts := g.world.Registry().CountByKind()
	g.logger.Debug("course generated",
		"seed", runtime.Seed,
		"platforms", g.world.Registry().Len(),
		"breakable", counts[engine.KindBreakable],
		"bounce", counts[engine.KindBounce])
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.snap.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleView) {
		if g.view == ViewSide {
			g.view = ViewTop
		} else {
			g.view = ViewSide
		}
	}
	if in.Has(core.ActionTurnLeft) {
		g.yaw -= TurnStep
	}
	if in.Has(core.ActionTurnRight) {
		g.yaw += TurnStep
	}

	restart := in.Has(core.ActionRestart)
	if restart {
		g.world.Restart()
	}

	frame := replay.Frame{
		Input:   g.engineInput(in),
		Dt:      g.runtime.FrameTime(),
		Restart: restart,
	}
	wasOver := g.snap.Over()
	g.snap = g.world.Step(frame.Input, frame.Dt)
	if restart {
		g.peak = g.snap.Player.Position.Y()
	}
	g.peak = max(g.peak, g.snap.Player.Position.Y())
	if g.recorder != nil {
		// The stored result always matches the last recorded frame, so a
		// recording saved mid-run or after a restart still verifies.
		g.recorder.Add(frame)
		g.recorder.Finish(g.snap)
	}
	g.logEvents()

	ended := !wasOver && g.snap.Over()
	return core.StepResult{State: g.State(), RunEnded: ended}
}

// engineInput maps platform actions to the engine's per-frame input.
func (g *Game) engineInput(in core.InputFrame) engine.Input {
	return engine.Input{
		Forward:     in.Has(core.ActionForward),
		Back:        in.Has(core.ActionBack),
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Jump:        in.Has(core.ActionJump),
		Dash:        in.Has(core.ActionDash),
		ViewForward: g.Forward(),
	}
}

func (g *Game) logEvents() {
	for _, ev := range g.snap.Events {
		switch ev.Kind {
		case engine.EventRunStarted:
			g.logger.Info("run started", "seed", g.runtime.Seed)
		case engine.EventRunRestarted:
			g.logger.Info("run restarted")
		case engine.EventRunSucceeded:
			g.logger.Info("summit reached", "time", engine.FormatSeconds(ev.Value), "health", g.snap.Player.Health)
		case engine.EventRunFailed:
			g.logger.Info("run failed", "time", engine.FormatSeconds(ev.Value), "height", g.snap.Player.Position.Y())
		case engine.EventDamaged:
			g.logger.Debug("damage", "amount", ev.Amount, "health", g.snap.Player.Health)
		case engine.EventLanded:
			if ev.Amount > 0 {
				g.logger.Debug("hard landing", "fall", ev.Value, "damage", ev.Amount)
			}
		case engine.EventPlatformTriggered:
			g.logger.Debug("platform cracking", "platform", ev.Platform)
		case engine.EventPlatformBroken:
			g.logger.Debug("platform broke", "platform", ev.Platform)
		case engine.EventBounced:
			g.logger.Debug("bounce", "platform", ev.Platform)
		case engine.EventDashed:
			g.logger.Debug("dash")
		}
	}
}

// State returns the current run status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Health:    g.snap.Player.Health,
		MaxHealth: g.snap.Player.MaxHealth,
		Elapsed:   g.snap.Elapsed,
		FinalTime: g.snap.FinalTime,
		Height:    g.peak,
		Started:   g.snap.Phase != engine.PhaseNotStarted,
		GameOver:  g.snap.Over(),
		Won:       g.snap.Outcome == engine.OutcomeSuccess,
		Paused:    g.paused,
	}
}

func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m, currentConfig())
		})
	}
}
