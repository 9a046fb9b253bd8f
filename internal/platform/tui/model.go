package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/replay"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

// loggable is implemented by games that report run events.
type loggable interface {
	SetLogger(l *log.Logger)
}

// recordable is implemented by games that can capture a replay.
type recordable interface {
	Record() *replay.Recording
}

// Options configures a play Model.
type Options struct {
	Store      *storage.Store // Finished runs are saved here; may be nil
	Logger     *log.Logger    // May be nil
	RecordPath string         // Replay file written when a run ends; empty disables recording
	Session    bool           // Esc returns to the menu instead of quitting
}

// Model is the Bubble Tea model for one climb.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      *KeyMapper
	help      help.Model
	gameState core.GameState
	recording *replay.Recording

	quitting   bool
	backToMenu bool
}

// NewModel creates a play model and generates the course for cfg.Seed.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if lg, ok := game.(loggable); ok {
		lg.SetLogger(logger)
	}
	game.Reset(cfg)

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keys:      NewKeyMapper(),
		help:      help.New(),
		gameState: game.State(),
	}
	if rec, ok := game.(recordable); ok && opts.RecordPath != "" {
		m.recording = rec.Record()
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if _, isQuit := m.keys.Press(msg, time.Now()); isQuit {
		m.saveRecording()
		if m.opts.Session && msg.String() == "esc" {
			m.backToMenu = true
			m.keys.Release()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.keys.Frame(now))
	m.gameState = result.State

	if result.RunEnded {
		m.saveRun()
		m.saveRecording()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run in the store.
func (m Model) saveRun() {
	if m.opts.Store == nil {
		return
	}

	entry := storage.RunEntry{
		Mode:    m.game.ID(),
		Seed:    m.config.Seed,
		Outcome: storage.OutcomeFailed,
		Health:  m.gameState.Health,
		Height:  m.gameState.Height,
	}
	if m.gameState.Won {
		entry.Outcome = storage.OutcomeSucceeded
		entry.FinalTime = time.Duration(m.gameState.FinalTime * float64(time.Second))
	}

	if _, err := m.opts.Store.SaveRun(entry); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveRecording writes the replay captured so far.
func (m Model) saveRecording() {
	if m.recording == nil || len(m.recording.Frames) == 0 {
		return
	}
	if err := replay.Save(m.opts.RecordPath, m.recording); err != nil {
		m.logger.Warn("could not save replay", "path", m.opts.RecordPath, "error", err)
		return
	}
	m.logger.Debug("replay saved", "path", m.opts.RecordPath, "frames", len(m.recording.Frames))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyclimb", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// State returns the run status after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single climb.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
