package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/games/skyclimb"
	"github.com/vovakirdan/skyclimb/internal/replay"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// doomedGame spawns the player just above the kill height, far from the course.
func doomedGame() *skyclimb.Game {
	cfg := config.DefaultClimbConfig()
	cfg.Player.Spawn = [3]float64{0, -9, 300}
	return skyclimb.New(skyclimb.Modes[0], cfg)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

// climbUntilOver holds forward and ticks until the run ends.
func climbUntilOver(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 200; i++ {
		m, _ = update(t, m, runeKey('w'))
		m, _ = update(t, m, TickMsg(time.Now()))
		if m.State().GameOver {
			return m
		}
	}
	t.Fatal("run did not end")
	return m
}

func TestModelMovementStartsRun(t *testing.T) {
	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())
	m := NewModel(game, testRuntime(), Options{})

	m, _ = update(t, m, TickMsg(time.Now()))
	if m.State().Started {
		t.Fatal("run should not start without input")
	}

	m, _ = update(t, m, runeKey('w'))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if !m.State().Started {
		t.Error("holding forward should start the run")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelPicksSeed(t *testing.T) {
	cfg := testRuntime()
	cfg.Seed = 0
	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())

	NewModel(game, cfg, Options{})
	if game.Seed() == 0 {
		t.Error("a zero seed should be replaced")
	}
}

func TestModelQuit(t *testing.T) {
	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())
	m := NewModel(game, testRuntime(), Options{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelSessionEscReturnsToMenu(t *testing.T) {
	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())
	m := NewModel(game, testRuntime(), Options{Session: true})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc in a session should return to the menu")
	}
	if m.IsQuitting() {
		t.Error("esc in a session should not quit")
	}

	if _, cmd := update(t, m, TickMsg(time.Now())); cmd != nil {
		t.Error("ticks should stop once back at the menu")
	}
}

func TestModelSavesFinishedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := NewModel(doomedGame(), testRuntime(), Options{Store: store})
	climbUntilOver(t, m)

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Mode != "skyclimb" || r.Seed != 7 || r.Outcome != storage.OutcomeFailed {
		t.Errorf("saved run = %+v", r)
	}
}

func TestModelRecordsReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.replay")

	m := NewModel(doomedGame(), testRuntime(), Options{RecordPath: path})
	climbUntilOver(t, m)

	rec, err := replay.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec.Seed != 7 || len(rec.Frames) == 0 {
		t.Errorf("recording seed %d with %d frames", rec.Seed, len(rec.Frames))
	}
	if _, err := replay.Verify(rec); err != nil {
		t.Errorf("Verify() failed: %v", err)
	}
}

func TestModelRecordsAbandonedRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quit.replay")

	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())
	m := NewModel(game, testRuntime(), Options{RecordPath: path})
	for i := 0; i < 30; i++ {
		m, _ = update(t, m, runeKey('w'))
		m, _ = update(t, m, TickMsg(time.Now()))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Fatal("ctrl+c should quit")
	}

	rec, err := replay.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if _, err := replay.Verify(rec); err != nil {
		t.Errorf("Verify() of a run quit midway failed: %v", err)
	}
}

func TestModelView(t *testing.T) {
	game := skyclimb.New(skyclimb.Modes[0], config.DefaultClimbConfig())
	m := NewModel(game, testRuntime(), Options{})

	view := m.View()
	if got := strings.Count(view, "\n"); got != 23 {
		t.Errorf("View has %d line breaks, expected 23", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if got := strings.Count(m.View(), "\n"); got != 19 {
		t.Errorf("View after resize has %d line breaks, expected 19", got)
	}
}
