package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func win(mode string, ms int) RunEntry {
	return RunEntry{
		Mode:      mode,
		Seed:      int64(ms),
		Outcome:   OutcomeSucceeded,
		FinalTime: time.Duration(ms) * time.Millisecond,
		Health:    10,
		Height:    500,
	}
}

func loss(mode string, height float64) RunEntry {
	return RunEntry{
		Mode:      mode,
		Outcome:   OutcomeFailed,
		FinalTime: 42 * time.Second,
		Height:    height,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreBestTimes(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []RunEntry{
		win("skyclimb", 95_000),
		loss("skyclimb", 120),
		win("skyclimb", 80_500),
		win("skyclimb", 120_250),
		win("skyclimb_sprint", 20_000),
	} {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.BestTimes("skyclimb", 10)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 successful runs, got %d", len(runs))
	}

	want := []time.Duration{80500 * time.Millisecond, 95 * time.Second, 120250 * time.Millisecond}
	for i, r := range runs {
		if r.FinalTime != want[i] {
			t.Errorf("runs[%d].FinalTime = %v, expected %v", i, r.FinalTime, want[i])
		}
		if !r.Succeeded() {
			t.Errorf("runs[%d] should be a success", i)
		}
	}

	top, err := store.BestTimes("skyclimb", 2)
	if err != nil {
		t.Fatalf("BestTimes() failed: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(top))
	}
}

func TestStoreBestTime(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.BestTime("skyclimb"); !errors.Is(err, ErrNoRuns) {
		t.Errorf("BestTime() on empty store = %v, expected ErrNoRuns", err)
	}

	store.SaveRun(loss("skyclimb", 30))
	if _, err := store.BestTime("skyclimb"); !errors.Is(err, ErrNoRuns) {
		t.Errorf("BestTime() with only failures = %v, expected ErrNoRuns", err)
	}

	store.SaveRun(win("skyclimb", 70_000))
	store.SaveRun(win("skyclimb", 65_100))

	best, err := store.BestTime("skyclimb")
	if err != nil {
		t.Fatalf("BestTime() failed: %v", err)
	}
	if best != 65100*time.Millisecond {
		t.Errorf("BestTime() = %v, expected 1m5.1s", best)
	}
}

func TestStoreFailedRunKeepsNoTime(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(loss("skyclimb", 64)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns(1)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].FinalTime != 0 {
		t.Errorf("failed run FinalTime = %v, expected 0", runs[0].FinalTime)
	}
	if runs[0].Height != 64 {
		t.Errorf("Height = %f, expected 64", runs[0].Height)
	}
}

func TestStoreRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunEntry{Mode: "skyclimb", Outcome: "abandoned"}); err == nil {
		t.Error("SaveRun() with unknown outcome should fail")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		e := win("skyclimb", 60_000+i)
		e.Seed = int64(i)
		store.SaveRun(e)
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, seed := range []int64{4, 3, 2} {
		if runs[i].Seed != seed {
			t.Errorf("runs[%d].Seed = %d, expected %d", i, runs[i].Seed, seed)
		}
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ModeStats("skyclimb")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTime != 0 || empty.SuccessRate() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(win("skyclimb", 60_000))
	store.SaveRun(win("skyclimb", 90_000))
	store.SaveRun(loss("skyclimb", 210))
	store.SaveRun(loss("skyclimb", 12))
	store.SaveRun(win("skyclimb_sprint", 1_000))

	stats, err := store.ModeStats("skyclimb")
	if err != nil {
		t.Fatalf("ModeStats() failed: %v", err)
	}

	if stats.Runs != 4 {
		t.Errorf("Runs = %d, expected 4", stats.Runs)
	}
	if stats.Successes != 2 {
		t.Errorf("Successes = %d, expected 2", stats.Successes)
	}
	if stats.BestTime != time.Minute {
		t.Errorf("BestTime = %v, expected 1m0s", stats.BestTime)
	}
	if stats.AvgTime != 75*time.Second {
		t.Errorf("AvgTime = %v, expected 1m15s", stats.AvgTime)
	}
	if stats.BestHeight != 500 {
		t.Errorf("BestHeight = %f, expected 500", stats.BestHeight)
	}
	if stats.SuccessRate() != 0.5 {
		t.Errorf("SuccessRate() = %f, expected 0.5", stats.SuccessRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(win("skyclimb", 60_000))
	store.SaveRun(win("skyclimb_sprint", 10_000))

	if err := store.ClearRuns("skyclimb"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.BestTimes("skyclimb", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	sprint, _ := store.BestTimes("skyclimb_sprint", 10)
	if len(sprint) != 1 {
		t.Error("Sprint runs should not be affected by clearing skyclimb")
	}
}
