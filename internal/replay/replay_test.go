package replay

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/engine"
)

const dt = 1.0 / 60

// record drives a world with a fixed script and records it.
func record(t *testing.T, seed int64, frames int) (*Recording, engine.Snapshot) {
	t.Helper()
	cfg := config.DefaultClimbConfig()
	rec := New("skyclimb", seed, cfg)
	w := engine.NewWorld(cfg.Params(), seed)

	var snap engine.Snapshot
	for i := 0; i < frames; i++ {
		f := Frame{
			Input: engine.Input{
				Forward:     i%50 < 35,
				Left:        i%120 > 100,
				Jump:        i%30 == 0,
				Dash:        i == 90,
				ViewForward: engine.Vec3{1, 0, 0},
			},
			Dt:      dt,
			Restart: i == 200,
		}
		if f.Restart {
			w.Restart()
		}
		snap = w.Step(f.Input, f.Dt)
		rec.Add(f)
	}
	rec.Finish(snap)
	return rec, snap
}

func TestPlayReproducesRun(t *testing.T) {
	rec, want := record(t, 77, 400)

	got := Play(rec)
	if got.Player != want.Player || got.Phase != want.Phase || got.Elapsed != want.Elapsed {
		t.Errorf("replayed state differs:\n got %+v\nwant %+v", got.Player, want.Player)
	}
	if !reflect.DeepEqual(got.Platforms, want.Platforms) {
		t.Error("replayed platform states differ")
	}
	if _, err := Verify(rec); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	rec, _ := record(t, 5, 120)

	var buf bytes.Buffer
	if err := Encode(&buf, rec); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if decoded.Mode != rec.Mode || decoded.Seed != rec.Seed || len(decoded.Frames) != len(rec.Frames) {
		t.Errorf("header differs: %s/%d/%d frames", decoded.Mode, decoded.Seed, len(decoded.Frames))
	}
	if !reflect.DeepEqual(decoded.Config, rec.Config) {
		t.Error("config differs after decoding")
	}
	if decoded.Frames[200%len(decoded.Frames)] != rec.Frames[200%len(rec.Frames)] {
		t.Error("frame differs after decoding")
	}
}

func TestSaveLoad(t *testing.T) {
	rec, _ := record(t, 11, 300)
	path := filepath.Join(t.TempDir(), "run.replay")

	if err := Save(path, rec); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, err := Verify(loaded); err != nil {
		t.Errorf("Verify(loaded) error: %v", err)
	}
	if d := loaded.Duration(); d < 4.99 || d > 5.01 {
		t.Errorf("Duration() = %f, expected 5", d)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	rec, _ := record(t, 3, 100)
	rec.Seed = 4
	rec.Outcome = "success"

	if _, err := Verify(rec); err == nil {
		t.Error("Verify() should fail on a mismatched result")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte{0xc1})); err == nil {
		t.Error("Decode(garbage) should fail")
	}

	var buf bytes.Buffer
	rec := New("skyclimb", 1, config.DefaultClimbConfig())
	rec.Version = 99
	if err := Encode(&buf, rec); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); err == nil {
		t.Error("Decode should reject unknown versions")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Load(missing) should fail")
	}
}
