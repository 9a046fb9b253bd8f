// Package replay records the per-frame engine input of a run and replays it
// headlessly. Recordings are stored with msgpack.
package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/engine"
)

// FormatVersion is written into every recording.
const FormatVersion = 1

// Frame is one engine step.
type Frame struct {
	Input   engine.Input `msgpack:"in"`
	Dt      float64      `msgpack:"dt"`
	Restart bool         `msgpack:"rs,omitempty"` // World.Restart was called before this step
}

// Recording is everything needed to reproduce a run.
type Recording struct {
	Version int                `msgpack:"version"`
	Mode    string             `msgpack:"mode"`
	Seed    int64              `msgpack:"seed"`
	Config  config.ClimbConfig `msgpack:"config"`
	Frames  []Frame            `msgpack:"frames"`

	// Result as observed while recording, for verification on playback.
	Outcome   string  `msgpack:"outcome"`
	FinalTime float64 `msgpack:"final_time"`
}

// New starts an empty recording. cfg must be the effective configuration
// the world was built from.
func New(mode string, seed int64, cfg config.ClimbConfig) *Recording {
	return &Recording{
		Version: FormatVersion,
		Mode:    mode,
		Seed:    seed,
		Config:  cfg,
	}
}

// Add appends a frame.
func (r *Recording) Add(f Frame) {
	r.Frames = append(r.Frames, f)
}

// Finish stores the result observed after the latest frame. Calling it
// again overwrites the previous result.
func (r *Recording) Finish(snap engine.Snapshot) {
	r.Outcome = snap.Outcome.String()
	r.FinalTime = snap.FinalTime
}

// Duration returns the summed frame time in seconds.
func (r *Recording) Duration() float64 {
	var total float64
	for _, f := range r.Frames {
		total += f.Dt
	}
	return total
}

// Encode writes the recording to w.
func Encode(w io.Writer, r *Recording) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a recording from rd.
func Decode(rd io.Reader) (*Recording, error) {
	var r Recording
	if err := msgpack.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Version != FormatVersion {
		return nil, fmt.Errorf("replay: unsupported version %d", r.Version)
	}
	return &r, nil
}

// Save writes the recording to path.
func Save(path string, r *Recording) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Play rebuilds the world from the recording and feeds it every frame.
// It returns the snapshot after the last frame.
func Play(r *Recording) engine.Snapshot {
	w := engine.NewWorld(r.Config.Params(), r.Seed)
	snap := w.Snapshot()
	for _, f := range r.Frames {
		if f.Restart {
			w.Restart()
		}
		snap = w.Step(f.Input, f.Dt)
	}
	return snap
}

// Verify replays the recording and reports whether the result matches the
// one stored when it was recorded.
func Verify(r *Recording) (engine.Snapshot, error) {
	snap := Play(r)
	if snap.Outcome.String() != r.Outcome || snap.FinalTime != r.FinalTime {
		return snap, fmt.Errorf("replay: result mismatch: recorded %s in %.3fs, replayed %s in %.3fs",
			r.Outcome, r.FinalTime, snap.Outcome, snap.FinalTime)
	}
	return snap, nil
}
