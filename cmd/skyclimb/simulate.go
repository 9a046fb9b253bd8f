package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/engine"
	"github.com/vovakirdan/skyclimb/internal/games/skyclimb"
	"github.com/vovakirdan/skyclimb/internal/replay"
)

var (
	flagSimFrames int
	flagSimRecord string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run the autopilot without a terminal",
	Long: `Climb a course with the scripted autopilot at a fixed tick rate and
report how far it got. Useful for checking course settings and for producing
replays.

Examples:
  skyclimb simulate --seed 42
  skyclimb simulate skyclimb_sprint --frames 20000 --log-level debug
  skyclimb simulate --seed 42 --record auto.replay`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 36000, "Maximum frames to simulate")
	simulateCmd.Flags().StringVar(&flagSimRecord, "record", "", "Write a replay of the run to this file")
}

func runSimulate(cmd *cobra.Command, args []string) {
	mode := modeOrExit(args)
	cfg, err := loadClimbConfig()
	exitOnErr("loading config", err)

	logger := newLogger(os.Stderr).With("mode", mode.ID)
	seed := resolveSeed()
	runtime := core.RuntimeConfig{TickRate: flagFPS, Seed: seed}
	dt := runtime.FrameTime()

	// The mode decides the effective course settings.
	effective := skyclimb.New(mode, cfg).Config()
	world := engine.NewWorld(effective.Params(), seed)
	rec := replay.New(mode.ID, seed, effective)
	pilot := skyclimb.NewAutopilot()

	logger.Info("simulating", "seed", seed, "platforms", world.Registry().Len(), "frames", flagSimFrames)

	snap := world.Snapshot()
	frames := 0
	for ; frames < flagSimFrames && !snap.Over(); frames++ {
		in := pilot.Next(snap)
		snap = world.Step(in, dt)
		rec.Add(replay.Frame{Input: in, Dt: dt})

		for _, ev := range snap.Events {
			switch ev.Kind {
			case engine.EventDamaged:
				logger.Debug("damage", "frame", frames, "amount", ev.Amount, "health", snap.Player.Health)
			case engine.EventPlatformBroken:
				logger.Debug("platform broke", "frame", frames, "platform", ev.Platform)
			case engine.EventBounced:
				logger.Debug("bounce", "frame", frames, "platform", ev.Platform)
			}
		}
	}
	rec.Finish(snap)

	outcome := "timed out"
	switch snap.Outcome {
	case engine.OutcomeSuccess:
		outcome = "summit reached"
	case engine.OutcomeFailure:
		outcome = "fell"
	}

	fmt.Printf("Mode:      %s\n", mode.Title)
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Outcome:   %s\n", outcome)
	fmt.Printf("Frames:    %d\n", frames)
	fmt.Printf("Time:      %ss\n", snap.TimeText())
	fmt.Printf("Health:    %d/%d\n", snap.Player.Health, snap.Player.MaxHealth)
	fmt.Printf("Progress:  platform %d of %d\n", pilot.Reached(), len(snap.Platforms)-1)

	if flagSimRecord != "" {
		exitOnErr("saving replay", replay.Save(flagSimRecord, rec))
		logger.Info("replay saved", "path", flagSimRecord)
	}
}
