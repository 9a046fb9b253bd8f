package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/engine"
	"github.com/vovakirdan/skyclimb/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded run",
	Long: `Rebuild the course from a replay file, feed every recorded frame back
through the simulation and check the result matches what was recorded.

Examples:
  skyclimb replay run.replay`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	exitOnErr("loading replay", err)

	fmt.Printf("Mode:      %s\n", rec.Mode)
	fmt.Printf("Seed:      %d\n", rec.Seed)
	fmt.Printf("Frames:    %d (%ss)\n", len(rec.Frames), engine.FormatSeconds(rec.Duration()))
	fmt.Printf("Recorded:  %s in %ss\n", rec.Outcome, engine.FormatSeconds(rec.FinalTime))

	snap, err := replay.Verify(rec)
	exitOnErr("verifying replay", err)

	fmt.Printf("Replayed:  %s in %ss, health %d/%d\n",
		snap.Outcome, snap.TimeText(), snap.Player.Health, snap.Player.MaxHealth)
	fmt.Println("Replay verified.")
}
