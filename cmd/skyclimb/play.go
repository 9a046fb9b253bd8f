package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/platform/tui"
	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Climb a course",
	Long: `Generate a course and start climbing. The clock starts on your first move.

Controls:
  W/S/A/D, arrows  - Move relative to the camera
  Space            - Jump
  X, Shift+W       - Dash forward (10s cooldown)
  Q/E              - Turn the camera
  V                - Switch side/top view
  R                - Restart the same course
  P                - Pause
  ?                - Toggle full help
  Esc/Ctrl+C       - Quit

Difficulty options:
  easy   - Lower summit, fewer cracked platforms
  normal - The configured course
  hard   - More cracked platforms, falls hurt sooner
  fixed  - The config file exactly as written

Examples:
  skyclimb play
  skyclimb play skyclimb_sprint
  skyclimb play --seed 42 --difficulty hard
  skyclimb play --record run.replay`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay of the run to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "skyclimb"
	if len(args) > 0 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'skyclimb list' to see available modes.")
		os.Exit(1)
	}

	_, err := loadClimbConfig()
	exitOnErr("loading config", err)

	logger, closeLog := fileLogger()
	defer closeLog()

	game, err := registry.Create(modeID)
	exitOnErr("creating mode", err)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	cfg := runtimeConfig()
	cfg.Seed = resolveSeed()

	runErr := tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		RecordPath: flagRecord,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		closeLog()
		exitOnErr("running game", runErr)
	}
}
