// skyclimb is a terminal 3D platformer: climb a generated chain of floating
// platforms to the goal as fast as you can.
//
// Usage:
//
//	skyclimb list                - List course modes
//	skyclimb play [mode]         - Climb a course
//	skyclimb menu                - Pick a mode interactively
//	skyclimb times [mode]        - Show best times
//	skyclimb layout              - Print a generated course
//	skyclimb simulate            - Run the autopilot headless
//	skyclimb replay <file>       - Verify a recorded run
//	skyclimb config              - Print the effective course config
//	skyclimb serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set layout seed for a reproducible course
//	--db <path>            - Set database path (default: ~/.skyclimb/runs.db)
//	--config <path>        - Load a course config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Log file while a TUI owns the terminal
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/games/skyclimb"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyclimb",
	Short: "Sky Climb - a 3D platformer in your terminal",
	Long: `Sky Climb generates a chain of floating platforms from a seed and
times how fast you reach the goal at the top. Cracked platforms collapse,
bounce pads launch you upward and long falls hurt.

Available commands:
  list      - Show all course modes
  play      - Climb a course
  menu      - Interactive mode picker
  times     - View best times
  layout    - Print a generated course
  simulate  - Run the autopilot without a terminal
  replay    - Verify a recorded run
  config    - Print the effective course config
  serve     - Start SSH server for remote play

Examples:
  skyclimb play
  skyclimb play skyclimb_sprint --seed 42
  skyclimb play --difficulty easy --record run.replay
  skyclimb replay run.replay
  skyclimb serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Layout seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyclimb/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: ~/.skyclimb/skyclimb.log)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(timesCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadClimbConfig loads the course config, applies the difficulty preset
// and installs it for every mode created afterwards.
func loadClimbConfig() (config.ClimbConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	name := flagDifficulty
	if name == "" {
		name = string(cfg.Difficulty)
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	skyclimb.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// resolveSeed returns the --seed flag, or a time-based seed if it is unset.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyclimb",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to --log-file (or ~/.skyclimb/skyclimb.log) so the alt
// screen stays clean. The returned close func must be called on exit.
func fileLogger() (*log.Logger, func()) {
	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return log.New(io.Discard), func() {}
		}
		path = filepath.Join(home, ".skyclimb", "skyclimb.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// exitOnErr prints err and exits when it is non-nil.
func exitOnErr(prefix string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", prefix, err)
		os.Exit(1)
	}
}
