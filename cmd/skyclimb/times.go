package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/registry"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

var (
	flagTimesLimit int
	flagRecent     bool
)

var timesCmd = &cobra.Command{
	Use:   "times [mode]",
	Short: "Show best times for a mode",
	Long: `Display the fastest completed climbs for a mode, plus overall stats.
With --recent, list the latest runs of every mode instead.

Examples:
  skyclimb times
  skyclimb times skyclimb_sprint --limit 5
  skyclimb times --recent`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTimes,
}

func init() {
	timesCmd.Flags().IntVar(&flagTimesLimit, "limit", 10, "Number of runs to show")
	timesCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every mode")
}

func runTimes(cmd *cobra.Command, args []string) {
	modeID := "skyclimb"
	if len(args) > 0 {
		modeID = args[0]
	}
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'skyclimb list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	exitOnErr("opening runs database", err)
	defer store.Close()

	if flagRecent {
		printRecent(store)
		return
	}

	runs, err := store.BestTimes(modeID, flagTimesLimit)
	exitOnErr("retrieving times", err)

	fmt.Printf("Best Times - %s\n", modeID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No summit reached yet.")
		fmt.Println()
		fmt.Printf("Play 'skyclimb play %s' to set the first time!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-20s  %s\n", "Rank", "Time", "Health", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-20s  %s\n", "----", "----", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-6d  %-20d  %s\n",
			i+1, fmt.Sprintf("%.2fs", r.FinalTime.Seconds()), r.Health, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	best, err := store.BestTime(modeID)
	if err == nil {
		fmt.Printf("Best: %.2fs\n", best.Seconds())
	} else if !errors.Is(err, storage.ErrNoRuns) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if stats, err := store.ModeStats(modeID); err == nil {
		fmt.Printf("Runs: %d, summited %.0f%%, average %.2fs, highest point %.0f\n",
			stats.Runs, stats.SuccessRate()*100, stats.AvgTime.Seconds(), stats.BestHeight)
	}
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagTimesLimit)
	exitOnErr("retrieving runs", err)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-9s  %-10s  %-6s  %s\n", "Mode", "Outcome", "Time", "Height", "Date")
	fmt.Printf("  %-16s  %-9s  %-10s  %-6s  %s\n", "----", "-------", "----", "------", "----")
	for _, r := range runs {
		timeText := "-"
		if r.Succeeded() {
			timeText = fmt.Sprintf("%.2fs", r.FinalTime.Seconds())
		}
		fmt.Printf("  %-16s  %-9s  %-10s  %-6.0f  %s\n",
			r.Mode, r.Outcome, timeText, r.Height, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
