package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/games/skyclimb"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all course modes",
	Long:  `Shows every registered course mode and its height limit.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	if len(skyclimb.Modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range skyclimb.Modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "ID", "Title", "Ceiling")
	fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, m := range skyclimb.Modes {
		ceiling := "config"
		if m.Ceiling > 0 {
			ceiling = fmt.Sprintf("%.0f", m.Ceiling)
		}
		fmt.Printf("  %-*s  %-18s  %s\n", maxIDLen, m.ID, m.Title, ceiling)
	}

	fmt.Println()
	fmt.Println("Run 'skyclimb play <id>' to climb.")
}
