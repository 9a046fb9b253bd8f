package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyclimb/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sky Climb SSH server",
	Long: `Start an SSH server that allows users to connect and climb.

Each SSH connection gets their own session with a mode picker menu.
Runs are stored per-server (all users share the same best times).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.skyclimb/host_key

Examples:
  skyclimb serve                           # Listen on :23234 with auto-generated key
  skyclimb serve --ssh :2222               # Listen on port 2222
  skyclimb serve --host-key ./my_host_key  # Use specific host key
  skyclimb serve --difficulty easy         # Easy courses for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	_, err := loadClimbConfig()
	exitOnErr("loading config", err)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      newLogger(os.Stderr),
	}

	server, err := tui.NewSSHServer(cfg)
	exitOnErr("creating server", err)

	fmt.Printf("Starting Sky Climb SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	exitOnErr("serving", server.ListenAndServe())
}
