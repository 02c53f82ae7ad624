package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Serve the arcade over SSH. Every connection gets its own menu and
games; all players share one scoreboard. Clients need a terminal (PTY).

The host key is read from --host-key, or generated at ~/.arcade/host_key.
Server logs go to stderr unless --log-file is given.

Examples:
  arcade serve
  arcade serve --ssh :2222 --fps 30
  arcade serve --host-key ./host_key --db ./scores.db

Players connect with:
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envDefaults.SSHAddr, "SSH server address (host:port) [$ARCADE_SSH_ADDR]")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", envDefaults.HostKey, "Path to host key file, generated if empty [$ARCADE_HOST_KEY]")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Logger = log.Default()
	configureGames()

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Serving the arcade on %s, press Ctrl+C to stop\n", server.Addr())
	return server.ListenAndServe()
}
