package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fenetres/internal/content"
	"github.com/vovakirdan/tui-fenetres/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeSkip   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server giving each connection its own quiz and desktop.

Sessions share nothing but the score database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fenetres/host_key

Examples:
  fenetres serve                           # Address from config (0.0.0.0:2222)
  fenetres serve --ssh :2323               # Listen on port 2323
  fenetres serve --host-key ./my_host_key  # Use specific host key
  fenetres serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides the config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, overrides the config")
	serveCmd.Flags().BoolVar(&flagServeSkip, "skip-quiz", false, "Start sessions at the login screen")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := content.Load("")
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	sc := tui.NewSSHServerConfig(cfg, store)
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	}
	sc.SkipQuiz = flagServeSkip

	server, err := tui.NewSSHServer(sc)
	if err != nil {
		return err
	}

	fmt.Printf("Starting fenetres SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
