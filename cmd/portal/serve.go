package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-portal/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal SSH server",
	Long: `Start an SSH server that allows users to connect and play games.

Each SSH connection gets its own session with the game picker menu. The
login is kept per SSH user name; scores are shared by everyone on the
server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise the path from the config is used, generated on first start

Examples:
  portal serve                           # Listen on the configured address
  portal serve --ssh :2222               # Listen on port 2222
  portal serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, closeLog := newLogger(cfg, false)
	defer closeLog()

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Config:      cfg,
		Logger:      logger.WithPrefix("portal-ssh"),
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting portal SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
