package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-portal/internal/config"
	"github.com/vovakirdan/tui-portal/internal/identity"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.portal/host_key.
	HostKeyPath string

	// DBPath is the path to the portal database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Config is handed to every session (room service, game tuning).
	Config config.Config

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	cfg := config.DefaultConfig()
	return SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		DBPath:      cfg.Storage.Path,
		IdleTimeout: 30 * time.Minute,
		Config:      cfg,
	}
}

type sessionKey struct{}

// SSHServer wraps a Wish SSH server for the portal.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *multiplayer.SessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "portal-ssh",
		})
	}

	// Without storage every session plays anonymously in memory.
	store, err := storage.Open(config.ExpandHome(cfg.DBPath))
	if err != nil {
		logger.Warn("could not open portal database", "error", err)
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: multiplayer.NewSessionRegistry(),
		logger:   logger,
	}

	hostKeyPath := config.ExpandHome(cfg.HostKeyPath)
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".portal", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a portal session for each SSH connection. Logins are
// kept per SSH user name.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	var profile identity.Store = &identity.MemoryStore{}
	if s.store != nil {
		profile = s.store.Profile("ssh:" + sshSession.User())
	}
	handle, _ := sshSession.Context().Value(sessionKey{}).(*multiplayer.ChannelSession)
	var id multiplayer.SessionID
	if handle != nil {
		id = handle.ID()
	}

	app := NewApp(AppOptions{
		Store:    s.store,
		Identity: identity.New(profile),
		Config:   s.config.Config,
		Seed:     time.Now().UnixNano(),
		Session:  id,
		Events:   handle,
		Logger:   s.logger.With("user", sshSession.User()),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
	})
	return app, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events and registers the room event
// handle of each connection.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		id := multiplayer.SessionID(fmt.Sprintf("%s-%d", sshSession.User(), time.Now().UnixNano()))
		handle := multiplayer.NewChannelSession(id, 16)
		sshSession.Context().SetValue(sessionKey{}, handle)
		s.sessions.Register(handle)

		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"sessions", s.sessions.Count(),
		)
		next(sshSession)

		handle.Close()
		s.sessions.Unregister(id)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"sessions", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...", "sessions", s.sessions.Count())
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeSessions()
	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// closeSessions ends room event delivery for every live connection.
func (s *SSHServer) closeSessions() {
	for _, id := range s.sessions.IDs() {
		if h, ok := s.sessions.Get(id); ok {
			if c, ok := h.(*multiplayer.ChannelSession); ok {
				c.Close()
			}
		}
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
