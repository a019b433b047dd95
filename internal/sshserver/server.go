// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
)

const (
	// StateCreated indicates the server has been created but not started.
	StateCreated ServerState = iota
	// StateStarting indicates the server is in the process of starting.
	StateStarting
	// StateRunning indicates the server is running and accepting connections.
	StateRunning
	// StateStopping indicates the server is shutting down.
	StateStopping
	// StateStopped indicates the server has stopped (terminal state).
	StateStopped
	// StateFailed indicates the server failed to start or encountered a fatal error (terminal state).
	StateFailed
)

type (
	// ServerState represents the lifecycle state of the server.
	ServerState int32

	// ReportFunc produces the rendered consistency report served to each
	// session. It is invoked once per connection so sessions always see a
	// fresh check result.
	ReportFunc func() (string, error)

	// Server serves the portrait report over SSH.
	// A Server instance is single-use: once stopped or failed, create a new one.
	Server struct {
		// Immutable configuration (set at creation, never modified)
		cfg    Config
		report ReportFunc

		// State management (atomic for lock-free reads)
		state atomic.Int32

		// Initialized during Start() - protected by srvMu for writes
		srvMu    sync.Mutex
		srv      *ssh.Server
		listener net.Listener
		addr     string // Actual bound address (including resolved port)

		// Lifecycle management
		wg        sync.WaitGroup
		startedCh chan struct{} // Closed when server is ready to accept connections
		errCh     chan error    // Receives fatal errors from the serve goroutine
		lastErr   error         // Stores the last error for State() == StateFailed

		logger *log.Logger
	}

	// Config holds immutable configuration for the report server.
	Config struct {
		// Host is the address to bind to (default: 127.0.0.1)
		Host string
		// Port is the port to listen on (0 = auto-select)
		Port int
		// ShutdownTimeout is the timeout for graceful shutdown (default: 10s)
		ShutdownTimeout time.Duration
		// StartupTimeout is the max time to wait for the server to be ready (default: 5s)
		StartupTimeout time.Duration
	}
)

// String returns a human-readable representation of the server state.
func (s ServerState) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            0,
		ShutdownTimeout: 10 * time.Second,
		StartupTimeout:  5 * time.Second,
	}
}

// New creates a new report server instance.
// The server is not started; call Start() to begin accepting connections.
func New(cfg Config, report ReportFunc) *Server {
	// Apply defaults
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.StartupTimeout == 0 {
		cfg.StartupTimeout = 5 * time.Second
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "report-server",
	})

	s := &Server{
		cfg:       cfg,
		report:    report,
		startedCh: make(chan struct{}),
		errCh:     make(chan error, 1), // Buffered so the serve goroutine doesn't block
		logger:    logger,
	}
	s.state.Store(int32(StateCreated))

	return s
}

// State returns the current lifecycle state.
func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

// Addr returns the actual bound address once the server has started.
func (s *Server) Addr() string {
	s.srvMu.Lock()
	defer s.srvMu.Unlock()
	return s.addr
}

// Err exposes fatal errors from the serve goroutine.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Start starts the report server and blocks until either:
//   - The server is ready to accept connections (returns nil)
//   - The server fails to start (returns error)
//   - The context is cancelled or the startup timeout is exceeded
func (s *Server) Start(ctx context.Context) error {
	// Check for an already-cancelled context before any setup so the serve
	// goroutine cannot transition to StateRunning first.
	select {
	case <-ctx.Done():
		s.transitionToFailed(fmt.Errorf("context cancelled before start: %w", ctx.Err()))
		return s.lastErr
	default:
	}

	// Transition: Created -> Starting
	if !s.state.CompareAndSwap(int32(StateCreated), int32(StateStarting)) {
		return fmt.Errorf("cannot start server in state %s", s.State())
	}

	startupCtx, startupCancel := context.WithTimeout(ctx, s.cfg.StartupTimeout)
	defer startupCancel()

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var lc net.ListenConfig
	listener, err := lc.Listen(startupCtx, "tcp", addr)
	if err != nil {
		s.transitionToFailed(fmt.Errorf("failed to listen on %s: %w", addr, err))
		return s.lastErr
	}

	srv, err := wish.NewServer(
		wish.WithAddress(addr),
		wish.WithMiddleware(s.reportMiddleware()),
	)
	if err != nil {
		_ = listener.Close() // Best-effort cleanup on error
		s.transitionToFailed(fmt.Errorf("failed to create SSH server: %w", err))
		return s.lastErr
	}

	s.srvMu.Lock()
	s.srv = srv
	s.listener = listener
	s.addr = listener.Addr().String()
	s.srvMu.Unlock()

	s.wg.Add(1)
	go s.serve()

	select {
	case <-s.startedCh:
		s.logger.Info("report server started", "address", s.addr)
		return nil

	case err := <-s.errCh:
		s.transitionToFailed(err)
		return err

	case <-startupCtx.Done():
		s.transitionToFailed(fmt.Errorf("startup timeout: %w", startupCtx.Err()))
		return s.lastErr
	}
}

// Stop gracefully stops the server.
// It blocks until all connections are closed or the shutdown timeout is
// reached. Safe to call multiple times; subsequent calls are no-ops.
func (s *Server) Stop() error {
	if !s.state.CompareAndSwap(int32(StateRunning), int32(StateStopping)) {
		// Already stopped, stopping, created, or failed
		s.wg.Wait()
		return nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer shutdownCancel()

	var shutdownErr error
	s.srvMu.Lock()
	if s.srv != nil {
		shutdownErr = s.srv.Shutdown(shutdownCtx)
		if shutdownErr != nil && !isClosedConnError(shutdownErr) {
			s.logger.Error("shutdown error", "error", shutdownErr)
		} else {
			shutdownErr = nil
		}
	}
	if s.listener != nil {
		_ = s.listener.Close() //nolint:errcheck // Best-effort cleanup during shutdown
	}
	s.srvMu.Unlock()

	s.wg.Wait()
	s.state.Store(int32(StateStopped))
	s.logger.Info("report server stopped")

	return shutdownErr
}

// serve runs the SSH server and reports fatal errors.
func (s *Server) serve() {
	defer s.wg.Done()

	// Transition: Starting -> Running (signals readiness)
	if s.state.CompareAndSwap(int32(StateStarting), int32(StateRunning)) {
		close(s.startedCh)
	}

	s.srvMu.Lock()
	srv, listener := s.srv, s.listener
	s.srvMu.Unlock()

	if err := srv.Serve(listener); err != nil && !errors.Is(err, ssh.ErrServerClosed) && !isClosedConnError(err) {
		select {
		case s.errCh <- err:
		default:
		}
	}
}

// reportMiddleware writes the rendered report to each session and closes it.
func (s *Server) reportMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.logger.Info("session opened", "user", sess.User(), "remote", sess.RemoteAddr())

			out, err := s.report()
			if err != nil {
				fmt.Fprintf(sess.Stderr(), "failed to run check: %v\n", err)
				_ = sess.Exit(1) //nolint:errcheck // Session is closing anyway
				return
			}

			_, _ = fmt.Fprint(sess, out)
			next(sess)
		}
	}
}

// transitionToFailed records the error and moves to the Failed state.
func (s *Server) transitionToFailed(err error) {
	s.lastErr = err
	s.state.Store(int32(StateFailed))
}

// isClosedConnError reports whether err is the "use of closed network
// connection" error seen during normal shutdown.
func isClosedConnError(err error) bool {
	return errors.Is(err, net.ErrClosed)
}
