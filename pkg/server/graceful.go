// Package server wraps net/http with graceful shutdown and signal handling.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/logging"
)

// ConfigReloadFunc is called when a configuration reload is requested
type ConfigReloadFunc func() error

// Timeouts bounds the HTTP server's request handling
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// DefaultTimeouts returns the standard server timeouts
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Read:  30 * time.Second,
		Write: 30 * time.Second,
		Idle:  120 * time.Second,
	}
}

// GracefulServer wraps an HTTP server with signal-driven graceful shutdown.
// SIGINT and SIGTERM drain connections and stop; SIGHUP triggers the
// configured reload function.
type GracefulServer struct {
	server         *http.Server
	log            logging.Logger
	shutdownCh     chan struct{}
	shutdownOnce   sync.Once
	configReloadFn ConfigReloadFunc
	configMu       sync.RWMutex
}

// NewGracefulServer creates a graceful HTTP server on addr
func NewGracefulServer(addr string, handler http.Handler, timeouts Timeouts, logger logging.Logger) *GracefulServer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	return &GracefulServer{
		server: &http.Server{
			Addr:           addr,
			Handler:        handler,
			ReadTimeout:    timeouts.Read,
			WriteTimeout:   timeouts.Write,
			IdleTimeout:    timeouts.Idle,
			MaxHeaderBytes: 1 << 20,
		},
		log:        logger.With(logging.Component("server")),
		shutdownCh: make(chan struct{}),
	}
}

// Start serves until shutdown. It returns nil after a clean shutdown.
func (gs *GracefulServer) Start() error {
	go gs.handleSignals()

	gs.log.Info("server_starting", logging.String("addr", gs.server.Addr))
	if err := gs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, waiting at most timeout. Safe to call
// more than once; only the first call does anything.
func (gs *GracefulServer) Shutdown(timeout time.Duration) error {
	var err error
	gs.shutdownOnce.Do(func() {
		close(gs.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		gs.log.Info("shutdown_started", logging.Duration("timeout", timeout))
		if shutdownErr := gs.server.Shutdown(ctx); shutdownErr != nil {
			err = shutdownErr
			gs.log.Error("shutdown_failed", logging.Error(shutdownErr))
		} else {
			gs.log.Info("shutdown_complete")
		}
	})
	return err
}

func (gs *GracefulServer) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)

	for sig := range sigCh {
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM:
			gs.log.Info("signal_received", logging.String("signal", sig.String()))
			if err := gs.Shutdown(30 * time.Second); err != nil {
				gs.log.Error("shutdown_failed", logging.Error(err))
			}
			return

		case syscall.SIGHUP:
			gs.log.Info("signal_received", logging.String("signal", sig.String()))
			if err := gs.ReloadConfig(); err != nil {
				gs.log.Error("config_reload_failed", logging.Error(err))
			}
		}
	}
}

// IsShuttingDown reports whether shutdown has been initiated
func (gs *GracefulServer) IsShuttingDown() bool {
	select {
	case <-gs.shutdownCh:
		return true
	default:
		return false
	}
}

// ShutdownChannel returns a channel that closes when shutdown is initiated
func (gs *GracefulServer) ShutdownChannel() <-chan struct{} {
	return gs.shutdownCh
}

// SetConfigReloadFunc sets the function invoked on SIGHUP
func (gs *GracefulServer) SetConfigReloadFunc(fn ConfigReloadFunc) {
	gs.configMu.Lock()
	defer gs.configMu.Unlock()
	gs.configReloadFn = fn
}

// ReloadConfig invokes the configured reload function, if any
func (gs *GracefulServer) ReloadConfig() error {
	gs.configMu.RLock()
	reloadFn := gs.configReloadFn
	gs.configMu.RUnlock()

	if reloadFn == nil {
		gs.log.Warn("config_reload_skipped", logging.String("reason", "no reload function configured"))
		return nil
	}

	gs.log.Info("config_reload_started")
	return reloadFn()
}
