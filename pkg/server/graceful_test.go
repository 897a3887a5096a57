package server

import (
	"errors"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/dd0wney/cluso-routing/pkg/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newTestGracefulServer() *GracefulServer {
	return NewGracefulServer(":0", okHandler(), DefaultTimeouts(), logging.NewNopLogger())
}

func TestGracefulServerSighupDoesNotShutDown(t *testing.T) {
	gs := newTestGracefulServer()

	go func() {
		if err := gs.Start(); err != nil {
			t.Logf("server stopped: %v", err)
		}
	}()
	time.Sleep(100 * time.Millisecond)

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatalf("send SIGHUP: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	if gs.IsShuttingDown() {
		t.Error("SIGHUP should reload config, not shut down")
	}

	if err := gs.Shutdown(time.Second); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestGracefulServerReloadConfig(t *testing.T) {
	gs := newTestGracefulServer()

	reloadCalled := false
	gs.SetConfigReloadFunc(func() error {
		reloadCalled = true
		return nil
	})

	if err := gs.ReloadConfig(); err != nil {
		t.Errorf("ReloadConfig: %v", err)
	}
	if !reloadCalled {
		t.Error("reload function was not called")
	}
}

func TestGracefulServerReloadConfigError(t *testing.T) {
	gs := newTestGracefulServer()

	reloadErr := errors.New("bad config")
	gs.SetConfigReloadFunc(func() error { return reloadErr })

	if err := gs.ReloadConfig(); !errors.Is(err, reloadErr) {
		t.Errorf("ReloadConfig = %v, want %v", err, reloadErr)
	}
}

func TestGracefulServerReloadConfigWithoutFunc(t *testing.T) {
	gs := newTestGracefulServer()

	if err := gs.ReloadConfig(); err != nil {
		t.Errorf("ReloadConfig without a function should be a no-op, got %v", err)
	}
}

func TestGracefulServerShutdownIdempotent(t *testing.T) {
	gs := newTestGracefulServer()

	go func() { _ = gs.Start() }()
	time.Sleep(100 * time.Millisecond)

	if err := gs.Shutdown(time.Second); err != nil {
		t.Errorf("first shutdown: %v", err)
	}
	if err := gs.Shutdown(time.Second); err != nil {
		t.Errorf("second shutdown should be a no-op: %v", err)
	}
	if !gs.IsShuttingDown() {
		t.Error("server should report shutting down")
	}

	select {
	case <-gs.ShutdownChannel():
	default:
		t.Error("shutdown channel should be closed")
	}
}
