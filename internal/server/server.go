// Package server runs the kiosk's HTTP listener on the lifecycle coordinator.
//
// The listener is bound before Start returns. Drained hooks run on shutdown
// once in-flight requests have finished.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/pkg/lifecycle"
)

// System is the POS HTTP listener.
type System interface {
	Start(lc *lifecycle.Coordinator) error

	// Addr returns the bound address, or "" before Start.
	Addr() string

	// OnDrained registers fn to run after in-flight requests finish.
	OnDrained(fn func())
}

type server struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration

	mu      sync.Mutex
	addr    string
	drained []func()
}

// New creates the listener for handler using the server section of the config.
func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) System {
	return &server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeoutDuration(),
			ReadHeaderTimeout: cfg.ReadTimeoutDuration(),
			WriteTimeout:      cfg.WriteTimeoutDuration(),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

func (s *server) OnDrained(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drained = append(s.drained, fn)
}

// Start binds the listener, serves in the background, and registers the
// graceful shutdown with lc.
func (s *server) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		} else {
			s.logger.Info("server shutdown complete")
		}

		s.mu.Lock()
		hooks := s.drained
		s.mu.Unlock()
		for _, fn := range hooks {
			fn()
		}
	})

	return nil
}
