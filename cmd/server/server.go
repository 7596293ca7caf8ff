package main

import (
	"fmt"
	"time"

	"github.com/ddbb-bakery/pos/internal/api"
	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/internal/infrastructure"
	"github.com/ddbb-bakery/pos/internal/server"
	"github.com/ddbb-bakery/pos/web/app"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra  *infrastructure.Infrastructure
	domain *api.Domain
	http   server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	domain, err := api.NewDomain(cfg, infra, app.Table())
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(cfg, infra, domain)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	srv := server.New(&cfg.Server, router, infra.Logger.With("system", "http"))
	srv.OnDrained(domain.Sessions.Close)

	return &Server{
		infra:  infra,
		domain: domain,
		http:   srv,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	s.domain.Start(s.infra)

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready", "addr", s.http.Addr())
	}()

	return nil
}

// Shutdown stops all subsystems, waiting at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

func migrateOnly(cfg *config.Config) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	if err := infra.Start(); err != nil {
		return err
	}

	if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		return fmt.Errorf("shutdown after migrate: %w", err)
	}
	return nil
}
