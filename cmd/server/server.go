package main

import (
	"time"

	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/infrastructure"
	"github.com/autoxela/navigator/internal/server"
)

// Server wires the infrastructure, modules, and HTTP server together.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, infra)
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure) (*Server, error) {
	modules, err := NewModules(cfg, infra)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	handler := buildMiddleware(cfg, infra).Apply(router)

	return &Server{
		infra: infra,
		http:  server.New(&cfg.Server, handler, infra.Logger),
	}, nil
}

// Start begins serving and marks the service ready once startup hooks finish.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service", "routes", s.infra.Table.Len())

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
