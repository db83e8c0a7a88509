// Package server owns the lifecycle of the HTTP transport: startup,
// signal-driven graceful shutdown, and resource release.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/smoretta/books-api/internal/config"
	"github.com/smoretta/books-api/internal/logger"
)

// Server is the lifecycle contract of the transport server. RunServer blocks
// until shutdown is requested; Shutdown releases resources.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps handler in an HTTP server bound to cfg.Address.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.Address == "" {
		return nil, errNoAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer serves until SIGINT, SIGTERM, or SIGQUIT arrives, then shuts
// down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
