// Package server owns the process lifecycle: it starts the HTTP transport
// and stops it gracefully on SIGTERM, SIGINT or SIGQUIT.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/notewall/notewall/internal/config"
	"github.com/notewall/notewall/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the transport server for the given router.
func NewServer(handler http.Handler, cfg config.Server, log *logger.Logger) (Server, error) {
	log.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, log),
		logger:     log,
	}, nil
}

// RunServer starts the HTTP server and blocks until a stop signal arrives
// and the graceful shutdown finishes.
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
	s.logger.Info().Msg("server shutdown gracefully")
}

// Shutdown gracefully stops the HTTP server.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
