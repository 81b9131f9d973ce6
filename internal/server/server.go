// Package server wraps the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vishnuv55/SPC-Backend/internal/pkg/logger"
)

// Server is the HTTP server for the API.
type Server struct {
	httpServer *http.Server
}

// New creates a server listening on the port.
func New(port string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Start begins serving. It blocks until the listener closes.
func (s *Server) Start() error {
	logger.Info().Str("addr", s.httpServer.Addr).Msg("starting HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
