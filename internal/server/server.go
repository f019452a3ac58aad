// If you are AI: This file implements the HTTP server lifecycle and routing.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"testapi/internal/config"
	"testapi/internal/svc/api"
	"testapi/internal/svc/health"
	"testapi/internal/svc/metrics"
)

// ErrBind is returned by Listen when the configured address cannot be bound.
// It is the only fatal startup error.
var ErrBind = errors.New("bind listener")

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	listener   net.Listener
	timeout    time.Duration
}

// New creates a new server instance with the given configuration.
// The server is not started until Start (or Listen and Serve) is called.
func New(cfg *config.Config, logger *zap.Logger) *Server {
	mux := http.NewServeMux()

	metricsSvc := metrics.New(logger)
	metricsSvc.RegisterRoutes(mux)

	apiSvc := api.NewService(cfg.Service, logger)
	apiSvc.RegisterRoutes(mux, metricsSvc.Instrument)

	healthSvc := health.New(cfg.Service, logger)
	healthSvc.RegisterRoutes(mux, metricsSvc.Instrument)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      withRequestID(withAccessLog(logger, mux)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     zap.NewStdLog(logger),
	}

	return &Server{
		httpServer: httpServer,
		logger:     logger,
		timeout:    cfg.Server.ShutdownTimeout,
	}
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Listen binds the configured address without serving.
// Returns an error wrapping ErrBind if the port is unavailable.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrBind, s.httpServer.Addr, err)
	}
	s.listener = ln
	s.logger.Info("Listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Serve accepts connections on the bound listener.
// This method blocks until the server is stopped and then returns http.ErrServerClosed.
func (s *Server) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("serve: listener not bound")
	}
	return s.httpServer.Serve(s.listener)
}

// Start binds and begins serving HTTP requests.
// This method blocks until the server is stopped or encounters an error.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Shutdown gracefully stops the server.
// Returns an error if shutdown fails or the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ShutdownWithTimeout stops the server using the configured shutdown timeout.
// This is a convenience wrapper around Shutdown.
func (s *Server) ShutdownWithTimeout() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.Shutdown(ctx)
}
