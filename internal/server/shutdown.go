// If you are AI: This file handles graceful shutdown orchestration for the server process.

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// ShutdownHandler manages graceful shutdown on SIGINT or SIGTERM.
type ShutdownHandler struct {
	server  *Server
	ctx     context.Context
	cancel  context.CancelFunc
	sigChan chan os.Signal
}

// NewShutdownHandler creates a handler and starts capturing termination signals
// immediately, so a signal that arrives before Wait is still a clean shutdown.
// Cancelling the provided context also triggers shutdown.
func NewShutdownHandler(server *Server, ctx context.Context) *ShutdownHandler {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &ShutdownHandler{
		server:  server,
		ctx:     shutdownCtx,
		cancel:  cancel,
		sigChan: sigChan,
	}
}

// Wait blocks until a termination signal is received or the context is done,
// then stops the server within its shutdown timeout.
// This method should be called from the main goroutine.
func (h *ShutdownHandler) Wait() error {
	defer signal.Stop(h.sigChan)

	select {
	case sig := <-h.sigChan:
		h.server.logger.Info("Shutting down", zap.String("signal", sig.String()))
	case <-h.ctx.Done():
		h.server.logger.Info("Shutting down", zap.String("reason", "context done"))
	}

	// Cancel context to signal shutdown
	h.cancel()

	return h.server.ShutdownWithTimeout()
}

// Context returns the shutdown context that is cancelled when shutdown begins.
func (h *ShutdownHandler) Context() context.Context {
	return h.ctx
}
