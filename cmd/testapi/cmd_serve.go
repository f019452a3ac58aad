// If you are AI: This file implements the serve command: bind, serve, and shut down on signal.

package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"testapi/internal/server"
)

// serveCmd starts the HTTP service. It is also the root command's default action.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// runServe binds the listener synchronously so a busy port fails the process,
// then serves until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(cfg, logger)

	if err := srv.Listen(); err != nil {
		logger.Error("Startup failed", zap.Error(err))
		return err
	}

	logger.Info("Starting service",
		zap.String("service", cfg.Service.Name),
		zap.String("version", cfg.Service.Version),
		zap.String("environment", cfg.Service.Environment),
		zap.String("addr", srv.Addr()),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdownHandler := server.NewShutdownHandler(srv, ctx)

	serveErr := make(chan error, 1)
	go func() {
		err := srv.Serve()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", zap.Error(err))
			serveErr <- err
			cancel()
			return
		}
		serveErr <- nil
	}()

	// Wait for shutdown signal
	if err := shutdownHandler.Wait(); err != nil {
		logger.Error("Shutdown error", zap.Error(err))
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	logger.Info("Server shut down cleanly")
	return nil
}
