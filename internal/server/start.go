package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
)

// Start runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves on the configured address until ctx is cancelled. In-flight
// requests get the configured shutdown timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.GetAddr(), "env", s.Cfg.GetEnv())
		if err := s.E.Start(s.Cfg.GetAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "timeout", s.Cfg.GetShutdownTimeout())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Cfg.GetShutdownTimeout())
	defer cancel()
	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
