package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// httpServer is the lifecycle subset of *http.Server.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// serve runs srv until ctx is cancelled or the listener fails. On
// cancellation in-flight requests get shutdownTimeout to finish.
func serve(ctx context.Context, logger *slog.Logger, srv httpServer, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	// ctx is already done; shutdown needs a fresh deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	<-errCh

	logger.Info("server stopped")
	return nil
}
