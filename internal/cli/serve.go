package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/roboadvisor/pkg/adapters/http"
	"github.com/aretw0/roboadvisor/pkg/observability"

	"github.com/aretw0/roboadvisor/internal/config"
)

const shutdownTimeout = 5 * time.Second

// NewServer builds the HTTP server for cfg with metrics enabled.
func NewServer(cfg config.Config, logger *slog.Logger, debug bool) *http.Server {
	metrics := observability.NewMetrics()
	bot := NewBot(logger, debug, metrics.Hooks())

	handler := httpAdapter.NewHandler(bot,
		httpAdapter.WithLogger(logger),
		httpAdapter.WithMetrics(metrics.Handler()),
		httpAdapter.WithMaxValueSize(cfg.MaxSlotSize),
	)

	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// RunServe serves HTTP until ctx is cancelled, then shuts down gracefully.
func RunServe(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("Starting RoboAdvisor Server", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("RoboAdvisor Server stopped gracefully")
		return nil
	}
}
