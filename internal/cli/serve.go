package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/resourcehub/internal/web"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory page and JSON API (default)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	slog.Info("configuration loaded",
		"config", cfg.String(),
		"refresh_interval", cfg.Source.RefreshInterval,
		"rate_limit_enabled", cfg.Rate.Enabled,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	service := newService(cfg, cfg.Metrics.Enabled)
	server := web.NewServer(service, cfg)

	// Cancelled on SIGINT/SIGTERM; stops background jobs and the server.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initial load plus periodic refresh, off the request path.
	go service.StartRefreshScheduler(ctx, cfg.Source.RefreshInterval)

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}
