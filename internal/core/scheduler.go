package core

// scheduler.go keeps a long-running process's dataset fresh.
//
// The published sheet changes without notice, so the service can re-fetch
// it on a fixed interval. Refreshes run in the background: readers keep the
// current snapshot until a new one is published, and a failed refresh is
// logged without discarding a good dataset.

import (
	"context"
	"log/slog"
	"time"
)

// StartRefreshScheduler performs an initial Load, then calls Refresh every
// interval until ctx is cancelled. With interval <= 0 only the initial load
// runs.
func (s *Service) StartRefreshScheduler(ctx context.Context, interval time.Duration) {
	slog.Info("refresh scheduler started", "interval", interval.String())

	if _, err := s.Load(ctx); err != nil && ctx.Err() == nil {
		slog.Warn("initial dataset load failed", "error", err)
	}

	if interval <= 0 {
		slog.Info("periodic refresh disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("refresh scheduler stopped")
			return
		case <-ticker.C:
			start := time.Now()
			if _, err := s.Refresh(ctx); err != nil {
				slog.Error("scheduled refresh failed", "error", err)
				continue
			}
			slog.Debug("scheduled refresh completed", "duration_ms", time.Since(start).Milliseconds())
		}
	}
}
