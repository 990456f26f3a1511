// Package cleanup runs the background retention loop.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/quantmuse/eventcore/pkg/config"
	"github.com/quantmuse/eventcore/pkg/services"
)

// Service periodically enforces retention policy over the operational
// tables (runs, terminal failures, SLA history, drift snapshots, audit
// logs). Pruning is idempotent and safe to run from multiple pods.
type Service struct {
	interval  time.Duration
	retention *services.RetentionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, retention *services.RetentionService) *Service {
	interval := cfg.PruneInterval
	if interval <= 0 {
		interval = 12 * time.Hour
	}
	return &Service{
		interval:  interval,
		retention: retention,
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started", "prune_interval", s.interval)
}

// Stop signals the retention loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.prune(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.prune(ctx)
		}
	}
}

func (s *Service) prune(ctx context.Context) {
	deleted := s.retention.Prune(ctx)
	total := 0
	for _, n := range deleted {
		total += n
	}
	if total > 0 {
		slog.Info("Retention: pruned aged rows", "total", total)
	}
}
