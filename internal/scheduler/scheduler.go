package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type snapshotReloader interface {
	Reload(ctx context.Context) error
}

// Scheduler refreshes the in-memory reference snapshot (service catalog and
// blackout dates) on a fixed interval, so edits made out-of-band reach the
// intake flow without a restart.
type Scheduler struct {
	store    snapshotReloader
	interval time.Duration
	logger   logger.Logger
}

func New(
	store snapshotReloader,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if err := s.store.Reload(ctx); err != nil {
		s.logger.Error("failed to refresh reference snapshot",
			logger.String("error", err.Error()),
		)
	}
}
