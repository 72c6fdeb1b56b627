package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionExpirer interface {
	ExpireStale(ctx context.Context) ([]string, error)
}

// Scheduler periodically evicts booking sessions that went idle past their
// TTL. Abandonment by timeout has no external side effect: the drafts only
// ever lived in memory.
type Scheduler struct {
	sessions sessionExpirer
	interval time.Duration
	logger   logger.Logger
}

func New(
	sessions sessionExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session janitor started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.sessions.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale sessions",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range expired {
		s.logger.Info("booking session expired",
			logger.String("session_id", id),
		)
	}
}
