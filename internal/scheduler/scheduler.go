package scheduler

import (
	"context"
	"time"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sessionExpirer interface {
	ExpireIdle(ctx context.Context) (*domain.Session, error)
}

// Scheduler periodically expires the authenticated session once it has been
// idle past the configured timeout.
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
	expired, err := s.sessions.ExpireIdle(ctx)
	if err != nil {
		s.logger.Error("failed to expire idle session",
			logger.String("error", err.Error()),
		)
		return
	}

	if expired != nil {
		s.logger.Info("session logged out for inactivity",
			logger.String("session_id", expired.ID),
			logger.String("username", expired.Username),
		)
	}
}
