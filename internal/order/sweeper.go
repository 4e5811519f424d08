package order

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StaleOrderRepository interface {
	ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error)
}

// ExpirySweeper periodically moves orders left pending after an abandoned
// checkout to the expired terminal state.
type ExpirySweeper struct {
	repo     StaleOrderRepository
	interval time.Duration
	maxAge   time.Duration
	logger   *zap.Logger
}

func NewExpirySweeper(repo StaleOrderRepository, interval, maxAge time.Duration, logger *zap.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		repo:     repo,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled.
func (s *ExpirySweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	expired, err := s.repo.ExpireStale(ctx, s.maxAge)
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		s.logger.Info("expired stale pending orders", zap.Int64("count", expired))
	}
}
