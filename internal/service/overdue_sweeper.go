package service

import (
	"context"
	"time"

	"github.com/kaminoclone/cobranca/pkg/logger"
)

// OverdueSweeper periodically moves past-due charges to VENCIDO.
type OverdueSweeper struct {
	charges  ChargeService
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

func NewOverdueSweeper(charges ChargeService, interval time.Duration, log *logger.Logger) *OverdueSweeper {
	return &OverdueSweeper{
		charges:  charges,
		interval: interval,
		logger:   log,
		now:      time.Now,
	}
}

// Run sweeps once right away and then on every tick until ctx is done. A
// failed sweep is logged and retried on the next tick.
func (s *OverdueSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info(ctx, "Overdue sweeper started",
		"interval", s.interval.String(),
	)

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info(context.Background(), "Overdue sweeper stopped")
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				continue
			}
			s.sweep(ctx)
		}
	}
}

func (s *OverdueSweeper) sweep(ctx context.Context) {
	if _, err := s.charges.MarkOverdue(ctx, s.now()); err != nil && ctx.Err() == nil {
		s.logger.Warn(ctx, "Overdue sweep failed",
			"error", err,
		)
	}
}
