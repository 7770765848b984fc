package scheduler

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"
)

type PurgeResult struct {
	IdempotencyKeys int64
	AvailableDates  int64
}

// Purger removes expired idempotency keys and availability rows for days
// that have already passed.
type Purger struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPurger(uow shared.UnitOfWork, clk clock.Clock) *Purger {
	return &Purger{uow: uow, clock: clk}
}

func (p *Purger) RunOnce(ctx context.Context) (PurgeResult, error) {
	today := clock.Today(p.clock)

	var result PurgeResult
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		keys, err := tx.Idempotency().DeleteExpired(ctx, tx.DB())
		if err != nil {
			return err
		}
		dates, err := tx.Availability().DeleteBefore(ctx, tx.DB(), today)
		if err != nil {
			return err
		}
		result = PurgeResult{IdempotencyKeys: keys, AvailableDates: dates}
		return nil
	})
	if err != nil {
		return PurgeResult{}, err
	}

	if result.IdempotencyKeys > 0 || result.AvailableDates > 0 {
		slog.Info("purged stale rows", "idempotency_keys", result.IdempotencyKeys, "available_dates", result.AvailableDates)
	}
	return result, nil
}
