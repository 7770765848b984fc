// Package scheduler runs the background jobs: outbox dispatch of
// notification jobs to the broker and purging of stale rows.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

// Publisher delivers one message to a durable topic.
type Publisher interface {
	Ready() error
	Publish(ctx context.Context, topic string, body []byte) error
}

type DispatchResult struct {
	Sent     int
	Retried  int
	Failed   int
	Deferred bool
}

// Dispatcher drains queued notification jobs. Claimed rows stay locked until
// the batch transaction ends so concurrent dispatchers skip them.
type Dispatcher struct {
	uow         shared.UnitOfWork
	publisher   Publisher
	batch       int32
	maxAttempts int
	backoffBase time.Duration
	clock       clock.Clock
}

func NewDispatcher(uow shared.UnitOfWork, publisher Publisher, cfg config.SchedulerConfig, clk clock.Clock) *Dispatcher {
	return &Dispatcher{
		uow:         uow,
		publisher:   publisher,
		batch:       cfg.OutboxBatch,
		maxAttempts: int(cfg.MaxAttempts),
		backoffBase: cfg.OutboxInterval,
		clock:       clk,
	}
}

// RunOnce publishes one batch. While the broker is unreachable nothing is
// claimed and the jobs stay queued.
func (d *Dispatcher) RunOnce(ctx context.Context) (DispatchResult, error) {
	var result DispatchResult

	if err := d.publisher.Ready(); err != nil {
		slog.Debug("broker unavailable, outbox dispatch deferred", "error", err.Error())
		result.Deferred = true
		return result, nil
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = DispatchResult{}

		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), d.batch)
		if err != nil {
			return errs.Wrap(err, "claim notification jobs")
		}

		for _, job := range jobs {
			pubErr := d.publisher.Publish(ctx, job.Topic, job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
					return err
				}
				result.Sent++
				continue
			}

			attempts := job.Attempts + 1
			if attempts >= d.maxAttempts {
				slog.Error("notification job failed permanently", "job_id", job.ID, "attempts", attempts, "error", pubErr.Error())
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, shared.NotificationStatusFailed, pubErr.Error(), nil); err != nil {
					return err
				}
				result.Failed++
				continue
			}

			retryAt := d.clock.Now().Add(d.backoff(attempts))
			slog.Warn("notification job publish failed, retrying", "job_id", job.ID, "attempts", attempts, "retry_at", retryAt)
			if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, shared.NotificationStatusQueued, pubErr.Error(), &retryAt); err != nil {
				return err
			}
			result.Retried++
		}
		return nil
	})
	if err != nil {
		return DispatchResult{}, err
	}

	if result.Sent+result.Retried+result.Failed > 0 {
		slog.Info("outbox batch dispatched", "sent", result.Sent, "retried", result.Retried, "failed", result.Failed)
	}
	return result, nil
}

// backoff doubles per attempt, capped at 64 times the base interval.
func (d *Dispatcher) backoff(attempts int) time.Duration {
	shift := attempts - 1
	if shift > 6 {
		shift = 6
	}
	return d.backoffBase * time.Duration(1<<shift)
}
