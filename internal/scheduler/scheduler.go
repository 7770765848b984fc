package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"travel-booking/internal/pkg/config"
)

// Scheduler runs the dispatcher and the purger on their own tickers until Stop.
type Scheduler struct {
	dispatcher     *Dispatcher
	purger         *Purger
	outboxInterval time.Duration
	purgeInterval  time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler(dispatcher *Dispatcher, purger *Purger, cfg config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		dispatcher:     dispatcher,
		purger:         purger,
		outboxInterval: cfg.OutboxInterval,
		purgeInterval:  cfg.PurgeInterval,
	}
}

func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.loop(ctx, "outbox", s.outboxInterval, func(ctx context.Context) error {
		_, err := s.dispatcher.RunOnce(ctx)
		return err
	})
	s.loop(ctx, "purge", s.purgeInterval, func(ctx context.Context) error {
		_, err := s.purger.RunOnce(ctx)
		return err
	})
	slog.Info("scheduler started", "outbox_interval", s.outboxInterval, "purge_interval", s.purgeInterval)
}

// Stop cancels the loops and waits for an in-flight run to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) loop(ctx context.Context, name string, interval time.Duration, run func(context.Context) error) {
	if interval <= 0 {
		slog.Warn("scheduler job disabled: non-positive interval", "job", name)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := run(ctx); err != nil && ctx.Err() == nil {
					slog.Error("scheduler job failed", "job", name, "error", err.Error())
				}
			}
		}
	}()
}
