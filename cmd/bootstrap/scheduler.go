package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/scheduler"
	"travel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		func(uow shared.UnitOfWork, publisher scheduler.Publisher, cfg config.Config, clk clock.Clock) *scheduler.Dispatcher {
			return scheduler.NewDispatcher(uow, publisher, cfg.Scheduler, clk)
		},
		scheduler.NewPurger,
		func(d *scheduler.Dispatcher, p *scheduler.Purger, cfg config.Config) *scheduler.Scheduler {
			return scheduler.NewScheduler(d, p, cfg.Scheduler)
		},
	),
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, cfg config.Config) {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
