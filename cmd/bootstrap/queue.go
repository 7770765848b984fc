package bootstrap

import (
	"context"

	"travel-booking/internal/infra/queue"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/scheduler"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(scheduler.Publisher)),
		),
	),
)

// NewPublisher does not dial; the first Ready call connects.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) *queue.Publisher {
	publisher := queue.NewPublisher(cfg.RabbitMQ)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
