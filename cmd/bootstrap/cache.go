package bootstrap

import (
	"context"

	"travel-booking/internal/infra/cache"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
			fx.As(new(commands.AvailabilityInvalidator)),
		),
		fx.Annotate(
			NewIntentStore,
			fx.As(new(commands.IntentStore)),
		),
	),
)

func NewAvailabilityCache(rdb *redis.Client, cfg config.Config) *cache.AvailabilityCache {
	return cache.NewAvailabilityCache(rdb, cfg.Redis)
}

func NewIntentStore(rdb *redis.Client, cfg config.Config) *cache.IntentStore {
	return cache.NewIntentStore(rdb, cfg.Redis)
}

// NewRedis may return a nil client; the cache types treat that as disabled.
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := cache.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if rdb == nil {
				return nil
			}
			return rdb.Close()
		},
	})

	return rdb
}
