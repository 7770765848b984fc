// Package cache holds the Redis-backed availability snapshot cache and the
// stored booking intent store. A nil client disables both.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
)

const defaultDialTimeout = 2 * time.Second

var ErrUnavailable = errs.New("cache backend unavailable")

// NewRedisClient returns nil when no address is configured or the server does
// not answer a ping, so callers degrade instead of failing startup.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		slog.Info("redis disabled: no address configured")
		return nil
	}

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, caching disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("redis connected", "addr", cfg.Addr)
	return client
}

func key(prefix string, parts ...string) string {
	return prefix + ":" + strings.Join(parts, ":")
}
