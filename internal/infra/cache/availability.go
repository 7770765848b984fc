package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/queries"
)

const anyPackageField = "any"

// AvailabilityCache keeps one Redis hash per item so a single DEL drops every
// package variant and start day cached for it. A per-item version counter is
// bumped on every invalidation; writes carry the version seen before the
// database read and are dropped once it has moved on.
type AvailabilityCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewAvailabilityCache(rdb *redis.Client, cfg config.RedisConfig) *AvailabilityCache {
	return &AvailabilityCache{
		rdb:    rdb,
		ttl:    cfg.AvailabilityTTL,
		prefix: cfg.KeyPrefix,
	}
}

func (c *AvailabilityCache) itemKey(itemID uuid.UUID) string {
	return key(c.prefix, "availability", itemID.String())
}

func (c *AvailabilityCache) versionKey(itemID uuid.UUID) string {
	return key(c.prefix, "availability", itemID.String(), "version")
}

func field(pt *booking.PackageType, from time.Time) string {
	name := anyPackageField
	if pt != nil {
		name = pt.String()
	}
	return name + "@" + availability.DateKey(from)
}

func (c *AvailabilityCache) GetDates(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time) ([]queries.AvailableDateView, int64, bool) {
	if c.rdb == nil {
		return nil, 0, false
	}

	pipe := c.rdb.Pipeline()
	entry := pipe.HGet(ctx, c.itemKey(itemID), field(pt, from))
	ver := pipe.Get(ctx, c.versionKey(itemID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		slog.Warn("availability cache read failed", "item_id", itemID, "error", err.Error())
		return nil, 0, false
	}

	version, err := parseVersion(ver)
	if err != nil {
		slog.Warn("availability cache version corrupt", "item_id", itemID, "error", err.Error())
		return nil, 0, false
	}

	raw, err := entry.Bytes()
	if err != nil {
		return nil, version, false
	}

	var views []queries.AvailableDateView
	if err := json.Unmarshal(raw, &views); err != nil {
		slog.Warn("availability cache entry corrupt", "item_id", itemID, "error", err.Error())
		return nil, version, false
	}
	return views, version, true
}

func (c *AvailabilityCache) SetDates(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time, version int64, views []queries.AvailableDateView) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(views)
	if err != nil {
		slog.Warn("availability cache encode failed", "item_id", itemID, "error", err.Error())
		return
	}

	k, vk := c.itemKey(itemID), c.versionKey(itemID)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := parseVersion(tx.Get(ctx, vk))
		if err != nil {
			return err
		}
		if current != version {
			return errStaleVersion
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, field(pt, from), raw)
			pipe.Expire(ctx, k, c.ttl)
			return nil
		})
		return err
	}, vk)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		slog.Debug("availability cache write skipped after invalidation", "item_id", itemID)
	default:
		slog.Warn("availability cache write failed", "item_id", itemID, "error", err.Error())
	}
}

// InvalidateItem is called after a committed write that changed slot counts.
func (c *AvailabilityCache) InvalidateItem(ctx context.Context, itemID uuid.UUID) {
	if c.rdb == nil {
		return
	}
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, c.versionKey(itemID))
	pipe.Del(ctx, c.itemKey(itemID))
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("availability cache invalidation failed", "item_id", itemID, "error", err.Error())
	}
}

var errStaleVersion = errors.New("availability cache version moved")

// parseVersion treats a missing counter as version 0.
func parseVersion(cmd *redis.StringCmd) (int64, error) {
	v, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}
