package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"travel-booking/internal/domain/intent"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
)

// IntentStore parks unauthenticated booking intents until the user logs in.
type IntentStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewIntentStore(rdb *redis.Client, cfg config.RedisConfig) *IntentStore {
	return &IntentStore{
		rdb:    rdb,
		ttl:    cfg.IntentTTL,
		prefix: cfg.KeyPrefix,
	}
}

func (s *IntentStore) intentKey(id uuid.UUID) string {
	return key(s.prefix, "intent", id.String())
}

func (s *IntentStore) TTL() time.Duration {
	return s.ttl
}

func (s *IntentStore) Save(ctx context.Context, snap intent.Snapshot) error {
	if s.rdb == nil {
		return ErrUnavailable
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking intent")
	}
	if err := s.rdb.Set(ctx, s.intentKey(snap.ID), raw, s.ttl).Err(); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to store booking intent"), ErrUnavailable)
	}
	return nil
}

func (s *IntentStore) Load(ctx context.Context, id uuid.UUID) (intent.Snapshot, error) {
	if s.rdb == nil {
		return intent.Snapshot{}, ErrUnavailable
	}

	raw, err := s.rdb.Get(ctx, s.intentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return intent.Snapshot{}, intent.ErrNotFound
		}
		return intent.Snapshot{}, errs.Mark(errs.Wrap(err, "failed to load booking intent"), ErrUnavailable)
	}

	var snap intent.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return intent.Snapshot{}, errs.Wrap(err, "failed to decode booking intent")
	}
	return snap, nil
}

func (s *IntentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.rdb == nil {
		return ErrUnavailable
	}
	// DEL is atomic, so of two concurrent deletes only one sees a count of 1.
	n, err := s.rdb.Del(ctx, s.intentKey(id)).Result()
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to delete booking intent"), ErrUnavailable)
	}
	if n == 0 {
		return intent.ErrNotFound
	}
	return nil
}
