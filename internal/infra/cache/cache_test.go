//go:build unit

package cache

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/intent"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	assert.Nil(t, NewRedisClient(config.RedisConfig{}))
}

func TestField(t *testing.T) {
	from := time.Date(2030, 7, 1, 15, 0, 0, 0, time.UTC)
	family := booking.PackageFamily

	assert.Equal(t, "any@2030-07-01", field(nil, from))
	assert.Equal(t, "family@2030-07-01", field(&family, from))
}

func TestAvailabilityCache_NilClient(t *testing.T) {
	ctx := context.Background()
	c := NewAvailabilityCache(nil, config.NewTestConfig().Redis)
	itemID := uuid.New()

	c.SetDates(ctx, itemID, nil, time.Now(), 0, []queries.AvailableDateView{{Date: "2030-07-01"}})
	views, version, ok := c.GetDates(ctx, itemID, nil, time.Now())

	assert.False(t, ok)
	assert.Nil(t, views)
	assert.Zero(t, version)
	c.InvalidateItem(ctx, itemID)
	assert.Equal(t, "travel-test:availability:"+itemID.String(), c.itemKey(itemID))
	assert.Equal(t, "travel-test:availability:"+itemID.String()+":version", c.versionKey(itemID))
}

func TestIntentStore_NilClient(t *testing.T) {
	ctx := context.Background()
	s := NewIntentStore(nil, config.NewTestConfig().Redis)

	err := s.Save(ctx, intent.Snapshot{ID: uuid.New()})
	require.ErrorIs(t, err, ErrUnavailable)

	_, err = s.Load(ctx, uuid.New())
	require.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, s.Delete(ctx, uuid.New()), ErrUnavailable)
	assert.Equal(t, 30*time.Minute, s.TTL())
}
