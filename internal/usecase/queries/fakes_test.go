//go:build unit

package queries_test

import (
	"context"
	"strings"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type fakeBookingStore struct {
	mock.Mock
}

func (m *fakeBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.BookingView)
	return v, args.Error(1)
}

func (m *fakeBookingStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID, limit)
	v, _ := args.Get(0).([]*queries.BookingListItem)
	return v, args.Error(1)
}

func (m *fakeBookingStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	args := m.Called(ctx, userID, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*queries.BookingListItem)
	return v, args.Error(1)
}

type fakeItemStore struct {
	mock.Mock
}

func (m *fakeItemStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.ItemView)
	return v, args.Error(1)
}

func (m *fakeItemStore) FindBySlug(ctx context.Context, slug string) (*queries.ItemView, error) {
	args := m.Called(ctx, slug)
	v, _ := args.Get(0).(*queries.ItemView)
	return v, args.Error(1)
}

func (m *fakeItemStore) FindFirstPage(ctx context.Context, kind *string, limit int32) ([]*queries.ItemListItem, error) {
	args := m.Called(ctx, kind, limit)
	v, _ := args.Get(0).([]*queries.ItemListItem)
	return v, args.Error(1)
}

func (m *fakeItemStore) FindKeyset(ctx context.Context, kind *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ItemListItem, error) {
	args := m.Called(ctx, kind, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*queries.ItemListItem)
	return v, args.Error(1)
}

func (m *fakeItemStore) FindActiveDiscounts(ctx context.Context, itemID uuid.UUID, today time.Time) ([]queries.DiscountView, error) {
	args := m.Called(ctx, itemID, today)
	v, _ := args.Get(0).([]queries.DiscountView)
	return v, args.Error(1)
}

type fakeAvailabilityStore struct {
	mock.Mock
}

func (m *fakeAvailabilityStore) FindFrom(ctx context.Context, itemID uuid.UUID, from time.Time) ([]*availability.AvailableDate, error) {
	args := m.Called(ctx, itemID, from)
	v, _ := args.Get(0).([]*availability.AvailableDate)
	return v, args.Error(1)
}

// mapCache is an in-memory AvailabilityCache with the same per-item
// versioning as the Redis one.
type mapCache struct {
	entries  map[string][]queries.AvailableDateView
	versions map[uuid.UUID]int64
	sets     int
}

func newMapCache() *mapCache {
	return &mapCache{
		entries:  map[string][]queries.AvailableDateView{},
		versions: map[uuid.UUID]int64{},
	}
}

func cacheKey(itemID uuid.UUID, pt *booking.PackageType, from time.Time) string {
	k := itemID.String() + "|" + availability.DateKey(from)
	if pt != nil {
		k += "|" + pt.String()
	}
	return k
}

func (c *mapCache) GetDates(_ context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time) ([]queries.AvailableDateView, int64, bool) {
	v, ok := c.entries[cacheKey(itemID, pt, from)]
	return v, c.versions[itemID], ok
}

func (c *mapCache) SetDates(_ context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time, version int64, views []queries.AvailableDateView) {
	if c.versions[itemID] != version {
		return
	}
	c.sets++
	c.entries[cacheKey(itemID, pt, from)] = views
}

func (c *mapCache) InvalidateItem(_ context.Context, itemID uuid.UUID) {
	c.versions[itemID]++
	prefix := itemID.String() + "|"
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}
