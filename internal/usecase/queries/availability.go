package queries

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/pkg/clock"
)

// AvailableDateView is the effective row for one date. PackageType is empty
// when the slots are shared by every package of the item.
type AvailableDateView struct {
	Date           string `json:"date"`
	PackageType    string `json:"package_type,omitempty"`
	AvailableSlots int    `json:"available_slots"`
	TotalSlots     int    `json:"total_slots"`
}

type AvailabilityReadStore interface {
	FindFrom(ctx context.Context, itemID uuid.UUID, from time.Time) ([]*availability.AvailableDate, error)
}

// AvailabilityCache is best effort: a miss or a backend failure falls through
// to the read store. GetDates also returns the item's cache version; SetDates
// must be given that version and drops the write if the item was invalidated
// in between.
type AvailabilityCache interface {
	GetDates(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time) ([]AvailableDateView, int64, bool)
	SetDates(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType, from time.Time, version int64, views []AvailableDateView)
}

type AvailabilityQueries interface {
	ListForItem(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType) ([]AvailableDateView, error)
}

type availabilityQueriesImpl struct {
	items ItemReadStore
	repo  AvailabilityReadStore
	cache AvailabilityCache
	clock clock.Clock
}

func NewAvailabilityQueries(items ItemReadStore, repo AvailabilityReadStore, cache AvailabilityCache, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{
		items: items,
		repo:  repo,
		cache: cache,
		clock: clk,
	}
}

func (q *availabilityQueriesImpl) ListForItem(ctx context.Context, itemID uuid.UUID, pt *booking.PackageType) ([]AvailableDateView, error) {
	today := clock.Today(q.clock)

	views, version, ok := q.cache.GetDates(ctx, itemID, pt, today)
	if ok {
		return views, nil
	}

	if _, err := q.items.FindByID(ctx, itemID); err != nil {
		return nil, mapItemErr(err)
	}

	rows, err := q.repo.FindFrom(ctx, itemID, today)
	if err != nil {
		return nil, err
	}

	resolved := availability.Resolve(rows, pt)
	views = make([]AvailableDateView, 0, len(resolved))
	for _, d := range resolved {
		views = append(views, toAvailableDateView(d))
	}

	q.cache.SetDates(ctx, itemID, pt, today, version, views)
	slog.Debug("availability snapshot loaded", "item_id", itemID, "dates", len(views))
	return views, nil
}

func toAvailableDateView(d *availability.AvailableDate) AvailableDateView {
	v := AvailableDateView{
		Date:           availability.DateKey(d.Date()),
		AvailableSlots: d.AvailableSlots(),
		TotalSlots:     d.TotalSlots(),
	}
	if d.PackageType() != nil {
		v.PackageType = d.PackageType().String()
	}
	return v
}
