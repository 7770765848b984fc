package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
)

type AvailabilityReadQueries interface {
	ListAvailableDatesFrom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableDatesFromParams) ([]sqlc.AvailableDates, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

// FindFrom returns every row (any-package and package-specific) on or after from.
func (r *AvailabilityReadStore) FindFrom(ctx context.Context, itemID uuid.UUID, from time.Time) ([]*availability.AvailableDate, error) {
	rows, err := r.queries.ListAvailableDatesFrom(ctx, r.db, sqlc.ListAvailableDatesFromParams{
		ItemID: itemID,
		Date:   pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available dates", err)
	}

	dates := make([]*availability.AvailableDate, 0, len(rows))
	for _, row := range rows {
		d, err := toAvailableDate(row)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func toAvailableDate(row sqlc.AvailableDates) (*availability.AvailableDate, error) {
	pt, err := infra.PackageTypeFromColumn(row.PackageType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid availability package type", err, infra.KindConstraintViolated)
	}
	return availability.ReconstructAvailableDate(
		row.ItemID,
		pt,
		pgconv.DateFromPgtype(row.Date),
		int(row.AvailableSlots),
		int(row.TotalSlots),
	), nil
}
