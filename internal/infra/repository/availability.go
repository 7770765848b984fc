package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityWriteQueries interface {
	GetAvailableDateForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAvailableDateForUpdateParams) (sqlc.AvailableDates, error)
	DecrementAvailableSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementAvailableSlotsParams) (int64, error)
	IncrementAvailableSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementAvailableSlotsParams) (int64, error)
	UpsertAvailableDate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAvailableDateParams) error
	DeleteAvailableDate(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteAvailableDateParams) (int64, error)
	DeletePastAvailableDates(ctx context.Context, db sqlc.DBTX, date pgtype.Date) (int64, error)
}

type AvailabilityRepository struct {
	queries AvailabilityWriteQueries
}

func NewAvailabilityRepository(queries AvailabilityWriteQueries) *AvailabilityRepository {
	return &AvailabilityRepository{
		queries: queries,
	}
}

// LockDate takes a row lock held until the surrounding transaction ends.
func (r *AvailabilityRepository) LockDate(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) (*availability.AvailableDate, error) {
	row, err := r.queries.GetAvailableDateForUpdate(ctx, tx, sqlc.GetAvailableDateForUpdateParams{
		ItemID:      itemID,
		PackageType: infra.PackageTypeToColumn(pt),
		Date:        pgconv.DateToPgtype(date),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("available date not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock available date", err)
	}

	return availability.ReconstructAvailableDate(
		row.ItemID,
		pt,
		pgconv.DateFromPgtype(row.Date),
		int(row.AvailableSlots),
		int(row.TotalSlots),
	), nil
}

// Decrement reports availability.ErrStaleAvailability when no slot is left.
func (r *AvailabilityRepository) Decrement(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) error {
	n, err := r.queries.DecrementAvailableSlots(ctx, tx, sqlc.DecrementAvailableSlotsParams{
		ItemID:      itemID,
		PackageType: infra.PackageTypeToColumn(pt),
		Date:        pgconv.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrement available slots", err)
	}
	if n == 0 {
		return availability.ErrStaleAvailability
	}
	return nil
}

// Increment is a no-op when the row was deleted in the meantime.
func (r *AvailabilityRepository) Increment(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) error {
	_, err := r.queries.IncrementAvailableSlots(ctx, tx, sqlc.IncrementAvailableSlotsParams{
		ItemID:      itemID,
		PackageType: infra.PackageTypeToColumn(pt),
		Date:        pgconv.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to increment available slots", err)
	}
	return nil
}

func (r *AvailabilityRepository) Upsert(ctx context.Context, tx sqlc.DBTX, d *availability.AvailableDate) error {
	err := r.queries.UpsertAvailableDate(ctx, tx, sqlc.UpsertAvailableDateParams{
		ItemID:         d.ItemID(),
		PackageType:    infra.PackageTypeToColumn(d.PackageType()),
		Date:           pgconv.DateToPgtype(d.Date()),
		AvailableSlots: int32(d.AvailableSlots()), // #nosec G115 -- validated by the domain
		TotalSlots:     int32(d.TotalSlots()),     // #nosec G115 -- validated by the domain
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert available date", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) (bool, error) {
	n, err := r.queries.DeleteAvailableDate(ctx, tx, sqlc.DeleteAvailableDateParams{
		ItemID:      itemID,
		PackageType: infra.PackageTypeToColumn(pt),
		Date:        pgconv.DateToPgtype(date),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete available date", err)
	}
	return n > 0, nil
}

func (r *AvailabilityRepository) DeleteBefore(ctx context.Context, tx sqlc.DBTX, date time.Time) (int64, error) {
	n, err := r.queries.DeletePastAvailableDates(ctx, tx, pgconv.DateToPgtype(date))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete past available dates", err)
	}
	return n, nil
}
