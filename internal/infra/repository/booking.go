package repository

import (
	"context"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, slot *booking.PackageType) (uuid.UUID, error) {
	pricing := b.Pricing()
	params := sqlc.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		ItemID:          b.ItemID(),
		PackageType:     b.PackageType().String(),
		SlotPackageType: infra.PackageTypeToColumn(slot),
		Adults:          int32(b.Party().Adults),   // #nosec G115 -- bounded by package config
		Children:        int32(b.Party().Children), // #nosec G115 -- bounded by package config
		Rooms:           int32(b.Rooms()),          // #nosec G115 -- bounded by room limits
		StartDate:       pgconv.DateToPgtype(b.StartDate()),
		EndDate:         pgconv.DateToPgtype(b.EndDate()),
		PricePerPerson:  pricing.PricePerPerson,
		PeopleTotal:     pricing.PeopleTotal,
		RoomCost:        pricing.RoomCost,
		Subtotal:        pricing.Subtotal,
		Discount:        pricing.Discount,
		Total:           pricing.Total,
		DiscountRate:    b.DiscountRate(),
		Status:          string(b.Status()),
	}

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, *booking.PackageType, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	b, err := toBookingEntity(row)
	if err != nil {
		return nil, nil, err
	}
	slot, err := infra.PackageTypeFromColumn(row.SlotPackageType)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("invalid booking slot package type", err, infra.KindConstraintViolated)
	}
	return b, slot, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error {
	err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}

func toBookingEntity(row sqlc.Bookings) (*booking.Booking, error) {
	pt, err := booking.NewPackageType(row.PackageType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking package type", err, infra.KindConstraintViolated)
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status", err, infra.KindConstraintViolated)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.ItemID,
		pt,
		booking.Party{Adults: int(row.Adults), Children: int(row.Children)},
		int(row.Rooms),
		pgconv.DateFromPgtype(row.StartDate),
		pgconv.DateFromPgtype(row.EndDate),
		booking.PricingResult{
			PricePerPerson: row.PricePerPerson,
			PeopleTotal:    row.PeopleTotal,
			RoomCost:       row.RoomCost,
			Subtotal:       row.Subtotal,
			Discount:       row.Discount,
			Total:          row.Total,
		},
		row.DiscountRate,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
