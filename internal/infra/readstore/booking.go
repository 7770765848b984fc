package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.ListBookingsByUserFirstPageRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.ListBookingsByUserKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}

	return &queries.BookingView{
		ID:             row.ID,
		UserID:         row.UserID,
		UserEmail:      row.UserEmail,
		ItemID:         row.ItemID,
		ItemName:       row.ItemName,
		ItemSlug:       row.ItemSlug,
		PackageType:    row.PackageType,
		Adults:         row.Adults,
		Children:       row.Children,
		Rooms:          row.Rooms,
		StartDate:      pgconv.DateFromPgtype(row.StartDate),
		EndDate:        pgconv.DateFromPgtype(row.EndDate),
		PricePerPerson: row.PricePerPerson,
		PeopleTotal:    row.PeopleTotal,
		RoomCost:       row.RoomCost,
		Subtotal:       row.Subtotal,
		Discount:       row.Discount,
		Total:          row.Total,
		DiscountRate:   row.DiscountRate,
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, sqlc.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toBookingListItem(sqlc.ListBookingsByUserKeysetRow(row)))
	}
	return items, nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, sqlc.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user with keyset", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toBookingListItem(row))
	}
	return items, nil
}

func toBookingListItem(row sqlc.ListBookingsByUserKeysetRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          row.ID,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		PackageType: row.PackageType,
		StartDate:   pgconv.DateFromPgtype(row.StartDate),
		EndDate:     pgconv.DateFromPgtype(row.EndDate),
		Total:       row.Total,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
