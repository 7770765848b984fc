package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/discount"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/internal/pkg/pgconv"
	"travel-booking/internal/usecase/queries"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Items, error)
	GetItemBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Items, error)
	ListItemsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsFirstPageParams) ([]sqlc.Items, error)
	ListItemsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsKeysetParams) ([]sqlc.Items, error)
	ListActiveItemDiscounts(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveItemDiscountsParams) ([]sqlc.ItemDiscounts, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ItemView, error) {
	row, err := r.queries.GetItemBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by slug", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) FindFirstPage(ctx context.Context, kind *string, limit int32) ([]*queries.ItemListItem, error) {
	rows, err := r.queries.ListItemsFirstPage(ctx, r.db, sqlc.ListItemsFirstPageParams{
		Kind:  pgconv.StringPtrToPgtype(kind),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	return toItemListItems(rows), nil
}

func (r *ItemReadStore) FindKeyset(ctx context.Context, kind *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ItemListItem, error) {
	rows, err := r.queries.ListItemsKeyset(ctx, r.db, sqlc.ListItemsKeysetParams{
		Kind:      pgconv.StringPtrToPgtype(kind),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items with keyset", err)
	}
	return toItemListItems(rows), nil
}

func (r *ItemReadStore) FindActiveDiscounts(ctx context.Context, itemID uuid.UUID, today time.Time) ([]queries.DiscountView, error) {
	rows, err := r.listDiscounts(ctx, itemID, today)
	if err != nil {
		return nil, err
	}
	views := make([]queries.DiscountView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.DiscountView{
			ID:          row.ID,
			PackageType: row.PackageType,
			Percentage:  row.Percentage,
			ValidUntil:  pgconv.DateFromPgtype(row.ValidUntil),
		})
	}
	return views, nil
}

// ItemEntity loads the aggregate for command-side validation.
func (r *ItemReadStore) ItemEntity(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item by id", err)
	}
	return item.ReconstructItem(
		row.ID,
		item.Kind(row.Kind),
		row.Slug,
		row.Name,
		row.Description,
		row.Location,
		row.BasePrice,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func (r *ItemReadStore) DiscountEntities(ctx context.Context, itemID uuid.UUID, today time.Time) ([]*discount.Discount, error) {
	rows, err := r.listDiscounts(ctx, itemID, today)
	if err != nil {
		return nil, err
	}
	out := make([]*discount.Discount, 0, len(rows))
	for _, row := range rows {
		pt, err := infra.PackageTypeFromColumn(row.PackageType)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid discount package type", err, infra.KindConstraintViolated)
		}
		d, err := discount.NewDiscount(row.ID, row.ItemID, pt, int(row.Percentage), pgconv.DateFromPgtype(row.ValidUntil))
		if err != nil {
			return nil, infra.WrapRepoErr("invalid discount row", err, infra.KindConstraintViolated)
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *ItemReadStore) listDiscounts(ctx context.Context, itemID uuid.UUID, today time.Time) ([]sqlc.ItemDiscounts, error) {
	rows, err := r.queries.ListActiveItemDiscounts(ctx, r.db, sqlc.ListActiveItemDiscountsParams{
		ItemID:     itemID,
		ValidUntil: pgconv.DateToPgtype(today),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list item discounts", err)
	}
	return rows, nil
}

func toItemView(row sqlc.Items) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		Kind:        row.Kind,
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description,
		Location:    row.Location,
		BasePrice:   row.BasePrice,
		IsActive:    row.IsActive,
		Discounts:   []queries.DiscountView{},
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toItemListItems(rows []sqlc.Items) []*queries.ItemListItem {
	items := make([]*queries.ItemListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.ItemListItem{
			ID:        row.ID,
			Kind:      row.Kind,
			Slug:      row.Slug,
			Name:      row.Name,
			Location:  row.Location,
			BasePrice: row.BasePrice,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
