package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/item"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

type ItemView struct {
	ID          uuid.UUID      `json:"id"`
	Kind        string         `json:"kind"`
	Slug        string         `json:"slug"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	BasePrice   int64          `json:"base_price"`
	IsActive    bool           `json:"is_active"`
	Discounts   []DiscountView `json:"discounts"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ItemListItem struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	BasePrice int64     `json:"base_price"`
	CreatedAt time.Time `json:"created_at"`
}

// DiscountView has an empty PackageType for item-wide discounts.
type DiscountView struct {
	ID          uuid.UUID `json:"id"`
	PackageType string    `json:"package_type,omitempty"`
	Percentage  int32     `json:"percentage"`
	ValidUntil  time.Time `json:"valid_until"`
}

type ItemFilters struct {
	Kind *item.Kind
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindBySlug(ctx context.Context, slug string) (*ItemView, error)
	FindFirstPage(ctx context.Context, kind *string, limit int32) ([]*ItemListItem, error)
	FindKeyset(ctx context.Context, kind *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ItemListItem, error)
	FindActiveDiscounts(ctx context.Context, itemID uuid.UUID, today time.Time) ([]DiscountView, error)
}

type ItemQueries interface {
	GetBySlug(ctx context.Context, slug string) (*ItemView, error)
	List(ctx context.Context, filters ItemFilters, cursor *Cursor, limit int) (Page[*ItemListItem], error)
}

type itemQueriesImpl struct {
	repo  ItemReadStore
	clock clock.Clock
}

func NewItemQueries(repo ItemReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{repo: repo, clock: clk}
}

// GetBySlug hides inactive items from the public catalog.
func (q *itemQueriesImpl) GetBySlug(ctx context.Context, slug string) (*ItemView, error) {
	view, err := q.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapItemErr(err)
	}
	if !view.IsActive {
		return nil, ErrItemNotFound
	}

	discounts, err := q.repo.FindActiveDiscounts(ctx, view.ID, clock.Today(q.clock))
	if err != nil {
		return nil, err
	}
	view.Discounts = discounts
	return view, nil
}

func (q *itemQueriesImpl) List(ctx context.Context, filters ItemFilters, cursor *Cursor, limit int) (Page[*ItemListItem], error) {
	limit = ValidateLimit(limit)

	var kind *string
	if filters.Kind != nil {
		k := filters.Kind.String()
		kind = &k
	}

	lastCreatedAt, lastID, ok, err := decodeCursor(cursor)
	if err != nil {
		return Page[*ItemListItem]{}, err
	}

	var rows []*ItemListItem
	if !ok {
		rows, err = q.repo.FindFirstPage(ctx, kind, int32(limit+1))
	} else {
		rows, err = q.repo.FindKeyset(ctx, kind, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return Page[*ItemListItem]{}, err
	}

	return paginate(rows, limit, func(it *ItemListItem) (time.Time, uuid.UUID) {
		return it.CreatedAt, it.ID
	}), nil
}

func mapItemErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrItemNotFound
	}
	return err
}
