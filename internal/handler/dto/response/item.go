package response

import (
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ItemResponse struct {
	ID          uuid.UUID          `json:"id"`
	Kind        string             `json:"kind"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	BasePrice   int64              `json:"base_price"`
	Discounts   []DiscountResponse `json:"discounts" copier:"-"`
	CreatedAt   time.Time          `json:"created_at"`
}

type DiscountResponse struct {
	ID          uuid.UUID `json:"id"`
	PackageType string    `json:"package_type,omitempty"`
	Percentage  int32     `json:"percentage"`
	ValidUntil  string    `json:"valid_until"`
}

type ItemListItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	BasePrice int64     `json:"base_price"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemListResponse struct {
	Items      []ItemListItemResponse `json:"items"`
	NextCursor *string                `json:"next_cursor"`
}

func FromItemView(v *queries.ItemView) (*ItemResponse, error) {
	var res ItemResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map item view")
	}
	res.Discounts = make([]DiscountResponse, 0, len(v.Discounts))
	for _, d := range v.Discounts {
		res.Discounts = append(res.Discounts, DiscountResponse{
			ID:          d.ID,
			PackageType: d.PackageType,
			Percentage:  d.Percentage,
			ValidUntil:  availability.DateKey(d.ValidUntil),
		})
	}
	return &res, nil
}

func FromItemPage(page queries.Page[*queries.ItemListItem]) (*ItemListResponse, error) {
	items := make([]ItemListItemResponse, 0, len(page.Items))
	if err := copier.Copy(&items, page.Items); err != nil {
		return nil, errs.Wrap(err, "map item page")
	}
	return &ItemListResponse{
		Items:      items,
		NextCursor: nextCursor(page.Next),
	}, nil
}

func nextCursor(c *queries.Cursor) *string {
	if c == nil {
		return nil
	}
	after := c.After
	return &after
}
