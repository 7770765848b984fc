//go:build unit || e2e

package builder

import (
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID        uuid.UUID
	Kind      string
	Slug      string
	Name      string
	Location  string
	BasePrice int64
	IsActive  bool
	Discounts []queries.DiscountView
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:        uuid.New(),
		Kind:      "destination",
		Slug:      "kyoto-autumn",
		Name:      "Kyoto in Autumn",
		Location:  "Kyoto",
		BasePrice: 1000,
		IsActive:  true,
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithDiscount(packageType string, percentage int32, validUntil time.Time) *ItemBuilder {
	b.Discounts = append(b.Discounts, queries.DiscountView{
		ID:          uuid.New(),
		PackageType: packageType,
		Percentage:  percentage,
		ValidUntil:  validUntil,
	})
	return b
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	now := time.Now()
	return &queries.ItemView{
		ID:          b.ID,
		Kind:        b.Kind,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Name + " package",
		Location:    b.Location,
		BasePrice:   b.BasePrice,
		IsActive:    b.IsActive,
		Discounts:   b.Discounts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ItemBuilder) BuildListItem() *queries.ItemListItem {
	return &queries.ItemListItem{
		ID:        b.ID,
		Kind:      b.Kind,
		Slug:      b.Slug,
		Name:      b.Name,
		Location:  b.Location,
		BasePrice: b.BasePrice,
		CreatedAt: time.Now(),
	}
}
