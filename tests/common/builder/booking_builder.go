//go:build unit || e2e

package builder

import (
	"time"

	reqdto "travel-booking/internal/handler/dto/request"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ItemID      uuid.UUID
	UserID      uuid.UUID
	PackageType string
	StartDate   time.Time
	EndDate     time.Time
	Adults      int
	Children    int
	Rooms       int
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2030, 8, 10, 0, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ItemID:      uuid.New(),
		UserID:      uuid.New(),
		PackageType: "family",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 2),
		Adults:      2,
		Children:    1,
		Rooms:       1,
		Status:      "confirmed",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	end := b.EndDate.Format("2006-01-02")
	return reqdto.CreateBookingRequest{
		ItemID:      b.ItemID,
		PackageType: b.PackageType,
		StartDate:   b.StartDate.Format("2006-01-02"),
		EndDate:     &end,
		Adults:      b.Adults,
		Children:    b.Children,
		Rooms:       b.Rooms,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	now := time.Now()
	return &queries.BookingView{
		ID:             uuid.New(),
		UserID:         b.UserID,
		UserEmail:      "test@example.com",
		ItemID:         b.ItemID,
		ItemName:       "Kyoto in Autumn",
		ItemSlug:       "kyoto-autumn",
		PackageType:    b.PackageType,
		Adults:         int32(b.Adults),
		Children:       int32(b.Children),
		Rooms:          int32(b.Rooms),
		StartDate:      b.StartDate,
		EndDate:        b.EndDate,
		PricePerPerson: 1000,
		PeopleTotal:    3000,
		Subtotal:       3000,
		Total:          3000,
		Status:         b.Status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:          uuid.New(),
		ItemID:      b.ItemID,
		ItemName:    "Kyoto in Autumn",
		PackageType: b.PackageType,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Total:       3000,
		Status:      b.Status,
		CreatedAt:   time.Now(),
	}
}
