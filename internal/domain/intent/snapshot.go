package intent

import (
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

// Snapshot is the stored form of a parked intent.
type Snapshot struct {
	ID             uuid.UUID              `json:"id"`
	ItemID         uuid.UUID              `json:"item_id"`
	Stage          Stage                  `json:"stage"`
	PackageType    booking.PackageType    `json:"package_type"`
	Adults         int                    `json:"adults"`
	Children       int                    `json:"children"`
	Rooms          int                    `json:"rooms"`
	SelectedDate   *time.Time             `json:"selected_date,omitempty"`
	EndDate        *time.Time             `json:"end_date,omitempty"`
	AvailableSlots int                    `json:"available_slots"`
	Dates          availability.Map       `json:"dates"`
	BasePrice      float64                `json:"base_price"`
	DiscountRate   float64                `json:"discount_rate"`
	Pricing        *booking.PricingResult `json:"pricing,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (i *Intent) Snapshot() Snapshot {
	return Snapshot{
		ID:             i.id,
		ItemID:         i.itemID,
		Stage:          i.stage,
		PackageType:    i.state.PackageType,
		Adults:         i.state.Party.Adults,
		Children:       i.state.Party.Children,
		Rooms:          i.state.Rooms,
		SelectedDate:   i.state.SelectedDate,
		EndDate:        i.endDate,
		AvailableSlots: i.state.AvailableSlots,
		Dates:          i.dates,
		BasePrice:      i.basePrice,
		DiscountRate:   i.discountRate,
		Pricing:        i.pricing,
		CreatedAt:      i.createdAt,
	}
}

func Reconstruct(s Snapshot) *Intent {
	return &Intent{
		id:     s.ID,
		itemID: s.ItemID,
		stage:  s.Stage,
		state: booking.State{
			PackageType:    s.PackageType,
			Party:          booking.Party{Adults: s.Adults, Children: s.Children},
			Rooms:          s.Rooms,
			SelectedDate:   s.SelectedDate,
			AvailableSlots: s.AvailableSlots,
		},
		endDate:      s.EndDate,
		dates:        s.Dates,
		basePrice:    s.BasePrice,
		discountRate: s.DiscountRate,
		pricing:      s.Pricing,
		createdAt:    s.CreatedAt,
	}
}
