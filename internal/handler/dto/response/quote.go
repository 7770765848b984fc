package response

import (
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	ItemID         uuid.UUID             `json:"item_id"`
	PackageType    string                `json:"package_type"`
	RoomLimits     booking.RoomLimits    `json:"room_limits"`
	Pricing        booking.PricingResult `json:"pricing"`
	DiscountRate   float64               `json:"discount_rate"`
	DiscountSource string                `json:"discount_source,omitempty"`
	Bookable       *bool                 `json:"bookable,omitempty"`
	AvailableSlots *int                  `json:"available_slots,omitempty"`
}

func FromQuoteResult(r *commands.QuoteResult) *QuoteResponse {
	return &QuoteResponse{
		ItemID:         r.ItemID,
		PackageType:    r.PackageType.String(),
		RoomLimits:     r.RoomLimits,
		Pricing:        r.Pricing,
		DiscountRate:   r.DiscountRate,
		DiscountSource: string(r.DiscountSource),
		Bookable:       r.Bookable,
		AvailableSlots: r.AvailableSlots,
	}
}
