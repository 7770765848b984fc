package response

import (
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type IntentResponse struct {
	ID           uuid.UUID             `json:"id"`
	Stage        string                `json:"stage"`
	ItemID       uuid.UUID             `json:"item_id"`
	PackageType  string                `json:"package_type"`
	StartDate    string                `json:"start_date"`
	EndDate      *string               `json:"end_date,omitempty"`
	Adults       int                   `json:"adults"`
	Children     int                   `json:"children"`
	Rooms        int                   `json:"rooms"`
	Pricing      booking.PricingResult `json:"pricing"`
	DiscountRate float64               `json:"discount_rate"`
	ExpiresAt    *time.Time            `json:"expires_at,omitempty"`
}

func FromIntentResult(r *commands.IntentResult) *IntentResponse {
	res := &IntentResponse{
		ID:           r.ID,
		Stage:        string(r.Stage),
		ItemID:       r.ItemID,
		PackageType:  r.PackageType.String(),
		StartDate:    availability.DateKey(r.StartDate),
		Adults:       r.Party.Adults,
		Children:     r.Party.Children,
		Rooms:        r.Rooms,
		Pricing:      r.Pricing,
		DiscountRate: r.DiscountRate,
		ExpiresAt:    r.ExpiresAt,
	}
	if r.EndDate != nil {
		end := availability.DateKey(*r.EndDate)
		res.EndDate = &end
	}
	return res
}
