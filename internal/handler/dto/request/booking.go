package request

import (
	"travel-booking/internal/domain/availability"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest is decoded strictly; a client-supplied price or total
// is rejected as an unknown field.
type CreateBookingRequest struct {
	ItemID      uuid.UUID `json:"item_id" binding:"required"`
	PackageType string    `json:"package_type" binding:"required"`
	StartDate   string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     *string   `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Adults      int       `json:"adults" binding:"min=0"`
	Children    int       `json:"children" binding:"min=0"`
	Rooms       int       `json:"rooms" binding:"min=0"`
}

// ToCommand defaults a missing end date to the start date.
func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	start, err := availability.ParseDate(r.StartDate)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	end, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}
	if end == nil {
		end = &start
	}

	return commands.CreateBookingRequest{
		ItemID:      r.ItemID,
		PackageType: r.PackageType,
		StartDate:   start,
		EndDate:     *end,
		Adults:      r.Adults,
		Children:    r.Children,
		Rooms:       r.Rooms,
	}, nil
}
