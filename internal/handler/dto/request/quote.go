package request

import (
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	ItemID      uuid.UUID `json:"item_id" binding:"required"`
	PackageType string    `json:"package_type" binding:"required"`
	Adults      int       `json:"adults" binding:"min=0"`
	Children    int       `json:"children" binding:"min=0"`
	Rooms       int       `json:"rooms" binding:"min=0"`
	Date        *string   `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

func (r QuoteRequest) ToCommand() (commands.QuoteRequest, error) {
	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return commands.QuoteRequest{}, err
	}
	return commands.QuoteRequest{
		ItemID:      r.ItemID,
		PackageType: r.PackageType,
		Adults:      r.Adults,
		Children:    r.Children,
		Rooms:       r.Rooms,
		Date:        date,
	}, nil
}
