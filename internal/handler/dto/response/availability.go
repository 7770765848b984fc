package response

import (
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ItemID uuid.UUID                   `json:"item_id"`
	Dates  []queries.AvailableDateView `json:"dates"`
}

type UpsertAvailabilityResponse struct {
	Upserted int `json:"upserted"`
}
