package request

import (
	"travel-booking/internal/domain/availability"
	"travel-booking/internal/usecase/commands"
)

type AvailableDateItem struct {
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	PackageType    string `json:"package_type"`
	TotalSlots     int    `json:"total_slots" binding:"min=0"`
	AvailableSlots *int   `json:"available_slots" binding:"omitempty,min=0"`
}

// UpsertAvailabilityRequest is a bare JSON array of dates.
type UpsertAvailabilityRequest []AvailableDateItem

func (r UpsertAvailabilityRequest) ToInputs() ([]commands.AvailableDateInput, error) {
	inputs := make([]commands.AvailableDateInput, 0, len(r))
	for _, d := range r {
		date, err := availability.ParseDate(d.Date)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, commands.AvailableDateInput{
			Date:           date,
			PackageType:    d.PackageType,
			TotalSlots:     d.TotalSlots,
			AvailableSlots: d.AvailableSlots,
		})
	}
	return inputs, nil
}

type AvailabilityQuery struct {
	PackageType string `form:"packageType"`
}
