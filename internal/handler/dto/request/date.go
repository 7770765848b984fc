package request

import (
	"time"

	"travel-booking/internal/domain/availability"
)

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := availability.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
