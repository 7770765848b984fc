package booking

import (
	"math"
	"time"
)

// RoomFee is the flat per-room charge in currency units.
const RoomFee int64 = 500

// State is the buyer's current selection for one item.
type State struct {
	PackageType    PackageType
	Party          Party
	Rooms          int
	SelectedDate   *time.Time
	AvailableSlots int
}

// ValidateForSubmission checks the composition against the package and the
// rooms against the resolver bounds.
func (s State) ValidateForSubmission() error {
	cfg, err := ConfigFor(s.PackageType)
	if err != nil {
		return err
	}
	if err := cfg.ValidateParty(s.Party); err != nil {
		return err
	}
	limits, err := GetRoomLimits(s.Party.Adults, s.Party.Children, s.PackageType)
	if err != nil {
		return err
	}
	if !limits.Contains(s.Rooms) {
		return ErrRoomsOutOfRange
	}
	return nil
}

// PricingResult holds the rounded breakdown. Discount is for display only,
// Total already reflects it through the per-person price.
type PricingResult struct {
	PricePerPerson int64 `json:"price_per_person"`
	PeopleTotal    int64 `json:"people_total"`
	RoomCost       int64 `json:"room_cost"`
	Subtotal       int64 `json:"subtotal"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
}

type PriceCalculator interface {
	Calculate(state State, basePrice, discountRate float64) (PricingResult, error)
}

type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) Calculate(state State, basePrice, discountRate float64) (PricingResult, error) {
	return CalculatePricingWithRate(state, basePrice, discountRate)
}

// CalculatePricing prices the state using the package's own discount rate.
func CalculatePricing(state State, basePrice float64) (PricingResult, error) {
	cfg, err := ConfigFor(state.PackageType)
	if err != nil {
		return PricingResult{}, err
	}
	return CalculatePricingWithRate(state, basePrice, cfg.DiscountRate)
}

// CalculatePricingWithRate prices the state with an already resolved
// discount rate, e.g. an active item discount that overrides the package rate.
func CalculatePricingWithRate(state State, basePrice, discountRate float64) (PricingResult, error) {
	if !state.PackageType.IsValid() {
		return PricingResult{}, ErrInvalidPackageType
	}
	if err := validatePricingInput(state, basePrice, discountRate); err != nil {
		return PricingResult{}, err
	}

	raw := basePrice * (1 - discountRate)
	peopleTotal := int64(math.Round(raw * state.Party.WeightedPeople()))
	roomCost := int64(state.Rooms) * RoomFee
	subtotal := peopleTotal + roomCost
	discount := int64(math.Round((basePrice - raw) * float64(state.Party.Adults)))

	return PricingResult{
		PricePerPerson: int64(math.Round(raw)),
		PeopleTotal:    peopleTotal,
		RoomCost:       roomCost,
		Subtotal:       subtotal,
		Discount:       discount,
		Total:          subtotal,
	}, nil
}

func validatePricingInput(state State, basePrice, discountRate float64) error {
	switch {
	case math.IsNaN(basePrice) || math.IsInf(basePrice, 0) || basePrice < 0:
		return ErrInvalidBookingInput
	case math.IsNaN(discountRate) || discountRate < 0 || discountRate >= 1:
		return ErrInvalidBookingInput
	case state.Party.Adults < 0 || state.Party.Children < 0:
		return ErrInvalidBookingInput
	case state.Rooms < 1:
		return ErrInvalidBookingInput
	}
	return nil
}
