package intent

import (
	"errors"
	"fmt"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid booking intent transition")
	ErrNotPendingLogin   = fmt.Errorf("%w: intent is not waiting for login", ErrInvalidTransition)
	ErrNotFound          = errors.New("booking intent not found or expired")
)

type Stage string

const (
	StageBrowsing                 Stage = "browsing"
	StageSelectingPackage         Stage = "selecting_package"
	StageSelectingDate            Stage = "selecting_date"
	StageSelectingParty           Stage = "selecting_party"
	StagePricingComputed          Stage = "pricing_computed"
	StageSubmittingIntent         Stage = "submitting_intent"
	StageRedirectToConfirm        Stage = "redirect_to_confirm"
	StageStoredIntentPendingLogin Stage = "stored_intent_pending_login"
)

var transitions = map[Stage][]Stage{
	StageBrowsing:                 {StageSelectingPackage},
	StageSelectingPackage:         {StageSelectingDate},
	StageSelectingDate:            {StageSelectingParty, StageSelectingPackage},
	StageSelectingParty:           {StagePricingComputed, StageSelectingDate},
	StagePricingComputed:          {StageSubmittingIntent, StageSelectingParty, StageSelectingDate},
	StageSubmittingIntent:         {StageRedirectToConfirm, StageStoredIntentPendingLogin},
	StageStoredIntentPendingLogin: {StageRedirectToConfirm},
}

func (s Stage) CanTransitionTo(next Stage) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Intent walks a buyer from browsing an item to either the confirm page or a
// stored intent that resumes after login.
type Intent struct {
	id           uuid.UUID
	itemID       uuid.UUID
	stage        Stage
	state        booking.State
	endDate      *time.Time
	dates        availability.Map
	basePrice    float64
	discountRate float64
	pricing      *booking.PricingResult
	userID       *uuid.UUID
	createdAt    time.Time
}

func New(itemID uuid.UUID, basePrice float64, now time.Time) *Intent {
	return &Intent{
		id:        uuid.New(),
		itemID:    itemID,
		stage:     StageBrowsing,
		basePrice: basePrice,
		createdAt: now,
	}
}

func (i *Intent) moveTo(next Stage) error {
	if !i.stage.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.stage, next)
	}
	i.stage = next
	return nil
}

// SelectPackage also records the discount rate that applies to the package.
func (i *Intent) SelectPackage(pt booking.PackageType, discountRate float64) error {
	if !pt.IsValid() {
		return booking.ErrInvalidPackageType
	}
	if err := i.moveTo(StageSelectingPackage); err != nil {
		return err
	}
	i.state.PackageType = pt
	i.discountRate = discountRate
	return nil
}

// OpenDates enters date selection with a snapshot of the item's calendar.
func (i *Intent) OpenDates(dates availability.Map) error {
	if len(dates) == 0 {
		return availability.ErrNoAvailableDates
	}
	if err := i.moveTo(StageSelectingDate); err != nil {
		return err
	}
	i.dates = dates
	return nil
}

func (i *Intent) SelectDate(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return booking.ErrInvalidDateRange
	}
	if err := i.moveTo(StageSelectingParty); err != nil {
		return err
	}
	slots, _ := i.dates.Slots(start)
	i.state.SelectedDate = &start
	i.state.AvailableSlots = slots
	i.endDate = end
	return nil
}

func (i *Intent) ComputePricing(party booking.Party, rooms int, calc booking.PriceCalculator) error {
	candidate := i.state
	candidate.Party = party
	candidate.Rooms = rooms
	if err := candidate.ValidateForSubmission(); err != nil {
		return err
	}

	pricing, err := calc.Calculate(candidate, i.basePrice, i.discountRate)
	if err != nil {
		return err
	}
	if err := i.moveTo(StagePricingComputed); err != nil {
		return err
	}
	i.state = candidate
	i.pricing = &pricing
	return nil
}

// Submit checks the selected date against the snapshot at submission time.
// A nil userID parks the intent until the buyer logs in.
func (i *Intent) Submit(userID *uuid.UUID, now time.Time) error {
	if i.stage != StagePricingComputed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.stage, StageSubmittingIntent)
	}
	if i.state.SelectedDate == nil || !availability.IsDateBookable(*i.state.SelectedDate, i.dates, now) {
		return availability.ErrDateUnavailable
	}
	if err := i.moveTo(StageSubmittingIntent); err != nil {
		return err
	}
	if userID == nil {
		return i.moveTo(StageStoredIntentPendingLogin)
	}
	i.userID = userID
	return i.moveTo(StageRedirectToConfirm)
}

// Resume continues a stored intent after login. The date is checked again
// against a fresh snapshot since it may have filled up in the meantime.
func (i *Intent) Resume(userID uuid.UUID, fresh availability.Map, now time.Time) error {
	if i.stage != StageStoredIntentPendingLogin {
		return ErrNotPendingLogin
	}
	if i.state.SelectedDate == nil || !availability.IsDateBookable(*i.state.SelectedDate, fresh, now) {
		return availability.ErrStaleAvailability
	}
	slots, _ := fresh.Slots(*i.state.SelectedDate)
	i.dates = fresh
	i.state.AvailableSlots = slots
	i.userID = &userID
	return i.moveTo(StageRedirectToConfirm)
}

func (i *Intent) ID() uuid.UUID                   { return i.id }
func (i *Intent) ItemID() uuid.UUID               { return i.itemID }
func (i *Intent) Stage() Stage                    { return i.stage }
func (i *Intent) State() booking.State            { return i.state }
func (i *Intent) EndDate() *time.Time             { return i.endDate }
func (i *Intent) BasePrice() float64              { return i.basePrice }
func (i *Intent) DiscountRate() float64           { return i.discountRate }
func (i *Intent) Pricing() *booking.PricingResult { return i.pricing }
func (i *Intent) UserID() *uuid.UUID              { return i.userID }
func (i *Intent) CreatedAt() time.Time            { return i.createdAt }
