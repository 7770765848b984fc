package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBookingCanceled    = errors.New("booking is already canceled")
	ErrCancellationClosed = errors.New("booking can no longer be canceled")
	ErrInvalidStatus      = errors.New("invalid booking status")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCanceled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type Booking struct {
	id           uuid.UUID
	userID       uuid.UUID
	itemID       uuid.UUID
	packageType  PackageType
	party        Party
	rooms        int
	startDate    time.Time
	endDate      time.Time
	pricing      PricingResult
	discountRate float64
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBooking builds a confirmed booking from a server-side price. The pricing
// argument must come from a PriceCalculator, never from client input.
func NewBooking(
	userID, itemID uuid.UUID,
	state State,
	startDate, endDate time.Time,
	pricing PricingResult,
	discountRate float64,
) (*Booking, error) {
	if err := state.ValidateForSubmission(); err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		itemID:       itemID,
		packageType:  state.PackageType,
		party:        state.Party,
		rooms:        state.Rooms,
		startDate:    startDate,
		endDate:      endDate,
		pricing:      pricing,
		discountRate: discountRate,
		status:       StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id, userID, itemID uuid.UUID,
	packageType PackageType,
	party Party,
	rooms int,
	startDate, endDate time.Time,
	pricing PricingResult,
	discountRate float64,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		itemID:       itemID,
		packageType:  packageType,
		party:        party,
		rooms:        rooms,
		startDate:    startDate,
		endDate:      endDate,
		pricing:      pricing,
		discountRate: discountRate,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Cancel is allowed until the day before the start date.
func (b *Booking) Cancel(today time.Time) error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	if !today.Before(b.startDate) {
		return ErrCancellationClosed
	}
	b.status = StatusCanceled
	return nil
}

// Nights is the number of nights between start and end; a same-day trip counts as zero.
func (b *Booking) Nights() int {
	return int(b.endDate.Sub(b.startDate).Hours() / 24)
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) IsActive() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) ItemID() uuid.UUID        { return b.itemID }
func (b *Booking) PackageType() PackageType { return b.packageType }
func (b *Booking) Party() Party             { return b.party }
func (b *Booking) Rooms() int               { return b.rooms }
func (b *Booking) StartDate() time.Time     { return b.startDate }
func (b *Booking) EndDate() time.Time       { return b.endDate }
func (b *Booking) Pricing() PricingResult   { return b.pricing }
func (b *Booking) DiscountRate() float64    { return b.discountRate }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
