package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/discount"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

type QuoteRequest struct {
	ItemID      uuid.UUID
	PackageType string
	Adults      int
	Children    int
	Rooms       int
	Date        *time.Time
}

type QuoteResult struct {
	ItemID         uuid.UUID
	PackageType    booking.PackageType
	RoomLimits     booking.RoomLimits
	Pricing        booking.PricingResult
	DiscountRate   float64
	DiscountSource discount.Source
	// Bookable and AvailableSlots are set only when a date was given.
	Bookable       *bool
	AvailableSlots *int
}

type QuoteCommands interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
}

type quoteUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewQuoteUseCase(uow shared.UnitOfWork, clk clock.Clock) QuoteCommands {
	return &quoteUseCaseImpl{uow: uow, clock: clk}
}

func (uc *quoteUseCaseImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	pt, err := booking.NewPackageType(req.PackageType)
	if err != nil {
		return nil, err
	}

	state := booking.State{
		PackageType: pt,
		Party:       booking.Party{Adults: req.Adults, Children: req.Children},
		Rooms:       req.Rooms,
	}

	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	sel, err := priceSelection(ctx, reads, req.ItemID, state, now)
	if err != nil {
		return nil, err
	}

	result := &QuoteResult{
		ItemID:         req.ItemID,
		PackageType:    pt,
		RoomLimits:     sel.limits,
		Pricing:        sel.pricing,
		DiscountRate:   sel.rate,
		DiscountSource: sel.source,
	}

	if req.Date != nil {
		dates, err := reads.AvailableDatesFrom(ctx, req.ItemID, clock.DateOf(now))
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		m := availability.BuildMap(dates, &pt)
		bookable := availability.IsDateBookable(*req.Date, m, now)
		slots, _ := m.Slots(*req.Date)
		result.Bookable = &bookable
		result.AvailableSlots = &slots
	}

	return result, nil
}
