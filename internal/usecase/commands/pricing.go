package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/discount"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

var ErrItemNotFound = errs.New("item not found")

// pricedSelection is a validated selection priced with the discount in effect today.
type pricedSelection struct {
	item      *item.Item
	state     booking.State
	limits    booking.RoomLimits
	rate      float64
	source    discount.Source
	pricing   booking.PricingResult
	basePrice float64
}

// priceSelection validates the party and room count against the package and
// recomputes the price from stored data. Client-side totals never enter here.
func priceSelection(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID, state booking.State, now time.Time) (*pricedSelection, error) {
	if !state.PackageType.IsValid() {
		return nil, booking.ErrInvalidPackageType
	}

	it, err := loadBookableItem(ctx, reads, itemID)
	if err != nil {
		return nil, err
	}

	if err := state.ValidateForSubmission(); err != nil {
		return nil, err
	}
	limits, err := booking.GetRoomLimits(state.Party.Adults, state.Party.Children, state.PackageType)
	if err != nil {
		return nil, err
	}

	rate, source, err := effectiveRate(ctx, reads, itemID, state.PackageType, now)
	if err != nil {
		return nil, err
	}

	basePrice := float64(it.BasePrice())
	pricing, err := booking.CalculatePricingWithRate(state, basePrice, rate)
	if err != nil {
		return nil, err
	}

	return &pricedSelection{
		item:      it,
		state:     state,
		limits:    limits,
		rate:      rate,
		source:    source,
		pricing:   pricing,
		basePrice: basePrice,
	}, nil
}

func loadBookableItem(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID) (*item.Item, error) {
	it, err := reads.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := it.EnsureBookable(); err != nil {
		return nil, err
	}
	return it, nil
}

func effectiveRate(ctx context.Context, reads shared.CommandReads, itemID uuid.UUID, pt booking.PackageType, now time.Time) (float64, discount.Source, error) {
	discounts, err := reads.ActiveDiscounts(ctx, itemID, clock.DateOf(now))
	if err != nil {
		return 0, "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return discount.EffectiveRate(pt, discounts, now)
}
