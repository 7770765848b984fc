package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/intent"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

type SubmitIntentRequest struct {
	ItemID      uuid.UUID
	PackageType string
	StartDate   time.Time
	EndDate     *time.Time
	Adults      int
	Children    int
	Rooms       int
}

// IntentResult describes where the buyer goes next. ExpiresAt is set only for
// a stored intent waiting for login.
type IntentResult struct {
	ID           uuid.UUID
	Stage        intent.Stage
	ItemID       uuid.UUID
	PackageType  booking.PackageType
	StartDate    time.Time
	EndDate      *time.Time
	Party        booking.Party
	Rooms        int
	Pricing      booking.PricingResult
	DiscountRate float64
	ExpiresAt    *time.Time
}

type IntentCommands interface {
	Submit(ctx context.Context, req SubmitIntentRequest, userID *uuid.UUID) (*IntentResult, error)
	Resume(ctx context.Context, intentID, userID uuid.UUID) (*IntentResult, error)
}

type intentUseCaseImpl struct {
	uow   shared.UnitOfWork
	store IntentStore
	calc  booking.PriceCalculator
	clock clock.Clock
}

func NewIntentUseCase(uow shared.UnitOfWork, store IntentStore, clk clock.Clock) IntentCommands {
	return &intentUseCaseImpl{
		uow:   uow,
		store: store,
		calc:  booking.NewDefaultPriceCalculator(),
		clock: clk,
	}
}

// Submit walks a fresh intent from browsing to submission. Anonymous buyers
// end in the stored stage and get an id to resume with after login.
func (uc *intentUseCaseImpl) Submit(ctx context.Context, req SubmitIntentRequest, userID *uuid.UUID) (*IntentResult, error) {
	pt, err := booking.NewPackageType(req.PackageType)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	reads := uc.uow.CommandReads()

	it, err := loadBookableItem(ctx, reads, req.ItemID)
	if err != nil {
		return nil, err
	}
	rate, _, err := effectiveRate(ctx, reads, req.ItemID, pt, now)
	if err != nil {
		return nil, err
	}
	dates, err := uc.availabilityMap(ctx, req.ItemID, pt, now)
	if err != nil {
		return nil, err
	}

	in := intent.New(req.ItemID, float64(it.BasePrice()), now)
	if err := in.SelectPackage(pt, rate); err != nil {
		return nil, err
	}
	if err := in.OpenDates(dates); err != nil {
		return nil, err
	}

	start := clock.DateOf(req.StartDate)
	var end *time.Time
	if req.EndDate != nil {
		e := clock.DateOf(*req.EndDate)
		end = &e
	}
	if err := in.SelectDate(start, end); err != nil {
		return nil, err
	}

	party := booking.Party{Adults: req.Adults, Children: req.Children}
	if err := in.ComputePricing(party, req.Rooms, uc.calc); err != nil {
		return nil, err
	}
	if err := in.Submit(userID, now); err != nil {
		return nil, err
	}

	result := toIntentResult(in)
	if in.Stage() == intent.StageStoredIntentPendingLogin {
		if err := uc.store.Save(ctx, in.Snapshot()); err != nil {
			return nil, err
		}
		expiresAt := now.Add(uc.store.TTL())
		result.ExpiresAt = &expiresAt
	}
	return result, nil
}

// Resume re-checks the stored date against current availability. A date
// that filled up meanwhile surfaces as availability.ErrStaleAvailability and
// the stored intent is kept until it expires. The stored intent is consumed
// by deleting it; only the caller whose delete removed the key proceeds.
func (uc *intentUseCaseImpl) Resume(ctx context.Context, intentID, userID uuid.UUID) (*IntentResult, error) {
	snap, err := uc.store.Load(ctx, intentID)
	if err != nil {
		return nil, err
	}
	in := intent.Reconstruct(snap)

	now := uc.clock.Now()
	fresh, err := uc.availabilityMap(ctx, in.ItemID(), in.State().PackageType, now)
	if err != nil {
		return nil, err
	}
	if err := in.Resume(userID, fresh, now); err != nil {
		return nil, err
	}

	if err := uc.store.Delete(ctx, intentID); err != nil {
		if errs.Is(err, intent.ErrNotFound) {
			slog.Info("booking intent already resumed", "intent_id", intentID)
		}
		return nil, err
	}
	return toIntentResult(in), nil
}

func (uc *intentUseCaseImpl) availabilityMap(ctx context.Context, itemID uuid.UUID, pt booking.PackageType, now time.Time) (availability.Map, error) {
	rows, err := uc.uow.CommandReads().AvailableDatesFrom(ctx, itemID, clock.DateOf(now))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return availability.BuildMap(rows, &pt), nil
}

func toIntentResult(in *intent.Intent) *IntentResult {
	state := in.State()
	result := &IntentResult{
		ID:           in.ID(),
		Stage:        in.Stage(),
		ItemID:       in.ItemID(),
		PackageType:  state.PackageType,
		EndDate:      in.EndDate(),
		Party:        state.Party,
		Rooms:        state.Rooms,
		DiscountRate: in.DiscountRate(),
	}
	if state.SelectedDate != nil {
		result.StartDate = *state.SelectedDate
	}
	if p := in.Pricing(); p != nil {
		result.Pricing = *p
	}
	return result
}
