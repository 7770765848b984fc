package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

var ErrAvailableDateNotFound = errs.New("available date not found")

// AvailableDateInput is one row of a bulk upsert. A nil AvailableSlots opens
// the date fully.
type AvailableDateInput struct {
	Date           time.Time
	PackageType    string
	TotalSlots     int
	AvailableSlots *int
}

type AvailabilityCommands interface {
	Upsert(ctx context.Context, itemID uuid.UUID, inputs []AvailableDateInput) (int, error)
	Delete(ctx context.Context, itemID uuid.UUID, packageType string, date time.Time) error
}

type availabilityUseCaseImpl struct {
	uow         shared.UnitOfWork
	invalidator AvailabilityInvalidator
	clock       clock.Clock
}

func NewAvailabilityUseCase(uow shared.UnitOfWork, invalidator AvailabilityInvalidator, clk clock.Clock) AvailabilityCommands {
	return &availabilityUseCaseImpl{
		uow:         uow,
		invalidator: invalidator,
		clock:       clk,
	}
}

// Upsert validates every row before writing any of them.
func (uc *availabilityUseCaseImpl) Upsert(ctx context.Context, itemID uuid.UUID, inputs []AvailableDateInput) (int, error) {
	if len(inputs) == 0 {
		return 0, errs.Mark(errs.New("no dates given"), booking.ErrInvalidBookingInput)
	}

	today := clock.Today(uc.clock)
	dates := make([]*availability.AvailableDate, 0, len(inputs))
	for _, in := range inputs {
		pt, err := optionalPackageType(in.PackageType)
		if err != nil {
			return 0, err
		}
		available := in.TotalSlots
		if in.AvailableSlots != nil {
			available = *in.AvailableSlots
		}
		d, err := availability.NewAvailableDate(itemID, pt, in.Date, in.TotalSlots, available, today)
		if err != nil {
			return 0, err
		}
		dates = append(dates, d)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ItemByID(ctx, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrItemNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, d := range dates {
			if err := tx.Availability().Upsert(ctx, tx.DB(), d); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	uc.invalidator.InvalidateItem(ctx, itemID)
	return len(dates), nil
}

func (uc *availabilityUseCaseImpl) Delete(ctx context.Context, itemID uuid.UUID, packageType string, date time.Time) error {
	pt, err := optionalPackageType(packageType)
	if err != nil {
		return err
	}

	var deleted bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		deleted, derr = tx.Availability().Delete(ctx, tx.DB(), itemID, pt, clock.DateOf(date))
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAvailableDateNotFound
	}

	uc.invalidator.InvalidateItem(ctx, itemID)
	return nil
}

// optionalPackageType maps an empty string to the row shared by all packages.
func optionalPackageType(s string) (*booking.PackageType, error) {
	if s == "" {
		return nil, nil
	}
	pt, err := booking.NewPackageType(s)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}
