package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"
	"travel-booking/internal/usecase/shared"
)

const bookingEndpoint = "POST /api/bookings"

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
	ErrTooManyNights   = fmt.Errorf("%w: stay is longer than allowed", booking.ErrInvalidBookingInput)
)

// CreateBookingRequest carries no price. The total is always recomputed.
type CreateBookingRequest struct {
	ItemID      uuid.UUID `json:"item_id"`
	PackageType string    `json:"package_type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Rooms       int       `json:"rooms"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	// Create books one slot. A nil idempotency key disables replay protection.
	Create(ctx context.Context, req CreateBookingRequest, userID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error
}

type bookingUseCaseImpl struct {
	uow         shared.UnitOfWork
	bookings    queries.BookingReadStore
	invalidator AvailabilityInvalidator
	cfg         config.BookingConfig
	clock       clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookings queries.BookingReadStore,
	invalidator AvailabilityInvalidator,
	cfg config.BookingConfig,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:         uow,
		bookings:    bookings,
		invalidator: invalidator,
		cfg:         cfg,
		clock:       clk,
	}
}

func (uc *bookingUseCaseImpl) Create(
	ctx context.Context,
	req CreateBookingRequest,
	userID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateBookingResult, error) {
	now := uc.clock.Now()

	state, start, end, err := uc.validateRequest(req, now)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(req)

	var (
		bookingID  uuid.UUID
		isReplayed bool
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// reset per attempt since the transaction may be retried
		isReplayed = false

		if idempotencyKey != nil {
			replayID, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, userID, requestHash, now)
			if err != nil {
				return err
			}
			if replayID != nil {
				bookingID = *replayID
				isReplayed = true
				return nil
			}
		}

		id, err := uc.reserve(ctx, tx, req.ItemID, userID, state, start, end, now)
		if err != nil {
			return err
		}
		bookingID = id

		if idempotencyKey != nil {
			if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), *idempotencyKey, userID, calculateIDHash(id), id); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !isReplayed {
		uc.invalidator.InvalidateItem(ctx, req.ItemID)
	}

	// Read-after-write: the joined view carries item and user details
	view, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateBookingResult{
		Booking:    view,
		IsReplayed: isReplayed,
	}, nil
}

func (uc *bookingUseCaseImpl) validateRequest(req CreateBookingRequest, now time.Time) (booking.State, time.Time, time.Time, error) {
	pt, err := booking.NewPackageType(req.PackageType)
	if err != nil {
		return booking.State{}, time.Time{}, time.Time{}, err
	}

	start := clock.DateOf(req.StartDate)
	end := clock.DateOf(req.EndDate)
	if end.Before(start) {
		return booking.State{}, time.Time{}, time.Time{}, booking.ErrInvalidDateRange
	}
	if uc.cfg.MaxNights > 0 && int(end.Sub(start).Hours()/24) > uc.cfg.MaxNights {
		return booking.State{}, time.Time{}, time.Time{}, ErrTooManyNights
	}
	if start.Before(clock.DateOf(now)) {
		return booking.State{}, time.Time{}, time.Time{}, availability.ErrDateUnavailable
	}

	state := booking.State{
		PackageType:  pt,
		Party:        booking.Party{Adults: req.Adults, Children: req.Children},
		Rooms:        req.Rooms,
		SelectedDate: &start,
	}
	if err := state.ValidateForSubmission(); err != nil {
		return booking.State{}, time.Time{}, time.Time{}, err
	}
	return state, start, end, nil
}

// claimIdempotencyKey returns the booking of an earlier identical request, or
// nil when this request owns the key and should proceed.
func (uc *bookingUseCaseImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(uc.cfg.IdempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, bookingEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}

	if existing.IsExpired(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if claimed {
			return nil, nil
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	if existing.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyMismatch
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed request missing result booking ID"), errs.ErrIdempotencyCheckFailed)
		}
		return existing.ResultBookingID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Mark(errs.Newf("invalid idempotency key status %q", existing.Status), errs.ErrIdempotencyCheckFailed)
	}
}

// reserve prices the selection against stored data, takes the slot under a
// row lock and writes the booking and its notification job.
func (uc *bookingUseCaseImpl) reserve(
	ctx context.Context,
	tx shared.Tx,
	itemID, userID uuid.UUID,
	state booking.State,
	start, end time.Time,
	now time.Time,
) (uuid.UUID, error) {
	sel, err := priceSelection(ctx, tx.Reads(), itemID, state, now)
	if err != nil {
		return uuid.Nil, err
	}

	slot, err := lockSlot(ctx, tx, itemID, state.PackageType, start)
	if err != nil {
		return uuid.Nil, err
	}
	if err := slot.Reserve(); err != nil {
		return uuid.Nil, err
	}

	entity, err := booking.NewBooking(userID, itemID, sel.state, start, end, sel.pricing, sel.rate)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := tx.Bookings().Create(ctx, tx.DB(), entity, slot.PackageType())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Availability().Decrement(ctx, tx.DB(), itemID, slot.PackageType(), start); err != nil {
		return uuid.Nil, err
	}

	if err := uc.enqueueConfirmation(ctx, tx, id, userID, entity, now); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

// lockSlot locks the package-specific row for the date and falls back to the
// row shared by all packages. No row at all means the date is gone.
func lockSlot(ctx context.Context, tx shared.Tx, itemID uuid.UUID, pt booking.PackageType, date time.Time) (*availability.AvailableDate, error) {
	slot, err := tx.Availability().LockDate(ctx, tx.DB(), itemID, &pt, date)
	if err == nil {
		return slot, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slot, err = tx.Availability().LockDate(ctx, tx.DB(), itemID, nil, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, availability.ErrStaleAvailability
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return slot, nil
}

func (uc *bookingUseCaseImpl) enqueueConfirmation(
	ctx context.Context,
	tx shared.Tx,
	bookingID, userID uuid.UUID,
	b *booking.Booking,
	now time.Time,
) error {
	payload, err := json.Marshal(BookingConfirmedEvent{
		BookingID:   bookingID,
		UserID:      userID,
		ItemID:      b.ItemID(),
		PackageType: b.PackageType().String(),
		StartDate:   availability.DateKey(b.StartDate()),
		EndDate:     availability.DateKey(b.EndDate()),
		Adults:      b.Party().Adults,
		Children:    b.Party().Children,
		Rooms:       b.Rooms(),
		Total:       b.Pricing().Total,
		ConfirmedAt: now.UTC(),
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, tx.DB(), NotificationKindBookingConfirmed, TopicBookingConfirmed, payload, now)
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) error {
	today := clock.Today(uc.clock)

	var itemID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, slot, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !b.IsOwnedBy(actorID) && !actorRole.AtLeast(user.RoleOperator) {
			return errs.Mark(ErrBookingAccess, ErrBookingNotFound)
		}

		if err := b.Cancel(today); err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), b.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Availability().Increment(ctx, tx.DB(), b.ItemID(), slot, b.StartDate()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		itemID = b.ItemID()
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("booking canceled", "booking_id", bookingID, "actor_id", actorID)
	uc.invalidator.InvalidateItem(ctx, itemID)
	return nil
}

func calculateRequestHash(req CreateBookingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
