//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/usecase/shared"
	sharedmock "travel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

var (
	testNow  = time.Date(2030, 8, 1, 9, 0, 0, 0, time.UTC)
	tripDate = time.Date(2030, 8, 10, 0, 0, 0, 0, time.UTC)
)

// txFixture wires a mocked unit of work whose Within runs the callback
// against mocked repositories.
type txFixture struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	bookings      *sharedmock.MockBookingRepository
	availability  *sharedmock.MockAvailabilityRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	clock         *clock.MockClock
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &txFixture{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		availability:  sharedmock.NewMockAvailabilityRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		clock:         clock.NewMockClock(testNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Availability().Return(f.availability).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	return f
}

func activeItem(basePrice int64) *item.Item {
	return item.ReconstructItem(
		uuid.New(), item.KindDestination, "kyoto-temple-walk", "Kyoto Temple Walk",
		"", "Kyoto", basePrice, true, testNow, testNow,
	)
}

func inactiveItem() *item.Item {
	return item.ReconstructItem(
		uuid.New(), item.KindActivity, "closed-tour", "Closed Tour",
		"", "Osaka", 1000, false, testNow, testNow,
	)
}

func openDate(itemID uuid.UUID, pt *booking.PackageType, date time.Time, slots int) *availability.AvailableDate {
	return availability.ReconstructAvailableDate(itemID, pt, date, slots, 10)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

var (
	partyOfTwo  = booking.Party{Adults: 2}
	bookingCalc = booking.NewDefaultPriceCalculator()
)

func ptr[T any](v T) *T { return &v }
