//go:build unit

package booking_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageConfigInvariants(t *testing.T) {
	for _, pt := range booking.AllPackageTypes() {
		cfg, err := booking.ConfigFor(pt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cfg.DiscountRate, 0.0, pt)
		assert.Less(t, cfg.DiscountRate, 1.0, pt)
		assert.LessOrEqual(t, cfg.MinAdults, cfg.MaxAdults, pt)
	}

	_, err := booking.NewPackageType("luxury")
	assert.ErrorIs(t, err, booking.ErrInvalidPackageType)
}

func TestValidateForSubmission(t *testing.T) {
	cases := []struct {
		name  string
		state booking.State
		errIs error
	}{
		{name: "family 大人2名1室OK", state: state(booking.PackageFamily, 2, 0, 1)},
		{name: "group 大人2名1室OK", state: state(booking.PackageGroup, 2, 0, 1)},
		{name: "空のパーティNG", state: state(booking.PackageFamily, 0, 0, 1), errIs: booking.ErrEmptyParty},
		{name: "solo 大人2名NG", state: state(booking.PackageSolo, 2, 0, 1), errIs: booking.ErrPartyComposition},
		{name: "private 子供NG", state: state(booking.PackagePrivate, 2, 1, 1), errIs: booking.ErrPartyComposition},
		{name: "group 大人1名NG", state: state(booking.PackageGroup, 1, 1, 1), errIs: booking.ErrPartyComposition},
		{name: "family 大人4名1室NG", state: state(booking.PackageFamily, 4, 0, 1), errIs: booking.ErrRoomsOutOfRange},
		{name: "private 大人10名4室NG", state: state(booking.PackagePrivate, 10, 0, 4), errIs: booking.ErrRoomsOutOfRange},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.state.ValidateForSubmission()
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, c.errIs)
			assert.ErrorIs(t, err, booking.ErrInvalidBookingInput)
		})
	}
}

func TestBooking(t *testing.T) {
	start := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	s := state(booking.PackageFamily, 2, 1, 1)
	pricing, err := booking.CalculatePricing(s, 1000)
	require.NoError(t, err)

	t.Run("作成は確定状態", func(t *testing.T) {
		b, err := booking.NewBooking(uuid.New(), uuid.New(), s, start, end, pricing, 0.1)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, 3, b.Nights())
		assert.Equal(t, pricing, b.Pricing())
	})

	t.Run("終了日が開始日より前はNG", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), uuid.New(), s, start, start.AddDate(0, 0, -1), pricing, 0.1)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
		assert.ErrorIs(t, err, booking.ErrInvalidBookingInput)
	})

	t.Run("キャンセル", func(t *testing.T) {
		b, err := booking.NewBooking(uuid.New(), uuid.New(), s, start, end, pricing, 0.1)
		require.NoError(t, err)

		require.NoError(t, b.Cancel(start.AddDate(0, 0, -1)))
		assert.Equal(t, booking.StatusCanceled, b.Status())
		assert.ErrorIs(t, b.Cancel(start.AddDate(0, 0, -1)), booking.ErrBookingCanceled)
	})

	t.Run("開始日当日はキャンセル不可", func(t *testing.T) {
		b, err := booking.NewBooking(uuid.New(), uuid.New(), s, start, end, pricing, 0.1)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Cancel(start), booking.ErrCancellationClosed)
	})
}
