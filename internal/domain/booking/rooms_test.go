//go:build unit

package booking_test

import (
	"testing"

	"travel-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoomLimits(t *testing.T) {
	cases := []struct {
		name     string
		adults   int
		children int
		pt       booking.PackageType
		want     booking.RoomLimits
	}{
		{name: "group 5+1 は最大3室", adults: 5, children: 1, pt: booking.PackageGroup, want: booking.RoomLimits{Min: 1, Max: 3}},
		{name: "group 奇数は切り上げ", adults: 3, children: 0, pt: booking.PackageGroup, want: booking.RoomLimits{Min: 1, Max: 2}},
		{name: "family 2名", adults: 2, children: 0, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 1, Max: 2}},
		{name: "family 3名", adults: 1, children: 2, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 1, Max: 3}},
		{name: "family 大人4名は2室以上", adults: 4, children: 0, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 2, Max: 4}},
		{name: "family 大人2子供2は1室可", adults: 2, children: 2, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 1, Max: 4}},
		{name: "family 5名", adults: 3, children: 2, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 3, Max: 5}},
		{name: "family 6名", adults: 6, children: 0, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 3, Max: 6}},
		{name: "family 7名", adults: 4, children: 3, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 4, Max: 7}},
		{name: "family 8名", adults: 4, children: 4, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 4, Max: 8}},
		{name: "family 1名はフォールバック", adults: 1, children: 0, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 1, Max: 1}},
		{name: "family 9名はフォールバック", adults: 5, children: 4, pt: booking.PackageFamily, want: booking.RoomLimits{Min: 1, Max: 9}},
		{name: "private 大人10名", adults: 10, children: 0, pt: booking.PackagePrivate, want: booking.RoomLimits{Min: 5, Max: 10}},
		{name: "private 大人3名", adults: 3, children: 0, pt: booking.PackagePrivate, want: booking.RoomLimits{Min: 2, Max: 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := booking.GetRoomLimits(c.adults, c.children, c.pt)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestGetRoomLimits_SoloAlwaysSingleRoom(t *testing.T) {
	for adults := 0; adults <= 12; adults++ {
		for children := 0; children <= 6; children++ {
			got, err := booking.GetRoomLimits(adults, children, booking.PackageSolo)
			require.NoError(t, err)
			assert.Equal(t, booking.RoomLimits{Min: 1, Max: 1}, got)
		}
	}
}

func TestGetRoomLimits_Errors(t *testing.T) {
	t.Run("未知のパッケージは既定値とエラー", func(t *testing.T) {
		got, err := booking.GetRoomLimits(3, 1, booking.PackageType("cruise"))
		assert.ErrorIs(t, err, booking.ErrInvalidPackageType)
		assert.Equal(t, booking.RoomLimits{Min: 1, Max: 1}, got)
	})

	t.Run("負の人数はエラー", func(t *testing.T) {
		got, err := booking.GetRoomLimits(-1, 0, booking.PackageFamily)
		assert.ErrorIs(t, err, booking.ErrInvalidBookingInput)
		assert.Equal(t, booking.RoomLimits{Min: 1, Max: 1}, got)
	})
}

func TestRoomLimitsContains(t *testing.T) {
	l := booking.RoomLimits{Min: 2, Max: 4}
	assert.False(t, l.Contains(1))
	assert.True(t, l.Contains(2))
	assert.True(t, l.Contains(4))
	assert.False(t, l.Contains(5))
}
