//go:build unit

package availability_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 6, 15, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateBookable(t *testing.T) {
	m := availability.Map{
		"2030-06-14": 10,
		"2030-06-15": 3,
		"2030-06-16": 0,
		"2030-06-20": 1,
	}

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "過去日は枠があってもNG", date: day(2030, 6, 14), want: false},
		{name: "当日は予約可", date: day(2030, 6, 15), want: true},
		{name: "残枠0はNG", date: day(2030, 6, 16), want: false},
		{name: "未登録日はNG", date: day(2030, 6, 17), want: false},
		{name: "未来日OK", date: day(2030, 6, 20), want: true},
		{name: "時刻付きでも日単位で判定", date: time.Date(2030, 6, 20, 23, 59, 0, 0, time.UTC), want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, availability.IsDateBookable(c.date, m, now))
		})
	}

	t.Run("過去日は常にNG", func(t *testing.T) {
		for i := 1; i <= 365; i++ {
			past := now.AddDate(0, 0, -i)
			big := availability.Map{availability.DateKey(past): 1000}
			assert.False(t, availability.IsDateBookable(past, big, now))
		}
	})

	t.Run("Check はエラーを返す", func(t *testing.T) {
		assert.ErrorIs(t, m.Check(day(2030, 6, 16), now), availability.ErrDateUnavailable)
		assert.NoError(t, m.Check(day(2030, 6, 20), now))
	})
}

func TestAvailableDate(t *testing.T) {
	itemID := uuid.New()
	family := booking.PackageFamily

	t.Run("作成", func(t *testing.T) {
		d, err := availability.NewAvailableDate(itemID, &family, day(2030, 7, 1), 10, 10, now)
		require.NoError(t, err)
		assert.Equal(t, 10, d.AvailableSlots())
		assert.Equal(t, family, *d.PackageType())
	})

	t.Run("残枠が総枠を超えるとNG", func(t *testing.T) {
		_, err := availability.NewAvailableDate(itemID, nil, day(2030, 7, 1), 5, 6, now)
		assert.ErrorIs(t, err, availability.ErrInvalidSlots)
	})

	t.Run("過去日NG", func(t *testing.T) {
		_, err := availability.NewAvailableDate(itemID, nil, day(2030, 6, 1), 5, 5, now)
		assert.ErrorIs(t, err, availability.ErrDateInPast)
	})

	t.Run("未知のパッケージNG", func(t *testing.T) {
		pt := booking.PackageType("cruise")
		_, err := availability.NewAvailableDate(itemID, &pt, day(2030, 7, 1), 5, 5, now)
		assert.ErrorIs(t, err, booking.ErrInvalidPackageType)
	})

	t.Run("確保と解放", func(t *testing.T) {
		d := availability.ReconstructAvailableDate(itemID, nil, day(2030, 7, 1), 1, 2)
		require.NoError(t, d.Reserve())
		assert.Equal(t, 0, d.AvailableSlots())
		assert.ErrorIs(t, d.Reserve(), availability.ErrStaleAvailability)

		d.Release()
		d.Release()
		d.Release()
		assert.Equal(t, 2, d.AvailableSlots())
	})
}

func TestBuildMap(t *testing.T) {
	itemID := uuid.New()
	family := booking.PackageFamily
	group := booking.PackageGroup
	rows := []*availability.AvailableDate{
		availability.ReconstructAvailableDate(itemID, &family, day(2030, 7, 1), 2, 5),
		availability.ReconstructAvailableDate(itemID, nil, day(2030, 7, 1), 9, 9),
		availability.ReconstructAvailableDate(itemID, nil, day(2030, 7, 2), 4, 9),
		availability.ReconstructAvailableDate(itemID, &group, day(2030, 7, 3), 7, 9),
	}

	t.Run("パッケージ指定の行を優先", func(t *testing.T) {
		m := availability.BuildMap(rows, &family)
		assert.Equal(t, availability.Map{"2030-07-01": 2, "2030-07-02": 4}, m)
	})

	t.Run("指定なしは共通行のみ", func(t *testing.T) {
		m := availability.BuildMap(rows, nil)
		assert.Equal(t, availability.Map{"2030-07-01": 9, "2030-07-02": 4}, m)
	})
}

func TestResolve(t *testing.T) {
	itemID := uuid.New()
	family := booking.PackageFamily
	rows := []*availability.AvailableDate{
		availability.ReconstructAvailableDate(itemID, nil, day(2030, 7, 3), 1, 3),
		availability.ReconstructAvailableDate(itemID, nil, day(2030, 7, 1), 9, 9),
		availability.ReconstructAvailableDate(itemID, &family, day(2030, 7, 1), 2, 5),
	}

	got := availability.Resolve(rows, &family)

	require.Len(t, got, 2)
	assert.Equal(t, day(2030, 7, 1), got[0].Date())
	require.NotNil(t, got[0].PackageType())
	assert.Equal(t, booking.PackageFamily, *got[0].PackageType())
	assert.Equal(t, 5, got[0].TotalSlots())
	assert.Equal(t, day(2030, 7, 3), got[1].Date())
	assert.Nil(t, got[1].PackageType())
}
