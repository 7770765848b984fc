//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/discount"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("パッケージ割引で計算する", func(t *testing.T) {
		f := newTxFixture(t)
		it := activeItem(1000)
		f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil)
		f.reads.EXPECT().ActiveDiscounts(gomock.Any(), it.ID(), gomock.Any()).Return(nil, nil)

		uc := commands.NewQuoteUseCase(f.uow, f.clock)
		got, err := uc.Quote(ctx, commands.QuoteRequest{
			ItemID: it.ID(), PackageType: "family", Adults: 2, Rooms: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, booking.RoomLimits{Min: 1, Max: 2}, got.RoomLimits)
		assert.Equal(t, int64(2300), got.Pricing.Total)
		assert.Equal(t, discount.SourcePackage, got.DiscountSource)
		assert.Nil(t, got.Bookable)
	})

	t.Run("バリアント割引がパッケージ割引より優先される", func(t *testing.T) {
		f := newTxFixture(t)
		it := activeItem(1000)
		family := booking.PackageFamily
		d, err := discount.NewDiscount(uuid.New(), it.ID(), &family, 20, tripDate)
		require.NoError(t, err)
		f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil)
		f.reads.EXPECT().ActiveDiscounts(gomock.Any(), it.ID(), gomock.Any()).Return([]*discount.Discount{d}, nil)

		uc := commands.NewQuoteUseCase(f.uow, f.clock)
		got, err := uc.Quote(ctx, commands.QuoteRequest{
			ItemID: it.ID(), PackageType: "family", Adults: 2, Rooms: 1,
		})

		require.NoError(t, err)
		assert.Equal(t, discount.SourceVariant, got.DiscountSource)
		assert.InDelta(t, 0.20, got.DiscountRate, 1e-9)
		assert.Equal(t, int64(2100), got.Pricing.Total)
	})

	t.Run("日付指定時は予約可否を返す", func(t *testing.T) {
		f := newTxFixture(t)
		it := activeItem(2000)
		f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil)
		f.reads.EXPECT().ActiveDiscounts(gomock.Any(), it.ID(), gomock.Any()).Return(nil, nil)
		f.reads.EXPECT().AvailableDatesFrom(gomock.Any(), it.ID(), gomock.Any()).
			Return([]*availability.AvailableDate{openDate(it.ID(), nil, tripDate, 3)}, nil)

		uc := commands.NewQuoteUseCase(f.uow, f.clock)
		got, err := uc.Quote(ctx, commands.QuoteRequest{
			ItemID: it.ID(), PackageType: "solo", Adults: 1, Rooms: 1, Date: ptr(tripDate),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2500), got.Pricing.Total)
		require.NotNil(t, got.Bookable)
		assert.True(t, *got.Bookable)
		assert.Equal(t, 3, *got.AvailableSlots)
	})

	t.Run("入力エラー", func(t *testing.T) {
		cases := []struct {
			name string
			req  commands.QuoteRequest
			want error
		}{
			{"不正なパッケージ", commands.QuoteRequest{PackageType: "vip", Adults: 1, Rooms: 1}, booking.ErrInvalidPackageType},
			{"ソロに子供", commands.QuoteRequest{PackageType: "solo", Adults: 1, Children: 1, Rooms: 1}, booking.ErrPartyComposition},
			{"部屋数が範囲外", commands.QuoteRequest{PackageType: "private", Adults: 10, Rooms: 2}, booking.ErrRoomsOutOfRange},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newTxFixture(t)
				it := activeItem(1000)
				tc.req.ItemID = it.ID()
				f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil).AnyTimes()

				uc := commands.NewQuoteUseCase(f.uow, f.clock)
				_, err := uc.Quote(ctx, tc.req)

				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("存在しないアイテム", func(t *testing.T) {
		f := newTxFixture(t)
		id := uuid.New()
		f.reads.EXPECT().ItemByID(gomock.Any(), id).Return(nil, notFound("item not found"))

		uc := commands.NewQuoteUseCase(f.uow, f.clock)
		_, err := uc.Quote(ctx, commands.QuoteRequest{ItemID: id, PackageType: "solo", Adults: 1, Rooms: 1})

		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("非公開アイテム", func(t *testing.T) {
		f := newTxFixture(t)
		it := inactiveItem()
		f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil)

		uc := commands.NewQuoteUseCase(f.uow, f.clock)
		_, err := uc.Quote(ctx, commands.QuoteRequest{ItemID: it.ID(), PackageType: "solo", Adults: 1, Rooms: 1})

		assert.ErrorIs(t, err, item.ErrItemInactive)
	})
}
