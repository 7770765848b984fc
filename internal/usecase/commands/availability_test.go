//go:build unit

package commands_test

import (
	"context"
	"testing"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/usecase/commands"
	commandsmock "travel-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUpsertAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("全行を書き込みキャッシュを破棄する", func(t *testing.T) {
		f := newTxFixture(t)
		inv := commandsmock.NewMockAvailabilityInvalidator(f.ctrl)
		it := activeItem(1000)
		f.reads.EXPECT().ItemByID(gomock.Any(), it.ID()).Return(it, nil)

		var written []*availability.AvailableDate
		f.availability.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, d *availability.AvailableDate) error {
				written = append(written, d)
				return nil
			}).Times(2)
		inv.EXPECT().InvalidateItem(gomock.Any(), it.ID())

		n, err := commands.NewAvailabilityUseCase(f.uow, inv, f.clock).Upsert(ctx, it.ID(), []commands.AvailableDateInput{
			{Date: tripDate, TotalSlots: 10},
			{Date: tripDate, PackageType: "family", TotalSlots: 4, AvailableSlots: ptr(2)},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		require.Len(t, written, 2)
		assert.Nil(t, written[0].PackageType())
		assert.Equal(t, 10, written[0].AvailableSlots())
		assert.Equal(t, booking.PackageFamily, *written[1].PackageType())
		assert.Equal(t, 2, written[1].AvailableSlots())
	})

	t.Run("不正な行があれば何も書かない", func(t *testing.T) {
		cases := []struct {
			name  string
			input commands.AvailableDateInput
			want  error
		}{
			{"過去日", commands.AvailableDateInput{Date: testNow.AddDate(0, 0, -1), TotalSlots: 1}, availability.ErrDateInPast},
			{"残数が総数超過", commands.AvailableDateInput{Date: tripDate, TotalSlots: 1, AvailableSlots: ptr(2)}, availability.ErrInvalidSlots},
			{"不正なパッケージ", commands.AvailableDateInput{Date: tripDate, PackageType: "vip", TotalSlots: 1}, booking.ErrInvalidPackageType},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newTxFixture(t)
				inv := commandsmock.NewMockAvailabilityInvalidator(f.ctrl)

				_, err := commands.NewAvailabilityUseCase(f.uow, inv, f.clock).Upsert(ctx, uuid.New(), []commands.AvailableDateInput{
					{Date: tripDate, TotalSlots: 3},
					tc.input,
				})

				assert.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("存在しないアイテム", func(t *testing.T) {
		f := newTxFixture(t)
		inv := commandsmock.NewMockAvailabilityInvalidator(f.ctrl)
		id := uuid.New()
		f.reads.EXPECT().ItemByID(gomock.Any(), id).Return(nil, notFound("item not found"))

		_, err := commands.NewAvailabilityUseCase(f.uow, inv, f.clock).Upsert(ctx, id, []commands.AvailableDateInput{
			{Date: tripDate, TotalSlots: 3},
		})

		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})
}

func TestDeleteAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("削除してキャッシュを破棄する", func(t *testing.T) {
		f := newTxFixture(t)
		inv := commandsmock.NewMockAvailabilityInvalidator(f.ctrl)
		itemID := uuid.New()
		f.availability.EXPECT().Delete(gomock.Any(), gomock.Any(), itemID, gomock.Nil(), tripDate).Return(true, nil)
		inv.EXPECT().InvalidateItem(gomock.Any(), itemID)

		err := commands.NewAvailabilityUseCase(f.uow, inv, f.clock).Delete(ctx, itemID, "", tripDate)

		require.NoError(t, err)
	})

	t.Run("該当行なし", func(t *testing.T) {
		f := newTxFixture(t)
		inv := commandsmock.NewMockAvailabilityInvalidator(f.ctrl)
		itemID := uuid.New()
		f.availability.EXPECT().Delete(gomock.Any(), gomock.Any(), itemID, gomock.Any(), tripDate).Return(false, nil)

		err := commands.NewAvailabilityUseCase(f.uow, inv, f.clock).Delete(ctx, itemID, "solo", tripDate)

		assert.ErrorIs(t, err, commands.ErrAvailableDateNotFound)
	})
}
