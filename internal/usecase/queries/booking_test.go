//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/infra"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingGetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	bookingID := uuid.New()
	view := &queries.BookingView{ID: bookingID, UserID: owner, Status: "confirmed"}

	tests := []struct {
		name      string
		actor     uuid.UUID
		role      user.Role
		storeErr  error
		wantErrIs error
	}{
		{name: "本人は取得できる", actor: owner, role: user.RoleCustomer},
		{name: "オペレーターは他人の予約も取得できる", actor: uuid.New(), role: user.RoleOperator},
		{name: "他の顧客には存在しない扱い", actor: uuid.New(), role: user.RoleCustomer, wantErrIs: queries.ErrBookingNotFound},
		{
			name:      "見つからない",
			actor:     owner,
			role:      user.RoleCustomer,
			storeErr:  infra.WrapRepoErr("find booking", errors.New("no rows"), infra.KindNotFound),
			wantErrIs: queries.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(fakeBookingStore)
			if tt.storeErr != nil {
				store.On("FindByID", ctx, bookingID).Return(nil, tt.storeErr)
			} else {
				store.On("FindByID", ctx, bookingID).Return(view, nil)
			}

			got, err := queries.NewBookingQueries(store).GetByID(ctx, tt.actor, tt.role, bookingID)

			if tt.wantErrIs != nil {
				assert.True(t, errs.Is(err, tt.wantErrIs), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

func TestBookingListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]*queries.BookingListItem, 3)
	for i := range rows {
		rows[i] = &queries.BookingListItem{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Hour)}
	}

	t.Run("次ページがある場合はカーソルを返す", func(t *testing.T) {
		store := new(fakeBookingStore)
		store.On("FindByUserFirstPage", ctx, userID, int32(3)).Return(rows, nil)

		page, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, nil, 2)

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		require.NotNil(t, page.Next)

		at, id, err := queries.DecodeAfterCursor(page.Next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(at))
	})

	t.Run("カーソル指定時はキーセット検索", func(t *testing.T) {
		store := new(fakeBookingStore)
		cursor := queries.NewCursor(queries.EncodeAfterCursor(rows[1].CreatedAt, rows[1].ID))
		store.On("FindByUserKeyset", ctx, userID, mock.MatchedBy(func(at time.Time) bool {
			return at.Equal(rows[1].CreatedAt)
		}), rows[1].ID, int32(queries.DefaultListLimit+1)).Return(rows[2:], nil)

		page, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Nil(t, page.Next)
	})

	t.Run("不正なカーソル", func(t *testing.T) {
		store := new(fakeBookingStore)

		_, err := queries.NewBookingQueries(store).ListByUser(ctx, userID, queries.NewCursor("zzz"), 10)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), "got %v", err)
		store.AssertNotCalled(t, "FindByUserFirstPage", mock.Anything, mock.Anything, mock.Anything)
	})
}
