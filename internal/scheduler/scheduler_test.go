//go:build unit

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/scheduler"
	"travel-booking/internal/usecase/shared"
	schedulermock "travel-booking/tests/mock/scheduler"
	sharedmock "travel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, 8, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	availability  *sharedmock.MockAvailabilityRepository
	publisher     *schedulermock.MockPublisher
	clock         *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		availability:  sharedmock.NewMockAvailabilityRepository(ctrl),
		publisher:     schedulermock.NewMockPublisher(ctrl),
		clock:         clock.NewMockClock(testNow),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().Availability().Return(f.availability).AnyTimes()
	return f
}

var schedulerCfg = config.SchedulerConfig{
	OutboxInterval: 5 * time.Second,
	OutboxBatch:    10,
	MaxAttempts:    3,
	PurgeInterval:  time.Hour,
}

func TestDispatcher_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("送信成功は sent、失敗は再試行か failed", func(t *testing.T) {
		f := newFixture(t)
		ok := shared.NotificationJob{ID: uuid.New(), Topic: "booking.confirmed", Payload: []byte(`{"a":1}`)}
		retry := shared.NotificationJob{ID: uuid.New(), Topic: "booking.confirmed", Payload: []byte(`{"a":2}`), Attempts: 1}
		exhausted := shared.NotificationJob{ID: uuid.New(), Topic: "booking.confirmed", Payload: []byte(`{"a":3}`), Attempts: 2}

		f.publisher.EXPECT().Ready().Return(nil)
		f.notifications.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), int32(10)).
			Return([]shared.NotificationJob{ok, retry, exhausted}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), "booking.confirmed", ok.Payload).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), "booking.confirmed", retry.Payload).Return(assert.AnError)
		f.publisher.EXPECT().Publish(gomock.Any(), "booking.confirmed", exhausted.Payload).Return(assert.AnError)

		f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), ok.ID).Return(nil)
		retryAt := testNow.Add(10 * time.Second)
		f.notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), retry.ID, shared.NotificationStatusQueued, assert.AnError.Error(), &retryAt).Return(nil)
		f.notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), exhausted.ID, shared.NotificationStatusFailed, assert.AnError.Error(), gomock.Nil()).Return(nil)

		d := scheduler.NewDispatcher(f.uow, f.publisher, schedulerCfg, f.clock)
		got, err := d.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, scheduler.DispatchResult{Sent: 1, Retried: 1, Failed: 1}, got)
	})

	t.Run("ブローカー停止中はジョブを取得しない", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.EXPECT().Ready().Return(assert.AnError)

		d := scheduler.NewDispatcher(f.uow, f.publisher, schedulerCfg, f.clock)
		got, err := d.RunOnce(ctx)

		require.NoError(t, err)
		assert.True(t, got.Deferred)
	})

	t.Run("取得エラーは返す", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.EXPECT().Ready().Return(nil)
		f.notifications.EXPECT().ClaimPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		d := scheduler.NewDispatcher(f.uow, f.publisher, schedulerCfg, f.clock)
		_, err := d.RunOnce(ctx)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestPurger_RunOnce(t *testing.T) {
	f := newFixture(t)
	today := time.Date(2030, 8, 1, 0, 0, 0, 0, time.UTC)
	f.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(4), nil)
	f.availability.EXPECT().DeleteBefore(gomock.Any(), gomock.Any(), today).Return(int64(2), nil)

	got, err := scheduler.NewPurger(f.uow, f.clock).RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, scheduler.PurgeResult{IdempotencyKeys: 4, AvailableDates: 2}, got)
}

func TestScheduler_StartStop(t *testing.T) {
	f := newFixture(t)
	f.publisher.EXPECT().Ready().Return(assert.AnError).AnyTimes()
	cfg := schedulerCfg
	cfg.OutboxInterval = 10 * time.Millisecond
	cfg.PurgeInterval = 0

	s := scheduler.NewScheduler(
		scheduler.NewDispatcher(f.uow, f.publisher, cfg, f.clock),
		scheduler.NewPurger(f.uow, f.clock),
		cfg,
	)
	s.Start()
	time.Sleep(30 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}
