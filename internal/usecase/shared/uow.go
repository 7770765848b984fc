package shared

import (
	"context"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/discount"
	"travel-booking/internal/domain/item"
	"travel-booking/internal/domain/user"
	sqlc "travel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Availability() AvailabilityRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads returns domain entities for validation and pricing inside
// commands. Missing rows surface as repository errors of KindNotFound.
type CommandReads interface {
	ItemByID(ctx context.Context, id uuid.UUID) (*item.Item, error)
	ActiveDiscounts(ctx context.Context, itemID uuid.UUID, today time.Time) ([]*discount.Discount, error)
	AvailableDatesFrom(ctx context.Context, itemID uuid.UUID, from time.Time) ([]*availability.AvailableDate, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, slot *booking.PackageType) (uuid.UUID, error)
	// LockByID returns the booking together with the availability row variant it consumed.
	LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, *booking.PackageType, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status booking.Status) error
}

type AvailabilityRepository interface {
	LockDate(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) (*availability.AvailableDate, error)
	Decrement(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) error
	Increment(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) error
	Upsert(ctx context.Context, tx sqlc.DBTX, date *availability.AvailableDate) error
	Delete(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID, pt *booking.PackageType, date time.Time) (bool, error)
	DeleteBefore(ctx context.Context, tx sqlc.DBTX, date time.Time) (int64, error)
}

type IdempotencyRepository interface {
	// TryInsert reports whether the key was newly claimed by this request.
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, resultHash string, bookingID uuid.UUID) error
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, requestHash string, expiresAt time.Time) (bool, error)
	DeleteExpired(ctx context.Context, tx sqlc.DBTX) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status string, lastError string, retryAt *time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
