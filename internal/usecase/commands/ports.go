package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/domain/intent"
)

const (
	NotificationKindBookingConfirmed = "booking_confirmed"
	TopicBookingConfirmed            = "booking.confirmed"
)

// IntentStore parks submitted intents of anonymous buyers until they log in.
type IntentStore interface {
	TTL() time.Duration
	Save(ctx context.Context, snap intent.Snapshot) error
	Load(ctx context.Context, id uuid.UUID) (intent.Snapshot, error)
	// Delete returns intent.ErrNotFound when the key was already gone, which
	// makes it usable as a single-use claim.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityInvalidator drops cached availability snapshots of an item.
// It is called only after the write that changed slot counts has committed.
type AvailabilityInvalidator interface {
	InvalidateItem(ctx context.Context, itemID uuid.UUID)
}

// BookingConfirmedEvent is the payload of the booking.confirmed notification.
type BookingConfirmedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	ItemID      uuid.UUID `json:"item_id"`
	PackageType string    `json:"package_type"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Adults      int       `json:"adults"`
	Children    int       `json:"children"`
	Rooms       int       `json:"rooms"`
	Total       int64     `json:"total"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
