package queries

import (
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/pkg/errs"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Page is one keyset page. Next is nil on the last page.
type Page[T any] struct {
	Items []T
	Next  *Cursor
}

// paginate trims the limit+1 probe row and derives the next cursor from the
// last row kept.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) Page[T] {
	if len(rows) <= limit {
		return Page[T]{Items: rows}
	}
	rows = rows[:limit]
	createdAt, id := key(rows[limit-1])
	return Page[T]{
		Items: rows,
		Next:  &Cursor{After: EncodeAfterCursor(createdAt, id)},
	}
}
