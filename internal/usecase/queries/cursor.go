package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"travel-booking/internal/pkg/errs"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = "v1"
)

// Cursor is an opaque keyset position over (created_at, id), newest first.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// NewCursor returns nil for an empty token so the first page is requested.
func NewCursor(after string) *Cursor {
	if after == "" {
		return nil
	}
	return &Cursor{After: after}
}

// EncodeAfterCursor keeps microseconds, matching timestamptz precision.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + ":" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, errs.Newf("unsupported cursor %q", raw)
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}

	return time.UnixMicro(micros).UTC(), id, nil
}

func decodeCursor(c *Cursor) (time.Time, uuid.UUID, bool, error) {
	if c == nil || c.After == "" {
		return time.Time{}, uuid.Nil, false, nil
	}
	t, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return time.Time{}, uuid.Nil, false, errs.Mark(err, ErrInvalidCursor)
	}
	return t, id, true, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
