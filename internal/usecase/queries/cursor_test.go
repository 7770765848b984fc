//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2030, 8, 10, 12, 30, 15, 123456789, time.UTC)
	id := uuid.New()

	gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt), "cursor keeps microsecond precision")
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	enc := func(s string) string { return base64.RawURLEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name   string
		cursor string
	}{
		{"not base64", "%%%"},
		{"missing version", enc("1700000000-" + uuid.NewString())},
		{"unknown version", enc("v9:1700000000:" + uuid.NewString())},
		{"bad timestamp", enc("v1:yesterday:" + uuid.NewString())},
		{"bad id", enc("v1:1700000000:not-a-uuid")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}

func TestNewCursor(t *testing.T) {
	assert.Nil(t, queries.NewCursor(""))
	assert.Equal(t, &queries.Cursor{After: "abc"}, queries.NewCursor("abc"))
}
