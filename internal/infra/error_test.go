//go:build unit

package infra_test

import (
	"testing"

	"travel-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("default kind is DB failure", func(t *testing.T) {
		err := infra.WrapRepoErr("boom", assert.AnError)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("missing", assert.AnError, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unique violation is classified", func(t *testing.T) {
		err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505"})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("foreign key violation is classified", func(t *testing.T) {
		err := infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23503"})
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("nil cause keeps the message", func(t *testing.T) {
		err := infra.WrapRepoErr("expired", nil, infra.KindNotFound)
		assert.Contains(t, err.Error(), "NOT_FOUND: expired")
	})
}
