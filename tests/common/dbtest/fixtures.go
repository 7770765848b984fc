//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// password123
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

func CreateTestItem(t *testing.T, db DBLike, slug string, basePrice int64) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO items (id, kind, slug, name, location, base_price) VALUES ($1, 'destination', $2, $3, 'Kyoto', $4)",
		itemID, slug, slug, basePrice)
	require.NoError(t, err)

	return itemID
}

// CreateAvailableDate inserts a slot row; an empty packageType makes it shared.
func CreateAvailableDate(t *testing.T, db DBLike, itemID uuid.UUID, packageType string, date time.Time, available, total int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO available_dates (item_id, package_type, date, available_slots, total_slots) VALUES ($1, $2, $3, $4, $5)",
		itemID, packageType, date, available, total)
	require.NoError(t, err)
}

func AvailableSlots(t *testing.T, db DBLike, itemID uuid.UUID, packageType string, date time.Time) int {
	t.Helper()

	var slots int
	err := db.QueryRow(context.Background(),
		"SELECT available_slots FROM available_dates WHERE item_id = $1 AND package_type = $2 AND date = $3",
		itemID, packageType, date).Scan(&slots)
	require.NoError(t, err)

	return slots
}

func CreateDiscount(t *testing.T, db DBLike, itemID uuid.UUID, packageType string, percentage int, validUntil time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO item_discounts (item_id, package_type, percentage, valid_until) VALUES ($1, $2, $3, $4)",
		itemID, packageType, percentage, validUntil)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
