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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, 'user', true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, strings.Split(email, "@")[0])
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

type DealFixture struct {
	DealID   uuid.UUID
	OptionID uuid.UUID
	Slug     string
}

// CreateTestDeal inserts an active deal with one active option priced at priceCents.
func CreateTestDeal(t *testing.T, db DBLike, slug string, priceCents int64) DealFixture {
	t.Helper()

	ctx := context.Background()
	fx := DealFixture{DealID: uuid.New(), OptionID: uuid.New(), Slug: slug}

	_, err := db.Exec(ctx, `INSERT INTO deals (id, slug, title, category, teaser, list_price_cents, is_active)
		VALUES ($1, $2, $3, 'hotel', 'Test teaser', $4, true)`,
		fx.DealID, slug, "Deal "+slug, priceCents*2)
	require.NoError(t, err)

	_, err = db.Exec(ctx, `INSERT INTO deal_options (id, deal_id, name, price_cents, status)
		VALUES ($1, $2, 'Standard', $3, 'active')`,
		fx.OptionID, fx.DealID, priceCents)
	require.NoError(t, err)

	return fx
}

func SetDealActive(t *testing.T, db DBLike, dealID uuid.UUID, active bool) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE deals SET is_active = $2 WHERE id = $1", dealID, active)
	require.NoError(t, err)
}

func OrderStatus(t *testing.T, db DBLike, orderID uuid.UUID) (status string, totalCents int64) {
	t.Helper()
	err := db.QueryRow(context.Background(),
		"SELECT status, total_cents FROM orders WHERE id = $1", orderID).Scan(&status, &totalCents)
	require.NoError(t, err)
	return status, totalCents
}

func CountOrderEvents(t *testing.T, db DBLike, orderID uuid.UUID, kind string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM order_events WHERE aggregate_id = $1 AND kind = $2", orderID, kind).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every table except the migration bookkeeping
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
