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

	"gocery/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestUserPassword is the raw password every fixture user is created with.
const TestUserPassword = "password123"

var (
	testHashOnce sync.Once
	testHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		h, err := password.HashPassword(TestUserPassword)
		require.NoError(t, err)
		testHash = h
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64, discountPercent int32, stock int32) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	var categoryID uuid.UUID
	err := db.QueryRow(ctx, "SELECT id FROM categories WHERE name = 'Pantry' LIMIT 1").Scan(&categoryID)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO products (id, name, price_cents, discount_percent, stock, category_id, kind) VALUES ($1, $2, $3, $4, $5, $6, 'standard')",
		productID, name, priceCents, discountPercent, stock, categoryID)
	require.NoError(t, err)

	return productID
}

func CreateTestCoupon(t *testing.T, db DBLike, code string, discountPercentage int32, expiresAt *time.Time, active bool) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO coupons (id, code, discount_percentage, expires_at, is_active) VALUES ($1, $2, $3, $4, $5)",
		couponID, code, discountPercentage, expiresAt, active)
	require.NoError(t, err)

	return couponID
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name) VALUES
		    (gen_random_uuid(), 'Pantry'),
		    (gen_random_uuid(), 'Produce')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
			var tbl string
			if err := rows.Scan(&tbl); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, tbl)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
