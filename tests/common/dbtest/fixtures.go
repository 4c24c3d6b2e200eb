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

	"salon-loyalty/internal/domain/profile"
	"salon-loyalty/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func defaultPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPassword(DefaultPassword)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

// CreateTestProfile inserts a profile whose password is DefaultPassword. An
// existing email is reused.
func CreateTestProfile(t *testing.T, db DBLike, email string, role profile.Role) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	err := db.QueryRow(ctx, `
		INSERT INTO profiles (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`,
		id, email, defaultPasswordHash(t), "Test "+role.String(), role.String()).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestSalon inserts a salon for ownerID with the given QR payload.
func CreateTestSalon(t *testing.T, db DBLike, ownerID uuid.UUID, name, qrPayload string, threshold int32) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO salons (id, name, owner_id, qr_code, loyalty_threshold)
		VALUES ($1, $2, $3, $4, $5)`,
		id, name, ownerID, qrPayload, threshold)
	require.NoError(t, err)

	return id
}

// CountRows returns the number of rows in table matching customerID.
func CountRows(t *testing.T, db DBLike, table string, customerID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE customer_id = $1", customerID).Scan(&n)
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
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
