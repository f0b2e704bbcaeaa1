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

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, display_name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type PropertyFixture struct {
	OwnerID          uuid.UUID
	Title            string
	PricePerDayCents int64
	Bedrooms         *int
	MinStayDays      *int
	MaxStayDays      *int
	MaxGuests        *int
	Status           string
}

func CreateTestProperty(t *testing.T, db DBLike, p PropertyFixture) uuid.UUID {
	t.Helper()

	if p.Title == "" {
		p.Title = "Test Cottage"
	}
	if p.Status == "" {
		p.Status = "Available"
	}

	propertyID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO properties (id, owner_id, title, price_per_day_cents, bedrooms, min_stay_days, max_stay_days, max_guests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		propertyID, p.OwnerID, p.Title, p.PricePerDayCents, p.Bedrooms, p.MinStayDays, p.MaxStayDays, p.MaxGuests, p.Status)
	require.NoError(t, err)

	return propertyID
}

// SeedReferenceData has nothing to insert yet; every suite creates its own
// users and properties.
func SeedReferenceData(_ *pgxpool.Pool) error {
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

	return SeedReferenceData(pool)
}
