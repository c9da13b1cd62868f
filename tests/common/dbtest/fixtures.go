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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const passwordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const DefaultPassword = "password123"

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can run inside
// a test transaction too.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, password_hash) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, "Test Groomer", email, passwordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestClient(t *testing.T, db DBLike, ownerID uuid.UUID, firstName, lastName string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, owner_id, first_name, last_name, phone) VALUES ($1, $2, $3, $4, $5)",
		clientID, ownerID, firstName, lastName, "555-0100")
	require.NoError(t, err)

	return clientID
}

func CreateTestPet(t *testing.T, db DBLike, ownerID, clientID uuid.UUID, name, species string) uuid.UUID {
	t.Helper()

	petID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO pets (id, owner_id, client_id, name, species) VALUES ($1, $2, $3, $4, $5)",
		petID, ownerID, clientID, name, species)
	require.NoError(t, err)

	return petID
}

// CreateTestAppointment bypasses the conflict check, so callers can build
// whatever schedule a scenario needs.
func CreateTestAppointment(t *testing.T, db DBLike, ownerID, petID uuid.UUID, start time.Time, minutes int, status string) uuid.UUID {
	t.Helper()

	apptID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO appointments (id, owner_id, pet_id, start_at, duration_minutes, status) VALUES ($1, $2, $3, $4, $5, $6)",
		apptID, ownerID, petID, start.UTC(), minutes, status)
	require.NoError(t, err)

	return apptID
}

func CountAppointments(t *testing.T, db DBLike, ownerID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM appointments WHERE owner_id = $1", ownerID).Scan(&n)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
