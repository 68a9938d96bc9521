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

func CreateTestClient(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO clients (id, email, role, enabled) VALUES ($1, $2, $3, true) ON CONFLICT (email) DO NOTHING",
		clientID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM clients WHERE email = $1", email).Scan(&clientID)
	}

	return clientID
}

func CreateDisabledClient(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO clients (id, email, role, enabled) VALUES ($1, $2, 'client', false)",
		clientID, email)
	require.NoError(t, err)

	return clientID
}

func CreateTestParking(t *testing.T, db DBLike, address, strategy string) uuid.UUID {
	t.Helper()

	parkingID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO parkings (id, address, strategy) VALUES ($1, $2, $3) ON CONFLICT (address) DO NOTHING",
		parkingID, address, strategy)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM parkings WHERE address = $1", address).Scan(&parkingID)
	}

	return parkingID
}

func CreateTestSector(t *testing.T, db DBLike, parkingID uuid.UUID, name, sectorType string, maxPlaces, occupiedPlaces, weight int) uuid.UUID {
	t.Helper()

	sectorID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO sectors (id, parking_id, name, type, max_places, occupied_places, weight, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, true)`,
		sectorID, parkingID, name, sectorType, maxPlaces, occupiedPlaces, weight)
	require.NoError(t, err)

	return sectorID
}

func CreateTestReservation(t *testing.T, db DBLike, clientID, sectorID uuid.UUID, begin, end time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO reservations (id, client_id, sector_id, begin_time, end_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reservationID, clientID, sectorID, begin, end, status)
	require.NoError(t, err)

	return reservationID
}

func SectorOccupancy(t *testing.T, db DBLike, sectorID uuid.UUID) int {
	t.Helper()

	var occupied int
	err := db.QueryRow(context.Background(),
		"SELECT occupied_places FROM sectors WHERE id = $1", sectorID).Scan(&occupied)
	require.NoError(t, err)

	return occupied
}

func SectorActive(t *testing.T, db DBLike, sectorID uuid.UUID) bool {
	t.Helper()

	var active bool
	err := db.QueryRow(context.Background(),
		"SELECT active FROM sectors WHERE id = $1", sectorID).Scan(&active)
	require.NoError(t, err)

	return active
}

func ReservationStatus(t *testing.T, db DBLike, reservationID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM reservations WHERE id = $1", reservationID).Scan(&status)
	require.NoError(t, err)

	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from a clean slate
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

	return nil
}
