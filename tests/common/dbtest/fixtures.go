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

type Hotel struct {
	OwnerID   uuid.UUID
	ProfileID uuid.UUID
	HotelID   uuid.UUID
	RoomID    uuid.UUID
}

// CreateHotelRoom inserts an active hotel provider with one room.
func CreateHotelRoom(t *testing.T, db DBLike, pricePerNight int64, petCapacity, humanCapacity int) Hotel {
	t.Helper()
	ctx := context.Background()

	h := Hotel{
		OwnerID:   uuid.New(),
		ProfileID: uuid.Must(uuid.NewV7()),
		HotelID:   uuid.Must(uuid.NewV7()),
		RoomID:    uuid.Must(uuid.NewV7()),
	}
	_, err := db.Exec(ctx, "INSERT INTO provider_profiles (id, user_id, kind, display_name) VALUES ($1, $2, 'HOTEL', 'Test Hotel Owner')",
		h.ProfileID, h.OwnerID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO hotels (id, provider_profile_id, name, city) VALUES ($1, $2, 'Paws Inn', 'Tokyo')",
		h.HotelID, h.ProfileID)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO rooms (id, hotel_id, name, price_per_night, pet_capacity, human_capacity) VALUES ($1, $2, 'Standard', $3, $4, $5)",
		h.RoomID, h.HotelID, pricePerNight, petCapacity, humanCapacity)
	require.NoError(t, err)
	return h
}

// SeedCalendar inserts available days [from, from+days).
func SeedCalendar(t *testing.T, db DBLike, roomID uuid.UUID, from time.Time, days int) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_calendar_days (room_id, date) SELECT $1, d::date FROM generate_series($2::date, $2::date + ($3::int - 1), interval '1 day') AS d ON CONFLICT DO NOTHING",
		roomID, from, days)
	require.NoError(t, err)
}

func SetPriceOverride(t *testing.T, db DBLike, roomID uuid.UUID, date time.Time, price int64) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE room_calendar_days SET price_override = $3 WHERE room_id = $1 AND date = $2",
		roomID, date, price)
	require.NoError(t, err)
}

type Sitter struct {
	UserID    uuid.UUID
	ProfileID uuid.UUID
	ServiceID uuid.UUID
}

// CreateSitter inserts an active sitter with one service.
func CreateSitter(t *testing.T, db DBLike, servicePrice int64, durationMinutes int) Sitter {
	t.Helper()
	ctx := context.Background()

	s := Sitter{
		UserID:    uuid.New(),
		ProfileID: uuid.Must(uuid.NewV7()),
	}
	_, err := db.Exec(ctx, "INSERT INTO provider_profiles (id, user_id, kind, display_name) VALUES ($1, $2, 'SITTER', 'Test Sitter')",
		s.ProfileID, s.UserID)
	require.NoError(t, err)
	s.ServiceID = CreateSitterService(t, db, s.ProfileID, "Walk", servicePrice, durationMinutes)
	return s
}

func CreateSitterService(t *testing.T, db DBLike, profileID uuid.UUID, name string, price int64, durationMinutes int) uuid.UUID {
	t.Helper()
	id := uuid.Must(uuid.NewV7())
	_, err := db.Exec(context.Background(), "INSERT INTO sitter_services (id, provider_profile_id, name, price, duration_minutes) VALUES ($1, $2, $3, $4, $5)",
		id, profileID, name, price, durationMinutes)
	require.NoError(t, err)
	return id
}

func CreateSitterPackage(t *testing.T, db DBLike, profileID uuid.UUID, name string, price int64, durationMinutes int, serviceIDs ...uuid.UUID) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())
	_, err := db.Exec(ctx, "INSERT INTO sitter_packages (id, provider_profile_id, name, price, duration_minutes) VALUES ($1, $2, $3, $4, $5)",
		id, profileID, name, price, durationMinutes)
	require.NoError(t, err)
	for _, sid := range serviceIDs {
		_, err = db.Exec(ctx, "INSERT INTO sitter_package_services (package_id, service_id) VALUES ($1, $2)", id, sid)
		require.NoError(t, err)
	}
	return id
}

func CreateActiveAddress(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()
	id := uuid.Must(uuid.NewV7())
	_, err := db.Exec(context.Background(), "INSERT INTO client_addresses (id, user_id, label, line1, city, postal_code) VALUES ($1, $2, 'Home', '1-2-3 Shibuya', 'Tokyo', '150-0002')",
		id, userID)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
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
