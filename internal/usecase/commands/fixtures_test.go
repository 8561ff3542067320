//go:build unit

package commands_test

import (
	"testing"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseNow = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func testBookingConfig() config.BookingConfig {
	cfg := config.NewTestConfig().Booking
	cfg.TimeZone = "UTC"
	return cfg
}

func testFees() staticFees {
	return staticFees{policies: pricing.FeePolicies{
		Room:   pricing.FeePolicy{FlatAmount: int64p(5000)},
		Sitter: pricing.FeePolicy{PercentageBps: int64p(1000)},
	}}
}

func assertErrIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	assert.Truef(t, errs.Is(err, target), "expected %q, got %q", target, err)
}

func clientActor() user.Actor { return user.Actor{ID: uuid.New(), Role: user.RoleClient} }

type hotelFixture struct {
	Owner     user.Actor
	ProfileID uuid.UUID
	RoomID    uuid.UUID
}

// seedHotel adds an active hotel room with calendarDays free days from today.
func seedHotel(db *memDB, pricePerNight int64, calendarDays int) hotelFixture {
	f := hotelFixture{
		Owner:     user.Actor{ID: uuid.New(), Role: user.RoleProvider},
		ProfileID: uuid.New(),
		RoomID:    uuid.New(),
	}
	db.profiles[f.ProfileID] = provider.Profile{
		ID:           f.ProfileID,
		UserID:       f.Owner.ID,
		Kind:         provider.KindHotel,
		Status:       provider.StatusActive,
		Availability: provider.AvailabilityOffService,
	}
	db.rooms[f.RoomID] = shared.RoomSnapshot{
		Room: roombooking.Room{
			ID:                f.RoomID,
			HotelID:           uuid.New(),
			ProviderProfileID: f.ProfileID,
			PricePerNight:     pricing.Money(pricePerNight),
			PetCapacity:       2,
			HumanCapacity:     2,
			Active:            true,
		},
		Name:        "Sunny Room",
		HotelName:   "Paws Inn",
		OwnerUserID: f.Owner.ID,
	}
	if calendarDays > 0 {
		db.addDays(f.RoomID, calendar.Today(baseNow, time.UTC), calendarDays)
	}
	return f
}

type sitterFixture struct {
	Sitter    user.Actor
	ProfileID uuid.UUID
	ServiceID uuid.UUID
	PackageID uuid.UUID
	ExtraID   uuid.UUID
}

// seedSitter adds a sitter with a 60 minute walk (2000), a package including
// the walk (5000, 240 minutes) and a 15 minute extra (500).
func seedSitter(db *memDB) sitterFixture {
	f := sitterFixture{
		Sitter:    user.Actor{ID: uuid.New(), Role: user.RoleProvider},
		ProfileID: uuid.New(),
		ServiceID: uuid.New(),
		PackageID: uuid.New(),
		ExtraID:   uuid.New(),
	}
	db.profiles[f.ProfileID] = provider.Profile{
		ID:           f.ProfileID,
		UserID:       f.Sitter.ID,
		Kind:         provider.KindSitter,
		Status:       provider.StatusActive,
		Availability: provider.AvailabilityOffService,
	}
	db.offerings[f.ServiceID] = sitterbooking.Offering{
		ID:                f.ServiceID,
		Kind:              sitterbooking.OfferingService,
		ProviderProfileID: f.ProfileID,
		Name:              "Dog walk",
		Price:             2000,
		DurationMinutes:   60,
		Active:            true,
	}
	db.offerings[f.PackageID] = sitterbooking.Offering{
		ID:                 f.PackageID,
		Kind:               sitterbooking.OfferingPackage,
		ProviderProfileID:  f.ProfileID,
		Name:               "Full day",
		Price:              5000,
		DurationMinutes:    240,
		Active:             true,
		IncludedServiceIDs: []uuid.UUID{f.ServiceID},
	}
	db.additional[f.ExtraID] = sitterbooking.AdditionalService{
		ID:                f.ExtraID,
		ProviderProfileID: f.ProfileID,
		Name:              "Feeding",
		Price:             500,
		DurationMinutes:   15,
		Active:            true,
	}
	return f
}

func seedAddress(db *memDB, clientID uuid.UUID) {
	db.addresses[clientID] = sitterbooking.Address{ID: uuid.New(), Snapshot: "1-2-3 Shibuya, Tokyo"}
}

func mustRange(t *testing.T, checkIn, checkOut string) calendar.DateRange {
	t.Helper()
	r, err := calendar.ParseDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDate(s)
	require.NoError(t, err)
	return d
}
