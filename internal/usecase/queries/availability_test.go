//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityReadStore struct {
	mock.Mock
}

func (m *MockAvailabilityReadStore) FindRoomBase(ctx context.Context, roomID uuid.UUID) (*queries.RoomBase, error) {
	args := m.Called(ctx, roomID)
	room, _ := args.Get(0).(*queries.RoomBase)
	return room, args.Error(1)
}

func (m *MockAvailabilityReadStore) FindCalendarDays(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	args := m.Called(ctx, roomID, dates)
	days, _ := args.Get(0).([]calendar.Day)
	return days, args.Error(1)
}

func (m *MockAvailabilityReadStore) SearchRoomDays(ctx context.Context, dates calendar.DateRange, filter queries.RoomSearchFilter) ([]queries.RoomDayRow, error) {
	args := m.Called(ctx, dates, filter)
	rows, _ := args.Get(0).([]queries.RoomDayRow)
	return rows, args.Error(1)
}

func (m *MockAvailabilityReadStore) FindProviderProfile(ctx context.Context, profileID uuid.UUID) (*provider.Profile, error) {
	args := m.Called(ctx, profileID)
	p, _ := args.Get(0).(*provider.Profile)
	return p, args.Error(1)
}

func (m *MockAvailabilityReadStore) CountActiveOverlaps(ctx context.Context, profileID uuid.UUID, start, end time.Time) (int64, error) {
	args := m.Called(ctx, profileID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func mustRange(t *testing.T, checkIn, checkOut string) calendar.DateRange {
	t.Helper()
	r, err := calendar.ParseDateRange(checkIn, checkOut)
	require.NoError(t, err)
	return r
}

// freeDays returns available days for every night of r.
func freeDays(r calendar.DateRange) []calendar.Day {
	days := make([]calendar.Day, 0, r.Nights())
	for _, d := range r.Dates() {
		days = append(days, calendar.Day{Date: d, IsAvailable: true})
	}
	return days
}

func TestCheckRoom(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	dates := mustRange(t, "2026-03-01", "2026-03-04")
	override := int64(1500)

	tests := []struct {
		name          string
		days          []calendar.Day
		wantAvailable bool
		wantNights    int
		wantPrice     *int64
	}{
		{
			name:          "all nights free, priced with overrides",
			days:          append(freeDays(mustRange(t, "2026-03-01", "2026-03-03")), calendar.Day{Date: dates.Dates()[2], IsAvailable: true, PriceOverride: &override}),
			wantAvailable: true,
			wantNights:    3,
			wantPrice:     ptr(int64(3500)),
		},
		{
			name:          "one night taken",
			days:          []calendar.Day{{Date: dates.Dates()[0], IsAvailable: true}, {Date: dates.Dates()[1]}, {Date: dates.Dates()[2], IsAvailable: true}},
			wantAvailable: false,
			wantNights:    2,
		},
		{
			name:          "calendar not generated",
			days:          nil,
			wantAvailable: false,
			wantNights:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockAvailabilityReadStore)
			store.On("FindRoomBase", ctx, roomID).Return(&queries.RoomBase{ID: roomID, PricePerNight: pricing.Money(1000)}, nil)
			store.On("FindCalendarDays", ctx, roomID, dates).Return(tt.days, nil)

			view, err := queries.NewAvailabilityQueries(store).CheckRoom(ctx, roomID, dates)
			require.NoError(t, err)

			assert.Equal(t, 3, view.TotalNights)
			assert.Equal(t, tt.wantNights, view.AvailableNights)
			assert.Equal(t, tt.wantAvailable, view.IsAvailable)
			assert.Equal(t, tt.wantPrice, view.TotalPrice)
			store.AssertExpectations(t)
		})
	}

	t.Run("unknown room", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		store.On("FindRoomBase", ctx, roomID).Return(nil, infra.NewRepoErr(infra.KindNotFound, "room"))

		_, err := queries.NewAvailabilityQueries(store).CheckRoom(ctx, roomID, dates)

		assert.True(t, errs.Is(err, queries.ErrRoomNotFound))
		store.AssertNotCalled(t, "FindCalendarDays", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSearchRooms(t *testing.T) {
	ctx := context.Background()
	dates := mustRange(t, "2026-03-01", "2026-03-03")
	full, partial, cheap := uuid.New(), uuid.New(), uuid.New()
	override := int64(700)

	row := func(roomID uuid.UUID, name string, day calendar.Day) queries.RoomDayRow {
		return queries.RoomDayRow{
			RoomID:        roomID,
			RoomName:      name,
			HotelName:     "Paws Inn",
			PricePerNight: 1000,
			PetCapacity:   2,
			HumanCapacity: 1,
			Day:           day,
		}
	}
	d0, d1 := dates.Dates()[0], dates.Dates()[1]
	rows := []queries.RoomDayRow{
		row(full, "Full", calendar.Day{Date: d0, IsAvailable: true}),
		row(full, "Full", calendar.Day{Date: d1, IsAvailable: true}),
		row(partial, "Partial", calendar.Day{Date: d0, IsAvailable: true}),
		row(cheap, "Cheap", calendar.Day{Date: d0, IsAvailable: true, PriceOverride: &override}),
		row(cheap, "Cheap", calendar.Day{Date: d1, IsAvailable: true}),
	}

	t.Run("keeps fully available rooms in store order", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		filter := queries.RoomSearchFilter{}
		store.On("SearchRoomDays", ctx, dates, filter).Return(rows, nil)

		views, err := queries.NewAvailabilityQueries(store).SearchRooms(ctx, dates, filter)
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, full, views[0].RoomID)
		assert.Equal(t, int64(2000), views[0].TotalPrice)
		assert.Equal(t, 2, views[0].Nights)
		assert.Equal(t, cheap, views[1].RoomID)
		assert.Equal(t, int64(1700), views[1].TotalPrice)
	})

	t.Run("stops at the limit", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		filter := queries.RoomSearchFilter{Limit: 1}
		store.On("SearchRoomDays", ctx, dates, filter).Return(rows, nil)

		views, err := queries.NewAvailabilityQueries(store).SearchRooms(ctx, dates, filter)
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, full, views[0].RoomID)
	})

	t.Run("no candidates is an empty list", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		store.On("SearchRoomDays", ctx, dates, mock.Anything).Return(nil, nil)

		views, err := queries.NewAvailabilityQueries(store).SearchRooms(ctx, dates, queries.RoomSearchFilter{})
		require.NoError(t, err)

		assert.NotNil(t, views)
		assert.Empty(t, views)
	})
}

func TestCheckSitter(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	sitter := &provider.Profile{ID: profileID, Kind: provider.KindSitter, Status: provider.StatusActive}

	t.Run("free window", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		store.On("FindProviderProfile", ctx, profileID).Return(sitter, nil)
		store.On("CountActiveOverlaps", ctx, profileID, start, end).Return(int64(0), nil)

		view, err := queries.NewAvailabilityQueries(store).CheckSitter(ctx, profileID, start, end)
		require.NoError(t, err)

		assert.True(t, view.IsAvailable)
		assert.Equal(t, int64(0), view.ConflictingCount)
	})

	t.Run("conflicting bookings", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		store.On("FindProviderProfile", ctx, profileID).Return(sitter, nil)
		store.On("CountActiveOverlaps", ctx, profileID, start, end).Return(int64(2), nil)

		view, err := queries.NewAvailabilityQueries(store).CheckSitter(ctx, profileID, start, end)
		require.NoError(t, err)

		assert.False(t, view.IsAvailable)
		assert.Equal(t, int64(2), view.ConflictingCount)
	})

	t.Run("hotel profiles are not sitters", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)
		store.On("FindProviderProfile", ctx, profileID).Return(&provider.Profile{ID: profileID, Kind: provider.KindHotel}, nil)

		_, err := queries.NewAvailabilityQueries(store).CheckSitter(ctx, profileID, start, end)

		assert.True(t, errs.Is(err, queries.ErrProviderNotFound))
	})

	t.Run("empty window", func(t *testing.T) {
		store := new(MockAvailabilityReadStore)

		_, err := queries.NewAvailabilityQueries(store).CheckSitter(ctx, profileID, start, start)

		assert.True(t, errs.Is(err, queries.ErrInvalidWindow))
		store.AssertNotCalled(t, "FindProviderProfile", mock.Anything, mock.Anything)
	})
}

func ptr[T any](v T) *T { return &v }
