//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/pkg/ptr"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) GetRoomBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomBookingRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetRoomBookingRow), args.Error(1)
}

func (m *MockBookingReadQueries) GetSitterBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSitterBookingRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetSitterBookingRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListSitterBookingAdditionalServices(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.SitterBookingAdditionalServices, error) {
	args := m.Called(ctx, db, bookingID)
	rows, _ := args.Get(0).([]sqlc.SitterBookingAdditionalServices)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListRoomBookingsByClient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByClientParams) ([]sqlc.ListRoomBookingsByClientRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListRoomBookingsByClientRow)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListRoomBookingsByRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomBookingsByRoomsParams) ([]sqlc.ListRoomBookingsByRoomsRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListRoomBookingsByRoomsRow)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListSitterBookingsByClient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSitterBookingsByClientParams) ([]sqlc.ListSitterBookingsByClientRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListSitterBookingsByClientRow)
	return rows, args.Error(1)
}

func (m *MockBookingReadQueries) ListSitterBookingsByProfiles(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSitterBookingsByProfilesParams) ([]sqlc.ListSitterBookingsByProfilesRow, error) {
	args := m.Called(ctx, db, arg)
	rows, _ := args.Get(0).([]sqlc.ListSitterBookingsByProfilesRow)
	return rows, args.Error(1)
}

func TestFindRoomBooking(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)

	row := sqlc.GetRoomBookingRow{
		ID:          id,
		BookingCode: "RB-ABCD2345",
		ClientID:    uuid.New(),
		HotelID:     uuid.New(),
		RoomID:      uuid.New(),
		CheckIn:     pgconv.DateToPgtype(checkIn),
		CheckOut:    pgconv.DateToPgtype(checkIn.AddDate(0, 0, 3)),
		Nights:      3,
		PetCount:    1,
		HumanCount:  2,
		Price:       3000,
		PlatformFee: 5000,
		GrandTotal:  8000,
		Status:      "CANCELLED",
		CancelledBy: pgconv.StringToPgtype("PROVIDER"),
		CancelledAt: pgconv.TimeToPgtype(created.Add(time.Hour)),
		CreatedAt:   pgconv.TimeToPgtype(created),
		UpdatedAt:   pgconv.TimeToPgtype(created.Add(time.Hour)),
		HotelName:   "Paws Inn",
		RoomName:    "Garden Suite",
		OwnerUserID: uuid.New(),
	}

	tests := []struct {
		name      string
		mockRow   sqlc.GetRoomBookingRow
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "found", mockRow: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingReadQueries)
			mockQueries.On("GetRoomBooking", mock.Anything, mock.Anything, id).Return(tt.mockRow, tt.mockError)

			view, err := NewBookingReadStore(mockQueries, nil).FindRoomBooking(context.Background(), id)

			if tt.mockError != nil {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "RB-ABCD2345", view.Code)
			assert.Equal(t, checkIn, view.CheckIn)
			assert.Equal(t, 3, view.Nights)
			assert.Equal(t, 2, view.HumanCount)
			assert.Equal(t, int64(8000), view.GrandTotal)
			assert.Equal(t, ptr.Of("PROVIDER"), view.CancelledBy)
			assert.Nil(t, view.Note)
			assert.Nil(t, view.ConfirmedAt)
			assert.Equal(t, row.OwnerUserID, view.OwnerUserID)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindSitterBooking(t *testing.T) {
	id, serviceID, extraID := uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	row := sqlc.GetSitterBookingRow{
		ID:                      id,
		BookingCode:             "SB-ABCD2345",
		ServiceID:               pgconv.UUIDToPgtype(serviceID),
		StartingTime:            pgconv.TimeToPgtype(start),
		FinishingTime:           pgconv.TimeToPgtype(start.Add(75 * time.Minute)),
		DurationMinutes:         75,
		Status:                  "IN_PROGRESS",
		IsLate:                  true,
		MinutesLate:             pgtype.Int4{Int32: 12, Valid: true},
		CompletionProofUrls:     []string{},
		OfferingName:            "Dog walk",
		OfferingPrice:           2000,
		OfferingDurationMinutes: 60,
	}

	t.Run("maps the booking and its extras", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetSitterBooking", mock.Anything, mock.Anything, id).Return(row, nil)
		mockQueries.On("ListSitterBookingAdditionalServices", mock.Anything, mock.Anything, id).Return([]sqlc.SitterBookingAdditionalServices{
			{BookingID: id, ServiceID: extraID, Name: "Brushing", Price: 500, DurationMinutes: 15},
		}, nil)

		view, err := NewBookingReadStore(mockQueries, nil).FindSitterBooking(context.Background(), id)
		require.NoError(t, err)

		require.NotNil(t, view.ServiceID)
		assert.Equal(t, serviceID, *view.ServiceID)
		assert.Nil(t, view.PackageID)
		assert.Equal(t, 60, view.OfferingDuration)
		assert.Equal(t, []queries.LineItemView{{ServiceID: extraID, Name: "Brushing", Price: 500, DurationMinutes: 15}}, view.AdditionalServices)
		assert.True(t, view.IsLate)
		assert.Equal(t, ptr.Of[int32](12), view.MinutesLate)
		assert.Equal(t, start.Add(75*time.Minute), view.FinishingTime)
	})

	t.Run("extras lookup failure", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetSitterBooking", mock.Anything, mock.Anything, id).Return(row, nil)
		mockQueries.On("ListSitterBookingAdditionalServices", mock.Anything, mock.Anything, id).Return(nil, assert.AnError)

		view, err := NewBookingReadStore(mockQueries, nil).FindSitterBooking(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("not found skips extras", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("GetSitterBooking", mock.Anything, mock.Anything, id).Return(sqlc.GetSitterBookingRow{}, pgx.ErrNoRows)

		_, err := NewBookingReadStore(mockQueries, nil).FindSitterBooking(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "ListSitterBookingAdditionalServices", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListRoomBookingsByClient(t *testing.T) {
	clientID, after := uuid.New(), uuid.New()
	page := queries.BookingPage{Status: ptr.Of("CONFIRMED"), AfterID: &after, Limit: 21}

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListRoomBookingsByClient", mock.Anything, mock.Anything, sqlc.ListRoomBookingsByClientParams{
		ClientID:  clientID,
		Status:    pgconv.StringToPgtype("CONFIRMED"),
		CursorID:  pgconv.UUIDToPgtype(after),
		PageLimit: 21,
	}).Return([]sqlc.ListRoomBookingsByClientRow{
		{ID: uuid.New(), BookingCode: "RB-AAAA2222", ClientID: clientID, Nights: 2, Status: "CONFIRMED", HotelName: "Paws Inn"},
		{ID: uuid.New(), BookingCode: "RB-BBBB3333", ClientID: clientID, Nights: 5, Status: "CONFIRMED", HotelName: "Paws Inn"},
	}, nil)

	items, err := NewBookingReadStore(mockQueries, nil).ListRoomBookingsByClient(context.Background(), clientID, page)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "RB-AAAA2222", items[0].Code)
	assert.Equal(t, 5, items[1].Nights)
	mockQueries.AssertExpectations(t)
}

func TestListSitterBookingsByProfilesError(t *testing.T) {
	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListSitterBookingsByProfiles", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	items, err := NewBookingReadStore(mockQueries, nil).ListSitterBookingsByProfiles(context.Background(), []uuid.UUID{uuid.New()}, queries.BookingPage{Limit: 21})

	assert.Nil(t, items)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
