//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/user"
	resdto "petstay-backend/internal/handler/dto/response"
	"petstay-backend/internal/handler/middleware"
	"petstay-backend/tests/common/dbtest"
	"petstay-backend/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoomBookingSuite struct {
	SharedSuite
}

func TestRoomBookingSuite(t *testing.T) {
	suite.Run(t, new(RoomBookingSuite))
}

// today is the booking calendar's current date.
func (s *RoomBookingSuite) today() time.Time {
	loc, err := time.LoadLocation(s.Config.Booking.TimeZone)
	s.Require().NoError(err)
	return calendar.Today(time.Now(), loc)
}

func day(t time.Time) string { return t.Format(calendar.DateLayout) }

type roomFixture struct {
	hotel       dbtest.Hotel
	clientID    uuid.UUID
	clientToken string
	ownerToken  string
}

func (s *RoomBookingSuite) seedRoom(price int64) roomFixture {
	t := s.T()
	hotel := dbtest.CreateHotelRoom(t, s.DB, price, 2, 2)
	dbtest.SeedCalendar(t, s.DB, hotel.RoomID, s.today(), 60)
	clientID := uuid.New()
	return roomFixture{
		hotel:       hotel,
		clientID:    clientID,
		clientToken: s.JWT.GenerateToken(t, clientID, user.RoleClient),
		ownerToken:  s.JWT.GenerateToken(t, hotel.OwnerID, user.RoleProvider),
	}
}

func (s *RoomBookingSuite) create(token string, key uuid.UUID, body map[string]any) (int, resdto.RoomBookingResultResponse, string) {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/room-bookings", body, token,
		map[string]string{middleware.HeaderIdempotencyKey: key.String()})
	var res resdto.RoomBookingResultResponse
	if w.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), w, w.Code, &res)
	}
	return w.Code, res, w.Header().Get(middleware.HeaderIdempotentReplay)
}

func (s *RoomBookingSuite) lockedDays(roomID uuid.UUID) int {
	return dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM room_calendar_days WHERE room_id = $1 AND NOT is_available", roomID)
}

func (s *RoomBookingSuite) TestRoomBookingLifecycle() {
	s.Run("create, confirm, check in, check out", func() {
		f := s.seedRoom(1000)
		checkIn := s.today().AddDate(0, 0, 10)
		dbtest.SetPriceOverride(s.T(), s.DB, f.hotel.RoomID, checkIn.AddDate(0, 0, 1), 1800)

		status, res, _ := s.create(f.clientToken, uuid.New(), map[string]any{
			"room_id":     f.hotel.RoomID,
			"check_in":    day(checkIn),
			"check_out":   day(checkIn.AddDate(0, 0, 3)),
			"pet_count":   1,
			"human_count": 1,
		})
		s.Require().Equal(http.StatusCreated, status)
		b := res.Booking
		s.Equal("PENDING", b.Status)
		s.Equal(3, b.Nights)
		s.Equal(int64(3800), b.Price)
		s.Equal(int64(5000), b.PlatformFee)
		s.Equal(int64(8800), res.PriceBreakdown.GrandTotal)
		s.Regexp(`^RB-[A-Z0-9]{8}$`, b.Code)
		s.Equal(3, s.lockedDays(f.hotel.RoomID))

		for _, step := range []struct{ path, want string }{
			{"confirm", "CONFIRMED"},
			{"check-in", "CHECKED_IN"},
			{"check-out", "CHECKED_OUT"},
		} {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/room-bookings/%s/%s", b.ID, step.path), nil, f.ownerToken)
			var got resdto.RoomBookingResultResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
			s.Equal(step.want, got.Booking.Status)
			s.Equal(b.PlatformFee, got.Booking.PlatformFee, step.path)
			s.Equal(b.GrandTotal, got.Booking.GrandTotal, step.path)
			s.Equal(res.PriceBreakdown, got.PriceBreakdown, step.path)
		}

		var stored int64
		s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT grand_total FROM room_bookings WHERE id = $1", b.ID).Scan(&stored))
		s.Equal(int64(8800), stored)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room-bookings/"+b.ID.String()+"/cancel", nil, f.clientToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'payment.charge_requested'"))
		s.Equal(4, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM notification_jobs WHERE topic LIKE 'booking.room.%'"))
	})

	s.Run("client cancel frees the nights", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 5)
		body := map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1}

		status, res, _ := s.create(f.clientToken, uuid.New(), body)
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room-bookings/"+res.Booking.ID.String()+"/cancel", nil, f.clientToken)
		var got resdto.RoomBookingResultResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		s.Equal("CANCELLED", got.Booking.Status)
		s.Require().NotNil(got.Booking.CancelledBy)
		s.Equal("CLIENT", *got.Booking.CancelledBy)
		s.Equal(res.PriceBreakdown, got.PriceBreakdown, "cancel keeps the price")
		s.Zero(s.lockedDays(f.hotel.RoomID))

		status, _, _ = s.create(f.clientToken, uuid.New(), body)
		s.Equal(http.StatusCreated, status, "the same range can be booked again")
	})

	s.Run("strangers cannot see or act on a booking", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 5)
		_, res, _ := s.create(f.clientToken, uuid.New(), map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 1)), "pet_count": 1})
		stranger := s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleProvider)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/room-bookings/"+res.Booking.ID.String(), nil, stranger)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "FORBIDDEN")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room-bookings/"+res.Booking.ID.String()+"/confirm", nil, stranger)
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *RoomBookingSuite) TestIdempotentCreate() {
	s.Run("same key replays the first booking", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 7)
		key := uuid.New()
		body := map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1}

		status, first, replayed := s.create(f.clientToken, key, body)
		s.Require().Equal(http.StatusCreated, status)
		s.Empty(replayed)

		status, second, replayed := s.create(f.clientToken, key, body)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("true", replayed)
		s.Equal(first.Booking.ID, second.Booking.ID)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM room_bookings"))
	})

	s.Run("same key with a different body is rejected", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 7)
		key := uuid.New()

		status, _, _ := s.create(f.clientToken, key, map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1})
		s.Require().Equal(http.StatusCreated, status)

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/room-bookings",
			map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 3)), "pet_count": 1},
			f.clientToken, map[string]string{middleware.HeaderIdempotencyKey: key.String()})
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "CONFLICT")
	})

	s.Run("missing key", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 7)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/room-bookings",
			map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1}, f.clientToken)
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "VALIDATION")
	})
}

func (s *RoomBookingSuite) TestConcurrentCreateSameRange() {
	s.Run("exactly one of the racing clients wins", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 14)
		body := map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 3)), "pet_count": 1}

		const racers = 10
		statuses := make([]int, racers)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range racers {
			token := s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleClient)
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				statuses[i], _, _ = s.create(token, uuid.New(), body)
			}()
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, st := range statuses {
			switch st {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		s.Equal(1, created)
		s.Equal(racers-1, conflicts)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM room_bookings WHERE room_id = $1", f.hotel.RoomID))
		s.Equal(3, s.lockedDays(f.hotel.RoomID))
	})

	s.Run("overlapping ranges from opposite ends", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 20)
		a := map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 3)), "pet_count": 1}
		b := map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in.AddDate(0, 0, 2)), "check_out": day(in.AddDate(0, 0, 5)), "pet_count": 1}
		tokens := []string{
			s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleClient),
			s.JWT.GenerateToken(s.T(), uuid.New(), user.RoleClient),
		}

		var wg sync.WaitGroup
		statuses := make([]int, 2)
		for i, body := range []map[string]any{a, b} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				statuses[i], _, _ = s.create(tokens[i], uuid.New(), body)
			}()
		}
		wg.Wait()

		s.ElementsMatch([]int{http.StatusCreated, http.StatusConflict}, statuses)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM room_bookings WHERE room_id = $1", f.hotel.RoomID))
	})
}

func (s *RoomBookingSuite) TestAvailability() {
	s.Run("check reflects a pending booking", func() {
		f := s.seedRoom(1200)
		in := s.today().AddDate(0, 0, 3)
		path := fmt.Sprintf("/api/rooms/%s/availability?check_in=%s&check_out=%s", f.hotel.RoomID, day(in), day(in.AddDate(0, 0, 2)))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, f.clientToken)
		var before resdto.RoomAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &before)
		s.True(before.IsAvailable)

		status, _, _ := s.create(f.clientToken, uuid.New(), map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in.AddDate(0, 0, 1)), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1})
		s.Require().Equal(http.StatusCreated, status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, f.clientToken)
		var after resdto.RoomAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &after)
		s.False(after.IsAvailable)
		s.Equal(1, after.AvailableNights)
	})

	s.Run("search quote matches the booked price", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 8)
		out := in.AddDate(0, 0, 3)
		dbtest.SetPriceOverride(s.T(), s.DB, f.hotel.RoomID, in.AddDate(0, 0, 2), 2500)

		path := fmt.Sprintf("/api/rooms/availability?check_in=%s&check_out=%s&hotel_id=%s", day(in), day(out), f.hotel.HotelID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, f.clientToken)
		var rooms []*resdto.AvailableRoomResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rooms)
		s.Require().Len(rooms, 1)
		s.Equal(int64(4500), rooms[0].TotalPrice)

		status, res, _ := s.create(f.clientToken, uuid.New(), map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(out), "pet_count": 1})
		s.Require().Equal(http.StatusCreated, status)
		s.Equal(rooms[0].TotalPrice, res.Booking.Price)
		s.Equal(rooms[0].TotalPrice, res.PriceBreakdown.Base)
	})

	s.Run("owner extends the calendar", func() {
		f := s.seedRoom(1000)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/rooms/"+f.hotel.RoomID.String()+"/calendar", map[string]any{"days": 90}, f.ownerToken)
		var res resdto.GenerateCalendarResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(int64(30), res.Created)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/rooms/"+f.hotel.RoomID.String()+"/calendar", map[string]any{"days": 90}, f.clientToken)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *RoomBookingSuite) TestStaleRoomSweep() {
	s.Run("pending bookings past check-in are cancelled by the system once", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 2)
		status, res, _ := s.create(f.clientToken, uuid.New(), map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 2)), "pet_count": 1})
		s.Require().Equal(http.StatusCreated, status)

		_, err := s.DB.Exec(context.Background(),
			"UPDATE room_bookings SET check_in = check_in - 4, check_out = check_out - 4 WHERE id = $1", res.Booking.ID)
		s.Require().NoError(err)

		n, err := s.Sweeps.CancelStalePendingRoomBookings(context.Background())
		s.Require().NoError(err)
		s.Equal(int64(1), n)

		n, err = s.Sweeps.CancelStalePendingRoomBookings(context.Background())
		s.Require().NoError(err)
		s.Zero(n, "second sweep finds nothing")

		var cancelledBy string
		s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT status || ':' || cancelled_by FROM room_bookings WHERE id = $1", res.Booking.ID).Scan(&cancelledBy))
		s.Equal("CANCELLED:SYSTEM", cancelledBy)
	})
}

func (s *RoomBookingSuite) TestOutboxDispatch() {
	s.Run("queued notifications are published and marked sent", func() {
		f := s.seedRoom(1000)
		in := s.today().AddDate(0, 0, 4)
		status, _, _ := s.create(f.clientToken, uuid.New(), map[string]any{"room_id": f.hotel.RoomID, "check_in": day(in), "check_out": day(in.AddDate(0, 0, 1)), "pet_count": 1})
		s.Require().Equal(http.StatusCreated, status)

		res, err := s.Dispatcher.DispatchDue(context.Background())
		require.NoError(s.T(), err)
		assert.Equal(s.T(), 1, res.Sent)
		s.Zero(dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM notification_jobs WHERE status = 'queued'"))
	})
}
