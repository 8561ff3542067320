//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"petstay-backend/internal/domain/user"
	resdto "petstay-backend/internal/handler/dto/response"
	"petstay-backend/internal/handler/middleware"
	"petstay-backend/tests/common/dbtest"
	"petstay-backend/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SitterBookingSuite struct {
	SharedSuite
}

func TestSitterBookingSuite(t *testing.T) {
	suite.Run(t, new(SitterBookingSuite))
}

type sitterFixture struct {
	sitter      dbtest.Sitter
	sitterToken string
	extraID     uuid.UUID
}

type clientFixture struct {
	id    uuid.UUID
	token string
}

func (s *SitterBookingSuite) seedSitter() sitterFixture {
	t := s.T()
	sitter := dbtest.CreateSitter(t, s.DB, 2000, 60)
	return sitterFixture{
		sitter:      sitter,
		sitterToken: s.JWT.GenerateToken(t, sitter.UserID, user.RoleProvider),
		extraID:     dbtest.CreateSitterService(t, s.DB, sitter.ProfileID, "Brushing", 500, 15),
	}
}

func (s *SitterBookingSuite) seedClient() clientFixture {
	id := uuid.New()
	dbtest.CreateActiveAddress(s.T(), s.DB, id)
	return clientFixture{id: id, token: s.JWT.GenerateToken(s.T(), id, user.RoleClient)}
}

func (s *SitterBookingSuite) create(c clientFixture, body map[string]any) (int, *resdto.SitterBookingResponse) {
	w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, "/api/sitter-bookings", body, c.token,
		map[string]string{middleware.HeaderIdempotencyKey: uuid.NewString()})
	if w.Code >= 300 {
		return w.Code, nil
	}
	var res resdto.SitterBookingResultResponse
	httptest.AssertSuccessResponse(s.T(), w, w.Code, &res)
	return w.Code, res.Booking
}

func (s *SitterBookingSuite) post(path, token string, body any) (int, *resdto.SitterBookingResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, body, token)
	if w.Code >= 300 {
		return w.Code, nil
	}
	var res resdto.SitterBookingResultResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return w.Code, res.Booking
}

func bookingPath(id uuid.UUID, action string) string {
	return "/api/sitter-bookings/" + id.String() + "/" + action
}

func (s *SitterBookingSuite) TestSitterBookingLifecycle() {
	s.Run("create, confirm, start, request completion, complete", func() {
		f := s.seedSitter()
		client := s.seedClient()
		start := time.Now().Add(5 * time.Minute).Truncate(time.Second)

		status, b := s.create(client, map[string]any{
			"service_id":             f.sitter.ServiceID,
			"additional_service_ids": []uuid.UUID{f.extraID},
			"starting_time":          start,
		})
		s.Require().Equal(http.StatusCreated, status)
		s.Equal("PENDING", b.Status)
		s.Equal(75, b.DurationMinutes)
		s.Equal(int64(2500), b.Price)
		s.Equal(int64(250), b.PlatformFee)
		s.Equal(int64(2750), b.GrandTotal)
		s.True(b.FinishingTime.Equal(start.Add(75 * time.Minute)))
		s.Regexp(`^SB-[A-Z0-9]{8}$`, b.Code)
		created := *b
		samePrice := func(got *resdto.SitterBookingResponse, step string) {
			s.Require().NotNil(got)
			s.Equal(created.Price, got.Price, step)
			s.Equal(created.PlatformFee, got.PlatformFee, step)
			s.Equal(created.GrandTotal, got.GrandTotal, step)
		}

		status, b = s.post(bookingPath(b.ID, "confirm"), f.sitterToken, nil)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("CONFIRMED", b.Status)
		samePrice(b, "confirm")

		status, b = s.post(bookingPath(b.ID, "start"), f.sitterToken, nil)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("IN_PROGRESS", b.Status)
		s.False(b.IsLate)
		samePrice(b, "start")

		status, _ = s.post(bookingPath(b.ID, "request-complete"), f.sitterToken, map[string]any{"note": "all good"})
		s.Equal(http.StatusBadRequest, status, "proof is required")

		status, b = s.post(bookingPath(b.ID, "request-complete"), f.sitterToken, map[string]any{
			"note":       "all good",
			"proof_urls": []string{"https://cdn.example.com/walk.jpg"},
		})
		s.Require().Equal(http.StatusOK, status)
		s.Equal("REQUEST_TO_COMPLETE", b.Status)
		s.Equal([]string{"https://cdn.example.com/walk.jpg"}, b.CompletionProofURLs)
		samePrice(b, "request-complete")

		status, _ = s.post(bookingPath(b.ID, "complete"), f.sitterToken, nil)
		s.Equal(http.StatusForbidden, status, "only the client completes")

		status, b = s.post(bookingPath(b.ID, "complete"), client.token, nil)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("COMPLETED", b.Status)
		s.NotNil(b.CompletedAt)
		samePrice(b, "complete")

		var stored int64
		s.Require().NoError(s.DB.QueryRow(context.Background(), "SELECT grand_total FROM sitter_bookings WHERE id = $1", b.ID).Scan(&stored))
		s.Equal(created.GrandTotal, stored)
	})

	s.Run("cancel keeps the price", func() {
		f := s.seedSitter()
		client := s.seedClient()
		status, b := s.create(client, map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(2 * time.Hour)})
		s.Require().Equal(http.StatusCreated, status)

		status, got := s.post(bookingPath(b.ID, "cancel"), client.token, nil)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("CANCELLED", got.Status)
		s.Equal(b.PlatformFee, got.PlatformFee)
		s.Equal(b.GrandTotal, got.GrandTotal)
	})

	s.Run("a start too far ahead is refused", func() {
		f := s.seedSitter()
		client := s.seedClient()

		status, b := s.create(client, map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(3 * time.Hour)})
		s.Require().Equal(http.StatusCreated, status)
		status, _ = s.post(bookingPath(b.ID, "confirm"), f.sitterToken, nil)
		s.Require().Equal(http.StatusOK, status)

		status, _ = s.post(bookingPath(b.ID, "start"), f.sitterToken, nil)
		s.Equal(http.StatusConflict, status)
	})

	s.Run("client without an address", func() {
		f := s.seedSitter()
		client := clientFixture{id: uuid.New()}
		client.token = s.JWT.GenerateToken(s.T(), client.id, user.RoleClient)

		status, _ := s.create(client, map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(time.Hour)})

		s.Equal(http.StatusBadRequest, status)
	})
}

func (s *SitterBookingSuite) TestConcurrentConfirm() {
	s.Run("only one of two overlapping pending bookings can be confirmed", func() {
		f := s.seedSitter()
		start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

		var ids []uuid.UUID
		for _, offset := range []time.Duration{0, 30 * time.Minute} {
			status, b := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": start.Add(offset)})
			s.Require().Equal(http.StatusCreated, status, "pending bookings do not block each other")
			ids = append(ids, b.ID)
		}

		statuses := make([]int, len(ids))
		var wg sync.WaitGroup
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				statuses[i], _ = s.post(bookingPath(id, "confirm"), f.sitterToken, nil)
			}()
		}
		wg.Wait()

		s.ElementsMatch([]int{http.StatusOK, http.StatusConflict}, statuses)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM sitter_bookings WHERE status = 'CONFIRMED'"))
	})

	s.Run("back-to-back windows both confirm", func() {
		f := s.seedSitter()
		start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

		for _, offset := range []time.Duration{0, time.Hour} {
			status, b := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": start.Add(offset)})
			s.Require().Equal(http.StatusCreated, status)
			status, _ = s.post(bookingPath(b.ID, "confirm"), f.sitterToken, nil)
			s.Equal(http.StatusOK, status)
		}
	})
}

func (s *SitterBookingSuite) TestConcurrentStart() {
	s.Run("a sitter can only have one booking in progress", func() {
		f := s.seedSitter()
		start := time.Now().Add(48 * time.Hour).Truncate(time.Minute)

		var ids []uuid.UUID
		for _, offset := range []time.Duration{0, 2 * time.Hour} {
			status, b := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": start.Add(offset)})
			s.Require().Equal(http.StatusCreated, status)
			status, _ = s.post(bookingPath(b.ID, "confirm"), f.sitterToken, nil)
			s.Require().Equal(http.StatusOK, status)
			ids = append(ids, b.ID)
		}

		// Both windows become startable without overlapping each other.
		ctx := context.Background()
		_, err := s.DB.Exec(ctx, "UPDATE sitter_bookings SET starting_time = now() - interval '70 minutes', finishing_time = now() - interval '10 minutes' WHERE id = $1", ids[0])
		s.Require().NoError(err)
		_, err = s.DB.Exec(ctx, "UPDATE sitter_bookings SET starting_time = now() + interval '5 minutes', finishing_time = now() + interval '65 minutes' WHERE id = $1", ids[1])
		s.Require().NoError(err)

		statuses := make([]int, len(ids))
		var wg sync.WaitGroup
		ready := make(chan struct{})
		for i, id := range ids {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-ready
				statuses[i], _ = s.post(bookingPath(id, "start"), f.sitterToken, nil)
			}()
		}
		close(ready)
		wg.Wait()

		s.ElementsMatch([]int{http.StatusOK, http.StatusConflict}, statuses)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM sitter_bookings WHERE provider_profile_id = $1 AND status = 'IN_PROGRESS'", f.sitter.ProfileID))
	})
}

func (s *SitterBookingSuite) TestSweeps() {
	ctx := context.Background()

	s.Run("stale pending bookings expire once", func() {
		f := s.seedSitter()
		status, b := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(time.Hour)})
		s.Require().Equal(http.StatusCreated, status)

		_, err := s.DB.Exec(ctx, "UPDATE sitter_bookings SET starting_time = now() - interval '1 hour', finishing_time = now() WHERE id = $1", b.ID)
		s.Require().NoError(err)

		n, err := s.Sweeps.ExpirePendingSitterBookings(ctx)
		s.Require().NoError(err)
		s.Equal(int64(1), n)

		n, err = s.Sweeps.ExpirePendingSitterBookings(ctx)
		s.Require().NoError(err)
		s.Zero(n)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM sitter_bookings WHERE id = $1 AND status = 'EXPIRED' AND expired_at IS NOT NULL", b.ID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM notification_jobs WHERE topic = 'booking.sitter.expired'"))
	})

	s.Run("confirmed bookings past their start are marked late and can still start", func() {
		f := s.seedSitter()
		status, b := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(time.Hour)})
		s.Require().Equal(http.StatusCreated, status)
		status, _ = s.post(bookingPath(b.ID, "confirm"), f.sitterToken, nil)
		s.Require().Equal(http.StatusOK, status)

		_, err := s.DB.Exec(ctx, "UPDATE sitter_bookings SET starting_time = now() - interval '20 minutes', finishing_time = now() + interval '40 minutes' WHERE id = $1", b.ID)
		s.Require().NoError(err)

		n, err := s.Sweeps.MarkLateSitterBookings(ctx)
		s.Require().NoError(err)
		s.Equal(int64(1), n)

		n, err = s.Sweeps.MarkLateSitterBookings(ctx)
		s.Require().NoError(err)
		s.Zero(n)

		status, got := s.post(bookingPath(b.ID, "start"), f.sitterToken, nil)
		s.Require().Equal(http.StatusOK, status)
		s.Equal("IN_PROGRESS", got.Status)
		s.True(got.IsLate)
		s.Require().NotNil(got.MinutesLate)
		s.GreaterOrEqual(*got.MinutesLate, int32(19))
	})

	s.Run("expired idempotency keys are purged", func() {
		f := s.seedSitter()
		status, _ := s.create(s.seedClient(), map[string]any{"service_id": f.sitter.ServiceID, "starting_time": time.Now().Add(time.Hour)})
		s.Require().Equal(http.StatusCreated, status)

		_, err := s.DB.Exec(ctx, "UPDATE idempotency_keys SET expires_at = now() - interval '1 minute'")
		s.Require().NoError(err)

		n, err := s.Sweeps.PurgeExpiredIdempotencyKeys(ctx)
		s.Require().NoError(err)
		s.Equal(int64(1), n)
		s.Zero(dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM idempotency_keys"))
	})
}
