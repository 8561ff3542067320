//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RoomBookingCommandsSuite struct {
	suite.Suite
	db     *memDB
	clock  *clock.MockClock
	cfg    config.BookingConfig
	codes  *scriptedCodes
	fees   staticFees
	hotel  hotelFixture
	client user.Actor
}

func TestRoomBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(RoomBookingCommandsSuite))
}

func (s *RoomBookingCommandsSuite) SetupTest() {
	s.db = newMemDB()
	s.clock = clock.NewMockClock(baseNow)
	s.cfg = testBookingConfig()
	s.codes = &scriptedCodes{}
	s.fees = testFees()
	s.hotel = seedHotel(s.db, 1000, 30)
	s.client = clientActor()
}

func (s *RoomBookingCommandsSuite) uc() commands.RoomBookingCommands {
	return commands.NewRoomBookingUseCase(s.db, s.db, s.fees, commands.CodeGenerators{Room: s.codes, Sitter: s.codes}, s.clock, s.cfg)
}

func (s *RoomBookingCommandsSuite) request(checkIn, checkOut string) commands.CreateRoomBookingRequest {
	return commands.CreateRoomBookingRequest{
		RoomID:     s.hotel.RoomID,
		Dates:      mustRange(s.T(), checkIn, checkOut),
		PetCount:   1,
		HumanCount: 1,
	}
}

func (s *RoomBookingCommandsSuite) create(actor user.Actor, checkIn, checkOut string) *commands.RoomBookingResult {
	res, err := s.uc().Create(context.Background(), actor, uuid.New(), s.request(checkIn, checkOut))
	s.Require().NoError(err)
	return res
}

func (s *RoomBookingCommandsSuite) TestCreate() {
	ctx := context.Background()

	s.Run("books the range, locks every night and notifies the owner", func() {
		s.SetupTest()
		key := uuid.New()

		res, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-20", "2026-01-23"))
		s.Require().NoError(err)

		s.False(res.IsReplayed)
		s.Equal(string(roombooking.StatusPending), res.Booking.Status)
		s.Equal(s.client.ID, res.Booking.ClientID)
		s.Equal(int64(3000), res.Breakdown.Base)
		s.Equal(int64(5000), res.Breakdown.PlatformFee)
		s.Equal(int64(8000), res.Breakdown.GrandTotal)
		s.Require().NotNil(res.Breakdown.Nights)
		s.Equal(3, *res.Breakdown.Nights)

		for _, d := range []string{"2026-01-20", "2026-01-21", "2026-01-22"} {
			s.False(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), d)), d)
		}
		s.True(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-23")), "check-out day stays free")

		s.Equal([]string{commands.TopicRoomCreated}, s.db.topics())
		s.Equal(s.hotel.Owner.ID, *s.db.outbox[0].RecipientID)

		rec := s.db.idem[idemKey{key, s.client.ID}]
		s.Equal(shared.IdempotencyCompleted, rec.Status)
		s.Require().NotNil(rec.ResultBookingID)
		s.Equal(res.Booking.ID, *rec.ResultBookingID)
	})

	s.Run("prices nights from overrides", func() {
		s.SetupTest()
		s.db.setOverride(s.hotel.RoomID, mustDate(s.T(), "2026-01-21"), 1800)

		res := s.create(s.client, "2026-01-20", "2026-01-23")

		s.Equal(int64(3800), res.Breakdown.Base)
		s.Equal(int64(8800), res.Breakdown.GrandTotal)
	})

	s.Run("replays the same booking for a repeated key", func() {
		s.SetupTest()
		key := uuid.New()
		req := s.request("2026-01-20", "2026-01-22")

		first, err := s.uc().Create(ctx, s.client, key, req)
		s.Require().NoError(err)
		second, err := s.uc().Create(ctx, s.client, key, req)
		s.Require().NoError(err)

		s.False(first.IsReplayed)
		s.True(second.IsReplayed)
		s.Equal(first.Booking.ID, second.Booking.ID)
		s.Len(s.db.roomBookings, 1)
		s.Len(s.db.outbox, 1)
	})

	s.Run("same key from another user is a separate request", func() {
		s.SetupTest()
		key := uuid.New()

		_, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-20", "2026-01-22"))
		s.Require().NoError(err)
		res, err := s.uc().Create(ctx, clientActor(), key, s.request("2026-01-22", "2026-01-24"))
		s.Require().NoError(err)

		s.False(res.IsReplayed)
		s.Len(s.db.roomBookings, 2)
	})

	s.Run("rejects a reused key with a different body", func() {
		s.SetupTest()
		key := uuid.New()

		_, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-20", "2026-01-22"))
		s.Require().NoError(err)
		_, err = s.uc().Create(ctx, s.client, key, s.request("2026-01-24", "2026-01-26"))

		assertErrIs(s.T(), err, commands.ErrIdempotencyKeyReused)
		s.Len(s.db.roomBookings, 1)
	})

	s.Run("reclaims an expired key", func() {
		s.SetupTest()
		key := uuid.New()

		_, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-20", "2026-01-22"))
		s.Require().NoError(err)
		s.clock.Add(s.cfg.IdempotencyTTL + 1)
		res, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-24", "2026-01-26"))
		s.Require().NoError(err)

		s.False(res.IsReplayed)
		s.Len(s.db.roomBookings, 2)
	})

	s.Run("overlapping range fails and rolls the key back", func() {
		s.SetupTest()
		s.create(clientActor(), "2026-01-20", "2026-01-23")
		key := uuid.New()

		_, err := s.uc().Create(ctx, s.client, key, s.request("2026-01-22", "2026-01-25"))

		assertErrIs(s.T(), err, calendar.ErrRangeUnavailable)
		s.Len(s.db.roomBookings, 1)
		s.NotContains(s.db.idem, idemKey{key, s.client.ID})
		s.True(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-24")))
	})

	s.Run("back to back ranges do not overlap", func() {
		s.SetupTest()
		s.create(clientActor(), "2026-01-20", "2026-01-23")

		res := s.create(s.client, "2026-01-23", "2026-01-25")

		s.Equal(string(roombooking.StatusPending), res.Booking.Status)
	})

	s.Run("missing calendar rows make the range unavailable", func() {
		s.SetupTest()

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-02-07", "2026-02-10"))

		assertErrIs(s.T(), err, calendar.ErrRangeUnavailable)
		s.Empty(s.db.roomBookings)
	})

	s.Run("rejects a past check-in", func() {
		s.SetupTest()

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-01-09", "2026-01-11"))

		assertErrIs(s.T(), err, calendar.ErrDateInPast)
	})

	s.Run("rejects a guest count over capacity", func() {
		s.SetupTest()
		req := s.request("2026-01-20", "2026-01-22")
		req.PetCount = 3

		_, err := s.uc().Create(ctx, s.client, uuid.New(), req)

		assertErrIs(s.T(), err, roombooking.ErrPetCapacity)
	})

	s.Run("unknown room", func() {
		s.SetupTest()
		req := s.request("2026-01-20", "2026-01-22")
		req.RoomID = uuid.New()

		_, err := s.uc().Create(ctx, s.client, uuid.New(), req)

		assertErrIs(s.T(), err, commands.ErrRoomNotFound)
	})

	s.Run("provider on vacation", func() {
		s.SetupTest()
		p := s.db.profiles[s.hotel.ProfileID]
		p.Availability = provider.AvailabilityOnVacation
		s.db.profiles[s.hotel.ProfileID] = p

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-01-20", "2026-01-22"))

		assertErrIs(s.T(), err, provider.ErrProviderOnVacation)
	})

	s.Run("regenerates a taken booking code", func() {
		s.SetupTest()
		s.codes.codes = []string{"RB-AAAA2222", "RB-AAAA2222", "RB-BBBB3333"}

		first := s.create(clientActor(), "2026-01-20", "2026-01-22")
		second := s.create(s.client, "2026-01-22", "2026-01-24")

		s.Equal("RB-AAAA2222", first.Booking.Code)
		s.Equal("RB-BBBB3333", second.Booking.Code)
	})

	s.Run("gives up after the configured code attempts", func() {
		s.SetupTest()
		s.cfg.BookingCodeMaxAttempts = 2
		s.codes.codes = []string{"RB-AAAA2222", "RB-AAAA2222", "RB-AAAA2222"}
		s.create(clientActor(), "2026-01-20", "2026-01-22")

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-01-22", "2026-01-24"))

		assertErrIs(s.T(), err, roombooking.ErrBookingCodeExhaust)
		s.True(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-22")))
	})

	s.Run("fee source failure writes nothing", func() {
		s.SetupTest()
		boom := errors.New("fee store down")
		s.fees.err = boom

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-01-20", "2026-01-22"))

		s.ErrorIs(err, boom)
		s.Empty(s.db.roomBookings)
		s.Empty(s.db.idem)
	})

	s.Run("read back failure after commit is reported", func() {
		s.SetupTest()
		s.db.failOn("Views.FindRoomBooking", errors.New("replica lag"))

		_, err := s.uc().Create(ctx, s.client, uuid.New(), s.request("2026-01-20", "2026-01-22"))

		assertErrIs(s.T(), err, commands.ErrRoomBookingRead)
		s.Len(s.db.roomBookings, 1)
	})
}

func (s *RoomBookingCommandsSuite) TestCreateConcurrentSameRange() {
	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc().Create(context.Background(), clientActor(), uuid.New(), s.request("2026-01-20", "2026-01-23"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, conflicts int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errs.Is(err, calendar.ErrRangeUnavailable):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, ok)
	s.Equal(workers-1, conflicts)
	s.Len(s.db.roomBookings, 1)
}

func (s *RoomBookingCommandsSuite) TestLifecycle() {
	ctx := context.Background()

	s.Run("owner confirms, checks in and checks out", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-22")

		res, err := s.uc().Confirm(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)
		s.Equal(string(roombooking.StatusConfirmed), res.Booking.Status)

		res, err = s.uc().CheckIn(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)
		s.Equal(string(roombooking.StatusCheckedIn), res.Booking.Status)

		res, err = s.uc().CheckOut(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)
		s.Equal(string(roombooking.StatusCheckedOut), res.Booking.Status)

		s.Equal([]string{
			commands.TopicRoomCreated,
			commands.TopicRoomConfirmed,
			commands.TopicChargeRequested,
			commands.TopicRoomCheckedIn,
			commands.TopicRoomCheckedOut,
		}, s.db.topics())
		s.False(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-20")), "checked out stays booked")
	})

	s.Run("only the owner manages the booking", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-22")

		_, err := s.uc().Confirm(ctx, s.client, b.Booking.ID)

		assertErrIs(s.T(), err, commands.ErrNotRoomOwner)
		s.Equal(roombooking.StatusPending, s.db.roomBookings[b.Booking.ID].Status)
	})

	s.Run("transitions out of order are rejected", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-22")

		_, err := s.uc().CheckIn(ctx, s.hotel.Owner, b.Booking.ID)
		assertErrIs(s.T(), err, roombooking.ErrInvalidTransition)

		_, err = s.uc().Confirm(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)
		_, err = s.uc().Confirm(ctx, s.hotel.Owner, b.Booking.ID)
		assertErrIs(s.T(), err, roombooking.ErrInvalidTransition)
	})

	s.Run("unknown booking", func() {
		s.SetupTest()

		_, err := s.uc().Confirm(ctx, s.hotel.Owner, uuid.New())

		assertErrIs(s.T(), err, roombooking.ErrBookingNotFound)
	})
}

func (s *RoomBookingCommandsSuite) TestCancel() {
	ctx := context.Background()

	s.Run("client cancel frees the nights for the next booking", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-23")

		res, err := s.uc().Cancel(ctx, s.client, b.Booking.ID)
		s.Require().NoError(err)

		s.Equal(string(roombooking.StatusCancelled), res.Booking.Status)
		s.Require().NotNil(res.Booking.CancelledBy)
		s.Equal(booking.PartyClient.String(), *res.Booking.CancelledBy)
		s.True(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-21")))
		s.Equal(s.hotel.Owner.ID, *s.db.outbox[len(s.db.outbox)-1].RecipientID)

		again := s.create(clientActor(), "2026-01-20", "2026-01-23")
		s.Equal(string(roombooking.StatusPending), again.Booking.Status)
	})

	s.Run("owner may cancel a confirmed booking", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-23")
		_, err := s.uc().Confirm(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)

		res, err := s.uc().Cancel(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)

		s.Equal(booking.PartyProvider.String(), *res.Booking.CancelledBy)
		s.Equal(s.client.ID, *s.db.outbox[len(s.db.outbox)-1].RecipientID)
	})

	s.Run("strangers cannot cancel", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-23")

		_, err := s.uc().Cancel(ctx, clientActor(), b.Booking.ID)

		assertErrIs(s.T(), err, roombooking.ErrNotBookingParty)
	})

	s.Run("checked in bookings cannot be cancelled", func() {
		s.SetupTest()
		b := s.create(s.client, "2026-01-20", "2026-01-23")
		_, err := s.uc().Confirm(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)
		_, err = s.uc().CheckIn(ctx, s.hotel.Owner, b.Booking.ID)
		s.Require().NoError(err)

		_, err = s.uc().Cancel(ctx, s.client, b.Booking.ID)

		assertErrIs(s.T(), err, roombooking.ErrInvalidTransition)
		s.False(s.db.isAvailable(s.hotel.RoomID, mustDate(s.T(), "2026-01-21")))
	})
}
