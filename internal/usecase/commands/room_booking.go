package commands

import (
	"context"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errs.NotFound("room not found")
	ErrNotRoomOwner    = errs.Forbidden("only the hotel owner can manage this room")
	ErrRoomBookingRead = errs.New("room booking was written but could not be read back")
)

type CreateRoomBookingRequest struct {
	RoomID     uuid.UUID
	Dates      calendar.DateRange
	PetCount   int
	HumanCount int
	Note       string
}

// hashInput is the canonical form used for idempotency comparisons.
func (r CreateRoomBookingRequest) hashInput() any {
	return struct {
		RoomID     uuid.UUID `json:"room_id"`
		Dates      string    `json:"dates"`
		PetCount   int       `json:"pet_count"`
		HumanCount int       `json:"human_count"`
		Note       string    `json:"note"`
	}{r.RoomID, r.Dates.String(), r.PetCount, r.HumanCount, r.Note}
}

type RoomBookingCommands interface {
	Create(ctx context.Context, actor user.Actor, idempotencyKey uuid.UUID, req CreateRoomBookingRequest) (*RoomBookingResult, error)
	Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error)
	CheckIn(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error)
	CheckOut(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error)
}

type roomBookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	views BookingViews
	fees  FeePolicySource
	codes booking.CodeGenerator
	clock clock.Clock
	cfg   config.BookingConfig
	loc   *time.Location
}

func NewRoomBookingUseCase(
	uow shared.UnitOfWork,
	views BookingViews,
	fees FeePolicySource,
	codes CodeGenerators,
	clk clock.Clock,
	cfg config.BookingConfig,
) RoomBookingCommands {
	return &roomBookingUseCaseImpl{
		uow:   uow,
		views: views,
		fees:  fees,
		codes: codes.Room,
		clock: clk,
		cfg:   cfg,
		loc:   cfg.Location(),
	}
}

func (uc *roomBookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, idempotencyKey uuid.UUID, req CreateRoomBookingRequest) (res *RoomBookingResult, err error) {
	const op = "RoomBooking.Create"
	ctx, span := startCommand(ctx, op, actor, uuid.Nil)
	defer func() { endCommand(ctx, span, op, actor, uuid.Nil, err) }()

	hash, err := requestHash(endpointCreateRoomBooking, req.hashInput())
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	claim := shared.IdempotencyClaim{
		Key:         idempotencyKey,
		UserID:      actor.ID,
		Endpoint:    endpointCreateRoomBooking,
		RequestHash: hash,
		ExpiresAt:   now.Add(uc.cfg.IdempotencyTTL),
	}

	var bookingID uuid.UUID
	var replayed bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayID, err := claimIdempotencyKey(ctx, tx, claim, now)
		if err != nil {
			return err
		}
		if replayID != nil {
			bookingID, replayed = *replayID, true
			return nil
		}
		replayed = false

		policies, err := uc.fees.Current(ctx)
		if err != nil {
			return err
		}
		b, err := uc.createInTx(ctx, tx, actor, req, policies.Room, now)
		if err != nil {
			return err
		}
		bookingID = b.ID()
		return completeIdempotencyKey(ctx, tx, claim, bookingID)
	})
	if err != nil {
		return nil, err
	}
	return uc.result(ctx, bookingID, replayed)
}

func (uc *roomBookingUseCaseImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	actor user.Actor,
	req CreateRoomBookingRequest,
	policy pricing.FeePolicy,
	now time.Time,
) (*roombooking.Booking, error) {
	room, err := tx.Reads().RoomForBooking(ctx, req.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if err := room.Provider.CanAcceptBookings(); err != nil {
		return nil, err
	}

	days, err := tx.Calendar().RowsInRangeForUpdate(ctx, room.Room.ID, req.Dates)
	if err != nil {
		return nil, err
	}

	b, err := roombooking.New(roombooking.NewParams{
		ClientID: actor.ID,
		Room:     room.Room,
		Dates:    req.Dates,
		Guests:   roombooking.Guests{Pets: req.PetCount, Humans: req.HumanCount},
		Days:     days,
		Policy:   policy,
		Today:    calendar.Today(now, uc.loc),
		Note:     req.Note,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.insertWithCode(ctx, tx, b); err != nil {
		return nil, err
	}

	locked, err := tx.Calendar().Lock(ctx, b.RoomID(), b.Dates())
	if err != nil {
		return nil, err
	}
	if locked != int64(b.Dates().Nights()) {
		return nil, roombooking.ErrCalendarNotLocked
	}

	err = notify(ctx, tx, TopicRoomCreated, room.OwnerUserID, bookingEvent{
		BookingID:   b.ID(),
		BookingCode: b.Code(),
		BookingKind: booking.KindRoom,
		Status:      b.Status().String(),
		By:          booking.PartyClient,
		OccurredAt:  now,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// insertWithCode regenerates the booking code while the insert reports a taken code.
func (uc *roomBookingUseCaseImpl) insertWithCode(ctx context.Context, tx shared.Tx, b *roombooking.Booking) error {
	for attempt := 0; attempt < uc.cfg.BookingCodeMaxAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return errs.Wrap(err, "generate room booking code")
		}
		b.AssignCode(code)

		inserted, err := tx.RoomBookings().Insert(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.WithCause(calendar.ErrRangeUnavailable, err)
			}
			return err
		}
		if inserted {
			return nil
		}
	}
	return roombooking.ErrBookingCodeExhaust
}

func (uc *roomBookingUseCaseImpl) Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error) {
	return uc.transition(ctx, "RoomBooking.Confirm", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.RoomBookingSnapshot, now time.Time) error {
		if err := requireRoomOwner(actor, snap); err != nil {
			return err
		}
		if err := expectRoomTransition(snap.Status, roombooking.StatusConfirmed); err != nil {
			return err
		}
		n, err := tx.RoomBookings().Confirm(ctx, id, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return roombooking.ErrInvalidTransition
		}
		if err := notify(ctx, tx, TopicRoomConfirmed, snap.ClientID, roomEvent(snap, roombooking.StatusConfirmed, booking.PartyProvider, now)); err != nil {
			return err
		}
		return requestCharge(ctx, tx, chargeRequest{
			BookingID:   snap.ID,
			BookingKind: booking.KindRoom,
			ClientID:    snap.ClientID,
			Amount:      snap.GrandTotal,
			RequestedAt: now,
		})
	})
}

func (uc *roomBookingUseCaseImpl) CheckIn(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error) {
	return uc.transition(ctx, "RoomBooking.CheckIn", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.RoomBookingSnapshot, now time.Time) error {
		if err := requireRoomOwner(actor, snap); err != nil {
			return err
		}
		if err := expectRoomTransition(snap.Status, roombooking.StatusCheckedIn); err != nil {
			return err
		}
		n, err := tx.RoomBookings().CheckIn(ctx, id, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return roombooking.ErrInvalidTransition
		}
		return notify(ctx, tx, TopicRoomCheckedIn, snap.ClientID, roomEvent(snap, roombooking.StatusCheckedIn, booking.PartyProvider, now))
	})
}

func (uc *roomBookingUseCaseImpl) CheckOut(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error) {
	return uc.transition(ctx, "RoomBooking.CheckOut", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.RoomBookingSnapshot, now time.Time) error {
		if err := requireRoomOwner(actor, snap); err != nil {
			return err
		}
		if err := expectRoomTransition(snap.Status, roombooking.StatusCheckedOut); err != nil {
			return err
		}
		n, err := tx.RoomBookings().CheckOut(ctx, id, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return roombooking.ErrInvalidTransition
		}
		return notify(ctx, tx, TopicRoomCheckedOut, snap.ClientID, roomEvent(snap, roombooking.StatusCheckedOut, booking.PartyProvider, now))
	})
}

// Cancel frees the booked days in the same transaction as the status change.
func (uc *roomBookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*RoomBookingResult, error) {
	return uc.transition(ctx, "RoomBooking.Cancel", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.RoomBookingSnapshot, now time.Time) error {
		var party booking.Party
		var recipient uuid.UUID
		switch actor.ID {
		case snap.ClientID:
			party, recipient = booking.PartyClient, snap.OwnerUserID
		case snap.OwnerUserID:
			party, recipient = booking.PartyProvider, snap.ClientID
		default:
			return roombooking.ErrNotBookingParty
		}
		if err := expectRoomTransition(snap.Status, roombooking.StatusCancelled); err != nil {
			return err
		}
		n, err := tx.RoomBookings().Cancel(ctx, id, party, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return roombooking.ErrInvalidTransition
		}
		if _, err := tx.Calendar().Unlock(ctx, snap.RoomID, snap.Dates); err != nil {
			return err
		}
		return notify(ctx, tx, TopicRoomCancelled, recipient, roomEvent(snap, roombooking.StatusCancelled, party, now))
	})
}

type roomTransitionFunc func(ctx context.Context, tx shared.Tx, snap *shared.RoomBookingSnapshot, now time.Time) error

func (uc *roomBookingUseCaseImpl) transition(ctx context.Context, op string, actor user.Actor, id uuid.UUID, fn roomTransitionFunc) (res *RoomBookingResult, err error) {
	ctx, span := startCommand(ctx, op, actor, id)
	defer func() { endCommand(ctx, span, op, actor, id, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().RoomBookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return roombooking.ErrBookingNotFound
			}
			return err
		}
		return fn(ctx, tx, snap, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return uc.result(ctx, id, false)
}

func (uc *roomBookingUseCaseImpl) result(ctx context.Context, id uuid.UUID, replayed bool) (*RoomBookingResult, error) {
	view, err := uc.views.FindRoomBooking(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrRoomBookingRead)
	}
	return &RoomBookingResult{
		Booking:    view,
		Breakdown:  view.Breakdown(),
		IsReplayed: replayed,
	}, nil
}

func requireRoomOwner(actor user.Actor, snap *shared.RoomBookingSnapshot) error {
	if actor.ID != snap.OwnerUserID {
		return ErrNotRoomOwner
	}
	return nil
}

func expectRoomTransition(from, to roombooking.Status) error {
	if !from.CanTransitionTo(to) {
		return errs.Wrapf(roombooking.ErrInvalidTransition, "%s to %s", from, to)
	}
	return nil
}

func roomEvent(snap *shared.RoomBookingSnapshot, status roombooking.Status, by booking.Party, now time.Time) bookingEvent {
	return bookingEvent{
		BookingID:   snap.ID,
		BookingCode: snap.Code,
		BookingKind: booking.KindRoom,
		Status:      status.String(),
		By:          by,
		OccurredAt:  now,
	}
}
