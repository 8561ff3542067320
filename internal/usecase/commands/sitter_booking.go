package commands

import (
	"context"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/domain/user"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProviderNotFound     = errs.NotFound("provider profile not found")
	ErrAdditionalNotFound   = errs.NotFound("additional service not found")
	ErrNotSitter            = errs.Forbidden("only the sitter of this booking can do this")
	ErrSitterBookingRead    = errs.New("sitter booking was written but could not be read back")
	ErrSitterProviderKind   = errs.Validation("provider profile is not a sitter")
	ErrStartingTimeRequired = errs.Validation("starting time is required")
)

type CreateSitterBookingRequest struct {
	Selection            sitterbooking.Selection
	AdditionalServiceIDs []uuid.UUID
	StartingTime         time.Time
	Note                 string
}

func (r CreateSitterBookingRequest) hashInput() any {
	return struct {
		ServiceID    *uuid.UUID  `json:"service_id"`
		PackageID    *uuid.UUID  `json:"package_id"`
		Additional   []uuid.UUID `json:"additional_service_ids"`
		StartingTime time.Time   `json:"starting_time"`
		Note         string      `json:"note"`
	}{r.Selection.ServiceID, r.Selection.PackageID, r.AdditionalServiceIDs, r.StartingTime.UTC(), r.Note}
}

type RequestCompleteRequest struct {
	Note      string
	ProofURLs []string
}

type SitterBookingCommands interface {
	Create(ctx context.Context, actor user.Actor, idempotencyKey uuid.UUID, req CreateSitterBookingRequest) (*SitterBookingResult, error)
	Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error)
	Start(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error)
	RequestComplete(ctx context.Context, actor user.Actor, id uuid.UUID, req RequestCompleteRequest) (*SitterBookingResult, error)
	Complete(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error)
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error)
}

type sitterBookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	views  BookingViews
	fees   FeePolicySource
	codes  booking.CodeGenerator
	clock  clock.Clock
	cfg    config.BookingConfig
	cancel sitterbooking.CancelPolicy
}

func NewSitterBookingUseCase(
	uow shared.UnitOfWork,
	views BookingViews,
	fees FeePolicySource,
	codes CodeGenerators,
	clk clock.Clock,
	cfg config.BookingConfig,
) SitterBookingCommands {
	return &sitterBookingUseCaseImpl{
		uow:    uow,
		views:  views,
		fees:   fees,
		codes:  codes.Sitter,
		clock:  clk,
		cfg:    cfg,
		cancel: sitterbooking.CancelPolicy{AllowConfirmed: cfg.SitterCancelConfirmedAllowed},
	}
}

func (uc *sitterBookingUseCaseImpl) Create(ctx context.Context, actor user.Actor, idempotencyKey uuid.UUID, req CreateSitterBookingRequest) (res *SitterBookingResult, err error) {
	const op = "SitterBooking.Create"
	ctx, span := startCommand(ctx, op, actor, uuid.Nil)
	defer func() { endCommand(ctx, span, op, actor, uuid.Nil, err) }()

	if err = req.Selection.Validate(); err != nil {
		return nil, err
	}
	if req.StartingTime.IsZero() {
		return nil, ErrStartingTimeRequired
	}
	hash, err := requestHash(endpointCreateSitterBooking, req.hashInput())
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	claim := shared.IdempotencyClaim{
		Key:         idempotencyKey,
		UserID:      actor.ID,
		Endpoint:    endpointCreateSitterBooking,
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
		b, err := uc.createInTx(ctx, tx, actor, req, policies.Sitter, now)
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

func (uc *sitterBookingUseCaseImpl) createInTx(
	ctx context.Context,
	tx shared.Tx,
	actor user.Actor,
	req CreateSitterBookingRequest,
	policy pricing.FeePolicy,
	now time.Time,
) (*sitterbooking.Booking, error) {
	reads := tx.Reads()
	offering, err := reads.SitterOffering(ctx, req.Selection)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, sitterbooking.ErrOfferingNotFound
		}
		return nil, err
	}
	additional, err := uc.loadAdditional(ctx, reads, req.AdditionalServiceIDs)
	if err != nil {
		return nil, err
	}
	address, err := reads.ActiveAddress(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	// serializes writers for this sitter until commit
	profile, err := uc.lockSitter(ctx, tx, offering.ProviderProfileID)
	if err != nil {
		return nil, err
	}
	if err := profile.CanAcceptBookings(); err != nil {
		return nil, err
	}

	b, err := sitterbooking.New(sitterbooking.NewParams{
		ClientID:              actor.ID,
		Offering:              *offering,
		Additional:            additional,
		Address:               address,
		StartingTime:          req.StartingTime,
		MaxAdditionalServices: uc.cfg.MaxAdditionalServices,
		Policy:                policy,
		Note:                  req.Note,
		Now:                   now,
	})
	if err != nil {
		return nil, err
	}

	overlapping, err := tx.SitterBookings().CountOverlapping(ctx, profile.ID, b.StartingTime(), b.FinishingTime(), nil)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return nil, sitterbooking.ErrSlotTaken
	}

	if err := uc.insertWithCode(ctx, tx, b); err != nil {
		return nil, err
	}

	err = notify(ctx, tx, TopicSitterCreated, profile.UserID, bookingEvent{
		BookingID:   b.ID(),
		BookingCode: b.Code(),
		BookingKind: booking.KindSitter,
		Status:      b.Status().String(),
		By:          booking.PartyClient,
		OccurredAt:  now,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// loadAdditional keeps the requested order and repeats, so the domain sees duplicates.
func (uc *sitterBookingUseCaseImpl) loadAdditional(ctx context.Context, reads shared.CommandReads, ids []uuid.UUID) ([]sitterbooking.AdditionalService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > uc.cfg.MaxAdditionalServices {
		return nil, sitterbooking.ErrTooManyAdditional
	}
	found, err := reads.AdditionalServices(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]sitterbooking.AdditionalService, len(found))
	for _, s := range found {
		byID[s.ID] = s
	}
	out := make([]sitterbooking.AdditionalService, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, errs.Wrapf(ErrAdditionalNotFound, "service %s", id)
		}
		out = append(out, s)
	}
	return out, nil
}

func (uc *sitterBookingUseCaseImpl) lockSitter(ctx context.Context, tx shared.Tx, profileID uuid.UUID) (*provider.Profile, error) {
	profile, err := tx.Providers().Lock(ctx, profileID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if profile.Kind != provider.KindSitter {
		return nil, ErrSitterProviderKind
	}
	return profile, nil
}

func (uc *sitterBookingUseCaseImpl) insertWithCode(ctx context.Context, tx shared.Tx, b *sitterbooking.Booking) error {
	for attempt := 0; attempt < uc.cfg.BookingCodeMaxAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			return errs.Wrap(err, "generate sitter booking code")
		}
		b.AssignCode(code)

		inserted, err := tx.SitterBookings().Insert(ctx, b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.WithCause(sitterbooking.ErrSlotTaken, err)
			}
			return err
		}
		if inserted {
			return nil
		}
	}
	return sitterbooking.ErrBookingCodeExhausted
}

// Confirm is one conditional update that also re-checks the active overlap.
func (uc *sitterBookingUseCaseImpl) Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error) {
	return uc.transition(ctx, "SitterBooking.Confirm", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error {
		if err := requireSitter(actor, snap); err != nil {
			return err
		}
		profile, err := uc.lockSitter(ctx, tx, snap.ProviderProfileID)
		if err != nil {
			return err
		}
		if err := profile.CanAcceptBookings(); err != nil {
			return err
		}
		if err := expectSitterTransition(snap.Status, sitterbooking.StatusConfirmed); err != nil {
			return err
		}

		n, err := tx.SitterBookings().Confirm(ctx, id, now)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.WithCause(sitterbooking.ErrSlotTaken, err)
			}
			return err
		}
		if n == 0 {
			return uc.explainMiss(ctx, tx, id, []sitterbooking.Status{sitterbooking.StatusPending}, sitterbooking.ErrSlotTaken)
		}

		if err := notify(ctx, tx, TopicSitterConfirmed, snap.ClientID, sitterEvent(snap, sitterbooking.StatusConfirmed, booking.PartyProvider, now)); err != nil {
			return err
		}
		return requestCharge(ctx, tx, chargeRequest{
			BookingID:   snap.ID,
			BookingKind: booking.KindSitter,
			ClientID:    snap.ClientID,
			Amount:      snap.GrandTotal,
			RequestedAt: now,
		})
	})
}

func (uc *sitterBookingUseCaseImpl) Start(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error) {
	return uc.transition(ctx, "SitterBooking.Start", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error {
		if err := requireSitter(actor, snap); err != nil {
			return err
		}
		profile, err := uc.lockSitter(ctx, tx, snap.ProviderProfileID)
		if err != nil {
			return err
		}
		if err := expectSitterTransition(snap.Status, sitterbooking.StatusInProgress); err != nil {
			return err
		}
		if err := sitterbooking.CanStartAt(snap.StartingTime, now, uc.cfg.StartGraceWindow); err != nil {
			return err
		}

		n, err := tx.SitterBookings().Start(ctx, id, now, now.Add(uc.cfg.StartGraceWindow))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.WithCause(sitterbooking.ErrAnotherInProgress, err)
			}
			return err
		}
		if n == 0 {
			return uc.explainMiss(ctx, tx, id, sitterbooking.StartableStatuses(), sitterbooking.ErrAnotherInProgress)
		}

		if err := tx.Providers().SetAvailability(ctx, profile.ID, provider.AvailabilityOnService); err != nil {
			return err
		}
		return notify(ctx, tx, TopicSitterStarted, snap.ClientID, sitterEvent(snap, sitterbooking.StatusInProgress, booking.PartyProvider, now))
	})
}

func (uc *sitterBookingUseCaseImpl) RequestComplete(ctx context.Context, actor user.Actor, id uuid.UUID, req RequestCompleteRequest) (*SitterBookingResult, error) {
	proof, err := sitterbooking.NewCompletionProof(req.Note, req.ProofURLs)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, "SitterBooking.RequestComplete", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error {
		if err := requireSitter(actor, snap); err != nil {
			return err
		}
		if err := expectSitterTransition(snap.Status, sitterbooking.StatusRequestToComplete); err != nil {
			return err
		}
		n, err := tx.SitterBookings().RequestComplete(ctx, id, proof, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return sitterbooking.ErrInvalidTransition
		}
		return notify(ctx, tx, TopicSitterCompletionRequested, snap.ClientID, sitterEvent(snap, sitterbooking.StatusRequestToComplete, booking.PartyProvider, now))
	})
}

// Complete is reserved for the client; the sitter goes back off service.
func (uc *sitterBookingUseCaseImpl) Complete(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error) {
	return uc.transition(ctx, "SitterBooking.Complete", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error {
		switch actor.ID {
		case snap.ClientID:
		case snap.SitterUserID:
			return sitterbooking.ErrOnlyClientCompletes
		default:
			return sitterbooking.ErrNotBookingParty
		}
		if err := expectSitterTransition(snap.Status, sitterbooking.StatusCompleted); err != nil {
			return err
		}
		n, err := tx.SitterBookings().Complete(ctx, id, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return sitterbooking.ErrInvalidTransition
		}
		if err := tx.Providers().SetAvailability(ctx, snap.ProviderProfileID, provider.AvailabilityOffService); err != nil {
			return err
		}
		return notify(ctx, tx, TopicSitterCompleted, snap.SitterUserID, sitterEvent(snap, sitterbooking.StatusCompleted, booking.PartyClient, now))
	})
}

func (uc *sitterBookingUseCaseImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID) (*SitterBookingResult, error) {
	return uc.transition(ctx, "SitterBooking.Cancel", actor, id, func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error {
		var party booking.Party
		var recipient uuid.UUID
		switch actor.ID {
		case snap.ClientID:
			party, recipient = booking.PartyClient, snap.SitterUserID
		case snap.SitterUserID:
			party, recipient = booking.PartyProvider, snap.ClientID
		default:
			return sitterbooking.ErrNotBookingParty
		}
		if !uc.cancel.CanCancel(snap.Status) {
			return sitterbooking.ErrCancelNotAllowedStatus
		}
		n, err := tx.SitterBookings().Cancel(ctx, id, uc.cancel.CancelableStatuses(), party, now)
		if err != nil {
			return err
		}
		if n == 0 {
			return sitterbooking.ErrCancelNotAllowedStatus
		}
		return notify(ctx, tx, TopicSitterCancelled, recipient, sitterEvent(snap, sitterbooking.StatusCancelled, party, now))
	})
}

type sitterTransitionFunc func(ctx context.Context, tx shared.Tx, snap *shared.SitterBookingSnapshot, now time.Time) error

func (uc *sitterBookingUseCaseImpl) transition(ctx context.Context, op string, actor user.Actor, id uuid.UUID, fn sitterTransitionFunc) (res *SitterBookingResult, err error) {
	ctx, span := startCommand(ctx, op, actor, id)
	defer func() { endCommand(ctx, span, op, actor, id, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SitterBookingByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return sitterbooking.ErrBookingNotFound
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

// explainMiss rereads a booking after a conditional update matched no row. A
// status that moved on is a transition error; otherwise the guard on other
// bookings failed.
func (uc *sitterBookingUseCaseImpl) explainMiss(ctx context.Context, tx shared.Tx, id uuid.UUID, expected []sitterbooking.Status, guardErr error) error {
	cur, err := tx.Reads().SitterBookingByID(ctx, id)
	if err != nil {
		return err
	}
	for _, s := range expected {
		if cur.Status == s {
			return guardErr
		}
	}
	return sitterbooking.ErrInvalidTransition
}

func (uc *sitterBookingUseCaseImpl) result(ctx context.Context, id uuid.UUID, replayed bool) (*SitterBookingResult, error) {
	view, err := uc.views.FindSitterBooking(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSitterBookingRead)
	}
	return &SitterBookingResult{
		Booking:    view,
		Breakdown:  view.Breakdown(),
		IsReplayed: replayed,
	}, nil
}

func requireSitter(actor user.Actor, snap *shared.SitterBookingSnapshot) error {
	if actor.ID != snap.SitterUserID {
		return ErrNotSitter
	}
	return nil
}

func expectSitterTransition(from, to sitterbooking.Status) error {
	if !from.CanTransitionTo(to) {
		return errs.Wrapf(sitterbooking.ErrInvalidTransition, "%s to %s", from, to)
	}
	return nil
}

func sitterEvent(snap *shared.SitterBookingSnapshot, status sitterbooking.Status, by booking.Party, now time.Time) bookingEvent {
	return bookingEvent{
		BookingID:   snap.ID,
		BookingCode: snap.Code,
		BookingKind: booking.KindSitter,
		Status:      status.String(),
		By:          by,
		OccurredAt:  now,
	}
}
