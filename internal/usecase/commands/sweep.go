package commands

import (
	"context"
	"log/slog"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/pkg/config"
	"petstay-backend/internal/pkg/tracing"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// maxBatchesPerRun bounds one sweep run; the next scheduled run picks up the rest.
const maxBatchesPerRun = 1000

// SweepCommands are the scheduled maintenance transitions. Every run is
// idempotent and processes bounded batches, one transaction per batch.
type SweepCommands interface {
	ExpirePendingSitterBookings(ctx context.Context) (int64, error)
	MarkLateSitterBookings(ctx context.Context) (int64, error)
	CancelStalePendingRoomBookings(ctx context.Context) (int64, error)
	ExtendCalendarHorizons(ctx context.Context) (int64, error)
	PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error)
}

type sweepUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.BookingConfig
	loc   *time.Location
}

func NewSweepUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) SweepCommands {
	return &sweepUseCaseImpl{uow: uow, clock: clk, cfg: cfg, loc: cfg.Location()}
}

// batchFunc processes one batch and reports rows changed and rows claimed.
type batchFunc func(ctx context.Context, tx shared.Tx, now time.Time) (changed int64, claimed int, err error)

func (uc *sweepUseCaseImpl) run(ctx context.Context, name string, fn batchFunc) (int64, error) {
	return uc.runBatches(ctx, name, fn, nil)
}

// runBatches calls committed after each batch transaction commits. A retried
// transaction re-runs fn, so state carried between batches belongs there.
func (uc *sweepUseCaseImpl) runBatches(ctx context.Context, name string, fn batchFunc, committed func()) (total int64, err error) {
	ctx, span := tracing.Start(ctx, "Sweep."+name)
	defer func() {
		span.SetAttributes(attribute.Int64("sweep.changed", total))
		tracing.End(span, err)
	}()

	limit := uc.cfg.SweepBatchSize
	for i := 0; i < maxBatchesPerRun; i++ {
		var changed int64
		var claimed int
		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			changed, claimed, err = fn(ctx, tx, uc.clock.Now())
			return err
		})
		if err != nil {
			slog.ErrorContext(ctx, "sweep batch failed", slog.String("sweep", name), slog.Int("batch", i), slog.Any("error", err))
			return total, err
		}
		if committed != nil {
			committed()
		}
		total += changed
		if claimed < limit {
			break
		}
	}
	if total > 0 {
		slog.InfoContext(ctx, "sweep finished", slog.String("sweep", name), slog.Int64("changed", total))
	}
	return total, nil
}

func (uc *sweepUseCaseImpl) ExpirePendingSitterBookings(ctx context.Context) (int64, error) {
	return uc.run(ctx, "ExpirePendingSitterBookings", func(ctx context.Context, tx shared.Tx, now time.Time) (int64, int, error) {
		cands, err := tx.SitterBookings().ClaimExpirable(ctx, now.Add(-uc.cfg.ExpireGrace), uc.cfg.SweepBatchSize)
		if err != nil {
			return 0, 0, err
		}
		n, err := tx.SitterBookings().Expire(ctx, candidateIDs(cands), now)
		if err != nil {
			return 0, 0, err
		}
		for _, c := range cands {
			if err := notify(ctx, tx, TopicSitterExpired, c.ClientID, sweepEvent(c.ID, booking.KindSitter, sitterbooking.StatusExpired.String(), now)); err != nil {
				return 0, 0, err
			}
		}
		return n, len(cands), nil
	})
}

func (uc *sweepUseCaseImpl) MarkLateSitterBookings(ctx context.Context) (int64, error) {
	return uc.run(ctx, "MarkLateSitterBookings", func(ctx context.Context, tx shared.Tx, now time.Time) (int64, int, error) {
		cands, err := tx.SitterBookings().ClaimLate(ctx, now, uc.cfg.SweepBatchSize)
		if err != nil {
			return 0, 0, err
		}
		n, err := tx.SitterBookings().MarkLate(ctx, candidateIDs(cands), now)
		if err != nil {
			return 0, 0, err
		}
		for _, c := range cands {
			if err := notify(ctx, tx, TopicSitterLate, c.ClientID, sweepEvent(c.ID, booking.KindSitter, sitterbooking.StatusLate.String(), now)); err != nil {
				return 0, 0, err
			}
		}
		return n, len(cands), nil
	})
}

// CancelStalePendingRoomBookings cancels unconfirmed bookings whose check-in
// day has passed and frees their days.
func (uc *sweepUseCaseImpl) CancelStalePendingRoomBookings(ctx context.Context) (int64, error) {
	return uc.run(ctx, "CancelStalePendingRoomBookings", func(ctx context.Context, tx shared.Tx, now time.Time) (int64, int, error) {
		cands, err := tx.RoomBookings().ClaimStalePending(ctx, calendar.Today(now, uc.loc), uc.cfg.SweepBatchSize)
		if err != nil {
			return 0, 0, err
		}
		var changed int64
		for _, c := range cands {
			n, err := tx.RoomBookings().Cancel(ctx, c.ID, booking.PartySystem, now)
			if err != nil {
				return 0, 0, err
			}
			if n == 0 {
				continue
			}
			if _, err := tx.Calendar().Unlock(ctx, c.RoomID, c.Dates); err != nil {
				return 0, 0, err
			}
			if err := notify(ctx, tx, TopicRoomCancelled, c.ClientID, bookingEvent{
				BookingID:   c.ID,
				BookingKind: booking.KindRoom,
				Status:      roombooking.StatusCancelled.String(),
				By:          booking.PartySystem,
				OccurredAt:  now,
			}); err != nil {
				return 0, 0, err
			}
			changed += n
		}
		return changed, len(cands), nil
	})
}

// ExtendCalendarHorizons keeps every active room generated up to the horizon.
func (uc *sweepUseCaseImpl) ExtendCalendarHorizons(ctx context.Context) (int64, error) {
	after, next := uuid.Nil, uuid.Nil
	return uc.runBatches(ctx, "ExtendCalendarHorizons", func(ctx context.Context, tx shared.Tx, now time.Time) (int64, int, error) {
		ids, err := tx.Reads().ActiveRoomIDsAfter(ctx, after, uc.cfg.SweepBatchSize)
		if err != nil {
			return 0, 0, err
		}
		next = after
		from := calendar.Today(now, uc.loc)
		var created int64
		for _, id := range ids {
			n, err := tx.Calendar().Generate(ctx, id, from, uc.cfg.CalendarHorizonDays)
			if err != nil {
				return 0, 0, err
			}
			created += n
		}
		if len(ids) > 0 {
			next = ids[len(ids)-1]
		}
		return created, len(ids), nil
	}, func() { after = next })
}

func (uc *sweepUseCaseImpl) PurgeExpiredIdempotencyKeys(ctx context.Context) (int64, error) {
	return uc.run(ctx, "PurgeExpiredIdempotencyKeys", func(ctx context.Context, tx shared.Tx, now time.Time) (int64, int, error) {
		n, err := tx.Idempotency().DeleteExpired(ctx, now, uc.cfg.SweepBatchSize)
		if err != nil {
			return 0, 0, err
		}
		return n, int(n), nil
	})
}

func candidateIDs(cands []shared.SitterSweepCandidate) []uuid.UUID {
	ids := make([]uuid.UUID, len(cands))
	for i, c := range cands {
		ids[i] = c.ID
	}
	return ids
}

func sweepEvent(id uuid.UUID, kind booking.Kind, status string, now time.Time) bookingEvent {
	return bookingEvent{
		BookingID:   id,
		BookingKind: kind,
		Status:      status,
		By:          booking.PartySystem,
		OccurredAt:  now,
	}
}
