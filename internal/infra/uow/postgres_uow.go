package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/infra/readstore"
	"petstay-backend/internal/infra/repository"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/errs"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errContention         = errs.Conflict("resource is busy, retry the request")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(errContention, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	calendarRepo      shared.CalendarRepository
	roomBookingRepo   shared.RoomBookingRepository
	sitterBookingRepo shared.SitterBookingRepository
	providerRepo      shared.ProviderRepository
	idempotencyRepo   shared.IdempotencyRepository
	notificationRepo  shared.NotificationRepository
	commandReads      shared.CommandReads
}

func (t *pgTx) Calendar() shared.CalendarRepository {
	if t.calendarRepo == nil {
		t.calendarRepo = repository.NewCalendarRepository(t.uow.q, t.dbtx)
	}
	return t.calendarRepo
}

func (t *pgTx) RoomBookings() shared.RoomBookingRepository {
	if t.roomBookingRepo == nil {
		t.roomBookingRepo = repository.NewRoomBookingRepository(t.uow.q, t.dbtx)
	}
	return t.roomBookingRepo
}

func (t *pgTx) SitterBookings() shared.SitterBookingRepository {
	if t.sitterBookingRepo == nil {
		t.sitterBookingRepo = repository.NewSitterBookingRepository(t.uow.q, t.dbtx)
	}
	return t.sitterBookingRepo
}

func (t *pgTx) Providers() shared.ProviderRepository {
	if t.providerRepo == nil {
		t.providerRepo = repository.NewProviderRepository(t.uow.q, t.dbtx)
	}
	return t.providerRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	roomStore     *readstore.RoomReadStore
	offeringStore *readstore.OfferingReadStore
	addressStore  *readstore.AddressReadStore
	bookingStore  *readstore.BookingReadStore
}

func (r *commandReads) rooms() *readstore.RoomReadStore {
	if r.roomStore == nil {
		r.roomStore = readstore.NewRoomReadStore(r.uow.q, r.dbtx)
	}
	return r.roomStore
}

func (r *commandReads) offerings() *readstore.OfferingReadStore {
	if r.offeringStore == nil {
		r.offeringStore = readstore.NewOfferingReadStore(r.uow.q, r.dbtx)
	}
	return r.offeringStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) RoomForBooking(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	return r.rooms().FindForBooking(ctx, roomID)
}

func (r *commandReads) ActiveRoomIDsAfter(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	return r.rooms().ActiveIDsAfter(ctx, after, limit)
}

func (r *commandReads) SitterOffering(ctx context.Context, sel sitterbooking.Selection) (*sitterbooking.Offering, error) {
	return r.offerings().FindOffering(ctx, sel)
}

func (r *commandReads) AdditionalServices(ctx context.Context, ids []uuid.UUID) ([]sitterbooking.AdditionalService, error) {
	return r.offerings().FindAdditional(ctx, ids)
}

func (r *commandReads) ActiveAddress(ctx context.Context, clientID uuid.UUID) (*sitterbooking.Address, error) {
	if r.addressStore == nil {
		r.addressStore = readstore.NewAddressReadStore(r.uow.q, r.dbtx)
	}
	return r.addressStore.FindActive(ctx, clientID)
}

func (r *commandReads) RoomBookingByID(ctx context.Context, id uuid.UUID) (*shared.RoomBookingSnapshot, error) {
	view, err := r.bookings().FindRoomBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	dates, err := calendar.NewDateRange(view.CheckIn, view.CheckOut)
	if err != nil {
		return nil, errs.Wrapf(err, "stored date range of booking %s", id)
	}
	snapshot := &shared.RoomBookingSnapshot{
		ID:          view.ID,
		Code:        view.Code,
		ClientID:    view.ClientID,
		RoomID:      view.RoomID,
		OwnerUserID: view.OwnerUserID,
		Dates:       dates,
		Status:      roombooking.Status(view.Status),
		GrandTotal:  view.GrandTotal,
	}
	return snapshot, nil
}

func (r *commandReads) SitterBookingByID(ctx context.Context, id uuid.UUID) (*shared.SitterBookingSnapshot, error) {
	view, err := r.bookings().FindSitterBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.SitterBookingSnapshot{
		ID:                view.ID,
		Code:              view.Code,
		ClientID:          view.ClientID,
		ProviderProfileID: view.ProviderProfileID,
		SitterUserID:      view.SitterUserID,
		StartingTime:      view.StartingTime,
		FinishingTime:     view.FinishingTime,
		Status:            sitterbooking.Status(view.Status),
		GrandTotal:        view.GrandTotal,
	}
	return snapshot, nil
}
