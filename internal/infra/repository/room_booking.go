package repository

import (
	"context"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type RoomBookingWriteQueries interface {
	InsertRoomBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRoomBookingParams) (uuid.UUID, error)
	ConfirmRoomBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmRoomBookingParams) (int64, error)
	CheckInRoomBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CheckInRoomBookingParams) (int64, error)
	CheckOutRoomBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CheckOutRoomBookingParams) (int64, error)
	CancelRoomBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelRoomBookingParams) (int64, error)
	ClaimStalePendingRoomBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimStalePendingRoomBookingsParams) ([]sqlc.ClaimStalePendingRoomBookingsRow, error)
}

type RoomBookingRepository struct {
	queries RoomBookingWriteQueries
	db      sqlc.DBTX
}

func NewRoomBookingRepository(queries RoomBookingWriteQueries, db sqlc.DBTX) *RoomBookingRepository {
	return &RoomBookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomBookingRepository) Insert(ctx context.Context, b *roombooking.Booking) (bool, error) {
	_, err := r.queries.InsertRoomBooking(ctx, r.db, sqlc.InsertRoomBookingParams{
		ID:          b.ID(),
		BookingCode: b.Code(),
		ClientID:    b.ClientID(),
		HotelID:     b.HotelID(),
		RoomID:      b.RoomID(),
		CheckIn:     pgconv.DateToPgtype(b.Dates().CheckIn()),
		CheckOut:    pgconv.DateToPgtype(b.Dates().CheckOut()),
		Nights:      int32(b.Dates().Nights()),
		PetCount:    int32(b.Guests().Pets),
		HumanCount:  int32(b.Guests().Humans),
		Price:       b.Price().Int64(),
		PlatformFee: b.PlatformFee().Int64(),
		GrandTotal:  b.GrandTotal().Int64(),
		Note:        pgconv.StringPtrToPgtype(b.Note()),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		// ON CONFLICT (booking_code) DO NOTHING returns no row
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert room booking", err)
	}
	return true, nil
}

func (r *RoomBookingRepository) Confirm(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ConfirmRoomBooking(ctx, r.db, sqlc.ConfirmRoomBookingParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm room booking", err)
	}
	return n, nil
}

func (r *RoomBookingRepository) CheckIn(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.CheckInRoomBooking(ctx, r.db, sqlc.CheckInRoomBookingParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check in room booking", err)
	}
	return n, nil
}

func (r *RoomBookingRepository) CheckOut(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.CheckOutRoomBooking(ctx, r.db, sqlc.CheckOutRoomBookingParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to check out room booking", err)
	}
	return n, nil
}

func (r *RoomBookingRepository) Cancel(ctx context.Context, id uuid.UUID, by booking.Party, now time.Time) (int64, error) {
	n, err := r.queries.CancelRoomBooking(ctx, r.db, sqlc.CancelRoomBookingParams{
		CancelledBy: pgconv.StringToPgtype(by.String()),
		Now:         pgconv.TimeToPgtype(now),
		ID:          id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel room booking", err)
	}
	return n, nil
}

// ClaimStalePending locks PENDING bookings whose check-in has passed, skipping rows held by other sweepers.
func (r *RoomBookingRepository) ClaimStalePending(ctx context.Context, today time.Time, limit int) ([]shared.StaleRoomBooking, error) {
	rows, err := r.queries.ClaimStalePendingRoomBookings(ctx, r.db, sqlc.ClaimStalePendingRoomBookingsParams{
		Today:      pgconv.DateToPgtype(today),
		BatchLimit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim stale room bookings", err)
	}

	out := make([]shared.StaleRoomBooking, 0, len(rows))
	for _, row := range rows {
		dates, err := calendar.NewDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
		if err != nil {
			return nil, errors.Wrapf(err, "stored date range of booking %s", row.ID)
		}
		out = append(out, shared.StaleRoomBooking{
			ID:       row.ID,
			ClientID: row.ClientID,
			RoomID:   row.RoomID,
			Dates:    dates,
		})
	}
	return out, nil
}
