package repository

import (
	"context"
	"time"

	"petstay-backend/internal/domain/booking"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SitterBookingWriteQueries interface {
	InsertSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSitterBookingParams) (uuid.UUID, error)
	InsertSitterBookingAdditionalService(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSitterBookingAdditionalServiceParams) error
	CountOverlappingSitterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingSitterBookingsParams) (int64, error)
	ConfirmSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmSitterBookingParams) (int64, error)
	StartSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.StartSitterBookingParams) (int64, error)
	RequestCompleteSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.RequestCompleteSitterBookingParams) (int64, error)
	CompleteSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteSitterBookingParams) (int64, error)
	CancelSitterBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelSitterBookingParams) (int64, error)
	ClaimExpirableSitterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpirableSitterBookingsParams) ([]sqlc.ClaimExpirableSitterBookingsRow, error)
	ExpireSitterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireSitterBookingsParams) (int64, error)
	ClaimLateSitterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimLateSitterBookingsParams) ([]sqlc.ClaimLateSitterBookingsRow, error)
	MarkSitterBookingsLate(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkSitterBookingsLateParams) (int64, error)
}

type SitterBookingRepository struct {
	queries SitterBookingWriteQueries
	db      sqlc.DBTX
}

func NewSitterBookingRepository(queries SitterBookingWriteQueries, db sqlc.DBTX) *SitterBookingRepository {
	return &SitterBookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SitterBookingRepository) Insert(ctx context.Context, b *sitterbooking.Booking) (bool, error) {
	id, err := r.queries.InsertSitterBooking(ctx, r.db, sqlc.InsertSitterBookingParams{
		ID:                b.ID(),
		BookingCode:       b.Code(),
		ClientID:          b.ClientID(),
		ProviderProfileID: b.ProviderProfileID(),
		ServiceID:         pgconv.UUIDPtrToPgtype(b.ServiceID()),
		PackageID:         pgconv.UUIDPtrToPgtype(b.PackageID()),
		AddressID:         b.Address().ID,
		AddressSnapshot:   b.Address().Snapshot,
		StartingTime:      pgconv.TimeToPgtype(b.StartingTime()),
		FinishingTime:     pgconv.TimeToPgtype(b.FinishingTime()),
		DurationMinutes:   int32(b.DurationMinutes()),
		Price:             b.Price().Int64(),
		PlatformFee:       b.PlatformFee().Int64(),
		GrandTotal:        b.GrandTotal().Int64(),
		Note:              pgconv.StringPtrToPgtype(b.Note()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert sitter booking", err)
	}

	for _, extra := range b.Additional() {
		err := r.queries.InsertSitterBookingAdditionalService(ctx, r.db, sqlc.InsertSitterBookingAdditionalServiceParams{
			BookingID:       id,
			ServiceID:       extra.ID,
			Name:            extra.Name,
			Price:           extra.Price.Int64(),
			DurationMinutes: int32(extra.DurationMinutes),
		})
		if err != nil {
			return false, infra.WrapRepoErr("failed to insert additional service line", err)
		}
	}
	return true, nil
}

// CountOverlapping counts active bookings of the provider whose interval intersects [start, end).
func (r *SitterBookingRepository) CountOverlapping(ctx context.Context, profileID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	n, err := r.queries.CountOverlappingSitterBookings(ctx, r.db, sqlc.CountOverlappingSitterBookingsParams{
		ProviderProfileID: profileID,
		FinishingTime:     pgconv.TimeToPgtype(end),
		StartingTime:      pgconv.TimeToPgtype(start),
		ExcludeID:         pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping sitter bookings", err)
	}
	return n, nil
}

func (r *SitterBookingRepository) Confirm(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.ConfirmSitterBooking(ctx, r.db, sqlc.ConfirmSitterBookingParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm sitter booking", err)
	}
	return n, nil
}

func (r *SitterBookingRepository) Start(ctx context.Context, id uuid.UUID, now, graceDeadline time.Time) (int64, error) {
	n, err := r.queries.StartSitterBooking(ctx, r.db, sqlc.StartSitterBookingParams{
		Now:           pgconv.TimeToPgtype(now),
		ID:            id,
		GraceDeadline: pgconv.TimeToPgtype(graceDeadline),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to start sitter booking", err)
	}
	return n, nil
}

func (r *SitterBookingRepository) RequestComplete(ctx context.Context, id uuid.UUID, proof sitterbooking.CompletionProof, now time.Time) (int64, error) {
	note := pgtype.Text{}
	if proof.Note() != "" {
		note = pgconv.StringToPgtype(proof.Note())
	}
	n, err := r.queries.RequestCompleteSitterBooking(ctx, r.db, sqlc.RequestCompleteSitterBookingParams{
		CompletionNote:      note,
		CompletionProofUrls: proof.URLs(),
		Now:                 pgconv.TimeToPgtype(now),
		ID:                  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to request completion", err)
	}
	return n, nil
}

func (r *SitterBookingRepository) Complete(ctx context.Context, id uuid.UUID, now time.Time) (int64, error) {
	n, err := r.queries.CompleteSitterBooking(ctx, r.db, sqlc.CompleteSitterBookingParams{
		Now: pgconv.TimeToPgtype(now),
		ID:  id,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete sitter booking", err)
	}
	return n, nil
}

func (r *SitterBookingRepository) Cancel(ctx context.Context, id uuid.UUID, from []sitterbooking.Status, by booking.Party, now time.Time) (int64, error) {
	n, err := r.queries.CancelSitterBooking(ctx, r.db, sqlc.CancelSitterBookingParams{
		CancelledBy:  pgconv.StringToPgtype(by.String()),
		Now:          pgconv.TimeToPgtype(now),
		ID:           id,
		FromStatuses: sitterbooking.StatusStrings(from),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel sitter booking", err)
	}
	return n, nil
}

// ClaimExpirable locks PENDING bookings that started before cutoff.
func (r *SitterBookingRepository) ClaimExpirable(ctx context.Context, cutoff time.Time, limit int) ([]shared.SitterSweepCandidate, error) {
	rows, err := r.queries.ClaimExpirableSitterBookings(ctx, r.db, sqlc.ClaimExpirableSitterBookingsParams{
		Cutoff:     pgconv.TimeToPgtype(cutoff),
		BatchLimit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim expirable sitter bookings", err)
	}
	out := make([]shared.SitterSweepCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.SitterSweepCandidate{
			ID:                row.ID,
			ClientID:          row.ClientID,
			ProviderProfileID: row.ProviderProfileID,
			StartingTime:      pgconv.TimeFromPgtype(row.StartingTime),
		})
	}
	return out, nil
}

func (r *SitterBookingRepository) Expire(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.ExpireSitterBookings(ctx, r.db, sqlc.ExpireSitterBookingsParams{
		Now: pgconv.TimeToPgtype(now),
		Ids: ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire sitter bookings", err)
	}
	return n, nil
}

// ClaimLate locks CONFIRMED bookings whose start has passed.
func (r *SitterBookingRepository) ClaimLate(ctx context.Context, now time.Time, limit int) ([]shared.SitterSweepCandidate, error) {
	rows, err := r.queries.ClaimLateSitterBookings(ctx, r.db, sqlc.ClaimLateSitterBookingsParams{
		Now:        pgconv.TimeToPgtype(now),
		BatchLimit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim late sitter bookings", err)
	}
	out := make([]shared.SitterSweepCandidate, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.SitterSweepCandidate{
			ID:                row.ID,
			ClientID:          row.ClientID,
			ProviderProfileID: row.ProviderProfileID,
			StartingTime:      pgconv.TimeFromPgtype(row.StartingTime),
		})
	}
	return out, nil
}

func (r *SitterBookingRepository) MarkLate(ctx context.Context, ids []uuid.UUID, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	n, err := r.queries.MarkSitterBookingsLate(ctx, r.db, sqlc.MarkSitterBookingsLateParams{
		Now: pgconv.TimeToPgtype(now),
		Ids: ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark sitter bookings late", err)
	}
	return n, nil
}
