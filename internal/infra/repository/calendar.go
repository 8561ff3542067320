package repository

import (
	"context"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CalendarWriteQueries interface {
	GenerateCalendarDays(ctx context.Context, db sqlc.DBTX, arg sqlc.GenerateCalendarDaysParams) (int64, error)
	LockCalendarDays(ctx context.Context, db sqlc.DBTX, arg sqlc.LockCalendarDaysParams) (int64, error)
	UnlockCalendarDays(ctx context.Context, db sqlc.DBTX, arg sqlc.UnlockCalendarDaysParams) (int64, error)
	ListCalendarDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCalendarDaysParams) ([]sqlc.RoomCalendarDays, error)
	ListCalendarDaysForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCalendarDaysForUpdateParams) ([]sqlc.RoomCalendarDays, error)
}

// CalendarRepository stores per-room day rows. It does no business validation.
type CalendarRepository struct {
	queries CalendarWriteQueries
	db      sqlc.DBTX
}

func NewCalendarRepository(queries CalendarWriteQueries, db sqlc.DBTX) *CalendarRepository {
	return &CalendarRepository{
		queries: queries,
		db:      db,
	}
}

// Generate is idempotent; it returns the number of rows created.
func (r *CalendarRepository) Generate(ctx context.Context, roomID uuid.UUID, from time.Time, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	created, err := r.queries.GenerateCalendarDays(ctx, r.db, sqlc.GenerateCalendarDaysParams{
		RoomID:    roomID,
		StartDate: pgconv.DateToPgtype(from),
		Days:      int32(days),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to generate calendar days", err)
	}
	return created, nil
}

func (r *CalendarRepository) Lock(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error) {
	n, err := r.queries.LockCalendarDays(ctx, r.db, sqlc.LockCalendarDaysParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut: pgconv.DateToPgtype(dates.CheckOut()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to lock calendar days", err)
	}
	return n, nil
}

func (r *CalendarRepository) Unlock(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) (int64, error) {
	n, err := r.queries.UnlockCalendarDays(ctx, r.db, sqlc.UnlockCalendarDaysParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut: pgconv.DateToPgtype(dates.CheckOut()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to unlock calendar days", err)
	}
	return n, nil
}

func (r *CalendarRepository) RowsInRange(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	rows, err := r.queries.ListCalendarDays(ctx, r.db, sqlc.ListCalendarDaysParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut: pgconv.DateToPgtype(dates.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar days", err)
	}
	return ToCalendarDays(rows), nil
}

func (r *CalendarRepository) RowsInRangeForUpdate(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	rows, err := r.queries.ListCalendarDaysForUpdate(ctx, r.db, sqlc.ListCalendarDaysForUpdateParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut: pgconv.DateToPgtype(dates.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock calendar rows", err)
	}
	return ToCalendarDays(rows), nil
}

func ToCalendarDays(rows []sqlc.RoomCalendarDays) []calendar.Day {
	days := make([]calendar.Day, 0, len(rows))
	for _, row := range rows {
		days = append(days, calendar.Day{
			Date:          pgconv.DateFromPgtype(row.Date),
			IsAvailable:   row.IsAvailable,
			PriceOverride: pgconv.Int64PtrFromPgtype(row.PriceOverride),
		})
	}
	return days
}
