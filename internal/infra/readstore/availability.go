package readstore

import (
	"context"
	"time"

	"petstay-backend/internal/domain/calendar"
	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/infra"
	"petstay-backend/internal/infra/repository"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityReadQueries interface {
	GetRoomForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomForBookingRow, error)
	ListCalendarDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCalendarDaysParams) ([]sqlc.RoomCalendarDays, error)
	SearchAvailableRoomDays(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchAvailableRoomDaysParams) ([]sqlc.SearchAvailableRoomDaysRow, error)
	GetProviderProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ProviderProfiles, error)
	CountOverlappingSitterBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountOverlappingSitterBookingsParams) (int64, error)
}

type AvailabilityReadStore struct {
	queries AvailabilityReadQueries
	db      sqlc.DBTX
}

func NewAvailabilityReadStore(queries AvailabilityReadQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AvailabilityReadStore) FindRoomBase(ctx context.Context, roomID uuid.UUID) (*queries.RoomBase, error) {
	row, err := r.queries.GetRoomForBooking(ctx, r.db, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return &queries.RoomBase{
		ID:            row.ID,
		PricePerNight: pricing.Money(row.PricePerNight),
	}, nil
}

func (r *AvailabilityReadStore) FindCalendarDays(ctx context.Context, roomID uuid.UUID, dates calendar.DateRange) ([]calendar.Day, error) {
	rows, err := r.queries.ListCalendarDays(ctx, r.db, sqlc.ListCalendarDaysParams{
		RoomID:   roomID,
		CheckIn:  pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut: pgconv.DateToPgtype(dates.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar days", err)
	}
	return repository.ToCalendarDays(rows), nil
}

func (r *AvailabilityReadStore) SearchRoomDays(ctx context.Context, dates calendar.DateRange, filter queries.RoomSearchFilter) ([]queries.RoomDayRow, error) {
	rows, err := r.queries.SearchAvailableRoomDays(ctx, r.db, sqlc.SearchAvailableRoomDaysParams{
		CheckIn:           pgconv.DateToPgtype(dates.CheckIn()),
		CheckOut:          pgconv.DateToPgtype(dates.CheckOut()),
		ProviderProfileID: pgconv.UUIDPtrToPgtype(filter.ProviderProfileID),
		HotelID:           pgconv.UUIDPtrToPgtype(filter.HotelID),
		MinPetCapacity:    toPgInt4(filter.MinPetCapacity),
		MinHumanCapacity:  toPgInt4(filter.MinHumanCapacity),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}

	out := make([]queries.RoomDayRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.RoomDayRow{
			RoomID:            row.RoomID,
			RoomName:          row.RoomName,
			HotelID:           row.HotelID,
			HotelName:         row.HotelName,
			ProviderProfileID: row.ProviderProfileID,
			PricePerNight:     pricing.Money(row.PricePerNight),
			PetCapacity:       int(row.PetCapacity),
			HumanCapacity:     int(row.HumanCapacity),
			Day: calendar.Day{
				Date:          pgconv.DateFromPgtype(row.Date),
				IsAvailable:   true,
				PriceOverride: pgconv.Int64PtrFromPgtype(row.PriceOverride),
			},
		})
	}
	return out, nil
}

func (r *AvailabilityReadStore) FindProviderProfile(ctx context.Context, profileID uuid.UUID) (*provider.Profile, error) {
	row, err := r.queries.GetProviderProfile(ctx, r.db, profileID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get provider profile", err)
	}
	return repository.ToProviderProfile(row), nil
}

func (r *AvailabilityReadStore) CountActiveOverlaps(ctx context.Context, profileID uuid.UUID, start, end time.Time) (int64, error) {
	n, err := r.queries.CountOverlappingSitterBookings(ctx, r.db, sqlc.CountOverlappingSitterBookingsParams{
		ProviderProfileID: profileID,
		FinishingTime:     pgconv.TimeToPgtype(end),
		StartingTime:      pgconv.TimeToPgtype(start),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping sitter bookings", err)
	}
	return n, nil
}

func toPgInt4(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}
