package readstore

import (
	"context"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/domain/roombooking"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"
	"petstay-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

const roomStatusActive = "ACTIVE"

type RoomReadQueries interface {
	GetRoomForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRoomForBookingRow, error)
	ListActiveRoomIDsAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveRoomIDsAfterParams) ([]uuid.UUID, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) FindForBooking(ctx context.Context, roomID uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomForBooking(ctx, r.db, roomID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	return &shared.RoomSnapshot{
		Room: roombooking.Room{
			ID:                row.ID,
			HotelID:           row.HotelID,
			ProviderProfileID: row.ProviderProfileID,
			PricePerNight:     pricing.Money(row.PricePerNight),
			PetCapacity:       int(row.PetCapacity),
			HumanCapacity:     int(row.HumanCapacity),
			Active:            row.Status == roomStatusActive,
		},
		Name:        row.Name,
		HotelName:   row.HotelName,
		OwnerUserID: row.OwnerUserID,
		Provider: provider.Profile{
			ID:           row.ProviderProfileID,
			UserID:       row.OwnerUserID,
			Kind:         provider.KindHotel,
			Status:       provider.Status(row.ProviderStatus),
			Availability: provider.Availability(row.ProviderAvailability),
		},
	}, nil
}

// ActiveIDsAfter pages through ACTIVE rooms in id order.
func (r *RoomReadStore) ActiveIDsAfter(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	ids, err := r.queries.ListActiveRoomIDsAfter(ctx, r.db, sqlc.ListActiveRoomIDsAfterParams{
		AfterID:    after,
		BatchLimit: int32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active rooms", err)
	}
	return ids, nil
}
