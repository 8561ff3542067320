package repository

import (
	"context"

	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProviderWriteQueries interface {
	LockProviderProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ProviderProfiles, error)
	UpdateProviderAvailability(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProviderAvailabilityParams) (int64, error)
}

type ProviderRepository struct {
	queries ProviderWriteQueries
	db      sqlc.DBTX
}

func NewProviderRepository(queries ProviderWriteQueries, db sqlc.DBTX) *ProviderRepository {
	return &ProviderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProviderRepository) Lock(ctx context.Context, profileID uuid.UUID) (*provider.Profile, error) {
	row, err := r.queries.LockProviderProfile(ctx, r.db, profileID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock provider profile", err)
	}
	return ToProviderProfile(row), nil
}

func (r *ProviderRepository) SetAvailability(ctx context.Context, profileID uuid.UUID, availability provider.Availability) error {
	n, err := r.queries.UpdateProviderAvailability(ctx, r.db, sqlc.UpdateProviderAvailabilityParams{
		Availability: string(availability),
		ID:           profileID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update provider availability", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "provider profile not found")
	}
	return nil
}

func ToProviderProfile(row sqlc.ProviderProfiles) *provider.Profile {
	return &provider.Profile{
		ID:           row.ID,
		UserID:       row.UserID,
		Kind:         provider.Kind(row.Kind),
		Status:       provider.Status(row.Status),
		Availability: provider.Availability(row.Availability),
	}
}
