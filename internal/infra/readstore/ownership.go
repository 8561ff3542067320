package readstore

import (
	"context"

	"petstay-backend/internal/domain/provider"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type OwnershipReadQueries interface {
	ListRoomIDsByOwner(ctx context.Context, db sqlc.DBTX, ownerUserID uuid.UUID) ([]uuid.UUID, error)
	ListProviderProfileIDsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListProviderProfileIDsByOwnerParams) ([]uuid.UUID, error)
}

// OwnershipReadStore resolves the resources a provider user owns.
type OwnershipReadStore struct {
	queries OwnershipReadQueries
	db      sqlc.DBTX
}

func NewOwnershipReadStore(queries OwnershipReadQueries, db sqlc.DBTX) *OwnershipReadStore {
	return &OwnershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OwnershipReadStore) OwnedRoomIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListRoomIDsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned rooms", err)
	}
	return ids, nil
}

func (r *OwnershipReadStore) OwnedSitterProfileIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListProviderProfileIDsByOwner(ctx, r.db, sqlc.ListProviderProfileIDsByOwnerParams{
		OwnerUserID: ownerID,
		Kind:        string(provider.KindSitter),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned sitter profiles", err)
	}
	return ids, nil
}
