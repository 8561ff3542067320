package readstore

import (
	"context"
	"fmt"

	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AddressReadQueries interface {
	GetActiveClientAddress(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetActiveClientAddressRow, error)
}

type AddressReadStore struct {
	queries AddressReadQueries
	db      sqlc.DBTX
}

func NewAddressReadStore(queries AddressReadQueries, db sqlc.DBTX) *AddressReadStore {
	return &AddressReadStore{
		queries: queries,
		db:      db,
	}
}

// FindActive returns nil when the client has no active address.
func (r *AddressReadStore) FindActive(ctx context.Context, clientID uuid.UUID) (*sitterbooking.Address, error) {
	row, err := r.queries.GetActiveClientAddress(ctx, r.db, clientID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get active address", err)
	}
	return &sitterbooking.Address{
		ID:       row.ID,
		Snapshot: formatAddress(row),
	}, nil
}

func formatAddress(row sqlc.GetActiveClientAddressRow) string {
	return fmt.Sprintf("%s: %s, %s %s", row.Label, row.Line1, row.City, row.PostalCode)
}
