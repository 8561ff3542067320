package readstore

import (
	"context"

	"petstay-backend/internal/domain/pricing"
	"petstay-backend/internal/domain/sitterbooking"
	"petstay-backend/internal/infra"
	sqlc "petstay-backend/internal/infra/sqlc/generated"
	"petstay-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferingReadQueries interface {
	GetSitterService(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSitterServiceRow, error)
	GetSitterPackage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSitterPackageRow, error)
	ListPackageServiceIDs(ctx context.Context, db sqlc.DBTX, packageID uuid.UUID) ([]uuid.UUID, error)
	ListSitterServicesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.ListSitterServicesByIDsRow, error)
}

type OfferingReadStore struct {
	queries OfferingReadQueries
	db      sqlc.DBTX
}

func NewOfferingReadStore(queries OfferingReadQueries, db sqlc.DBTX) *OfferingReadStore {
	return &OfferingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferingReadStore) FindOffering(ctx context.Context, sel sitterbooking.Selection) (*sitterbooking.Offering, error) {
	if sel.Kind() == sitterbooking.OfferingPackage {
		return r.findPackage(ctx, sel.ID())
	}
	return r.findService(ctx, sel.ID())
}

func (r *OfferingReadStore) findService(ctx context.Context, id uuid.UUID) (*sitterbooking.Offering, error) {
	row, err := r.queries.GetSitterService(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sitter service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sitter service", err)
	}
	return &sitterbooking.Offering{
		ID:                row.ID,
		Kind:              sitterbooking.OfferingService,
		ProviderProfileID: row.ProviderProfileID,
		Name:              row.Name,
		Price:             pricing.Money(row.Price),
		DurationMinutes:   int(row.DurationMinutes),
		Active:            row.IsActive,
	}, nil
}

func (r *OfferingReadStore) findPackage(ctx context.Context, id uuid.UUID) (*sitterbooking.Offering, error) {
	row, err := r.queries.GetSitterPackage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sitter package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sitter package", err)
	}

	included, err := r.queries.ListPackageServiceIDs(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list package services", err)
	}

	return &sitterbooking.Offering{
		ID:                 row.ID,
		Kind:               sitterbooking.OfferingPackage,
		ProviderProfileID:  row.ProviderProfileID,
		Name:               row.Name,
		Price:              pricing.Money(row.Price),
		DurationMinutes:    int(row.DurationMinutes),
		Active:             row.IsActive,
		IncludedServiceIDs: included,
	}, nil
}

// FindAdditional returns the services that exist among ids; callers compare lengths to detect unknown ids.
func (r *OfferingReadStore) FindAdditional(ctx context.Context, ids []uuid.UUID) ([]sitterbooking.AdditionalService, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListSitterServicesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list additional services", err)
	}

	services := make([]sitterbooking.AdditionalService, 0, len(rows))
	for _, row := range rows {
		services = append(services, sitterbooking.AdditionalService{
			ID:                row.ID,
			ProviderProfileID: row.ProviderProfileID,
			Name:              row.Name,
			Price:             pricing.Money(row.Price),
			DurationMinutes:   int(row.DurationMinutes),
			Active:            row.IsActive,
		})
	}
	return services, nil
}
