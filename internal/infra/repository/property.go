package repository

import (
	"context"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/infra"
	"stay-booking/internal/infra/repository/converter"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=property.go -destination=../../../tests/mock/repository/property_mock.go -package=repositorymock

type PropertyQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
}

type PropertyRepository struct {
	queries PropertyQueries
	db      sqlc.DBTX
}

func NewPropertyRepository(queries PropertyQueries, db sqlc.DBTX) *PropertyRepository {
	return &PropertyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property", err)
	}

	prop, err := converter.PropertyFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert property row", err)
	}
	return prop, nil
}
