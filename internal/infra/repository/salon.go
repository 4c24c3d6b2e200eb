package repository

import (
	"context"

	"salon-loyalty/internal/domain/salon"
	"salon-loyalty/internal/infra"
	"salon-loyalty/internal/infra/repository/converter"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
)

type SalonWriteQueries interface {
	UpsertSalonByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSalonByOwnerParams) (sqlc.UpsertSalonByOwnerRow, error)
}

type SalonRepository struct {
	queries SalonWriteQueries
}

func NewSalonRepository(queries SalonWriteQueries) *SalonRepository {
	return &SalonRepository{queries: queries}
}

// UpsertByOwner inserts the salon or updates the owner's existing one. The
// stored QR payload and id are kept on update.
func (r *SalonRepository) UpsertByOwner(ctx context.Context, tx sqlc.DBTX, s *salon.Salon) (*salon.Salon, bool, error) {
	row, err := r.queries.UpsertSalonByOwner(ctx, tx, converter.SalonToUpsertParams(s))
	if err != nil {
		return nil, false, infra.WrapRepoErr("failed to save salon", err)
	}
	saved, err := converter.SalonFromUpsertRow(row)
	if err != nil {
		return nil, false, infra.WrapRepoErr("stored salon is invalid", err, infra.KindDBFailure)
	}
	return saved, row.Inserted, nil
}
