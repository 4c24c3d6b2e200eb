package readstore

import (
	"context"

	"salon-loyalty/internal/infra"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalonReadQueries interface {
	FindSalonByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.Salons, error)
	FindSalonByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Salons, error)
}

type SalonReadStore struct {
	queries SalonReadQueries
	db      sqlc.DBTX
}

func NewSalonReadStore(queries SalonReadQueries, db sqlc.DBTX) *SalonReadStore {
	return &SalonReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SalonReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.SalonView, error) {
	row, err := r.queries.FindSalonByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find salon by owner", err)
	}
	return toSalonView(row), nil
}

func (r *SalonReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SalonView, error) {
	row, err := r.queries.FindSalonByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find salon by ID", err)
	}
	return toSalonView(row), nil
}

func toSalonView(row sqlc.Salons) *queries.SalonView {
	return &queries.SalonView{
		ID:                row.ID,
		OwnerID:           row.OwnerID,
		Name:              row.Name,
		Address:           row.Address,
		Phone:             row.Phone,
		QRCode:            row.QrCode,
		LoyaltyThreshold:  row.LoyaltyThreshold,
		RewardDescription: row.RewardDescription,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
