package converter

import (
	"salon-loyalty/internal/domain/salon"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
)

func SalonToUpsertParams(s *salon.Salon) sqlc.UpsertSalonByOwnerParams {
	d := s.Details()
	return sqlc.UpsertSalonByOwnerParams{
		ID:                s.ID(),
		Name:              d.Name,
		Address:           d.Address,
		Phone:             d.Phone,
		OwnerID:           s.OwnerID(),
		QrCode:            s.QRCode(),
		LoyaltyThreshold:  d.Threshold.Value(),
		RewardDescription: d.RewardDescription,
		CreatedAt:         s.UpdatedAt(),
	}
}

// SalonFromUpsertRow rebuilds the stored salon. Rows come from the database,
// so validation failures mean the schema and domain disagree.
func SalonFromUpsertRow(row sqlc.UpsertSalonByOwnerRow) (*salon.Salon, error) {
	d, err := salon.NewDetails(row.Name, row.Address, row.Phone, row.LoyaltyThreshold, row.RewardDescription)
	if err != nil {
		return nil, err
	}
	return salon.ReconstructSalon(row.ID, row.OwnerID, d, row.QrCode, row.CreatedAt, row.UpdatedAt), nil
}
