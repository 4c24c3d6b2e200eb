package converter

import (
	"salon-loyalty/internal/domain/visit"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/pkg/pgconv"
)

func VisitToCreateParams(v *visit.Visit) sqlc.CreateVisitParams {
	return sqlc.CreateVisitParams{
		ID:           v.ID(),
		CustomerID:   v.CustomerID(),
		SalonID:      v.SalonID(),
		BarberID:     pgconv.UUIDPtrToPgtype(v.BarberID()),
		ServiceType:  v.ServiceType().String(),
		Amount:       pgconv.NumericFromCents(v.Amount().Cents()),
		PointsEarned: v.PointsEarned(),
		VisitDate:    v.VisitDate(),
		CreatedAt:    v.CreatedAt(),
	}
}
