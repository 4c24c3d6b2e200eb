package converter

import (
	"salon-loyalty/internal/domain/loyalty"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
)

func CardFromModel(row sqlc.LoyaltyCards) *loyalty.Card {
	return loyalty.ReconstructCard(
		row.ID, row.CustomerID, row.SalonID,
		row.TotalVisits, row.TotalPoints, row.RewardsRedeemed,
		row.CreatedAt, row.UpdatedAt,
	)
}

func CardFromAccrueRow(row sqlc.AccrueLoyaltyCardRow) *loyalty.Card {
	return loyalty.ReconstructCard(
		row.ID, row.CustomerID, row.SalonID,
		row.TotalVisits, row.TotalPoints, row.RewardsRedeemed,
		row.CreatedAt, row.UpdatedAt,
	)
}
