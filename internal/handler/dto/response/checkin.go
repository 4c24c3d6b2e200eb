package response

import (
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/usecase/commands"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CardResponse struct {
	ID                uuid.UUID `json:"id"`
	SalonID           uuid.UUID `json:"salon_id"`
	SalonName         string    `json:"salon_name"`
	SalonAddress      string    `json:"salon_address,omitempty"`
	LoyaltyThreshold  int32     `json:"loyalty_threshold"`
	RewardDescription string    `json:"reward_description,omitempty"`
	TotalVisits       int32     `json:"total_visits"`
	TotalPoints       int64     `json:"total_points"`
	RewardsRedeemed   int32     `json:"rewards_redeemed"`
	VisitsNeeded      int32     `json:"visits_needed"`
	ProgressPercent   int32     `json:"progress_percent"`
	RewardReady       bool      `json:"reward_ready"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CheckinResponse struct {
	VisitID      uuid.UUID    `json:"visit_id"`
	SalonID      uuid.UUID    `json:"salon_id"`
	SalonName    string       `json:"salon_name"`
	ServiceType  string       `json:"service_type"`
	Amount       string       `json:"amount"`
	PointsEarned int32        `json:"points_earned"`
	VisitDate    time.Time    `json:"visit_date"`
	CardCreated  bool         `json:"card_created"`
	Card         CardResponse `json:"card"`
}

type JoinResponse struct {
	Created bool         `json:"created"`
	Card    CardResponse `json:"card"`
}

type VisitResponse struct {
	ID           uuid.UUID  `json:"id"`
	SalonID      uuid.UUID  `json:"salon_id"`
	SalonName    string     `json:"salon_name"`
	BarberID     *uuid.UUID `json:"barber_id,omitempty"`
	BarberName   *string    `json:"barber_name,omitempty"`
	ServiceType  string     `json:"service_type"`
	Amount       string     `json:"amount"`
	PointsEarned int32      `json:"points_earned"`
	VisitDate    time.Time  `json:"visit_date"`
}

func FromCheckinResult(r *commands.CheckinResult) *CheckinResponse {
	return &CheckinResponse{
		VisitID:      r.VisitID,
		SalonID:      r.Salon.ID,
		SalonName:    r.Salon.Name,
		ServiceType:  r.ServiceType,
		Amount:       formatCents(r.AmountCents),
		PointsEarned: r.PointsEarned,
		VisitDate:    r.VisitDate,
		CardCreated:  r.CardCreated,
		Card:         cardFromDomain(r.Card, r.Salon.Name, r.Salon.Address, r.Salon.LoyaltyThreshold, r.Salon.RewardDescription, r.Progress),
	}
}

func FromJoinResult(r *commands.JoinResult) *JoinResponse {
	return &JoinResponse{
		Created: r.Created,
		Card:    cardFromDomain(r.Card, r.Salon.Name, r.Salon.Address, r.Salon.LoyaltyThreshold, r.Salon.RewardDescription, r.Progress),
	}
}

func cardFromDomain(c *loyalty.Card, salonName, salonAddress string, threshold int32, reward string, p loyalty.Progress) CardResponse {
	return CardResponse{
		ID:                c.ID(),
		SalonID:           c.SalonID(),
		SalonName:         salonName,
		SalonAddress:      salonAddress,
		LoyaltyThreshold:  threshold,
		RewardDescription: reward,
		TotalVisits:       c.TotalVisits(),
		TotalPoints:       c.TotalPoints(),
		RewardsRedeemed:   c.RewardsRedeemed(),
		VisitsNeeded:      p.VisitsNeeded,
		ProgressPercent:   p.Percent,
		RewardReady:       p.RewardReady,
		UpdatedAt:         c.UpdatedAt(),
	}
}

func FromCardViews(vs []queries.CardView) []CardResponse {
	res := make([]CardResponse, len(vs))
	for i := range vs {
		_ = copier.Copy(&res[i], &vs[i])
	}
	return res
}

func FromVisitViews(vs []queries.VisitView) []VisitResponse {
	res := make([]VisitResponse, len(vs))
	for i := range vs {
		_ = copier.Copy(&res[i], &vs[i])
		res[i].Amount = formatCents(vs[i].AmountCents)
	}
	return res
}
