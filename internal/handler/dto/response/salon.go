package response

import (
	"fmt"
	"time"

	"salon-loyalty/internal/domain/salon"
	"salon-loyalty/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SalonResponse struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Phone             string    `json:"phone"`
	QRCode            string    `json:"qr_code"`
	LoyaltyThreshold  int32     `json:"loyalty_threshold"`
	RewardDescription string    `json:"reward_description"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type SalonStatsResponse struct {
	TotalCustomers  int64  `json:"total_customers"`
	TotalVisits     int64  `json:"total_visits"`
	TotalRevenue    string `json:"total_revenue"`
	RewardsRedeemed int64  `json:"rewards_redeemed"`
}

type QRResponse struct {
	Payload string `json:"payload"`
}

type BarberResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"full_name,omitempty"`
}

type ScanResponse struct {
	Salon   SalonResponse    `json:"salon"`
	Barbers []BarberResponse `json:"barbers"`
}

func FromSalonView(v *queries.SalonView) *SalonResponse {
	var res SalonResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromSalon(s *salon.Salon) *SalonResponse {
	d := s.Details()
	return &SalonResponse{
		ID:                s.ID(),
		OwnerID:           s.OwnerID(),
		Name:              d.Name,
		Address:           d.Address,
		Phone:             d.Phone,
		QRCode:            s.QRCode(),
		LoyaltyThreshold:  d.Threshold.Value(),
		RewardDescription: d.RewardDescription,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func FromStatsView(v *queries.SalonStatsView) *SalonStatsResponse {
	return &SalonStatsResponse{
		TotalCustomers:  v.TotalCustomers,
		TotalVisits:     v.TotalVisits,
		TotalRevenue:    formatCents(v.TotalRevenueCents),
		RewardsRedeemed: v.RewardsRedeemed,
	}
}

func FromBarberViews(vs []queries.BarberView) []BarberResponse {
	res := make([]BarberResponse, len(vs))
	for i := range vs {
		_ = copier.Copy(&res[i], &vs[i])
	}
	return res
}

func FromScanView(v *queries.ScanView) *ScanResponse {
	return &ScanResponse{
		Salon:   *FromSalonView(&v.Salon),
		Barbers: FromBarberViews(v.Barbers),
	}
}

// formatCents renders cents as a two-decimal amount. Sums may exceed the
// per-visit maximum, so this does not go through visit.Amount.
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
