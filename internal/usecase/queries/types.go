package queries

import (
	"time"

	"github.com/google/uuid"
)

// ProfileView is the authenticated user's own profile.
type ProfileView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type BarberView struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"full_name,omitempty"`
}

type SalonView struct {
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

// SalonStatsView aggregates a salon's activity. Revenue is in cents.
type SalonStatsView struct {
	TotalCustomers    int64 `json:"total_customers"`
	TotalVisits       int64 `json:"total_visits"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	RewardsRedeemed   int64 `json:"rewards_redeemed"`
}

type VisitTotals struct {
	Visits       int64
	RevenueCents int64
}

// ScanView is what a customer sees after scanning a salon's QR code.
type ScanView struct {
	Salon   SalonView    `json:"salon"`
	Barbers []BarberView `json:"barbers"`
}

type CardView struct {
	ID                uuid.UUID `json:"id"`
	SalonID           uuid.UUID `json:"salon_id"`
	SalonName         string    `json:"salon_name"`
	SalonAddress      string    `json:"salon_address"`
	LoyaltyThreshold  int32     `json:"loyalty_threshold"`
	RewardDescription string    `json:"reward_description"`
	TotalVisits       int32     `json:"total_visits"`
	TotalPoints       int64     `json:"total_points"`
	RewardsRedeemed   int32     `json:"rewards_redeemed"`
	VisitsNeeded      int32     `json:"visits_needed"`
	ProgressPercent   int32     `json:"progress_percent"`
	RewardReady       bool      `json:"reward_ready"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type VisitView struct {
	ID           uuid.UUID  `json:"id"`
	SalonID      uuid.UUID  `json:"salon_id"`
	SalonName    string     `json:"salon_name"`
	BarberID     *uuid.UUID `json:"barber_id,omitempty"`
	BarberName   *string    `json:"barber_name,omitempty"`
	ServiceType  string     `json:"service_type"`
	AmountCents  int64      `json:"amount_cents"`
	PointsEarned int32      `json:"points_earned"`
	VisitDate    time.Time  `json:"visit_date"`
}
