//go:build unit || e2e

package builder

import (
	"time"

	"salon-loyalty/internal/domain/qrcode"
	"salon-loyalty/internal/domain/salon"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
)

const TestPublicOrigin = "https://app.example"

type SalonBuilder struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	Address           string
	Phone             string
	LoyaltyThreshold  int32
	RewardDescription string
	QRCode            string
	CreatedAt         time.Time
}

func NewSalonBuilder() *SalonBuilder {
	ownerID := uuid.New()
	return &SalonBuilder{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Name:              "Sharp Cuts",
		Address:           "1 Main Street",
		Phone:             "555-0100",
		LoyaltyThreshold:  salon.DefaultLoyaltyThreshold,
		RewardDescription: salon.DefaultRewardDescription,
		QRCode:            qrcode.Encode(TestPublicOrigin, ownerID.String()),
		CreatedAt:         time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *SalonBuilder) With(mutate func(*SalonBuilder)) *SalonBuilder {
	mutate(s)
	return s
}

// WithOwner also regenerates the QR payload for the new owner.
func (s *SalonBuilder) WithOwner(ownerID uuid.UUID) *SalonBuilder {
	s.OwnerID = ownerID
	s.QRCode = qrcode.Encode(TestPublicOrigin, ownerID.String())
	return s
}

// Build methods
func (s *SalonBuilder) BuildDetails() (salon.Details, error) {
	return salon.NewDetails(s.Name, s.Address, s.Phone, s.LoyaltyThreshold, s.RewardDescription)
}

func (s *SalonBuilder) BuildDomain() (*salon.Salon, error) {
	d, err := s.BuildDetails()
	if err != nil {
		return nil, err
	}
	return salon.NewSalon(s.OwnerID, d, s.QRCode, s.CreatedAt)
}

func (s *SalonBuilder) BuildInfra() sqlc.Salons {
	return sqlc.Salons{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		OwnerID:           s.OwnerID,
		QrCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.CreatedAt,
	}
}

func (s *SalonBuilder) BuildUpsertRow(inserted bool) sqlc.UpsertSalonByOwnerRow {
	return sqlc.UpsertSalonByOwnerRow{
		ID:                s.ID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		OwnerID:           s.OwnerID,
		QrCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.CreatedAt,
		Inserted:          inserted,
	}
}

func (s *SalonBuilder) BuildSnapshot() *shared.SalonSnapshot {
	return &shared.SalonSnapshot{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		QRCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
	}
}

func (s *SalonBuilder) BuildReadModel() *queries.SalonView {
	return &queries.SalonView{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		Address:           s.Address,
		Phone:             s.Phone,
		QRCode:            s.QRCode,
		LoyaltyThreshold:  s.LoyaltyThreshold,
		RewardDescription: s.RewardDescription,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.CreatedAt,
	}
}
