package salon

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Salon struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	details   Details
	qrCode    string
	createdAt time.Time
	updatedAt time.Time
}

// NewSalon builds a salon for its first save. qrCode is only used if the owner
// has no salon yet; an existing row keeps its payload.
func NewSalon(ownerID uuid.UUID, details Details, qrCode string, now time.Time) (*Salon, error) {
	if strings.TrimSpace(qrCode) == "" {
		return nil, ErrEmptyQRPayload
	}
	return &Salon{
		id:        uuid.New(),
		ownerID:   ownerID,
		details:   details,
		qrCode:    qrCode,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSalon(id, ownerID uuid.UUID, details Details, qrCode string, createdAt, updatedAt time.Time) *Salon {
	return &Salon{
		id:        id,
		ownerID:   ownerID,
		details:   details,
		qrCode:    qrCode,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (s *Salon) ID() uuid.UUID        { return s.id }
func (s *Salon) OwnerID() uuid.UUID   { return s.ownerID }
func (s *Salon) Details() Details     { return s.details }
func (s *Salon) QRCode() string       { return s.qrCode }
func (s *Salon) CreatedAt() time.Time { return s.createdAt }
func (s *Salon) UpdatedAt() time.Time { return s.updatedAt }
