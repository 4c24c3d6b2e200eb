package visit

import (
	"time"

	"github.com/google/uuid"
)

// Visit is an immutable check-in record.
type Visit struct {
	id           uuid.UUID
	customerID   uuid.UUID
	salonID      uuid.UUID
	barberID     *uuid.UUID
	serviceType  ServiceType
	amount       Amount
	pointsEarned int32
	visitDate    time.Time
	createdAt    time.Time
}

func NewVisit(customerID, salonID uuid.UUID, barberID *uuid.UUID, serviceType ServiceType, amount Amount, now time.Time) *Visit {
	return &Visit{
		id:           uuid.New(),
		customerID:   customerID,
		salonID:      salonID,
		barberID:     barberID,
		serviceType:  serviceType,
		amount:       amount,
		pointsEarned: amount.Points(),
		visitDate:    now,
		createdAt:    now,
	}
}

func (v *Visit) ID() uuid.UUID            { return v.id }
func (v *Visit) CustomerID() uuid.UUID    { return v.customerID }
func (v *Visit) SalonID() uuid.UUID       { return v.salonID }
func (v *Visit) BarberID() *uuid.UUID     { return v.barberID }
func (v *Visit) ServiceType() ServiceType { return v.serviceType }
func (v *Visit) Amount() Amount           { return v.amount }
func (v *Visit) PointsEarned() int32      { return v.pointsEarned }
func (v *Visit) VisitDate() time.Time     { return v.visitDate }
func (v *Visit) CreatedAt() time.Time     { return v.createdAt }
