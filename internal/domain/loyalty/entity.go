package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativePoints = errors.New("points must not be negative")

// Card tracks a customer's accrued visits and points at one salon.
type Card struct {
	id              uuid.UUID
	customerID      uuid.UUID
	salonID         uuid.UUID
	totalVisits     int32
	totalPoints     int64
	rewardsRedeemed int32
	createdAt       time.Time
	updatedAt       time.Time
}

// NewCard returns an empty card, as created when a customer joins a salon.
func NewCard(customerID, salonID uuid.UUID, now time.Time) *Card {
	return &Card{
		id:         uuid.New(),
		customerID: customerID,
		salonID:    salonID,
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructCard(
	id, customerID, salonID uuid.UUID,
	totalVisits int32, totalPoints int64, rewardsRedeemed int32,
	createdAt, updatedAt time.Time,
) *Card {
	return &Card{
		id:              id,
		customerID:      customerID,
		salonID:         salonID,
		totalVisits:     totalVisits,
		totalPoints:     totalPoints,
		rewardsRedeemed: rewardsRedeemed,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Accrue records one visit worth points.
func (c *Card) Accrue(points int32, now time.Time) error {
	if points < 0 {
		return ErrNegativePoints
	}
	c.totalVisits++
	c.totalPoints += int64(points)
	c.updatedAt = now
	return nil
}

func (c *Card) Progress(threshold int32) Progress {
	return NewProgress(c.totalVisits, threshold)
}

func (c *Card) ID() uuid.UUID          { return c.id }
func (c *Card) CustomerID() uuid.UUID  { return c.customerID }
func (c *Card) SalonID() uuid.UUID     { return c.salonID }
func (c *Card) TotalVisits() int32     { return c.totalVisits }
func (c *Card) TotalPoints() int64     { return c.totalPoints }
func (c *Card) RewardsRedeemed() int32 { return c.rewardsRedeemed }
func (c *Card) CreatedAt() time.Time   { return c.createdAt }
func (c *Card) UpdatedAt() time.Time   { return c.updatedAt }

// Progress is the customer's standing toward the salon's reward.
type Progress struct {
	VisitsNeeded int32
	Percent      int32
	RewardReady  bool
}

func NewProgress(visits, threshold int32) Progress {
	if threshold < 1 {
		threshold = 1
	}
	needed := threshold - visits
	if needed < 0 {
		needed = 0
	}
	percent := int32(int64(visits) * 100 / int64(threshold))
	if percent > 100 {
		percent = 100
	}
	return Progress{
		VisitsNeeded: needed,
		Percent:      percent,
		RewardReady:  visits >= threshold,
	}
}
