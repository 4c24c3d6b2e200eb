package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side query types.
type SalonSnapshot struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	Address           string
	Phone             string
	QRCode            string
	LoyaltyThreshold  int32
	RewardDescription string
}

type ProfileSnapshot struct {
	ID   uuid.UUID
	Role string
}

// CheckinEvent is published after a check-in commits.
type CheckinEvent struct {
	VisitID      uuid.UUID
	SalonID      uuid.UUID
	SalonName    string
	OwnerID      uuid.UUID
	CustomerID   uuid.UUID
	ServiceType  string
	Amount       string
	PointsEarned int32
	CardID       uuid.UUID
	TotalVisits  int32
	TotalPoints  int64
	Threshold    int32
	RewardReady  bool
	VisitDate    time.Time
}

// CheckinNotifier delivers check-in events to connected clients. Delivery is
// best effort.
type CheckinNotifier interface {
	PublishCheckin(ctx context.Context, ev CheckinEvent)
}

type NopNotifier struct{}

func (NopNotifier) PublishCheckin(context.Context, CheckinEvent) {}
