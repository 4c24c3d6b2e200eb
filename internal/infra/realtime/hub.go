package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"salon-loyalty/internal/domain/loyalty"
	"salon-loyalty/internal/pkg/errs"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventCheckinRecorded = "checkin.recorded"
	EventCardUpdated     = "card.updated"
)

type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// CheckinPayload is sent to the salon owner.
type CheckinPayload struct {
	VisitID      uuid.UUID `json:"visit_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	ServiceType  string    `json:"service_type"`
	Amount       string    `json:"amount"`
	PointsEarned int32     `json:"points_earned"`
	VisitDate    time.Time `json:"visit_date"`
	TotalVisits  int32     `json:"total_visits"`
}

// CardPayload is sent to the customer.
type CardPayload struct {
	CardID       uuid.UUID `json:"card_id"`
	SalonID      uuid.UUID `json:"salon_id"`
	SalonName    string    `json:"salon_name"`
	PointsEarned int32     `json:"points_earned"`
	TotalVisits  int32     `json:"total_visits"`
	TotalPoints  int64     `json:"total_points"`
	VisitsNeeded int32     `json:"visits_needed"`
	RewardReady  bool      `json:"reward_ready"`
}

const (
	sendBufferSize      = 16
	defaultWriteTimeout = 5 * time.Second
)

// ErrSendBufferFull is returned when a connection has too many undelivered
// events queued. The event is dropped.
var ErrSendBufferFull = errs.New("websocket send buffer full")

// Hub keeps one connection per owner and one per customer. A newer connection
// replaces the older one.
type Hub struct {
	mu           sync.RWMutex
	byOwner      map[uuid.UUID]*wsConn
	byCustomer   map[uuid.UUID]*wsConn
	writeTimeout time.Duration
}

// wsConn owns the only writer goroutine of its connection. Notify enqueues and
// returns, so a stalled client never blocks the caller.
type wsConn struct {
	conn      *websocket.Conn
	send      chan Message
	done      chan struct{}
	closeOnce sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{
		conn: conn,
		send: make(chan Message, sendBufferSize),
		done: make(chan struct{}),
	}
}

func (c *wsConn) writeLoop(timeout time.Duration) {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timeout))
			if err := c.conn.WriteJSON(msg); err != nil {
				slog.Warn("ws: write failed", "event", msg.Event, "error", err.Error())
				c.close()
				return
			}
		}
	}
}

func (c *wsConn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// NewHub builds a hub. A non-positive writeTimeout falls back to 5s.
func NewHub(writeTimeout time.Duration) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &Hub{
		byOwner:      make(map[uuid.UUID]*wsConn),
		byCustomer:   make(map[uuid.UUID]*wsConn),
		writeTimeout: writeTimeout,
	}
}

var _ shared.CheckinNotifier = (*Hub)(nil)

func (h *Hub) RegisterOwner(ownerID uuid.UUID, conn *websocket.Conn) {
	h.register(h.byOwner, ownerID, conn)
}

func (h *Hub) UnregisterOwner(ownerID uuid.UUID, conn *websocket.Conn) {
	h.unregister(h.byOwner, ownerID, conn)
}

func (h *Hub) RegisterCustomer(customerID uuid.UUID, conn *websocket.Conn) {
	h.register(h.byCustomer, customerID, conn)
}

func (h *Hub) UnregisterCustomer(customerID uuid.UUID, conn *websocket.Conn) {
	h.unregister(h.byCustomer, customerID, conn)
}

func (h *Hub) register(m map[uuid.UUID]*wsConn, id uuid.UUID, conn *websocket.Conn) {
	wc := newWSConn(conn)
	go wc.writeLoop(h.writeTimeout)

	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := m[id]; ok {
		old.close()
	}
	m[id] = wc
}

// unregister only removes the entry when it still holds conn, so a read loop
// ending on a replaced connection does not drop its successor.
func (h *Hub) unregister(m map[uuid.UUID]*wsConn, id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := m[id]; ok && c.conn == conn {
		c.close()
		delete(m, id)
	}
}

func (h *Hub) NotifyOwner(ownerID uuid.UUID, event string, payload any) error {
	return h.notify(h.byOwner, "owner", ownerID, event, payload)
}

func (h *Hub) NotifyCustomer(customerID uuid.UUID, event string, payload any) error {
	return h.notify(h.byCustomer, "customer", customerID, event, payload)
}

func (h *Hub) notify(m map[uuid.UUID]*wsConn, kind string, id uuid.UUID, event string, payload any) error {
	h.mu.RLock()
	wc, ok := m[id]
	h.mu.RUnlock()
	if !ok {
		slog.Debug("ws: not connected, event dropped", "kind", kind, "id", id, "event", event)
		return nil
	}

	select {
	case <-wc.done:
		slog.Debug("ws: connection closed, event dropped", "kind", kind, "id", id, "event", event)
		return nil
	case wc.send <- Message{Event: event, Data: payload}:
		return nil
	default:
		slog.Warn("ws: send buffer full, event dropped", "kind", kind, "id", id, "event", event)
		return ErrSendBufferFull
	}
}

// PublishCheckin fans a committed check-in out to the salon owner and the
// customer. Failures are logged and never returned.
func (h *Hub) PublishCheckin(_ context.Context, ev shared.CheckinEvent) {
	_ = h.NotifyOwner(ev.OwnerID, EventCheckinRecorded, CheckinPayload{
		VisitID:      ev.VisitID,
		CustomerID:   ev.CustomerID,
		ServiceType:  ev.ServiceType,
		Amount:       ev.Amount,
		PointsEarned: ev.PointsEarned,
		VisitDate:    ev.VisitDate,
		TotalVisits:  ev.TotalVisits,
	})

	progress := loyalty.NewProgress(ev.TotalVisits, ev.Threshold)
	_ = h.NotifyCustomer(ev.CustomerID, EventCardUpdated, CardPayload{
		CardID:       ev.CardID,
		SalonID:      ev.SalonID,
		SalonName:    ev.SalonName,
		PointsEarned: ev.PointsEarned,
		TotalVisits:  ev.TotalVisits,
		TotalPoints:  ev.TotalPoints,
		VisitsNeeded: progress.VisitsNeeded,
		RewardReady:  ev.RewardReady,
	})
}

// Close drops every connection. Called on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.byOwner {
		c.close()
		delete(h.byOwner, id)
	}
	for id, c := range h.byCustomer {
		c.close()
		delete(h.byCustomer, id)
	}
}

func (h *Hub) Connected() (owners, customers int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.byOwner), len(h.byCustomer)
}
