//go:build unit

package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"salon-loyalty/internal/infra/realtime"
	"salon-loyalty/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// dial connects a client and registers the server side with register.
func dial(t *testing.T, register func(*websocket.Conn)) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		register(conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("server side was not registered")
	}
	return client
}

func read(t *testing.T, c *websocket.Conn) envelope {
	t.Helper()
	require.NoError(t, c.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg envelope
	require.NoError(t, c.ReadJSON(&msg))
	return msg
}

func TestHub_PublishCheckin(t *testing.T) {
	hub := realtime.NewHub(time.Second)
	t.Cleanup(hub.Close)

	ownerID, customerID := uuid.New(), uuid.New()
	owner := dial(t, func(c *websocket.Conn) { hub.RegisterOwner(ownerID, c) })
	customer := dial(t, func(c *websocket.Conn) { hub.RegisterCustomer(customerID, c) })

	hub.PublishCheckin(context.Background(), shared.CheckinEvent{
		VisitID:      uuid.New(),
		SalonID:      uuid.New(),
		SalonName:    "Sharp Cuts",
		OwnerID:      ownerID,
		CustomerID:   customerID,
		ServiceType:  "Haircut",
		Amount:       "9.50",
		PointsEarned: 9,
		CardID:       uuid.New(),
		TotalVisits:  2,
		TotalPoints:  34,
		Threshold:    10,
	})

	ownerMsg := read(t, owner)
	assert.Equal(t, realtime.EventCheckinRecorded, ownerMsg.Event)
	assert.Equal(t, "9.50", ownerMsg.Data["amount"])
	assert.Equal(t, customerID.String(), ownerMsg.Data["customer_id"])

	customerMsg := read(t, customer)
	assert.Equal(t, realtime.EventCardUpdated, customerMsg.Event)
	assert.EqualValues(t, 34, customerMsg.Data["total_points"])
	assert.EqualValues(t, 8, customerMsg.Data["visits_needed"])
	assert.Equal(t, false, customerMsg.Data["reward_ready"])
}

func TestHub_MissingConnectionDropsEvent(t *testing.T) {
	hub := realtime.NewHub(time.Second)

	assert.NoError(t, hub.NotifyOwner(uuid.New(), realtime.EventCheckinRecorded, nil))
	assert.NotPanics(t, func() {
		hub.PublishCheckin(context.Background(), shared.CheckinEvent{OwnerID: uuid.New(), CustomerID: uuid.New()})
	})
}

func TestHub_ReplaceAndUnregister(t *testing.T) {
	hub := realtime.NewHub(time.Second)
	t.Cleanup(hub.Close)
	ownerID := uuid.New()

	var first, second *websocket.Conn
	dial(t, func(c *websocket.Conn) { first = c; hub.RegisterOwner(ownerID, c) })
	secondClient := dial(t, func(c *websocket.Conn) { second = c; hub.RegisterOwner(ownerID, c) })

	owners, _ := hub.Connected()
	assert.Equal(t, 1, owners)

	// The replaced connection's read loop ending must not evict the new one.
	hub.UnregisterOwner(ownerID, first)
	owners, _ = hub.Connected()
	assert.Equal(t, 1, owners)

	require.NoError(t, hub.NotifyOwner(ownerID, "ping", map[string]string{"ok": "yes"}))
	assert.Equal(t, "ping", read(t, secondClient).Event)

	hub.UnregisterOwner(ownerID, second)
	owners, _ = hub.Connected()
	assert.Zero(t, owners)
}

func TestHub_Close(t *testing.T) {
	hub := realtime.NewHub(time.Second)
	dial(t, func(c *websocket.Conn) { hub.RegisterCustomer(uuid.New(), c) })

	hub.Close()

	_, customers := hub.Connected()
	assert.Zero(t, customers)
}

func TestHub_StalledClientDoesNotBlockNotify(t *testing.T) {
	hub := realtime.NewHub(time.Minute)
	t.Cleanup(hub.Close)
	ownerID := uuid.New()

	// The client never reads, so socket buffers fill and the writer stalls.
	dial(t, func(c *websocket.Conn) { hub.RegisterOwner(ownerID, c) })
	payload := strings.Repeat("x", 1<<20)

	var dropped int
	start := time.Now()
	for range 64 {
		if err := hub.NotifyOwner(ownerID, realtime.EventCheckinRecorded, payload); err != nil {
			require.ErrorIs(t, err, realtime.ErrSendBufferFull)
			dropped++
		}
	}

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Positive(t, dropped)
}

func TestHub_ZeroWriteTimeoutStillDelivers(t *testing.T) {
	hub := realtime.NewHub(0)
	t.Cleanup(hub.Close)
	customerID := uuid.New()
	customer := dial(t, func(c *websocket.Conn) { hub.RegisterCustomer(customerID, c) })

	require.NoError(t, hub.NotifyCustomer(customerID, realtime.EventCardUpdated, map[string]int{"total_visits": 1}))
	assert.Equal(t, realtime.EventCardUpdated, read(t, customer).Event)
}
