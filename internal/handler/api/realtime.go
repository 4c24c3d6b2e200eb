package api

import (
	"log/slog"
	"net/http"
	"slices"

	"salon-loyalty/internal/infra/realtime"
	"salon-loyalty/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// RealtimeHandler upgrades dashboard connections to WebSocket and keeps them
// registered with the hub until the client goes away.
type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(hub *realtime.Hub, cfg config.RealtimeConfig) *RealtimeHandler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	// An empty list keeps gorilla's same-origin check.
	if len(cfg.AllowedOrigins) > 0 {
		allowed := cfg.AllowedOrigins
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return slices.Contains(allowed, r.Header.Get("Origin"))
		}
	}
	return &RealtimeHandler{hub: hub, upgrader: upgrader}
}

// @Summary Owner event stream
// @Description WebSocket stream of checkin.recorded events for the owner's salon
// @Tags realtime
// @Security BearerAuth
// @Router /owner/salon/events [get]
func (h *RealtimeHandler) OwnerEvents(c *gin.Context) {
	h.serve(c, h.hub.RegisterOwner, h.hub.UnregisterOwner)
}

// @Summary Customer event stream
// @Description WebSocket stream of card.updated events for the customer
// @Tags realtime
// @Security BearerAuth
// @Router /me/events [get]
func (h *RealtimeHandler) CustomerEvents(c *gin.Context) {
	h.serve(c, h.hub.RegisterCustomer, h.hub.UnregisterCustomer)
}

func (h *RealtimeHandler) serve(c *gin.Context, register, unregister func(uuid.UUID, *websocket.Conn)) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("websocket upgrade failed", "user_id", userID, "error", err.Error())
		return
	}

	register(userID, conn)
	defer func() {
		unregister(userID, conn)
		_ = conn.Close()
	}()

	// Clients only listen. Reading drives control frames and detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("websocket closed", "user_id", userID, "error", err.Error())
			}
			return
		}
	}
}
