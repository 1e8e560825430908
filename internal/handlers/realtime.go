package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/vojtechokenka/nokturo/internal/realtime"
)

// RealtimeHandler upgrades product channels to websocket streams
type RealtimeHandler struct {
	Hub *realtime.Hub
}

// Upgrade gates the route so only websocket upgrade requests get through.
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream handles GET /api/realtime/:product. Each connection subscribes to
// the product's channel and relays change events until the peer goes away.
func (h *RealtimeHandler) Stream() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		product := conn.Params("product")
		client := h.Hub.Subscribe(product)
		defer h.Hub.Unsubscribe(client)

		// Reader goroutine notices the peer closing. Inbound payloads are
		// ignored; the stream is one way.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-client.Outbound:
				if !ok {
					return
				}
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			case <-closed:
				return
			case <-client.Done():
				return
			}
		}
	})
}
