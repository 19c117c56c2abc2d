package realtime

import (
	"net/http"
	"sync"

	"farmer-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Event is the frame pushed to dashboard subscribers.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub fans out events to all connected dashboard websockets. Delivery is
// best-effort, at-most-once: there is no acknowledgment, no replay for late
// joiners, and a failed write drops the connection.
type Hub struct {
	mu       sync.Mutex
	conns    map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// Dashboard is served from a different origin in development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades a dashboard request and registers the connection.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	// Drain inbound frames until the peer goes away. Subscribers never send
	// anything meaningful.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

// Broadcast pushes an event to every connected subscriber.
func (h *Hub) Broadcast(event string, payload any) {
	frame := Event{Event: event, Data: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(frame); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Count returns the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.conns, conn)
}
