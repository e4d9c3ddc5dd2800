package bookingcontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub pushes new bookings to connected admin panels.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Feed upgrades the connection and holds it open until the panel disconnects.
func (h *Hub) Feed() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, conn)
				h.mu.Unlock()
				break
			}
		}
	}
}

// BroadcastNewBooking fans a booking out to every connected panel.
func (h *Hub) BroadcastNewBooking(booking models.Booking) {
	data, err := json.Marshal(booking)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
