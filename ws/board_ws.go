package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// OrderEvent tells connected boards that an order changed so they can
// refresh. It carries ids only; clients reload the data they care about.
type OrderEvent struct {
	Type    string        `json:"type"`
	OrderID uint          `json:"orderId"`
	Status  entity.Status `json:"status"`
}

// BoardHub fans order events out to every connected board instance.
type BoardHub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

func NewBoardHub() *BoardHub {
	return &BoardHub{clients: make(map[string]*websocket.Conn)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handle upgrades the connection and keeps it registered until the peer
// goes away. Incoming frames are drained and discarded; the board socket
// is one-way.
func (h *BoardHub) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws upgrade failed:", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, id)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends the event to every client; dead connections are dropped.
func (h *BoardHub) Broadcast(ev OrderEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Println("ws marshal failed:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}
