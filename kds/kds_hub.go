// Package kds pushes order events to connected operator screens.
package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lin-avraham/Pizza2/utils"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// client owns one connection; only its writer goroutine writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks operator websocket connections.
type Hub struct {
	upgrader websocket.Upgrader

	mutex   sync.Mutex
	clients map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: make(map[*client]struct{}),
	}
}

func (h *Hub) register(cl *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[cl] = struct{}{}
}

func (h *Hub) unregister(cl *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.drop(cl)
}

// drop removes cl and stops its writer. Caller holds mutex.
func (h *Hub) drop(cl *client) {
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Publish queues an event for every connected client without waiting on
// the network. A client whose queue is full is dropped.
func (h *Hub) Publish(event string, payload interface{}) {
	data, err := json.Marshal(Message{Event: event, Data: payload})
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			utils.ErrorLogger.Printf("Operator feed client too slow, dropping it (event %s)", event)
			h.drop(cl)
		}
	}
}

func (h *Hub) writePump(cl *client) {
	defer cl.conn.Close()
	for data := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error writing to operator feed client: %v", err)
			h.unregister(cl)
			return
		}
	}
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ServeWS upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) ServeWS(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Websocket upgrade failed: %v", err)
		return
	}
	cl := &client{conn: ws, send: make(chan []byte, sendBuffer)}
	h.register(cl)
	go h.writePump(cl)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(cl)
}
