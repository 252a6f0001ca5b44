package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
)

// clientBuffer is how many views may queue for a client before it is dropped.
const clientBuffer = 4

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans view payloads out to connected websocket clients. A client that
// cannot keep up is disconnected rather than allowed to block the tick hook.
type Hub struct {
	mu           sync.Mutex
	clients      map[*client]struct{}
	closed       bool
	writeTimeout time.Duration
	log          logger.Logger
}

// NewHub creates an empty hub.
func NewHub(writeTimeout time.Duration, log logger.Logger) *Hub {
	if log == nil {
		log = logger.Noop()
	}
	return &Hub{
		clients:      make(map[*client]struct{}),
		writeTimeout: writeTimeout,
		log:          log,
	}
}

// Attach registers conn and queues initial as its first message.
func (h *Hub) Attach(conn *websocket.Conn, initial []byte) {
	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}
	c.send <- initial

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.log.Debug("websocket client %s connected (%d total)", conn.RemoteAddr(), n)
	go h.writePump(c)
	go h.readPump(c)
}

// Broadcast queues payload for every client without blocking.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			h.log.Warn("websocket client too slow, dropping it")
			h.removeLocked(c)
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

func (h *Hub) writePump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if h.writeTimeout > 0 {
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Debug("websocket write to %s: %v", c.conn.RemoteAddr(), err)
			return
		}
	}

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

// readPump discards inbound messages and notices when the peer goes away.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
