// Package web streams trace events to websocket clients, so a
// running core can be followed from a browser or a remote tool.
package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/trace"
)

const (
	// sendBuffer is the number of events queued per client
	// before events are dropped for that client.
	sendBuffer = 256
	writeWait  = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub is a trace.Sink broadcasting every event as a JSON text
// message to all connected clients. Slow clients drop events
// rather than stall the CPU.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool

	log log.Logger
}

var _ trace.Sink = (*Hub)(nil)

// NewHub returns a Hub with no connected clients.
func NewHub(l log.Logger) *Hub {
	if l == nil {
		l = log.NewNullLogger()
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		log:     l,
	}
}

// ServeHTTP upgrades the request to a websocket connection and
// registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("trace: upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.log.Infof("trace: client %s connected", r.RemoteAddr)

	go c.readPump()
	go c.writePump()
}

// Trace broadcasts e to every connected client.
func (h *Hub) Trace(e trace.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(e)
	if err != nil {
		h.log.Errorf("trace: encoding event: %v", err)
		return
	}
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			// client is too slow, drop the event
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client. Events traced afterwards are
// discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// readPump discards incoming messages, and unregisters the
// client once the connection is closed.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return // connection closed
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	// hub closed the channel
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
