package http

import (
	"log"
	"sync"
)

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	id   string
	send chan outboundMessage
	room string
}

// Hub tracks live connections and their room membership, and implements
// game.Broadcaster on top of per-connection send channels. Emission
// order is preserved per destination because sessions emit under their
// own lock and the hub enqueues synchronously.
type Hub struct {
	mu    sync.RWMutex
	conns map[string]*client
	rooms map[string]map[string]*client
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[string]*client),
		rooms: make(map[string]map[string]*client),
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c.id] = c
}

func (h *Hub) joinRoom(c *client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c.room != "" {
		delete(h.rooms[c.room], c.id)
	}
	c.room = roomID
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]*client)
	}
	h.rooms[roomID][c.id] = c
}

// remove detaches the connection; once it returns no further deliveries
// can reach the client, so the caller may close its send channel.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c.id)
	if c.room != "" {
		delete(h.rooms[c.room], c.id)
		if len(h.rooms[c.room]) == 0 {
			delete(h.rooms, c.room)
		}
	}
}

// ToRoom sends an event to every connection in the room.
func (h *Hub) ToRoom(roomID, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.rooms[roomID] {
		h.deliver(c, outboundMessage{Type: event, Payload: payload})
	}
}

// ToConn sends an event to a single connection.
func (h *Hub) ToConn(connID, event string, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.conns[connID]; ok {
		h.deliver(c, outboundMessage{Type: event, Payload: payload})
	}
}

// deliver drops the oldest queued message rather than letting one slow
// client block a room broadcast.
func (h *Hub) deliver(c *client, msg outboundMessage) {
	select {
	case c.send <- msg:
	default:
		select {
		case <-c.send:
		default:
		}
		select {
		case c.send <- msg:
		default:
			log.Printf("ws %s: send buffer full, dropping %s", c.id, msg.Type)
		}
	}
}
