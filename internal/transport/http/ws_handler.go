package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"geobattle-service/internal/game"
)

// WSHandler upgrades connections and routes inbound events to the right
// room session through the registry.
type WSHandler struct {
	hub      *Hub
	registry *game.Registry
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *Hub, registry *game.Registry) *WSHandler {
	return &WSHandler{
		hub:      hub,
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type joinPayload struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

type answerPayload struct {
	Guess string `json:"guess"`
}

type connectedPayload struct {
	ID string `json:"id"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS handles the socket lifetime: greet with the connection id,
// then dispatch join/set_ready/answer until the client goes away.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	c := &client{
		id:   uuid.NewString(),
		send: make(chan outboundMessage, 32),
	}
	h.hub.add(c)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range c.send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws %s: write error: %v", c.id, err)
				return
			}
		}
	}()

	h.hub.ToConn(c.id, "connected", connectedPayload{ID: c.id})

	var session *game.Session
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "join":
			// A connection may be seated in at most one room; rejoining
			// is allowed after a reset clears the roster.
			if session != nil {
				if _, seated := session.Players()[c.id]; seated {
					continue
				}
			}
			var payload joinPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil || payload.Name == "" || payload.Room == "" {
				h.hub.ToConn(c.id, "error", errorPayload{Message: "join requires name and room"})
				continue
			}
			session = h.registry.GetOrCreate(payload.Room)
			h.hub.joinRoom(c, game.NormalizeRoomID(payload.Room))
			session.Join(c.id, payload.Name)
		case "set_ready":
			if session != nil {
				session.SetReady(c.id)
			}
		case "answer":
			if session == nil {
				continue
			}
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				h.hub.ToConn(c.id, "error", errorPayload{Message: "invalid answer payload"})
				continue
			}
			session.SubmitAnswer(c.id, payload.Guess)
		default:
			h.hub.ToConn(c.id, "error", errorPayload{Message: "unsupported message type"})
		}
	}

	h.hub.remove(c)
	close(c.send)
	<-writerDone
	if session != nil {
		session.RemovePlayer(c.id)
	}
}
