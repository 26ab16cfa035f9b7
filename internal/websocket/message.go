package websocket

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// Inbound message types a dashboard may send
const (
	MessageTypePing          = "ping"
	MessageTypeNoticeDismiss = "notice.dismiss"
)

// InboundMessage is a command sent by a dashboard over the socket.
// ID carries the notice ID for notice.dismiss.
type InboundMessage struct {
	Type string `json:"type"`
	ID   int64  `json:"id,omitempty"`
}

// MessageHandler handles one inbound message type
type MessageHandler func(client ClientInterface, msg InboundMessage)

// pong is the reply to a ping message
type pong struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// Handle registers the handler for an inbound message type, replacing any
// previous one. ping is answered by the hub itself.
func (h *Hub) Handle(msgType string, fn MessageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[msgType] = fn
}

// Dispatch decodes a raw inbound frame and routes it. Malformed frames and
// unknown types are dropped.
func (h *Hub) Dispatch(client ClientInterface, data []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.Type == "" {
		log.Debug().
			Str("client_id", client.ID()).
			Msg("Dropping malformed WebSocket message")
		return
	}

	if msg.Type == MessageTypePing {
		reply, _ := json.Marshal(pong{Type: "pong", Timestamp: time.Now().UTC()})
		if err := client.Send(reply); err != nil {
			log.Warn().Err(err).Str("client_id", client.ID()).Msg("Failed to send pong")
		}
		return
	}

	h.mu.RLock()
	fn, ok := h.handlers[msg.Type]
	h.mu.RUnlock()
	if !ok {
		log.Debug().
			Str("client_id", client.ID()).
			Str("message_type", msg.Type).
			Msg("No handler for WebSocket message")
		return
	}
	fn(client, msg)
}
