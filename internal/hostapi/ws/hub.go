// Package ws broadcasts tick telemetry to subscribed clients over
// WebSocket connections, one channel per world.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
)

const sendBufSize = 256

// EventType tags the envelope carried over a world's WebSocket channel.
type EventType string

// TickCommitted is published once per StepTick call, after the tick's
// DecisionLogEntries have been persisted.
const TickCommitted EventType = "tick_committed"

// Event is the envelope broadcast to a world's subscribers.
type Event struct {
	Type    EventType `json:"type"`
	WorldID string    `json:"worldId"`
	Data    any       `json:"data"`
}

// Conn is a connection's hub-facing identity: a buffered outbound queue the
// write pump drains. It carries no knowledge of the transport, which keeps
// Hub testable without a real websocket.Conn.
type Conn struct {
	worldID string
	send    chan []byte
}

func newConn(worldID string) *Conn {
	return &Conn{worldID: worldID, send: make(chan []byte, sendBufSize)}
}

// Hub tracks live connections and their per-world subscriptions.
type Hub struct {
	mu     sync.RWMutex
	worlds map[string]map[*Conn]bool
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{worlds: make(map[string]map[*Conn]bool)}
}

// Register subscribes a new connection to a world's telemetry channel.
func (h *Hub) Register(worldID string) *Conn {
	c := newConn(worldID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.worlds[worldID] == nil {
		h.worlds[worldID] = make(map[*Conn]bool)
	}
	h.worlds[worldID][c] = true
	return c
}

// Unregister removes a connection and closes its send queue.
func (h *Hub) Unregister(c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.worlds[c.worldID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.worlds, c.worldID)
		}
	}
	close(c.send)
}

// Broadcast sends an event to every connection subscribed to worldID,
// dropping it for any subscriber whose send queue is full rather than
// blocking the caller.
func (h *Hub) Broadcast(worldID string, evt Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		log.Error().Err(err).Str("worldId", worldID).Msg("failed to marshal websocket event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.worlds[worldID] {
		select {
		case c.send <- data:
		default:
			log.Warn().Str("worldId", worldID).Msg("dropping websocket message, send buffer full")
		}
	}
}

// SubscriberCount reports how many connections are subscribed to a world,
// for diagnostics and tests.
func (h *Hub) SubscriberCount(worldID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.worlds[worldID])
}
