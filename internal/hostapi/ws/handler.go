package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second // must stay below pongWait
	maxMsgSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Upgrade promotes an HTTP request to a WebSocket connection subscribed to
// one world's telemetry channel, and runs its read/write pumps until the
// connection closes. Callers should invoke it directly from an http.Handler;
// it returns once the client disconnects.
func (h *Hub) Upgrade(w http.ResponseWriter, r *http.Request, worldID string) {
	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	c := h.Register(worldID)
	go writePump(wsConn, c)
	readPump(wsConn, h, c)
}

// readPump drains inbound frames so the connection's pong handler keeps
// firing; this hub has no client->server protocol beyond keepalive.
func readPump(wsConn *websocket.Conn, h *Hub, c *Conn) {
	defer func() {
		h.Unregister(c)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMsgSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := wsConn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("worldId", c.worldID).Msg("websocket unexpected close")
			}
			return
		}
	}
}

func writePump(wsConn *websocket.Conn, c *Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
