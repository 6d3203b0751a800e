package ws

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/gridforge/puzzle-minigame-engine/internal/protocol"
)

// Hub fans patch envelopes out to every connected client. Writes that fail
// or stall past the timeout drop the connection.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	sequence uint64
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// BroadcastEvent wraps payload in a sequence-stamped PatchEnvelope and sends
// it to all clients.
func (h *Hub) BroadcastEvent(eventType string, payload any) {
	seq := atomic.AddUint64(&h.sequence, 1)
	message, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: seq,
		EventID:  int64(seq),
		Type:     eventType,
		Payload:  payload,
	})
	if err != nil {
		return
	}
	h.Broadcast(message)
}

func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}
