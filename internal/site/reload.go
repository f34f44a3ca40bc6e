package site

import (
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// The dev server is bound to localhost; cross-origin pages are fine.
	CheckOrigin: func(*http.Request) bool { return true },
}

// ReloadHub tracks live-reload websocket clients and broadcasts a reload
// notice to all of them after a rebuild.
type ReloadHub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

// NewReloadHub creates an empty hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{clients: make(map[string]*websocket.Conn)}
}

// Handle upgrades the request and keeps the connection registered until
// the client goes away.
func (h *ReloadHub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livereload: websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()

	// Clients never send anything meaningful; the read loop only notices
	// the close.
	go func() {
		defer h.drop(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("livereload: websocket read: %v", err)
				}
				return
			}
		}
	}()
}

// Broadcast sends msg to every connected client, dropping the ones that
// fail to receive it.
func (h *ReloadHub) Broadcast(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}

// Close disconnects every client.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}

func (h *ReloadHub) drop(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conn, ok := h.clients[id]; ok {
		conn.Close()
		delete(h.clients, id)
	}
}
