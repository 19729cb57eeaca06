package ws

import (
	"context"
	"sync"

	"github.com/waruna834/skills-project-manager/internal/logger"

	"go.uber.org/zap"
)

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
}

func NewHub(l *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		logger:     logger.OrNop(l),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws connected", zap.Int("total_clients", total))

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws disconnected", zap.Int("total_clients", total))

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Debug("ws broadcast", zap.Int("clients", total))
		}
	}
}

// Register hands client to the run loop. Once the hub has stopped the
// client's send channel is closed instead so its write pump exits.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	if h.stopped() {
		close(client.send)
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
		close(client.send)
	}
}

// Unregister returns immediately after shutdown; Run has already closed
// every registered client.
func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	if h.stopped() {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) stopped() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Broadcast never blocks; messages are dropped when the buffer is full.
func (h *Hub) Broadcast(message []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("ws broadcast dropped", zap.String("reason", "buffer_full"))
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
