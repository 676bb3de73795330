package websocket

import (
	"log/slog"
	"sync"
)

// Hub maps connection ids to live clients and fans room events out to them.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[string]*Client),
	}
}

// Notify encodes the event once and queues it on every listed connection. It never blocks:
// a client whose queue is full is disconnected.
func (that *Hub) Notify(connIDs []string, event string, payload any) {
	if len(connIDs) == 0 {
		return
	}

	data, err := encode(event, payload)
	if err != nil {
		that.logger.Error("failed to encode event", "event", event, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, id := range connIDs {
		client, ok := that.clients[id]
		if !ok {
			continue
		}

		if !client.enqueue(data) {
			that.logger.Warn("client is too slow, disconnecting", "connID", id, "event", event)
			client.close()
		}
	}
}

func (that *Hub) add(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[client.id] = client
}

func (that *Hub) remove(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.clients, connID)
}

func (that *Hub) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

// closeAll disconnects every client. Their read loops then leave their rooms.
func (that *Hub) closeAll() {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, client := range that.clients {
		client.close()
	}
}
