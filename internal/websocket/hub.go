package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"imagine-algorithm/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "feed_events"

// Hub fans feed pushes out to every open connection of a session. With a
// Redis client it also relays pushes to sessions connected to other
// instances.
type Hub struct {
	// SessionID -> open connections (several tabs)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb      *redis.Client
	instance string

	logger logger.ILogger
}

type clusterMessage struct {
	Origin    string          `json:"origin"`
	SessionID string          `json:"session_id"`
	Message   json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instance:   uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			clients := h.clients[client.SessionID]
			for i, c := range clients {
				if c == client {
					h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
					close(client.Send)
					break
				}
			}
			if len(h.clients[client.SessionID]) == 0 {
				delete(h.clients, client.SessionID)
				h.logger.Info("Hub", "Session has no more connections", map[string]interface{}{"session_id": client.SessionID})
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers payload to the session's local connections and, when
// clustered, to the other instances.
func (h *Hub) Send(sessionID uuid.UUID, payload []byte) {
	h.deliverLocal(sessionID, payload)

	if h.rdb != nil {
		data, _ := json.Marshal(clusterMessage{
			Origin:    h.instance,
			SessionID: sessionID.String(),
			Message:   payload,
		})
		if err := h.rdb.Publish(context.Background(), clusterChannel, data).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Connections reports how many connections the session has on this
// instance.
func (h *Hub) Connections(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *Hub) deliverLocal(sessionID uuid.UUID, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[sessionID] {
		select {
		case client.Send <- payload:
		default:
			// Every push carries the whole feed, so a skipped one is
			// superseded by the next.
			h.logger.Warn("Hub", "Client Send buffer full, dropping push", map[string]interface{}{"session_id": sessionID})
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if payload.Origin == h.instance {
				continue
			}
			sid, err := uuid.Parse(payload.SessionID)
			if err != nil {
				continue
			}
			h.deliverLocal(sid, payload.Message)
		}
	}
}
