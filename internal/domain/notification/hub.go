package notification

import (
	"context"
	"encoding/json"
	"expvar"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventType for admin WebSocket messages
type EventType string

const (
	EventBookingCreated EventType = "booking_created"
)

const adminEventsChannel = "misk:admin:events"

var (
	wsConnectionsGauge   = expvar.NewInt("admin_ws_connections")
	wsEventsSentTotal    = expvar.NewInt("admin_ws_events_sent_total")
	wsEventsDroppedTotal = expvar.NewInt("admin_ws_events_dropped_total")
)

// Event is pushed to connected admin sessions.
type Event struct {
	Type    EventType      `json:"type"`
	Booking *BookingNotice `json:"booking,omitempty"`
}

type relayMessage struct {
	SenderInstanceID string          `json:"sender_instance_id"`
	Payload          json.RawMessage `json:"payload"`
}

// Connection represents an admin WebSocket connection
type Connection struct {
	ID   uuid.UUID
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans admin events out to local connections and, when Redis is
// available, to the other API instances.
type Hub struct {
	connections map[*Connection]bool
	mu          sync.RWMutex

	redis  *redis.Client
	pubsub *redis.PubSub

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc

	instanceID string
}

// NewHub creates hub. redisClient may be nil for single-instance setups.
func NewHub(redisClient *redis.Client) *Hub {
	return NewHubWithInstanceID(redisClient, uuid.NewString())
}

// NewHubWithInstanceID creates hub with explicit instance identifier.
func NewHubWithInstanceID(redisClient *redis.Client, instanceID string) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
		instanceID:  instanceID,
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, adminEventsChannel)
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			h.mu.Unlock()
			wsConnectionsGauge.Add(1)
			log.Debug().Str("connection_id", conn.ID.String()).Msg("Admin connected to event stream")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				close(conn.Send)
				wsConnectionsGauge.Add(-1)
			}
			h.mu.Unlock()
			log.Debug().Str("connection_id", conn.ID.String()).Msg("Admin disconnected from event stream")
		}
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleRelayPayload(msg.Payload)
		}
	}
}

func (h *Hub) handleRelayPayload(payload string) {
	var relay relayMessage
	if err := json.Unmarshal([]byte(payload), &relay); err != nil {
		return
	}
	if relay.SenderInstanceID == h.instanceID {
		return
	}
	h.broadcastLocal(relay.Payload)
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.ctx.Done():
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.ctx.Done():
	}
}

// Publish delivers event to every admin session on every instance.
func (h *Hub) Publish(ctx context.Context, event *Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.broadcastLocal(data)

	if h.redis == nil {
		return nil
	}

	relay, err := json.Marshal(relayMessage{SenderInstanceID: h.instanceID, Payload: data})
	if err != nil {
		return err
	}
	return h.redis.Publish(ctx, adminEventsChannel, relay).Err()
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections {
		select {
		case conn.Send <- data:
			wsEventsSentTotal.Add(1)
		default:
			wsEventsDroppedTotal.Add(1)
			log.Warn().Str("connection_id", conn.ID.String()).Msg("Admin WebSocket send buffer full")
		}
	}
}

// ConnectionCount returns number of local connections
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown() {
	h.cancel()
	if h.pubsub != nil {
		h.pubsub.Close()
	}
}
