package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Event types pushed to connected users
const (
	EventMessage      = "message"
	EventNotification = "notification"
)

// Event is the JSON frame written to a user's connections
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type delivery struct {
	userID string
	data   []byte
}

// Hub tracks the open connections of each user and fans events out to them
type Hub struct {
	// Registered clients organized by user ID
	clients map[string]map[*Client]bool

	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	closeOnce  sync.Once

	// Guards clients for readers outside the Run loop
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		deliver:    make(chan delivery, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and deliveries until Close is called
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case d := <-h.deliver:
			h.deliverToUser(d)

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Close stops Run and closes every client's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr).
		Msg("Client registered")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	userClients, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := userClients[client]; !ok {
		return
	}

	delete(userClients, client)
	close(client.send)
	if len(userClients) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Info().
		Str("userID", client.userID).
		Str("addr", client.remoteAddr).
		Msg("Client unregistered")
}

func (h *Hub) deliverToUser(d delivery) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients[d.userID] {
		select {
		case client.send <- d.data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	// Slow clients are dropped; they reconnect and refetch over REST
	for _, client := range slow {
		h.logger.Warn().Str("userID", d.userID).Msg("Dropping slow websocket client")
		h.removeClient(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, userClients := range h.clients {
		for client := range userClients {
			close(client.send)
		}
		delete(h.clients, userID)
	}
}

// PushToUser queues an event for every open connection of userID.
// Users without connections are skipped and a full queue drops the event.
func (h *Hub) PushToUser(userID, eventType string, payload interface{}) {
	if h.ClientCount(userID) == 0 {
		return
	}

	data, err := json.Marshal(Event{Type: eventType, Payload: payload, Timestamp: time.Now()})
	if err != nil {
		h.logger.Error().Err(err).Str("type", eventType).Msg("Failed to marshal websocket event")
		return
	}

	select {
	case h.deliver <- delivery{userID: userID, data: data}:
	case <-h.done:
	default:
		h.logger.Warn().Str("userID", userID).Str("type", eventType).Msg("Websocket delivery queue full, event dropped")
	}
}

// ClientCount returns the number of open connections of userID
func (h *Hub) ClientCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
