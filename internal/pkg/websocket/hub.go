package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EventAlumnosChanged is sent after an alumno write commits
const EventAlumnosChanged = "alumnos.changed"

// eventQueueSize bounds the events waiting for the hub loop; Publish drops beyond it
const eventQueueSize = 64

// Event is pushed to every connected panel
type Event struct {
	// Type of event, currently always EventAlumnosChanged
	Type string `json:"type"`

	// Action is "created", "updated" or "deleted"
	Action string `json:"action"`

	// AlumnoID of the record that changed
	AlumnoID string `json:"alumnoId"`

	Timestamp time.Time `json:"timestamp"`
}

// NewAlumnosChanged builds the event sent after a committed alumno write
func NewAlumnosChanged(action, alumnoID string) *Event {
	return &Event{
		Type:      EventAlumnosChanged,
		Action:    action,
		AlumnoID:  alumnoID,
		Timestamp: time.Now().UTC(),
	}
}

// Hub maintains the set of connected panels and fans events out to them.
// The clients map is only modified by the Run loop.
type Hub struct {
	clients map[*Client]struct{}

	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client

	// done is closed when Run returns
	done chan struct{}

	// mu guards clients for ClientCount
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan *Event, eventQueueSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)
		}
	}
}

// Publish queues event for every connected client. It never blocks.
func (h *Hub) Publish(event *Event) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().
			Str("type", event.Type).
			Str("alumnoId", event.AlumnoID).
			Msg("Event queue full, dropping event")
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// join hands client to the Run loop; false once the hub has stopped
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave asks the Run loop to drop client
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info().
		Str("addr", client.remoteAddr()).
		Int("clients", count).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		h.logger.Info().
			Str("addr", client.remoteAddr()).
			Int("clients", count).
			Msg("Client unregistered")
	}
}

func (h *Hub) broadcastEvent(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Str("type", event.Type).Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// slow client; its writePump closes the connection
			delete(h.clients, client)
			close(client.send)
			h.logger.Warn().Str("addr", client.remoteAddr()).Msg("Dropped slow client")
		}
	}

	h.logger.Debug().
		Str("type", event.Type).
		Str("action", event.Action).
		Int("clientCount", len(h.clients)).
		Msg("Event broadcasted")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.logger.Info().Msg("Hub stopped, all clients disconnected")
}
