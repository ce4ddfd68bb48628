package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one message on an event stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is a connected stream. EventChannel is closed when the hub drops
// the client: on Unregister, on Stop, or after MaxMissedEvents in a row
// could not be delivered.
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all event types
	SessionID    string          // empty means every session

	missed int
}

func (c *Client) wants(evt Event) bool {
	if c.EventFilter != nil && !c.EventFilter[evt.Type] {
		return false
	}
	return c.SessionID == "" || c.SessionID == evt.SessionID
}

// Hub fans broadcast events out to the connected clients from a single loop
type Hub struct {
	mu      sync.Mutex
	clients map[string]*Client
	stopped bool

	broadcast chan Event
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start launches the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case evt := <-h.broadcast:
			h.deliver(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		if !client.wants(evt) {
			continue
		}
		select {
		case client.EventChannel <- evt:
			client.missed = 0
		default:
			client.missed++
			slog.Debug(LogMsgClientLagging, "client_id", id, "event_type", evt.Type, "missed", client.missed)
			if client.missed >= MaxMissedEvents {
				slog.Warn(LogMsgClientEvicted, "client_id", id, "session_id", client.SessionID)
				close(client.EventChannel)
				delete(h.clients, id)
			}
		}
	}
}

// Register adds a client. eventTypes limits which types it receives and
// sessionID limits it to one garden; empty values mean no limit. After Stop
// the returned client's channel is already closed.
func (h *Hub) Register(eventTypes []string, sessionID string) *Client {
	client := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		SessionID:    sessionID,
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	return client
}

// Unregister drops a client; unknown ids are ignored
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for delivery. When the queue is full the event
// is dropped rather than blocking the publisher.
func (h *Hub) Broadcast(eventType, sessionID string, payload any) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "event_type", eventType, "session_id", sessionID)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(evt.ID) + len(evt.Type) + 20)
	if evt.ID != "" {
		buf.WriteString("id: " + evt.ID + "\n")
	}
	buf.WriteString("event: " + evt.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
