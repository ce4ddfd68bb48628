package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Garden event types
const (
	GardenNotification Type = domain.EventTypeGardenNotification
	GardenUpdated      Type = domain.EventTypeGardenUpdated
	GardenReset        Type = domain.EventTypeGardenReset
)

// GardenNotificationPayloadV1 carries one player-facing message
type GardenNotificationPayloadV1 struct {
	SessionID   string                  `json:"session_id"`
	Kind        domain.NotificationKind `json:"kind"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Timestamp   int64                   `json:"timestamp"`
}

// GardenUpdatedPayloadV1 is emitted after every state change so clients can refresh
type GardenUpdatedPayloadV1 struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	Money     int    `json:"money"`
	XP        int    `json:"xp"`
	GridSize  int    `json:"grid_size"`
	Timestamp int64  `json:"timestamp"`
}

// GardenResetPayloadV1 is emitted when a session's saved garden is deleted
type GardenResetPayloadV1 struct {
	SessionID string `json:"session_id"`
	Timestamp int64  `json:"timestamp"`
}

func sessionMetadata(sessionID string) map[string]interface{} {
	return map[string]interface{}{MetadataKeySessionID: sessionID}
}

// NewGardenNotificationEvent wraps a notification for the bus
func NewGardenNotificationEvent(sessionID string, n domain.Notification, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenNotification,
		Payload: GardenNotificationPayloadV1{
			SessionID:   sessionID,
			Kind:        n.Kind,
			Title:       n.Title,
			Description: n.Description,
			Timestamp:   at.Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewGardenUpdatedEvent summarizes the state left behind by an action
func NewGardenUpdatedEvent(sessionID, action string, state domain.GardenState, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenUpdated,
		Payload: GardenUpdatedPayloadV1{
			SessionID: sessionID,
			Action:    action,
			Money:     state.Money,
			XP:        state.XP,
			GridSize:  state.GridSize,
			Timestamp: at.Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// NewGardenResetEvent creates a reset event
func NewGardenResetEvent(sessionID string, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenReset,
		Payload: GardenResetPayloadV1{
			SessionID: sessionID,
			Timestamp: at.Unix(),
		},
		Metadata: sessionMetadata(sessionID),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
