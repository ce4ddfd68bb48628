package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/GardenBot_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all garden event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.GardenNotification, s.handleNotification)
	s.bus.Subscribe(event.GardenUpdated, s.handleUpdated)
	s.bus.Subscribe(event.GardenReset, s.handleReset)

	slog.Info(LogMsgSubscribed,
		"types", []string{
			string(event.GardenNotification),
			string(event.GardenUpdated),
			string(event.GardenReset),
		})
}

func (s *Subscriber) handleNotification(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GardenNotificationPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeNotification, payload.SessionID, NotificationPayload{
		Kind:        string(payload.Kind),
		Title:       payload.Title,
		Description: payload.Description,
	})
	return nil
}

func (s *Subscriber) handleUpdated(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GardenUpdatedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeGardenUpdated, payload.SessionID, GardenUpdatedPayload{
		Action:   payload.Action,
		Money:    payload.Money,
		XP:       payload.XP,
		GridSize: payload.GridSize,
	})
	return nil
}

func (s *Subscriber) handleReset(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.GardenResetPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeGardenReset, payload.SessionID, nil)
	return nil
}
