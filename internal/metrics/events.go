package metrics

import (
	"context"

	"github.com/osse101/GardenBot_Go/internal/event"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to garden events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every garden event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.GardenNotification,
		event.GardenUpdated,
		event.GardenReset,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if evt.Type == event.GardenNotification {
		payload, err := event.DecodePayload[event.GardenNotificationPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnreadable, "type", evt.Type, "error", err)
			return nil
		}
		NotificationsByKind.WithLabelValues(string(payload.Kind)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
