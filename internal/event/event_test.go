package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	require.NoError(t, bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType}))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: "nobody_listens"}))
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
}

func TestNewGardenNotificationEvent(t *testing.T) {
	at := time.Unix(1_700_000_000, 0)
	n := domain.Notification{
		Kind:        domain.NotificationHarvest,
		Title:       "Harvested Radish!",
		Description: "Radish (0.2 kg) sold for 18 coins",
	}

	evt := NewGardenNotificationEvent("learner-1", n, at)

	assert.Equal(t, GardenNotification, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "learner-1", evt.GetMetadataValue(MetadataKeySessionID))

	payload, err := DecodePayload[GardenNotificationPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "learner-1", payload.SessionID)
	assert.Equal(t, domain.NotificationHarvest, payload.Kind)
	assert.Equal(t, n.Title, payload.Title)
	assert.Equal(t, at.Unix(), payload.Timestamp)
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{
		"session_id": "learner-2",
		"action":     "harvest",
		"money":      518,
	}

	payload, err := DecodePayload[GardenUpdatedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, "learner-2", payload.SessionID)
	assert.Equal(t, "harvest", payload.Action)
	assert.Equal(t, 518, payload.Money)
}

func TestDecodePayload_Sources(t *testing.T) {
	want := GardenUpdatedPayloadV1{SessionID: "learner-3", Action: "water", XP: 40}

	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{"value", want, false},
		{"pointer", &want, false},
		{"raw message", json.RawMessage(`{"session_id":"learner-3","action":"water","xp":40}`), false},
		{"bytes", []byte(`{"session_id":"learner-3","action":"water","xp":40}`), false},
		{"nil pointer", (*GardenUpdatedPayloadV1)(nil), true},
		{"malformed json", []byte(`{"session_id":`), true},
		{"wrong shape", "not an object", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePayload[GardenUpdatedPayloadV1](tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestGetMetadataValue_NoMetadata(t *testing.T) {
	assert.Nil(t, Event{}.GetMetadataValue(MetadataKeySessionID))
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
}
