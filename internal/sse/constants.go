package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// MaxMissedEvents consecutive undeliverable events disconnect a client
	MaxMissedEvents = 20
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeNotification carries one harvest/purchase/exchange/restock/wilt message
	EventTypeNotification = "garden.notification"

	// EventTypeGardenUpdated tells clients to refresh their garden view
	EventTypeGardenUpdated = "garden.updated"

	// EventTypeGardenReset is sent when a saved garden is deleted
	EventTypeGardenReset = "garden.reset"

	// EventTypeConnected is the first message on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes     = "types"
	QueryParamSessionID = "session_id"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, dropping event"
	LogMsgClientLagging      = "SSE client buffer full, skipping event"
	LogMsgClientEvicted      = "SSE client too slow, disconnecting"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid garden event payload"
	LogMsgSubscribed         = "SSE subscriber registered for event types"
)
