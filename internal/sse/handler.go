package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler returns an HTTP handler for SSE connections.
// Query: types=garden.notification,garden.updated and session_id=<id>.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}
		sessionID := r.URL.Query().Get(QueryParamSessionID)

		client := hub.Register(eventTypes, sessionID)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"session_id", sessionID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		connectEvent := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			SessionID: sessionID,
			Timestamp: time.Now().Unix(),
			Payload: ConnectedPayload{
				ClientID:  client.ID,
				Filters:   eventTypes,
				SessionID: sessionID,
			},
		}
		if !write(w, flusher, connectEvent) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// Hub is shutting down
					return
				}
				if !write(w, flusher, evt) {
					return
				}

			case <-ticker.C:
				keepalive := Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}
				if !write(w, flusher, keepalive) {
					return
				}
			}
		}
	}
}

// write reports whether the connection is still usable
func write(w http.ResponseWriter, flusher http.Flusher, evt Event) bool {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		slog.Error(LogMsgWriteError, "error", err)
		return true
	}
	if _, err := w.Write(msg); err != nil {
		slog.Warn(LogMsgWriteError, "error", err)
		return false
	}
	flusher.Flush()
	return true
}
