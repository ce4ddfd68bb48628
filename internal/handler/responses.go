package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// encodeBuffers recycles response buffers. Buffers that grew past
// maxPooledBuffer (a full 6x6 garden view) are dropped instead of pooled.
var encodeBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

const maxPooledBuffer = 64 << 10

// respondJSON encodes payload before touching the response so an encoding
// failure can still be reported as a 500.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			encodeBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("Failed to write response", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Debug(opName+" rejected", "status", status, "reason", err.Error())
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Validation and precondition errors are built from fixed messages and
// request values, so their text is safe to return as-is.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrPrecondition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrGardenNotFound):
		return http.StatusNotFound, ErrMsgGardenNotFoundHTTP
	case errors.Is(err, domain.ErrSnapshotCorrupt):
		return http.StatusInternalServerError, ErrMsgSnapshotUnreadable
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
