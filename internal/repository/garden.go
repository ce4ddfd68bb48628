package repository

import (
	"context"
)

// GardenStore persists garden snapshots. A snapshot is the JSON document of
// one session's whole garden; stores treat it as opaque bytes.
type GardenStore interface {
	// LoadSnapshot returns the stored document, or domain.ErrGardenNotFound
	LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error)

	// SaveSnapshot replaces the stored document. Last writer wins.
	SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error

	// DeleteSnapshot removes the document. Deleting a missing session is not an error.
	DeleteSnapshot(ctx context.Context, sessionID string) error

	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}

// SessionLister is implemented by stores that can enumerate saved gardens
type SessionLister interface {
	// ListSessions returns up to limit session ids, most recently saved first
	ListSessions(ctx context.Context, limit int) ([]string, error)
}
