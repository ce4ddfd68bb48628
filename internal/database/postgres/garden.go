package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

// GardenStore keeps one JSONB snapshot row per session
type GardenStore struct {
	pool *pgxpool.Pool
}

var (
	_ repository.GardenStore   = (*GardenStore)(nil)
	_ repository.SessionLister = (*GardenStore)(nil)
)

// NewGardenStore creates a Postgres-backed garden store
func NewGardenStore(pool *pgxpool.Pool) *GardenStore {
	return &GardenStore{pool: pool}
}

// LoadSnapshot returns the stored document or domain.ErrGardenNotFound
func (s *GardenStore) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	var snapshot []byte
	err := s.pool.QueryRow(ctx, queryLoadSnapshot, sessionID).Scan(&snapshot)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGardenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSnapshot, err)
	}
	return snapshot, nil
}

// SaveSnapshot upserts the whole document
func (s *GardenStore) SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error {
	if _, err := s.pool.Exec(ctx, querySaveSnapshot, sessionID, snapshot); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSnapshot, err)
	}
	return nil
}

// DeleteSnapshot removes the row. Deleting a missing session is not an error.
func (s *GardenStore) DeleteSnapshot(ctx context.Context, sessionID string) error {
	if _, err := s.pool.Exec(ctx, queryDeleteSnapshot, sessionID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSnapshot, err)
	}
	return nil
}

// Ping checks the connection
func (s *GardenStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ListSessions returns up to limit session ids, most recently saved first
func (s *GardenStore) ListSessions(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListSessions, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	return ids, nil
}
