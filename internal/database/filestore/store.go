// Package filestore keeps one JSON file per garden session in a directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/repository"
	"github.com/osse101/GardenBot_Go/internal/utils"
)

const (
	fileExt  = ".json"
	filePerm = 0o600
	dirPerm  = 0o750
)

// Store implements repository.GardenStore on the local filesystem
type Store struct {
	dir string
}

var (
	_ repository.GardenStore   = (*Store)(nil)
	_ repository.SessionLister = (*Store)(nil)
)

// New creates the directory if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(sessionID string) (string, error) {
	if sessionID == "" || sessionID == "." || sessionID == ".." ||
		strings.ContainsAny(sessionID, `/\`) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidSession, sessionID)
	}
	return filepath.Join(s.dir, sessionID+fileExt), nil
}

// LoadSnapshot returns the stored document or domain.ErrGardenNotFound
func (s *Store) LoadSnapshot(_ context.Context, sessionID string) ([]byte, error) {
	path, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrGardenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load garden snapshot: %w", err)
	}
	return data, nil
}

// SaveSnapshot replaces the file atomically
func (s *Store) SaveSnapshot(_ context.Context, sessionID string, snapshot []byte) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, snapshot, filePerm)
}

// DeleteSnapshot removes the file. Deleting a missing session is not an error.
func (s *Store) DeleteSnapshot(_ context.Context, sessionID string) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete garden snapshot: %w", err)
	}
	return nil
}

// Ping checks that the data directory is still there
func (s *Store) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory unavailable: %s is not a directory", s.dir)
	}
	return nil
}

// ListSessions returns up to limit session ids, most recently written first
func (s *Store) ListSessions(_ context.Context, limit int) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list garden sessions: %w", err)
	}

	type saved struct {
		id      string
		modTime time.Time
	}
	var found []saved
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info
			continue
		}
		found = append(found, saved{id: strings.TrimSuffix(name, fileExt), modTime: info.ModTime()})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].modTime.Equal(found[j].modTime) {
			return found[i].id < found[j].id
		}
		return found[i].modTime.After(found[j].modTime)
	})

	ids := make([]string, 0, min(limit, len(found)))
	for i := 0; i < len(found) && i < limit; i++ {
		ids = append(ids, found[i].id)
	}
	return ids, nil
}
