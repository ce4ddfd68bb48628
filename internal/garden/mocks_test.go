package garden

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/event"
)

// MockStore implements repository.GardenStore for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error {
	args := m.Called(ctx, sessionID, snapshot)
	return args.Error(0)
}

func (m *MockStore) DeleteSnapshot(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// memoryStore is a working in-memory GardenStore
type memoryStore struct {
	mu      sync.Mutex
	docs    map[string][]byte
	saves   int
	saveErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) LoadSnapshot(ctx context.Context, sessionID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[sessionID]
	if !ok {
		return nil, domain.ErrGardenNotFound
	}
	return doc, nil
}

func (s *memoryStore) SaveSnapshot(ctx context.Context, sessionID string, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.docs[sessionID] = append([]byte(nil), snapshot...)
	s.saves++
	return nil
}

func (s *memoryStore) DeleteSnapshot(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, sessionID)
	return nil
}

func (s *memoryStore) Ping(ctx context.Context) error { return nil }

// failSaves makes every SaveSnapshot return err until called with nil
func (s *memoryStore) failSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *memoryStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *memoryStore) stored(sessionID string) (domain.GardenState, bool) {
	s.mu.Lock()
	doc, ok := s.docs[sessionID]
	s.mu.Unlock()
	if !ok {
		return domain.GardenState{}, false
	}
	state, err := DecodeSnapshot(doc, time.Now())
	if err != nil {
		return domain.GardenState{}, false
	}
	return state, true
}

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) ofType(t event.Type) []event.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []event.Event
	for _, e := range p.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}
