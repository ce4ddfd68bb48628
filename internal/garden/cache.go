package garden

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// session is one garden held in memory. Fields are guarded by the session's
// lock in the service's LockManager, not by the cache.
type session struct {
	state domain.GardenState
	// dirty is set while the latest state has not reached the store.
	// Atomic because cache eviction reads it outside the session lock.
	dirty atomic.Bool
}

// sessionCache keeps recently used gardens in memory with an idle TTL.
// Clean sessions are reloaded from the store on next use; the service
// parks dirty ones from the eviction callback.
type sessionCache struct {
	lru *expirable.LRU[string, *session]
}

func newSessionCache(size int, ttl time.Duration, onEvict func(sessionID string, s *session)) *sessionCache {
	return &sessionCache{
		lru: expirable.NewLRU[string, *session](size, onEvict, ttl),
	}
}

// Get returns a live session. An expired entry still waiting for the purge
// is evicted here, so the eviction callback sees it before the caller
// reloads from the store.
func (c *sessionCache) Get(sessionID string) (*session, bool) {
	if s, ok := c.lru.Get(sessionID); ok {
		return s, true
	}
	c.lru.Remove(sessionID)
	return nil, false
}

// Set stores the session and restarts its idle TTL
func (c *sessionCache) Set(sessionID string, s *session) {
	c.lru.Add(sessionID, s)
}

// Contains reports whether sessionID is cached without touching recency
func (c *sessionCache) Contains(sessionID string) bool {
	return c.lru.Contains(sessionID)
}

func (c *sessionCache) Remove(sessionID string) {
	c.lru.Remove(sessionID)
}

// Keys returns the ids of every live session, oldest first
func (c *sessionCache) Keys() []string {
	return c.lru.Keys()
}

func (c *sessionCache) Len() int {
	return c.lru.Len()
}
