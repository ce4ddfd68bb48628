package concurrency

import "sync"

// LockManager hands out one mutex per key. The garden service keys it by
// session id so each garden has a single writer. Entries are reference
// counted and dropped once nobody holds or waits on them, so the map stays
// proportional to the number of busy gardens rather than all gardens ever
// touched.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the func that releases it.
// The returned func must be called exactly once.
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		lm.mu.Lock()
		defer lm.mu.Unlock()
		l.refs--
		if l.refs == 0 {
			delete(lm.locks, key)
		}
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
