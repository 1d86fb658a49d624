package concurrency

import "sync"

// LockManager hands out one mutex per key so callers can serialize work on a
// single entity (a character, an artifact) without one global lock. Mutexes
// are created on first use and never discarded; the key space is bounded by
// the player base.
type LockManager struct {
	locks sync.Map
}

func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use.
func (m *LockManager) GetLock(key string) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(key, new(sync.Mutex))
	return mu.(*sync.Mutex)
}

// Acquire locks key and returns the unlock function, for use with defer.
func (m *LockManager) Acquire(key string) func() {
	mu := m.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
